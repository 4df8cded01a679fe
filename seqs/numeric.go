package seqs

import (
	"hash/maphash"
	"iter"
	"math"
	"slices"
)

// Numeric is the unboxed specialization of Seq for numbers.
//
// It offers the same vocabulary as Seq, with two differences: operations
// that have no result on an empty sequence (Head, Last, Reduce, Max, Min)
// report absence with a false flag instead of an error, and the arithmetic
// aggregates Sum, Product and Average are available.
type Numeric[N Number] struct {
	seq Seq[N]
}

type (
	Int32Seq   = Numeric[int32]
	Int64Seq   = Numeric[int64]
	Float64Seq = Numeric[float64]
)

func Int32s(values ...int32) Int32Seq {
	return NumbersOf(values)
}

func Int64s(values ...int64) Int64Seq {
	return NumbersOf(values)
}

func Float64s(values ...float64) Float64Seq {
	return NumbersOf(values)
}

func EmptyInt32() Int32Seq {
	return Int32Seq{}
}

func EmptyInt64() Int64Seq {
	return Int64Seq{}
}

func EmptyFloat64() Float64Seq {
	return Float64Seq{}
}

// NumbersOf returns a Numeric holding a copy of values.
func NumbersOf[N Number](values []N) Numeric[N] {
	return Numeric[N]{seq: FromSlice(values)}
}

// NumbersFrom drains it into a new Numeric.
func NumbersFrom[N Number](it iter.Seq[N]) Numeric[N] {
	return Numeric[N]{seq: FromSeq(it)}
}

// AdoptNumbers takes ownership of buf without copying it.
// The caller must not retain or modify buf afterwards.
func AdoptNumbers[N Number](buf []N) Numeric[N] {
	return Numeric[N]{seq: Adopt(buf)}
}

// Unboxed views a Seq of numbers as a Numeric. Both share the same
// immutable storage.
func Unboxed[N Number](s Seq[N]) Numeric[N] {
	return Numeric[N]{seq: s}
}

// Boxed returns the generic Seq view of n, sharing its storage.
func (n Numeric[N]) Boxed() Seq[N] {
	return n.seq
}

func (n Numeric[N]) At(index int) (N, error) {
	return n.seq.At(index)
}

func (n Numeric[N]) Size() int {
	return n.seq.Size()
}

func (n Numeric[N]) IsEmpty() bool {
	return n.seq.IsEmpty()
}

// Head returns the first element, or false if n is empty.
func (n Numeric[N]) Head() (N, bool) {
	v, err := n.seq.Head()
	return v, err == nil
}

// Last returns the last element, or false if n is empty.
func (n Numeric[N]) Last() (N, bool) {
	v, err := n.seq.Last()
	return v, err == nil
}

// Slice follows the same lenient bounds as Seq.Slice.
func (n Numeric[N]) Slice(from, to int) (Numeric[N], error) {
	s, err := n.seq.Slice(from, to)
	return Numeric[N]{seq: s}, err
}

func (n Numeric[N]) Tail() Numeric[N] {
	return Numeric[N]{seq: n.seq.Tail()}
}

func (n Numeric[N]) Take(count int) Numeric[N] {
	return Numeric[N]{seq: n.seq.Take(count)}
}

func (n Numeric[N]) Drop(count int) Numeric[N] {
	return Numeric[N]{seq: n.seq.Drop(count)}
}

func (n Numeric[N]) TakeWhile(predicate func(N) bool) Numeric[N] {
	return Numeric[N]{seq: n.seq.TakeWhile(predicate)}
}

func (n Numeric[N]) DropWhile(predicate func(N) bool) Numeric[N] {
	return Numeric[N]{seq: n.seq.DropWhile(predicate)}
}

func (n Numeric[N]) Filter(predicate func(N) bool) Numeric[N] {
	return Numeric[N]{seq: n.seq.Filter(predicate)}
}

// Map applies transform to each element, keeping the element type.
func (n Numeric[N]) Map(transform func(N) N) Numeric[N] {
	return Numeric[N]{seq: Map(n.seq, transform)}
}

func (n Numeric[N]) Reverse() Numeric[N] {
	return Numeric[N]{seq: n.seq.Reverse()}
}

// Concat returns n followed by each of others, in argument order.
func (n Numeric[N]) Concat(others ...Numeric[N]) Numeric[N] {
	boxed := make([]Seq[N], len(others))
	for i, o := range others {
		boxed[i] = o.seq
	}
	return Numeric[N]{seq: n.seq.Concat(boxed...)}
}

// Distinct returns the first occurrence of every value, keeping their order.
// Floats are compared by bits: all NaNs count as one value, and 0 and -0
// are distinct.
func (n Numeric[N]) Distinct() Numeric[N] {
	values := n.seq.values
	if len(values) == 0 {
		return Numeric[N]{}
	}
	seen := make(map[uint64]struct{}, len(values))
	res := make([]N, 0, len(values))
	for _, v := range values {
		k := numberKey(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		res = append(res, v)
	}
	return AdoptNumbers(res)
}

// Sort returns the elements in ascending order, NaNs last.
func (n Numeric[N]) Sort() Numeric[N] {
	if n.IsEmpty() {
		return Numeric[N]{}
	}
	a := slices.Clone(n.seq.values)
	slices.SortFunc(a, NumbersAscending[N]())
	return AdoptNumbers(a)
}

// SortWith sorts with the partition sort of Seq.SortWith.
func (n Numeric[N]) SortWith(o Ordering[N]) Numeric[N] {
	return Numeric[N]{seq: n.seq.SortWith(o)}
}

func (n Numeric[N]) SortRange(from, to int, o Ordering[N]) (Numeric[N], error) {
	s, err := n.seq.SortRange(from, to, o)
	return Numeric[N]{seq: s}, err
}

// Reduce combines the elements from left to right with op, or reports
// false if n is empty.
func (n Numeric[N]) Reduce(op func(N, N) N) (N, bool) {
	v, err := n.seq.Reduce(op)
	return v, err == nil
}

func (n Numeric[N]) ReduceWith(identity N, op func(N, N) N) N {
	return n.seq.ReduceWith(identity, op)
}

func (n Numeric[N]) Fold(initial N, op func(N, N) N) N {
	return n.seq.Fold(initial, op)
}

func (n Numeric[N]) ForEach(action func(N)) {
	n.seq.ForEach(action)
}

func (n Numeric[N]) Exists(predicate func(N) bool) bool {
	return n.seq.Exists(predicate)
}

func (n Numeric[N]) Every(predicate func(N) bool) bool {
	return n.seq.Every(predicate)
}

func (n Numeric[N]) Find(predicate func(N) bool) (N, bool) {
	return n.seq.Find(predicate)
}

func (n Numeric[N]) FindFrom(predicate func(N) bool, start int) (N, bool) {
	return n.seq.FindFrom(predicate, start)
}

func (n Numeric[N]) IndexWhere(predicate func(N) bool) int {
	return n.seq.IndexWhere(predicate)
}

func (n Numeric[N]) IndexOf(value N) int {
	return IndexOf(n.seq, value)
}

func (n Numeric[N]) Contains(value N) bool {
	return Contains(n.seq, value)
}

// Equal reports whether n and other hold the same values in the same order.
// Floats are compared by bits, so NaN equals NaN and 0 differs from -0.
func (n Numeric[N]) Equal(other Numeric[N]) bool {
	return slices.EqualFunc(n.seq.values, other.seq.values, func(a, b N) bool {
		return numberKey(a) == numberKey(b)
	})
}

// Hash returns an order-sensitive hash of n that agrees with Equal.
func (n Numeric[N]) Hash(seed maphash.Seed) uint64 {
	h := uint64(1)
	for _, v := range n.seq.values {
		h = 31*h + maphash.Comparable(seed, numberKey(v))
	}
	return 31*h + uint64(len(n.seq.values))
}

func (n Numeric[N]) ToSlice() []N {
	return n.seq.ToSlice()
}

func (n Numeric[N]) Values() iter.Seq[N] {
	return n.seq.Values()
}

func (n Numeric[N]) All() iter.Seq2[int, N] {
	return n.seq.All()
}

func (n Numeric[N]) Backward() iter.Seq2[int, N] {
	return n.seq.Backward()
}

func (n Numeric[N]) String() string {
	return n.seq.String()
}

// MapNumbers converts every element of n to another numeric type.
func MapNumbers[N, M Number](n Numeric[N], transform func(N) M) Numeric[M] {
	return Numeric[M]{seq: Map(n.seq, transform)}
}

// MapToSeq converts every element of n into an arbitrary type.
func MapToSeq[N Number, R any](n Numeric[N], transform func(N) R) Seq[R] {
	return Map(n.seq, transform)
}

// MapToNumbers maps every element of s to a number.
func MapToNumbers[T any, N Number](s Seq[T], transform func(T) N) Numeric[N] {
	return Numeric[N]{seq: Map(s, transform)}
}

func MapToInt32[T any](s Seq[T], transform func(T) int32) Int32Seq {
	return MapToNumbers(s, transform)
}

func MapToInt64[T any](s Seq[T], transform func(T) int64) Int64Seq {
	return MapToNumbers(s, transform)
}

func MapToFloat64[T any](s Seq[T], transform func(T) float64) Float64Seq {
	return MapToNumbers(s, transform)
}

var canonicalNaN = math.Float64bits(math.NaN())

// numberKey maps v to a key that is equal for two values exactly when they
// have the same bits, with every NaN sharing one key.
func numberKey[N Number](v N) uint64 {
	if !isFloat[N]() {
		return uint64(v)
	}
	if v != v {
		return canonicalNaN
	}
	return math.Float64bits(float64(v))
}

func isFloat[N Number]() bool {
	half := N(1)
	half /= 2
	return half != 0
}
