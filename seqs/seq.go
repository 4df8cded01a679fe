package seqs

import (
	"fmt"
	"iter"
	"slices"
)

// Seq is an immutable, fixed-length sequence of T.
// The zero value is an empty Seq and is ready to use.
//
// A Seq owns its backing slice: constructors copy their input unless the
// caller hands the buffer over with [Adopt]. Every operation that changes
// content returns a new Seq, so values can be shared between goroutines
// without synchronization.
type Seq[T any] struct {
	values []T
}

// Of returns a Seq holding a copy of values.
func Of[T any](values ...T) Seq[T] {
	return FromSlice(values)
}

// FromSlice returns a Seq holding a copy of values.
func FromSlice[T any](values []T) Seq[T] {
	if len(values) == 0 {
		return Seq[T]{}
	}
	return Seq[T]{values: slices.Clone(values)}
}

// FromSeq drains it into a new Seq.
func FromSeq[T any](it iter.Seq[T]) Seq[T] {
	if it == nil {
		return Seq[T]{}
	}
	return Adopt(slices.Collect(it))
}

// Adopt returns a Seq that takes ownership of buf without copying it.
// The caller must not retain or modify buf afterwards.
func Adopt[T any](buf []T) Seq[T] {
	if len(buf) == 0 {
		return Seq[T]{}
	}
	return Seq[T]{values: buf}
}

// Empty returns the empty Seq of T.
func Empty[T any]() Seq[T] {
	return Seq[T]{}
}

// At returns the element at index.
// Returns ErrIndexOutOfRange if index < 0 or index >= Size().
func (s Seq[T]) At(index int) (T, error) {
	if index < 0 || index >= len(s.values) {
		var zero T
		return zero, indexError(index, len(s.values))
	}
	return s.values[index], nil
}

func (s Seq[T]) Size() int {
	return len(s.values)
}

func (s Seq[T]) IsEmpty() bool {
	return len(s.values) == 0
}

// Head returns the first element, or ErrNoSuchElement if s is empty.
func (s Seq[T]) Head() (T, error) {
	if len(s.values) == 0 {
		var zero T
		return zero, emptyError("head")
	}
	return s.values[0], nil
}

// Last returns the last element, or ErrNoSuchElement if s is empty.
func (s Seq[T]) Last() (T, error) {
	if len(s.values) == 0 {
		var zero T
		return zero, emptyError("last")
	}
	return s.values[len(s.values)-1], nil
}

// ToSlice returns a copy of the elements.
func (s Seq[T]) ToSlice() []T {
	if len(s.values) == 0 {
		return []T{}
	}
	return slices.Clone(s.values)
}

func (s Seq[T]) Values() iter.Seq[T] {
	return slices.Values(s.values)
}

func (s Seq[T]) All() iter.Seq2[int, T] {
	return slices.All(s.values)
}

func (s Seq[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(s.values)
}

// String implements fmt.Stringer for easier debugging.
func (s Seq[T]) String() string {
	return fmt.Sprintf("%v", s.values)
}
