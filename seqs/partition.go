package seqs

import (
	"cmp"
	"slices"
)

// SortWith returns the elements sorted by o.
//
// The sort is a first-element-pivot partition sort. The placement of
// equivalent elements is deterministic but stability is not promised, and
// input already ordered with respect to o costs O(n²).
// SortWith panics with an error wrapping ErrInvalidArgument if o is nil.
func (s Seq[T]) SortWith(o Ordering[T]) Seq[T] {
	res, err := s.SortRange(0, len(s.values)-1, o)
	if err != nil {
		panic(err)
	}
	return res
}

// SortRange returns a copy of s whose elements in the inclusive range
// [from, to] are sorted by o. Elements outside the range keep their place.
func (s Seq[T]) SortRange(from, to int, o Ordering[T]) (Seq[T], error) {
	if o == nil {
		return Seq[T]{}, argumentError("nil ordering")
	}
	n := len(s.values)
	if n == 0 && to < from {
		return Seq[T]{}, nil
	}
	if from < 0 || from >= n {
		return Seq[T]{}, indexError(from, n)
	}
	if to >= n {
		return Seq[T]{}, indexError(to, n)
	}

	a := slices.Clone(s.values)
	partitionSort(a, from, to, o)
	return Adopt(a), nil
}

// Sort returns the elements of s in ascending natural order.
func Sort[T cmp.Ordered](s Seq[T]) Seq[T] {
	if len(s.values) == 0 {
		return Seq[T]{}
	}
	a := slices.Clone(s.values)
	slices.Sort(a)
	return Adopt(a)
}

// partitionSort sorts a[from:to+1] in place.
//
// The first element of the range is the pivot. The rest are split, in one
// pass, into a "less than pivot" bucket and a "pivot or greater" bucket, each
// keeping the relative order of its elements, and written back as
// less, pivot, greater. Both sides are then sorted recursively.
func partitionSort[T any](a []T, from, to int, o Ordering[T]) {
	length := to - from + 1
	if length < 2 {
		return
	}
	if length == 2 {
		if o.Gt(a[from], a[to]) {
			a[from], a[to] = a[to], a[from]
		}
		return
	}

	pivot := a[from]
	less := make([]T, 0, length)
	rest := make([]T, 0, length)
	for _, v := range a[from+1 : to+1] {
		if o.Lt(v, pivot) {
			less = append(less, v)
		} else {
			rest = append(rest, v)
		}
	}

	p := from
	p += copy(a[p:], less)
	a[p] = pivot
	p++
	copy(a[p:], rest)

	if len(less) > 0 {
		partitionSort(a, from, from+len(less)-1, o)
	}
	if len(rest) > 0 {
		partitionSort(a, from+len(less)+1, to, o)
	}
}
