package seqs

import "slices"

// Slice returns the elements from index from to index to, both inclusive.
//
// Bounds are lenient: to is clamped to Size()-1, and a from at or past the
// end (or a to before from) yields an empty Seq. Only a negative from fails,
// with ErrIndexOutOfRange.
func (s Seq[T]) Slice(from, to int) (Seq[T], error) {
	if from < 0 {
		return Seq[T]{}, indexError(from, len(s.values))
	}
	return s.slice(from, to), nil
}

// clampRange maps an inclusive [from, to] onto a half-open [lo, hi) of a
// slice of length n. from must be non-negative.
func clampRange(n, from, to int) (lo, hi int, ok bool) {
	if from >= n || to < from {
		return 0, 0, false
	}
	return from, min(to, n-1) + 1, true
}

// slice is Slice for callers that already guarantee from >= 0.
func (s Seq[T]) slice(from, to int) Seq[T] {
	lo, hi, ok := clampRange(len(s.values), from, to)
	if !ok {
		return Seq[T]{}
	}
	return Adopt(slices.Clone(s.values[lo:hi]))
}

// Tail returns every element but the first.
func (s Seq[T]) Tail() Seq[T] {
	return s.slice(1, len(s.values))
}

// Take returns the first n elements, or all of them if n >= Size().
func (s Seq[T]) Take(n int) Seq[T] {
	if n <= 0 {
		return Seq[T]{}
	}
	return s.slice(0, n-1)
}

// Drop returns the elements after the first n.
func (s Seq[T]) Drop(n int) Seq[T] {
	return s.slice(max(n, 0), len(s.values))
}

// TakeWhile returns the longest prefix whose elements satisfy predicate,
// which is the whole sequence when every element does.
func (s Seq[T]) TakeWhile(predicate func(T) bool) Seq[T] {
	index := s.IndexWhere(func(v T) bool { return !predicate(v) })
	if index < 0 {
		return s
	}
	return s.Take(index)
}

// DropWhile drops the longest prefix whose elements satisfy predicate
// and returns the rest.
func (s Seq[T]) DropWhile(predicate func(T) bool) Seq[T] {
	index := s.IndexWhere(func(v T) bool { return !predicate(v) })
	if index < 0 {
		return Seq[T]{}
	}
	return s.Drop(index)
}
