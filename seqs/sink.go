package seqs

// Reduce combines the elements from left to right with op, starting from the
// first element. Returns ErrNoSuchElement if s is empty.
func (s Seq[T]) Reduce(op func(T, T) T) (T, error) {
	if len(s.values) == 0 {
		var zero T
		return zero, emptyError("reduce")
	}
	acc := s.values[0]
	for _, v := range s.values[1:] {
		acc = op(acc, v)
	}
	return acc, nil
}

// ReduceWith combines the elements from left to right with op, starting from identity.
func (s Seq[T]) ReduceWith(identity T, op func(T, T) T) T {
	acc := identity
	for _, v := range s.values {
		acc = op(acc, v)
	}
	return acc
}

// Fold is a left fold: op(op(op(initial, s[0]), s[1]), ...).
// An empty Seq folds to initial.
func (s Seq[T]) Fold(initial T, op func(T, T) T) T {
	return FoldLeft(s, initial, op)
}

// FoldLeft folds s into a value of another type.
func FoldLeft[T, R any](s Seq[T], initial R, op func(R, T) R) R {
	acc := initial
	for _, v := range s.values {
		acc = op(acc, v)
	}
	return acc
}

func (s Seq[T]) ForEach(action func(T)) {
	for _, v := range s.values {
		action(v)
	}
}

// Exists reports whether any element satisfies predicate.
func (s Seq[T]) Exists(predicate func(T) bool) bool {
	return s.IndexWhere(predicate) >= 0
}

// Every reports whether all elements satisfy predicate. It is true for an empty Seq.
func (s Seq[T]) Every(predicate func(T) bool) bool {
	for _, v := range s.values {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Find returns the first element that satisfies predicate.
func (s Seq[T]) Find(predicate func(T) bool) (T, bool) {
	return s.FindFrom(predicate, 0)
}

// FindFrom returns the first element at or after start that satisfies predicate.
func (s Seq[T]) FindFrom(predicate func(T) bool, start int) (T, bool) {
	for i := max(start, 0); i < len(s.values); i++ {
		if predicate(s.values[i]) {
			return s.values[i], true
		}
	}
	var zero T
	return zero, false
}

// IndexWhere returns the index of the first element that satisfies
// predicate, or -1.
func (s Seq[T]) IndexWhere(predicate func(T) bool) int {
	for i, v := range s.values {
		if predicate(v) {
			return i
		}
	}
	return -1
}

// IndexOf returns the index of the first element equal to target, or -1.
func IndexOf[T comparable](s Seq[T], target T) int {
	return s.IndexWhere(func(v T) bool { return v == target })
}

// Contains reports whether target is an element of s.
func Contains[T comparable](s Seq[T], target T) bool {
	return IndexOf(s, target) >= 0
}
