package seqs

// Filter returns the elements that satisfy predicate, in order.
func (s Seq[T]) Filter(predicate func(T) bool) Seq[T] {
	if len(s.values) == 0 {
		return Seq[T]{}
	}
	// BCE hint: avoid bounds check in loop
	_ = s.values[len(s.values)-1]

	// Heuristic pre-allocation of capacity
	res := make([]T, 0, len(s.values)/2)
	for _, v := range s.values {
		if predicate(v) {
			res = append(res, v)
		}
	}
	return Adopt(res)
}

// Reverse returns the elements in reverse order.
func (s Seq[T]) Reverse() Seq[T] {
	n := len(s.values)
	if n == 0 {
		return Seq[T]{}
	}
	res := make([]T, n)
	for i, v := range s.values {
		res[n-1-i] = v
	}
	return Adopt(res)
}

// Concat returns s followed by each of others, in argument order.
// The result is built with exactly one allocation.
func (s Seq[T]) Concat(others ...Seq[T]) Seq[T] {
	total := len(s.values)
	for _, o := range others {
		total += len(o.values)
	}
	if total == 0 {
		return Seq[T]{}
	}

	res := make([]T, total)
	p := copy(res, s.values)
	for _, o := range others {
		p += copy(res[p:], o.values)
	}
	return Adopt(res)
}

// Map applies transform to each element of s.
func Map[T, R any](s Seq[T], transform func(T) R) Seq[R] {
	if len(s.values) == 0 {
		return Seq[R]{}
	}
	// BCE hint: avoid bounds check in loop
	_ = s.values[len(s.values)-1]

	res := make([]R, len(s.values))
	for i, v := range s.values {
		res[i] = transform(v)
	}
	return Adopt(res)
}

// FilterMap applies transform to each element and keeps the results
// reported as present.
func FilterMap[T, R any](s Seq[T], transform func(T) (R, bool)) Seq[R] {
	res := make([]R, 0, len(s.values))
	for _, v := range s.values {
		if r, ok := transform(v); ok {
			res = append(res, r)
		}
	}
	return Adopt(res)
}

// Distinct returns the first occurrence of every element, keeping their order.
// It maintains a map of seen elements, so memory usage is proportional to the number of unique elements.
func Distinct[T comparable](s Seq[T]) Seq[T] {
	return DistinctBy(s, func(v T) T { return v })
}

// DistinctBy is like Distinct, but two elements are duplicates when key
// returns the same value for both.
func DistinctBy[T any, K comparable](s Seq[T], key func(T) K) Seq[T] {
	if len(s.values) == 0 {
		return Seq[T]{}
	}
	seen := make(map[K]struct{}, len(s.values))
	res := make([]T, 0, len(s.values))
	for _, v := range s.values {
		k := key(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		res = append(res, v)
	}
	return Adopt(res)
}

// Join concatenates nested sequences into one.
func Join[T any](nested Seq[Seq[T]]) Seq[T] {
	if len(nested.values) == 0 {
		return Seq[T]{}
	}
	return nested.values[0].Concat(nested.values[1:]...)
}
