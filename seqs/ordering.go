package seqs

import "cmp"

// Ordering is a three-way comparison: negative when a sorts before b,
// zero when they are equivalent, positive when a sorts after b.
type Ordering[T any] func(a, b T) int

func (o Ordering[T]) Compare(a, b T) int {
	return o(a, b)
}

// Gt reports whether a sorts after b.
func (o Ordering[T]) Gt(a, b T) bool {
	return o(a, b) > 0
}

// Eq reports whether a and b are equivalent.
func (o Ordering[T]) Eq(a, b T) bool {
	return o(a, b) == 0
}

// Lt reports whether a sorts before b.
func (o Ordering[T]) Lt(a, b T) bool {
	return o(a, b) < 0
}

// Reversed returns the opposite ordering.
func (o Ordering[T]) Reversed() Ordering[T] {
	return func(a, b T) int {
		return o(b, a)
	}
}

// Ascending returns the natural ordering of T. For floats it follows
// cmp.Compare and puts NaNs first; see NumbersAscending for NaNs last.
func Ascending[T cmp.Ordered]() Ordering[T] {
	return cmp.Compare[T]
}

// Descending returns the reverse of the natural ordering of T.
func Descending[T cmp.Ordered]() Ordering[T] {
	return func(a, b T) int {
		return cmp.Compare(b, a)
	}
}

// NumbersAscending orders numbers from smallest to largest. NaNs are
// equivalent to each other and sort after every other value.
func NumbersAscending[N Number]() Ordering[N] {
	return func(a, b N) int {
		if c, ok := compareNaN(a, b); ok {
			return c
		}
		return cmp.Compare(a, b)
	}
}

// NumbersDescending orders numbers from largest to smallest. NaNs still
// sort after every other value.
func NumbersDescending[N Number]() Ordering[N] {
	return func(a, b N) int {
		if c, ok := compareNaN(a, b); ok {
			return c
		}
		return cmp.Compare(b, a)
	}
}

func compareNaN[N Number](a, b N) (int, bool) {
	aNaN, bNaN := a != a, b != b
	switch {
	case aNaN && bNaN:
		return 0, true
	case aNaN:
		return 1, true
	case bNaN:
		return -1, true
	}
	return 0, false
}

var (
	Int32Ascending    = Ascending[int32]()
	Int32Descending   = Descending[int32]()
	Int64Ascending    = Ascending[int64]()
	Int64Descending   = Descending[int64]()
	Float64Ascending  = NumbersAscending[float64]()
	Float64Descending = NumbersDescending[float64]()
	StringAscending   = Ascending[string]()
	StringDescending  = Descending[string]()
)
