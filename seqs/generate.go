package seqs

import (
	"math"
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// Generate returns size values produced by successive calls to supplier.
func Generate[N Number](size int, supplier func() N) (Numeric[N], error) {
	if size < 0 {
		return Numeric[N]{}, argumentError("negative size %d", size)
	}
	a := make([]N, size)
	for i := range a {
		a[i] = supplier()
	}
	return AdoptNumbers(a), nil
}

// Range returns start, start+1, ..., end. Both bounds are inclusive.
// Returns ErrInvalidArgument if end < start.
func Range[N constraints.Integer](start, end N) (Numeric[N], error) {
	if end < start {
		return Numeric[N]{}, argumentError("illegal range: %d to %d", start, end)
	}
	return RangeStep(start, end, 1)
}

// RangeStep returns start, start+step, ... up to and including end when it
// is reached exactly. A negative step counts down.
// Returns ErrInvalidArgument if step is 0, the range holds no value, or it
// holds more than math.MaxInt32 values.
func RangeStep[N constraints.Integer](start, end, step N) (Numeric[N], error) {
	// Spans are measured on uint64 so that no integer type can overflow.
	var span, mag uint64
	switch {
	case step > 0 && start <= end:
		span, mag = uint64(end)-uint64(start), uint64(step)
	case step < 0 && start >= end:
		span, mag = uint64(start)-uint64(end), -uint64(step)
	default:
		return Numeric[N]{}, argumentError("illegal range: %d to %d step %d", start, end, step)
	}
	count := span / mag
	if count >= math.MaxInt32 {
		return Numeric[N]{}, argumentError("range %d to %d step %d holds more than %d values", start, end, step, math.MaxInt32)
	}

	a := make([]N, int(count)+1)
	for i := range a {
		// Wraps in N, but the true value always lies between start and end.
		a[i] = start + N(i)*step
	}
	return AdoptNumbers(a), nil
}

// RandomInts returns size values drawn uniformly from [min, max].
// It is not suitable for security-sensitive work; use Generate with a
// crypto/rand supplier instead.
func RandomInts[N constraints.Integer](size int, min, max N) (Numeric[N], error) {
	if max < min {
		return Numeric[N]{}, argumentError("illegal bounds: %d to %d", min, max)
	}
	// Modular arithmetic on uint64 gives the exact span for every integer type.
	span := uint64(max) - uint64(min) + 1
	return Generate(size, func() N {
		if span == 0 {
			return N(rand.Uint64())
		}
		return min + N(rand.Uint64N(span))
	})
}

// RandomFloats returns size values drawn uniformly from [min, max]. Both
// bounds are inclusive.
// It is not suitable for security-sensitive work.
func RandomFloats[N constraints.Float](size int, min, max N) (Numeric[N], error) {
	if max < min {
		return Numeric[N]{}, argumentError("illegal bounds: %v to %v", min, max)
	}
	return Generate(size, func() N {
		// u takes every multiple of 2^-53 in [0, 1], both ends included.
		u := float64(rand.Uint64N(1<<53+1)) / (1 << 53)
		v := min*N(1-u) + max*N(u)
		if v < min {
			return min
		}
		if v > max {
			return max
		}
		return v
	})
}
