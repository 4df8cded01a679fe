package seqs

import (
	"fmt"
	"hash/maphash"
	"reflect"
	"slices"
)

// ToSet returns the distinct elements of s as a set.
func ToSet[T comparable](s Seq[T]) map[T]struct{} {
	set := make(map[T]struct{}, len(s.values))
	for _, v := range s.values {
		set[v] = struct{}{}
	}
	return set
}

// ToMapWithKey maps every element, used as key, to gen(element).
// Later elements win over earlier ones with the same key.
func ToMapWithKey[T comparable, V any](s Seq[T], gen func(T) V) map[T]V {
	m := make(map[T]V, len(s.values))
	for _, v := range s.values {
		m[v] = gen(v)
	}
	return m
}

// ToMapWithValue maps gen(element) to the element.
// Later elements win over earlier ones with the same key.
func ToMapWithValue[T any, K comparable](s Seq[T], gen func(T) K) map[K]T {
	m := make(map[K]T, len(s.values))
	for _, v := range s.values {
		m[gen(v)] = v
	}
	return m
}

// ToStrings formats every element with fmt.Sprint. Nil elements
// (nil interfaces, pointers, maps, slices, channels or funcs) become nilValue.
func (s Seq[T]) ToStrings(nilValue string) []string {
	res := make([]string, len(s.values))
	for i, v := range s.values {
		if isNil(v) {
			res[i] = nilValue
			continue
		}
		res[i] = fmt.Sprint(v)
	}
	return res
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Equal reports whether a and b have the same length and equal elements in order.
func Equal[T comparable](a, b Seq[T]) bool {
	return slices.Equal(a.values, b.values)
}

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[T any](a, b Seq[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.values, b.values, eq)
}

// Hash returns an order-sensitive hash of the elements of s.
// Sequences that are Equal hash to the same value for the same seed.
// NaN elements have no stable hash; use Numeric.Hash for floats.
func Hash[T comparable](seed maphash.Seed, s Seq[T]) uint64 {
	h := uint64(1)
	for _, v := range s.values {
		h = 31*h + maphash.Comparable(seed, v)
	}
	return 31*h + uint64(len(s.values))
}
