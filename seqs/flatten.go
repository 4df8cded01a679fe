package seqs

import (
	"io"
	"iter"

	"github.com/go-softwarelab/common/pkg/optional"
)

type nestedKind uint8

const (
	kindElem nestedKind = iota
	kindInner
	kindCollection
	kindLazy
	kindMaybe
)

// Nested is one item of a heterogeneous sequence passed to [Flatten].
// Build it with [Elem], [Inner], [Collection], [Lazy], [LazyCloser] or [Maybe].
type Nested[T any] struct {
	kind       nestedKind
	elem       T
	inner      Seq[T]
	collection []T
	lazy       iter.Seq[T]
	closer     io.Closer
	maybe      optional.Value[T]
}

// Elem wraps a single element.
func Elem[T any](v T) Nested[T] {
	return Nested[T]{kind: kindElem, elem: v}
}

// Inner wraps a nested Seq whose elements are spliced in order.
func Inner[T any](s Seq[T]) Nested[T] {
	return Nested[T]{kind: kindInner, inner: s}
}

// Collection wraps a slice whose elements are spliced in order.
// The slice is read during Flatten, not when Collection is called.
func Collection[T any](values []T) Nested[T] {
	return Nested[T]{kind: kindCollection, collection: values}
}

// Lazy wraps an iterator that Flatten drains completely and then stops.
func Lazy[T any](it iter.Seq[T]) Nested[T] {
	return Nested[T]{kind: kindLazy, lazy: it}
}

// LazyCloser is like Lazy, and also closes c once the iterator is drained.
func LazyCloser[T any](it iter.Seq[T], c io.Closer) Nested[T] {
	return Nested[T]{kind: kindLazy, lazy: it, closer: c}
}

// Maybe wraps an optional value that contributes zero or one element.
func Maybe[T any](v optional.Value[T]) Nested[T] {
	return Nested[T]{kind: kindMaybe, maybe: v}
}

// size returns a capacity hint; lazy sources are unknown until drained.
func (n Nested[T]) size() int {
	switch n.kind {
	case kindInner:
		return n.inner.Size()
	case kindCollection:
		return len(n.collection)
	case kindLazy, kindMaybe:
		return 0
	default:
		return 1
	}
}

func (n Nested[T]) appendTo(dst []T) ([]T, error) {
	switch n.kind {
	case kindInner:
		return append(dst, n.inner.values...), nil
	case kindCollection:
		return append(dst, n.collection...), nil
	case kindLazy:
		return n.drain(dst)
	case kindMaybe:
		if n.maybe.IsEmpty() {
			return dst, nil
		}
		return append(dst, n.maybe.OrZeroValue()), nil
	default:
		return append(dst, n.elem), nil
	}
}

func (n Nested[T]) drain(dst []T) ([]T, error) {
	if n.lazy != nil {
		next, stop := iter.Pull(n.lazy)
		for {
			v, ok := next()
			if !ok {
				break
			}
			dst = append(dst, v)
		}
		stop()
	}
	if n.closer != nil {
		if err := n.closer.Close(); err != nil {
			return dst, err
		}
	}
	return dst, nil
}

// Flatten collapses one level of nesting into a flat Seq, keeping order.
// It panics if closing a LazyCloser source fails; use [TryFlatten] to get
// the error instead.
func Flatten[T any](s Seq[Nested[T]]) Seq[T] {
	res, err := TryFlatten(s)
	if err != nil {
		panic(err)
	}
	return res
}

// TryFlatten is Flatten that reports the first error returned by a closer.
// Every source is still drained and closed when one of them fails.
func TryFlatten[T any](s Seq[Nested[T]]) (Seq[T], error) {
	capacity := 0
	for _, n := range s.values {
		capacity += n.size()
	}
	res := make([]T, 0, capacity)

	var firstErr error
	for _, n := range s.values {
		var err error
		res, err = n.appendTo(res)
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return Seq[T]{}, firstErr
	}
	return Adopt(res), nil
}

// FlatMap flattens s and applies transform to every resulting element.
func FlatMap[T, R any](s Seq[Nested[T]], transform func(T) R) Seq[R] {
	return Map(Flatten(s), transform)
}
