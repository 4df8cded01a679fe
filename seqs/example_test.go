package seqs_test

import (
	"fmt"
	"slices"

	"fixseq/seqs"

	"github.com/go-softwarelab/common/pkg/optional"
)

func ExampleSeq_SortWith() {
	s := seqs.Of(134, -53, 343, 8, 3, -1)

	// Sort with an explicit ordering
	sorted := s.SortWith(seqs.Descending[int]())

	fmt.Println(sorted)
	fmt.Println(s)

	// Output:
	// [343 134 8 3 -1 -53]
	// [134 -53 343 8 3 -1]
}

func ExampleSeq_Slice() {
	s := seqs.Of("a", "b", "c", "d")

	// Both bounds are inclusive, the upper one is clamped
	middle, _ := s.Slice(1, 2)
	rest, _ := s.Slice(2, 100)

	fmt.Println(middle, rest)

	// Output:
	// [b c] [c d]
}

func ExampleSeq_Fold() {
	s := seqs.Of("A", "C", "E")

	fmt.Println(s.Fold("F", func(acc, v string) string { return acc + v }))

	// Output:
	// FACE
}

func ExampleDistinct() {
	s := seqs.Of(8, 3, 2, 12, 3, 8, 18)

	fmt.Println(seqs.Distinct(s))

	// Output:
	// [8 3 2 12 18]
}

func ExampleFlatten() {
	nested := seqs.Of(
		seqs.Elem(1),
		seqs.Inner(seqs.Of(2, 3)),
		seqs.Lazy(slices.Values([]int{4, 5})),
		seqs.Maybe(optional.Empty[int]()),
		seqs.Maybe(optional.Of(6)),
	)

	fmt.Println(seqs.Flatten(nested))

	// Output:
	// [1 2 3 4 5 6]
}

func ExampleRange() {
	r, _ := seqs.Range[int64](2, 6)
	fmt.Println(r, r.Sum(), r.Product())

	down, _ := seqs.RangeStep[int32](10, 0, -4)
	fmt.Println(down)

	// Output:
	// [2 3 4 5 6] 20 720
	// [10 6 2]
}

func ExampleNumeric_Average() {
	prices := seqs.Float64s(14.59, 24.80, 34.88, -1.34, 1.92, 29.95)
	tail := prices.Drop(3)

	fmt.Println(tail)
	fmt.Printf("%.2f\n", tail.Average())

	// Output:
	// [-1.34 1.92 29.95]
	// 10.18
}
