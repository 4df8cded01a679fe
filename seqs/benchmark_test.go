package seqs_test

import (
	"slices"
	"testing"

	"fixseq/seqs"
)

func benchInput(b *testing.B, size int) seqs.Int64Seq {
	b.Helper()
	s, err := seqs.RandomInts[int64](size, -1_000_000, 1_000_000)
	if err != nil {
		b.Fatal(err)
	}
	return s
}

// BenchmarkSort compares the partition sort with the standard library sort.
func BenchmarkSort(b *testing.B) {
	for _, size := range []int{100, 10_000, 100_000} {
		input := benchInput(b, size)

		b.Run("SortWith/"+sizeName(size), func(b *testing.B) {
			for b.Loop() {
				_ = input.SortWith(seqs.Int64Ascending)
			}
		})

		b.Run("Sort/"+sizeName(size), func(b *testing.B) {
			for b.Loop() {
				_ = input.Sort()
			}
		})

		b.Run("SlicesSort/"+sizeName(size), func(b *testing.B) {
			for b.Loop() {
				buf := input.ToSlice()
				slices.Sort(buf)
			}
		})
	}
}

func BenchmarkConcat(b *testing.B) {
	parts := make([]seqs.Int64Seq, 16)
	for i := range parts {
		parts[i] = benchInput(b, 4096)
	}
	head, rest := parts[0], parts[1:]

	for b.Loop() {
		_ = head.Concat(rest...)
	}
}

func BenchmarkDistinct(b *testing.B) {
	input, err := seqs.RandomInts[int64](100_000, 0, 1000)
	if err != nil {
		b.Fatal(err)
	}

	b.Run("Numeric", func(b *testing.B) {
		for b.Loop() {
			_ = input.Distinct()
		}
	})

	b.Run("Boxed", func(b *testing.B) {
		boxed := input.Boxed()
		for b.Loop() {
			_ = seqs.Distinct(boxed)
		}
	})
}

func BenchmarkFilterMap(b *testing.B) {
	input := benchInput(b, 1_000_000)
	even := func(v int64) bool { return v%2 == 0 }
	double := func(v int64) int64 { return v * 2 }

	for b.Loop() {
		_ = input.Filter(even).Map(double).Sum()
	}
}

func sizeName(n int) string {
	switch {
	case n >= 1_000_000:
		return "1M"
	case n >= 100_000:
		return "100K"
	case n >= 10_000:
		return "10K"
	default:
		return "100"
	}
}
