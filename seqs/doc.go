/*
Package seqs provides immutable, fixed-length sequences.

A [Seq] holds elements of any type; [Numeric] is its unboxed specialization for
numbers, exposed as [Int32Seq], [Int64Seq] and [Float64Seq]. Both are values:
once built they never change, so they can be shared freely between goroutines.

It includes:

  - **Construction**: [Of], [FromSlice], [FromSeq], [Adopt], [Empty], and for numbers
    [Int32s], [Int64s], [Float64s], [Generate], [Range], [RangeStep], [RandomInts].
  - **Functional Transformations**: [Map], [Seq.Filter], [Distinct], [Seq.Reverse],
    [Seq.Concat], [Flatten], [FlatMap], [Seq.Fold], [Seq.Reduce].
  - **Slicing**: [Seq.Slice], [Seq.Tail], [Seq.Take], [Seq.Drop], [Seq.TakeWhile],
    [Seq.DropWhile]. Slicing is lenient: bounds past the end are clamped.
  - **Sorting**: [Sort] for the natural order and [Seq.SortWith] for any [Ordering].

# Ownership

Constructors copy their input. [Adopt] and [AdoptNumbers] take ownership of a
buffer instead, for callers that have just allocated it and will not touch it
again.

	buf := make([]int, n)
	fill(buf)
	s := seqs.Adopt(buf) // buf must not be used afterwards

# Error Handling

Generic sequences report misuse with errors: [ErrIndexOutOfRange] from [Seq.At],
[ErrNoSuchElement] from [Seq.Head], [Seq.Last] and [Seq.Reduce] on an empty
sequence, [ErrInvalidArgument] from generators given an empty range. Numeric
sequences report the absence of a result (Head, Last, Reduce, Max, Min on an
empty sequence) with a false flag instead.

# Sorting

[Seq.SortWith] uses a first-element-pivot partition sort. It places
equivalent elements deterministically but does not promise stability, and it
is quadratic on input already ordered by the given [Ordering]. Use [Sort] when
the natural order is enough.
*/
package seqs
