package seqs_test

import (
	"errors"
	"hash/maphash"
	"slices"
	"testing"

	"fixseq/seqs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfCopiesInput(t *testing.T) {
	input := []string{"a", "b", "c"}
	s := seqs.FromSlice(input)
	input[0] = "z"

	v, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	out := s.ToSlice()
	out[1] = "z"
	v, _ = s.At(1)
	assert.Equal(t, "b", v, "ToSlice must return a copy")
}

func TestAdoptSharesBuffer(t *testing.T) {
	buf := []int{1, 2, 3}
	s := seqs.Adopt(buf)
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, []int{1, 2, 3}, s.ToSlice())
}

func TestFromSeq(t *testing.T) {
	s := seqs.FromSeq(slices.Values([]int{4, 5, 6}))
	assert.Equal(t, []int{4, 5, 6}, s.ToSlice())

	assert.True(t, seqs.FromSeq[int](nil).IsEmpty())
}

func TestEmpty(t *testing.T) {
	e := seqs.Empty[string]()
	assert.True(t, e.IsEmpty())
	assert.Equal(t, 0, e.Size())
	assert.True(t, seqs.Equal(e, seqs.Of[string]()))
	assert.Equal(t, "[]", e.String())

	var zero seqs.Seq[int]
	assert.True(t, zero.IsEmpty())
}

func TestAt(t *testing.T) {
	s := seqs.Of(10, 20, 30)

	tests := []struct {
		name    string
		index   int
		want    int
		wantErr bool
	}{
		{"First", 0, 10, false},
		{"Last", 2, 30, false},
		{"Negative", -1, 0, true},
		{"PastEnd", 3, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.At(tt.index)
			if tt.wantErr {
				assert.True(t, errors.Is(err, seqs.ErrIndexOutOfRange), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeadLast(t *testing.T) {
	s := seqs.Of("java", "scala", "perl")

	head, err := s.Head()
	require.NoError(t, err)
	assert.Equal(t, "java", head)

	last, err := s.Last()
	require.NoError(t, err)
	assert.Equal(t, "perl", last)

	_, err = seqs.Empty[string]().Head()
	assert.ErrorIs(t, err, seqs.ErrNoSuchElement)
	_, err = seqs.Empty[string]().Last()
	assert.ErrorIs(t, err, seqs.ErrNoSuchElement)
}

func TestIterators(t *testing.T) {
	s := seqs.Of(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(s.Values()))

	var idx []int
	for i, v := range s.All() {
		idx = append(idx, i*10+v)
	}
	assert.Equal(t, []int{1, 12, 23}, idx)

	var back []int
	for _, v := range s.Backward() {
		back = append(back, v)
	}
	assert.Equal(t, []int{3, 2, 1}, back)
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1 2 3]", seqs.Of(1, 2, 3).String())
	assert.Equal(t, "[a b]", seqs.Of("a", "b").String())
}

func TestEqualAndHash(t *testing.T) {
	seed := maphash.MakeSeed()
	a := seqs.Of("x", "y", "z")
	b := seqs.FromSlice([]string{"x", "y", "z"})
	c := seqs.Of("z", "y", "x")

	assert.True(t, seqs.Equal(a, b))
	assert.Equal(t, seqs.Hash(seed, a), seqs.Hash(seed, b))

	assert.False(t, seqs.Equal(a, c))
	assert.NotEqual(t, seqs.Hash(seed, a), seqs.Hash(seed, c), "hash must be order-sensitive")

	assert.False(t, seqs.Equal(a, a.Take(2)))
	assert.True(t, seqs.EqualFunc(seqs.Of(1, 2), seqs.Of(11, 12), func(x, y int) bool {
		return x%10 == y%10
	}))
}
