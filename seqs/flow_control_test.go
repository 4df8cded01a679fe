package seqs_test

import (
	"strings"
	"testing"

	"fixseq/seqs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlice(t *testing.T) {
	s := seqs.Of(0, 1, 2, 3, 4)

	tests := []struct {
		name     string
		from, to int
		want     []int
	}{
		{"Middle", 1, 3, []int{1, 2, 3}},
		{"Single", 2, 2, []int{2}},
		{"ClampTo", 3, 100, []int{3, 4}},
		{"Whole", 0, 4, []int{0, 1, 2, 3, 4}},
		{"FromAtEnd", 5, 10, []int{}},
		{"FromPastEnd", 50, 60, []int{}},
		{"ToBeforeFrom", 3, 1, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Slice(tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ToSlice())
		})
	}

	t.Run("NegativeFrom", func(t *testing.T) {
		_, err := s.Slice(-1, 2)
		assert.ErrorIs(t, err, seqs.ErrIndexOutOfRange)
	})

	t.Run("Empty", func(t *testing.T) {
		got, err := seqs.Empty[int]().Slice(0, 0)
		require.NoError(t, err)
		assert.True(t, got.IsEmpty())
	})
}

func TestTailTakeDrop(t *testing.T) {
	s := seqs.Of("a", "b", "c", "d")

	assert.Equal(t, []string{"b", "c", "d"}, s.Tail().ToSlice())
	assert.True(t, seqs.Of("a").Tail().IsEmpty())
	assert.True(t, seqs.Empty[string]().Tail().IsEmpty())

	assert.Equal(t, []string{"a", "b"}, s.Take(2).ToSlice())
	assert.Equal(t, s.ToSlice(), s.Take(10).ToSlice())
	assert.True(t, s.Take(0).IsEmpty())
	assert.True(t, s.Take(-3).IsEmpty())

	assert.Equal(t, []string{"c", "d"}, s.Drop(2).ToSlice())
	assert.True(t, s.Drop(4).IsEmpty())
	assert.True(t, s.Drop(8).IsEmpty())
	assert.Equal(t, s.ToSlice(), s.Drop(0).ToSlice())
	assert.Equal(t, s.ToSlice(), s.Drop(-1).ToSlice())
}

func TestTakeWhileDropWhile(t *testing.T) {
	langs := seqs.Of("java", "scala", "perl", "ruby", "python")

	assert.Equal(t, []string{"java", "scala"}, langs.TakeWhile(func(x string) bool { return x != "perl" }).ToSlice())
	assert.Equal(t, []string{"java"}, langs.TakeWhile(func(x string) bool { return x != "scala" }).ToSlice())
	assert.True(t, langs.TakeWhile(func(x string) bool { return x == "perl" }).IsEmpty())
	assert.Equal(t, langs.ToSlice(), langs.TakeWhile(func(string) bool { return true }).ToSlice())

	words := seqs.Of("aaa", "aab", "aac", "aba", "abb")
	assert.Equal(t, []string{"aba", "abb"}, words.DropWhile(func(x string) bool { return strings.HasPrefix(x, "aa") }).ToSlice())
	assert.Equal(t, words.ToSlice(), words.DropWhile(func(x string) bool { return strings.HasPrefix(x, "xx") }).ToSlice())
	assert.True(t, words.DropWhile(func(x string) bool { return strings.HasPrefix(x, "a") }).IsEmpty())
}

func TestSliceNeverMutatesReceiver(t *testing.T) {
	s := seqs.Of(1, 2, 3)
	_ = s.Tail()
	_ = s.Drop(1)
	_, _ = s.Slice(0, 1)
	assert.Equal(t, []int{1, 2, 3}, s.ToSlice())
}
