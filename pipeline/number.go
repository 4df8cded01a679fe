package pipeline

import (
	"strings"

	"fixseq/seqs"

	"github.com/go-softwarelab/common/pkg/to"
	"github.com/pkg/errors"
)

// parseNumber parses s as an N. Integer kinds other than int32 go through
// int64 and are converted without a range check.
func parseNumber[N seqs.Number](s string) (N, error) {
	s = strings.TrimSpace(s)
	var (
		res N
		err error
	)
	switch any(res).(type) {
	case int32:
		var v int32
		v, err = to.Int32FromString(s)
		res = N(v)
	case float32:
		var v float32
		v, err = to.Float32FromString(s)
		res = N(v)
	case float64:
		var v float64
		v, err = to.Float64FromString(s)
		res = N(v)
	default:
		var v int64
		v, err = to.Int64FromString(s)
		res = N(v)
	}
	if err != nil {
		return 0, errors.Wrapf(ErrBadArgument, "%v", err)
	}
	return res, nil
}

// ParseNumbers parses every literal into a Numeric of kind N.
func ParseNumbers[N seqs.Number](literals []string) (seqs.Numeric[N], error) {
	buf := make([]N, 0, len(literals))
	for _, l := range literals {
		v, err := parseNumber[N](l)
		if err != nil {
			return seqs.Numeric[N]{}, err
		}
		buf = append(buf, v)
	}
	return seqs.AdoptNumbers(buf), nil
}

// SplitLiterals splits text on whitespace and commas.
func SplitLiterals(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

func parseCount(op, s string) (int, error) {
	n, err := to.IntFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrBadArgument, "%s: %v", op, err)
	}
	return n, nil
}
