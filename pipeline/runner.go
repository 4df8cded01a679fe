package pipeline

import (
	"strings"
	"time"

	"fixseq/seqs"

	"github.com/go-softwarelab/common/pkg/optional"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Result is the output of a pipeline together with its aggregates.
// Head, Min and Max are empty when Output is empty.
type Result[N seqs.Number] struct {
	Output  seqs.Numeric[N]
	Sum     N
	Product N
	Average float64
	Head    optional.Value[N]
	Min     optional.Value[N]
	Max     optional.Value[N]
}

// Runner applies steps to numeric sequences.
type Runner struct {
	logger *zap.Logger
}

type Option func(*Runner)

// WithLogger sets the logger used for per-step debug entries.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewRunner(opts ...Option) *Runner {
	r := &Runner{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run applies steps to input in order and summarizes the final sequence.
// input itself is never modified.
func Run[N seqs.Number](r *Runner, input seqs.Numeric[N], steps []Step) (Result[N], error) {
	start := time.Now()
	cur := input
	for i, step := range steps {
		next, err := apply(cur, step)
		if err != nil {
			r.logger.Debug("step failed", zap.Int("index", i), zap.Stringer("step", step), zap.Error(err))
			return Result[N]{}, errors.Wrapf(err, "step %d", i+1)
		}
		r.logger.Debug("step applied",
			zap.Int("index", i),
			zap.Stringer("step", step),
			zap.Int("in", cur.Size()),
			zap.Int("out", next.Size()),
		)
		cur = next
	}

	res := summarize(cur)
	r.logger.Debug("pipeline finished",
		zap.Int("steps", len(steps)),
		zap.Int("size", cur.Size()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}

func summarize[N seqs.Number](s seqs.Numeric[N]) Result[N] {
	res := Result[N]{
		Output:  s,
		Sum:     s.Sum(),
		Product: s.Product(),
		Average: s.Average(),
	}
	if v, ok := s.Head(); ok {
		res.Head = optional.Of(v)
	}
	if v, ok := s.Min(); ok {
		res.Min = optional.Of(v)
	}
	if v, ok := s.Max(); ok {
		res.Max = optional.Of(v)
	}
	return res
}

func apply[N seqs.Number](s seqs.Numeric[N], step Step) (seqs.Numeric[N], error) {
	if err := step.validate(); err != nil {
		return s, err
	}

	switch step.Op {
	case "sort":
		return s.SortWith(seqs.NumbersAscending[N]()), nil
	case "sort-desc":
		return s.SortWith(seqs.NumbersDescending[N]()), nil
	case "distinct":
		return s.Distinct(), nil
	case "reverse":
		return s.Reverse(), nil
	case "tail":
		return s.Tail(), nil
	case "neg":
		return s.Map(func(v N) N { return -v }), nil
	case "take", "drop":
		n, err := parseCount(step.Op, step.Arg)
		if err != nil {
			return s, err
		}
		if step.Op == "take" {
			return s.Take(n), nil
		}
		return s.Drop(n), nil
	case "slice":
		return applySlice(s, step.Arg)
	case "concat":
		tail, err := ParseNumbers[N](strings.Split(step.Arg, ","))
		if err != nil {
			return s, errors.WithMessage(err, step.Op)
		}
		return s.Concat(tail), nil
	}

	x, err := parseNumber[N](step.Arg)
	if err != nil {
		return s, errors.WithMessage(err, step.Op)
	}
	switch step.Op {
	case "gt":
		return s.Filter(func(v N) bool { return v > x }), nil
	case "lt":
		return s.Filter(func(v N) bool { return v < x }), nil
	case "eq":
		return s.Filter(func(v N) bool { return v == x }), nil
	case "take-while-lt":
		return s.TakeWhile(func(v N) bool { return v < x }), nil
	case "drop-while-lt":
		return s.DropWhile(func(v N) bool { return v < x }), nil
	case "add":
		return s.Map(func(v N) N { return v + x }), nil
	case "mul":
		return s.Map(func(v N) N { return v * x }), nil
	}
	return s, errors.Wrapf(ErrUnknownOp, "%q", step.Op)
}

func applySlice[N seqs.Number](s seqs.Numeric[N], arg string) (seqs.Numeric[N], error) {
	fromText, toText, ok := strings.Cut(arg, ":")
	if !ok {
		return s, errors.Wrapf(ErrBadArgument, "slice: want FROM:TO, got %q", arg)
	}
	from, err := parseCount("slice", fromText)
	if err != nil {
		return s, err
	}
	to, err := parseCount("slice", toText)
	if err != nil {
		return s, err
	}
	res, err := s.Slice(from, to)
	if err != nil {
		return s, errors.Wrapf(ErrBadArgument, "slice: %v", err)
	}
	return res, nil
}
