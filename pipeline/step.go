package pipeline

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Step is one operation of a pipeline. Arg holds the raw operand text,
// for example "3" for take:3 or "1:4" for slice:1:4.
type Step struct {
	Op  string
	Arg string
}

type opSpec struct {
	needsArg bool
}

var ops = map[string]opSpec{
	"sort":          {},
	"sort-desc":     {},
	"distinct":      {},
	"reverse":       {},
	"tail":          {},
	"neg":           {},
	"take":          {needsArg: true},
	"drop":          {needsArg: true},
	"slice":         {needsArg: true},
	"gt":            {needsArg: true},
	"lt":            {needsArg: true},
	"eq":            {needsArg: true},
	"take-while-lt": {needsArg: true},
	"drop-while-lt": {needsArg: true},
	"add":           {needsArg: true},
	"mul":           {needsArg: true},
	"concat":        {needsArg: true},
}

// ParseStep parses the "op" or "op:arg" form used on the command line.
func ParseStep(s string) (Step, error) {
	op, arg, _ := strings.Cut(strings.TrimSpace(s), ":")
	step := Step{Op: op, Arg: arg}
	return step, step.validate()
}

// ParseSteps parses every element of specs with ParseStep.
func ParseSteps(specs []string) ([]Step, error) {
	steps := make([]Step, 0, len(specs))
	for _, spec := range specs {
		step, err := ParseStep(spec)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func (s Step) String() string {
	if s.Arg == "" {
		return s.Op
	}
	return s.Op + ":" + s.Arg
}

func (s Step) validate() error {
	spec, ok := ops[s.Op]
	if !ok {
		return errors.Wrapf(ErrUnknownOp, "%q", s.Op)
	}
	switch {
	case spec.needsArg && s.Arg == "":
		return errors.Wrapf(ErrBadArgument, "%s: missing argument", s.Op)
	case !spec.needsArg && s.Arg != "":
		return errors.Wrapf(ErrBadArgument, "%s: takes no argument, got %q", s.Op, s.Arg)
	}
	return nil
}

// UnmarshalYAML accepts either the compact "op:arg" scalar or a mapping
// with op and arg keys.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		step, err := ParseStep(node.Value)
		if err != nil {
			return errors.Wrapf(err, "line %d", node.Line)
		}
		*s = step
		return nil
	case yaml.MappingNode:
		var raw struct {
			Op  string  `yaml:"op"`
			Arg Literal `yaml:"arg"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		*s = Step{Op: raw.Op, Arg: string(raw.Arg)}
		return errors.Wrapf(s.validate(), "line %d", node.Line)
	default:
		return errors.Wrapf(ErrBadArgument, "line %d: step must be a string or a mapping", node.Line)
	}
}

// MarshalYAML writes the compact form.
func (s Step) MarshalYAML() (any, error) {
	return s.String(), nil
}

// Literal is a scalar kept in its source text, so that YAML numbers
// such as 3, -1.5 or 9007199254740993 reach the number parser unchanged.
type Literal string

func (l *Literal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.Wrapf(ErrBadArgument, "line %d: expected a scalar", node.Line)
	}
	*l = Literal(node.Value)
	return nil
}
