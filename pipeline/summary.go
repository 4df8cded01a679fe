package pipeline

import (
	"fmt"
	"io"
	"strings"

	"fixseq/seqs"

	"github.com/go-softwarelab/common/pkg/optional"
	"github.com/go-softwarelab/common/pkg/to"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Summary is a kind-independent, printable form of a Result.
type Summary struct {
	Kind    Kind     `yaml:"kind"`
	Values  []string `yaml:"values"`
	Size    int      `yaml:"size"`
	Sum     string   `yaml:"sum"`
	Product string   `yaml:"product"`
	Average string   `yaml:"average"`
	Head    string   `yaml:"head,omitempty"`
	Min     string   `yaml:"min,omitempty"`
	Max     string   `yaml:"max,omitempty"`
}

// RunKind parses the config input and runs its steps for the configured kind.
func (r *Runner) RunKind(cfg *Config) (Summary, error) {
	return r.RunLiterals(cfg.Kind, cfg.Inputs(), cfg.Steps)
}

// RunLiterals parses literals as numbers of the given kind and runs steps on them.
func (r *Runner) RunLiterals(kind Kind, literals []string, steps []Step) (Summary, error) {
	switch kind {
	case KindInt32:
		return runLiterals[int32](r, kind, literals, steps)
	case KindInt64, "":
		return runLiterals[int64](r, KindInt64, literals, steps)
	case KindFloat64:
		return runLiterals[float64](r, kind, literals, steps)
	}
	return Summary{}, errors.Wrapf(ErrUnknownKind, "%q", kind)
}

func runLiterals[N seqs.Number](r *Runner, kind Kind, literals []string, steps []Step) (Summary, error) {
	input, err := ParseNumbers[N](literals)
	if err != nil {
		return Summary{}, errors.WithMessage(err, "input")
	}
	res, err := Run(r, input, steps)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(kind, res), nil
}

// Summarize formats res.
func Summarize[N seqs.Number](kind Kind, res Result[N]) Summary {
	values := make([]string, 0, res.Output.Size())
	for v := range res.Output.Values() {
		values = append(values, to.String(v))
	}
	return Summary{
		Kind:    kind,
		Values:  values,
		Size:    res.Output.Size(),
		Sum:     to.String(res.Sum),
		Product: to.String(res.Product),
		Average: to.String(res.Average),
		Head:    formatOptional(res.Head),
		Min:     formatOptional(res.Min),
		Max:     formatOptional(res.Max),
	}
}

func formatOptional[N seqs.Number](v optional.Value[N]) string {
	if v.IsEmpty() {
		return ""
	}
	return to.String(v.MustGet())
}

// WriteText writes s as aligned "name: value" lines.
func (s Summary) WriteText(w io.Writer) error {
	lines := [][2]string{
		{"kind", string(s.Kind)},
		{"values", "[" + strings.Join(s.Values, " ") + "]"},
		{"size", to.String(s.Size)},
		{"sum", s.Sum},
		{"product", s.Product},
		{"average", s.Average},
		{"head", orNone(s.Head)},
		{"min", orNone(s.Min)},
		{"max", orNone(s.Max)},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%-8s %s\n", l[0]+":", l[1]); err != nil {
			return err
		}
	}
	return nil
}

// WriteYAML writes s as a YAML document.
func (s Summary) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

func orNone(v string) string {
	if v == "" {
		return "none"
	}
	return v
}
