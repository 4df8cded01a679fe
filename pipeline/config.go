package pipeline

import (
	"os"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Kind names the element type a pipeline runs on.
type Kind string

const (
	KindInt32   Kind = "int32"
	KindInt64   Kind = "int64"
	KindFloat64 Kind = "float64"
)

// Kinds lists the supported kinds.
var Kinds = []Kind{KindInt32, KindInt64, KindFloat64}

// Config describes a pipeline run.
//
//	kind: float64
//	steps:
//	  - sort-desc
//	  - op: take
//	    arg: 3
//	input: [14.59, 24.80, 34.88]
type Config struct {
	Kind  Kind      `yaml:"kind"`
	Steps []Step    `yaml:"steps"`
	Input []Literal `yaml:"input,omitempty"`
}

// DefaultConfig returns an int64 pipeline with no steps.
func DefaultConfig() *Config {
	return &Config{Kind: KindInt64}
}

// Load reads a pipeline configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of DefaultConfig and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fills in the default kind and checks kind and steps.
func (c *Config) Validate() error {
	if c.Kind == "" {
		c.Kind = KindInt64
	}
	if !slices.Contains(Kinds, c.Kind) {
		return errors.Wrapf(ErrUnknownKind, "%q (valid: %v)", c.Kind, Kinds)
	}
	for i, step := range c.Steps {
		if err := step.validate(); err != nil {
			return errors.Wrapf(err, "step %d", i+1)
		}
	}
	return nil
}

// Save writes c as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write config")
	}
	return nil
}

// Inputs returns the input literals as plain strings.
func (c *Config) Inputs() []string {
	res := make([]string, len(c.Input))
	for i, l := range c.Input {
		res[i] = string(l)
	}
	return res
}
