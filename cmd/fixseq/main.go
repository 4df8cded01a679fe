package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"fixseq/pipeline"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose    bool
	kind       string
	opSpecs    []string
	configPath string
	inputPath  string
	output     string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fixseq [numbers...]",
	Short: "Run sequence operations over a list of numbers",
	Long: `fixseq reads numbers, applies a pipeline of sequence operations and
prints the resulting sequence with its size, sum, product, average, head,
min and max.

Numbers come from the arguments, from --file, from the input list of a
--config file, or from stdin, in that order of preference. They may be
separated by whitespace or commas. Put negative numbers after "--".

Operations:
  sort, sort-desc, distinct, reverse, tail, neg
  take:N, drop:N, slice:FROM:TO
  gt:X, lt:X, eq:X, take-while-lt:X, drop-while-lt:X
  add:X, mul:X, concat:A,B,...

Example:
  fixseq --kind float64 --op sort-desc --op take:3 -- 14.59 24.80 34.88 -1.34`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.OutputPaths = []string{"stderr"}
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runPipeline,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().StringVarP(&kind, "kind", "k", "", "Numeric kind: int32, int64 or float64 (default int64)")
	rootCmd.Flags().StringArrayVarP(&opSpecs, "op", "o", nil, "Operation to apply, repeatable (e.g. --op sort --op take:3)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML pipeline file")
	rootCmd.Flags().StringVarP(&inputPath, "file", "f", "", "Read numbers from file")
	rootCmd.Flags().StringVar(&output, "output", "text", "Output format: text or yaml")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runPipeline builds the effective config from the file and flags and runs it.
func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	literals, err := readLiterals(cmd.InOrStdin(), args, cfg)
	if err != nil {
		return err
	}
	logger.Debug("pipeline configured",
		zap.String("kind", string(cfg.Kind)),
		zap.Int("steps", len(cfg.Steps)),
		zap.Int("inputs", len(literals)),
	)

	runner := pipeline.NewRunner(pipeline.WithLogger(logger.Named("pipeline")))
	summary, err := runner.RunLiterals(cfg.Kind, literals, cfg.Steps)
	if err != nil {
		return err
	}

	switch output {
	case "yaml":
		return summary.WriteYAML(cmd.OutOrStdout())
	case "text":
		return summary.WriteText(cmd.OutOrStdout())
	default:
		return errors.Errorf("unknown output format %q (valid: text, yaml)", output)
	}
}

// loadConfig reads --config when given; --kind and --op override the file.
func loadConfig(cmd *cobra.Command) (*pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = pipeline.Load(configPath); err != nil {
			return nil, err
		}
		logger.Debug("loaded config", zap.String("path", configPath))
	}

	if cmd.Flags().Changed("kind") {
		cfg.Kind = pipeline.Kind(strings.ToLower(kind))
	}
	if len(opSpecs) > 0 {
		steps, err := pipeline.ParseSteps(opSpecs)
		if err != nil {
			return nil, err
		}
		cfg.Steps = steps
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readLiterals(stdin io.Reader, args []string, cfg *pipeline.Config) ([]string, error) {
	switch {
	case len(args) > 0:
		return pipeline.SplitLiterals(strings.Join(args, " ")), nil
	case inputPath != "":
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read input")
		}
		return pipeline.SplitLiterals(string(data)), nil
	case len(cfg.Input) > 0:
		return cfg.Inputs(), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read stdin")
	}
	return pipeline.SplitLiterals(string(data)), nil
}
