package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/pairsum/internal/app"
	"github.com/specialistvlad/pairsum/internal/config"
	"github.com/specialistvlad/pairsum/internal/pairsum"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// allSolvers is the --solver value that selects the whole catalogue.
const allSolvers = "all"

// Parse processes command-line arguments. When --config is given the file is
// read through loader and its values fill in every flag that was not set
// explicitly. It returns a populated Config, a boolean indicating if the
// program should exit cleanly, or an ExitError.
func Parse(ctx context.Context, args []string, output io.Writer, loader config.Loader) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("pairsum", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
pairsum - find every pair of integers in a file that adds up to a target sum.

Runs a quadratic brute-force solver and a single-pass hash lookup solver over
the same input and reports the pairs, their products and the time taken.
See https://adventofcode.com/2020/day/1 for the puzzle this comes from.

Usage:
  pairsum [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	sumFlag := flagSet.Int("sum", app.DefaultSum, "Two numbers from the list of values should sum to this.")
	fileFlag := flagSet.String("file", app.DefaultFile, "File to use as input. One integer per line.")
	solverFlag := flagSet.String("solver", allSolvers, "Comma-separated solvers to run. Options: 'all', "+quoted(pairsum.Names())+".")
	configFlag := flagSet.String("config", "", "Optional HCL config file. Explicit flags take precedence over it.")
	logLevelFlag := flagSet.String("log-level", app.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", app.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, usageError("unexpected argument: %s", flagSet.Arg(0))
	}
	slog.Debug("Arguments parsed successfully.")

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	sum := *sumFlag
	file := *fileFlag
	solverSpec := *solverFlag
	logLevel := *logLevelFlag
	logFormat := *logFormatFlag
	var solvers []string

	if *configFlag != "" {
		if loader == nil {
			return nil, false, usageError("config files are not supported by this build")
		}
		model, err := loader.Load(ctx, *configFlag)
		if err != nil {
			return nil, false, usageError("invalid config file: %v", err)
		}
		slog.Debug("Config file loaded.", "path", *configFlag)

		if model.Sum != nil && !explicit["sum"] {
			sum = *model.Sum
		}
		if model.File != nil && !explicit["file"] {
			file = *model.File
		}
		if len(model.Solvers) > 0 && !explicit["solver"] {
			solvers = model.Solvers
		}
		if model.LogLevel != nil && !explicit["log-level"] {
			logLevel = *model.LogLevel
		}
		if model.LogFormat != nil && !explicit["log-format"] {
			logFormat = *model.LogFormat
		}
	}

	if solvers == nil {
		solvers = splitSolvers(solverSpec)
	}
	solvers = expandAll(solvers)

	logFormat = strings.ToLower(logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel = strings.ToLower(logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		FilePath:  file,
		Sum:       sum,
		Solvers:   solvers,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// splitSolvers turns "naive, indexed" into its trimmed, non-empty parts.
func splitSolvers(spec string) []string {
	var names []string
	for _, part := range strings.Split(spec, ",") {
		if name := strings.ToLower(strings.TrimSpace(part)); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// expandAll replaces a lone "all" with the full catalogue.
func expandAll(names []string) []string {
	if len(names) == 1 && names[0] == allSolvers {
		return pairsum.Names()
	}
	return names
}

func quoted(names []string) string {
	q := make([]string, len(names))
	for i, n := range names {
		q[i] = "'" + n + "'"
	}
	return strings.Join(q, ", ")
}
