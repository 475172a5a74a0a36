package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/romanparse/internal/app"
	"github.com/specialistvlad/romanparse/internal/config"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Environment variables supply the flag defaults.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	env, err := config.LoadEnv()
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	flagSet := flag.NewFlagSet("romanparse", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
romanparse - converts Roman numerals into integers.

Usage:
  romanparse [options] [NUMERAL ...]

Arguments:
  NUMERAL
    Numerals to convert once each. Without numerals or -batch, an
    interactive prompt reads one numeral per line until an empty line.

Options:
`)
		flagSet.PrintDefaults()
	}

	var batchPaths []string
	addBatch := func(path string) error {
		if path == "" {
			return errors.New("batch path cannot be empty")
		}
		batchPaths = append(batchPaths, path)
		return nil
	}
	flagSet.Func("batch", "Path to an HCL batch file or directory. May be repeated.", addBatch)
	flagSet.Func("b", "Path to an HCL batch file or directory (shorthand).", addBatch)
	outputFlag := flagSet.String("output", env.Output, "Result format. Options: 'text', 'json' or 'yaml'.")
	logFormatFlag := flagSet.String("log-format", env.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", env.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", env.Workers, "Number of concurrent workers for batch conversion.")
	promptFlag := flagSet.String("prompt", env.Prompt, "Prompt shown by the interactive shell. Empty disables it.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.", "batch_paths", len(batchPaths), "numerals", flagSet.NArg())

	cfg, err := app.NewConfig(app.Config{
		BatchPaths: batchPaths,
		Numerals:   flagSet.Args(),
		Output:     strings.ToLower(*outputFlag),
		LogFormat:  strings.ToLower(*logFormatFlag),
		LogLevel:   strings.ToLower(*logLevelFlag),
		Workers:    *workersFlag,
		Prompt:     *promptFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
