package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/romanparse/internal/output"
)

// ErrConversionFailed is returned by one-shot and batch runs when at least
// one numeral failed.
var ErrConversionFailed = errors.New("conversion failed")

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp returns an App writing results to outW, and diagnostics and logs
// to errW.
func NewApp(outW, errW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.", "output", cfg.Output, "workers", cfg.Workers)

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		config: cfg,
	}
}

// encoders returns the encoder for successful records and the one for
// failed records. Text output sends failures to the error stream;
// structured formats keep every record in one stream.
func (a *App) encoders() (ok, failed output.Encoder, err error) {
	ok, err = output.NewEncoder(a.config.Output, a.outW)
	if err != nil {
		return nil, nil, err
	}
	if a.config.Output != output.FormatText {
		return ok, ok, nil
	}
	failed, err = output.NewEncoder(output.FormatText, a.errW)
	if err != nil {
		return nil, nil, err
	}
	return ok, failed, nil
}

// emit writes r to the encoder matching its outcome.
func emit(ok, failed output.Encoder, r output.Record) error {
	enc := ok
	if !r.OK {
		enc = failed
	}
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
