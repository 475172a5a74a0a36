package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/romanparse/internal/batch"
	"github.com/specialistvlad/romanparse/internal/ctxlog"
	"github.com/specialistvlad/romanparse/internal/output"
	"github.com/specialistvlad/romanparse/internal/roman"
)

// Run executes the mode selected by the configuration. in is only read by
// the interactive shell.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	var err error
	switch {
	case len(a.config.BatchPaths) > 0:
		err = a.RunBatch(ctx)
	case len(a.config.Numerals) > 0:
		err = a.RunNumerals(ctx)
	default:
		err = a.Interactive(ctx, in)
	}

	a.logger.Debug("App.Run method finished.", "error", err)
	return err
}

// Interactive prompts for one numeral per line until an empty line, the
// end of in, or cancellation of ctx. Invalid numerals are reported on the
// error stream and the loop continues. Lines have no length limit.
func (a *App) Interactive(ctx context.Context, in io.Reader) error {
	ok, failed, err := a.encoders()
	if err != nil {
		return err
	}
	defer ok.Close()

	done := make(chan struct{})
	defer close(done)
	lines := readLines(in, done)

	showPrompt := a.config.Prompt != "" && a.config.Output == output.FormatText
	for {
		if showPrompt {
			fmt.Fprintln(a.outW, a.config.Prompt)
		}

		var next lineResult
		select {
		case <-ctx.Done():
			a.logger.Debug("Shell interrupted.", "reason", ctx.Err())
			return nil
		case next = <-lines:
		}

		if next.err != nil {
			if errors.Is(next.err, io.EOF) {
				a.logger.Debug("Input closed, leaving shell.")
				return nil
			}
			return fmt.Errorf("exception while reading user input: %w", next.err)
		}
		if next.line == "" {
			a.logger.Debug("Empty line, leaving shell.")
			return nil
		}

		if err := emit(ok, failed, convert("", next.line)); err != nil {
			return err
		}
	}
}

// lineResult is one line read from the shell input, or the error that
// ended reading.
type lineResult struct {
	line string
	err  error
}

// readLines reads in on its own goroutine so a blocked read never delays
// cancellation. The goroutine sends the terminating error last and stops
// once done is closed.
func readLines(in io.Reader, done <-chan struct{}) <-chan lineResult {
	lines := make(chan lineResult)
	send := func(r lineResult) bool {
		select {
		case lines <- r:
			return true
		case <-done:
			return false
		}
	}

	go func() {
		r := bufio.NewReader(in)
		for {
			line, err := r.ReadString('\n')
			if line != "" {
				trimmed := strings.TrimRight(strings.TrimSuffix(line, "\n"), "\r")
				if !send(lineResult{line: trimmed}) {
					return
				}
			}
			if err != nil {
				send(lineResult{err: err})
				return
			}
		}
	}()
	return lines
}

// RunNumerals converts each configured numeral once.
func (a *App) RunNumerals(ctx context.Context) error {
	ok, failed, err := a.encoders()
	if err != nil {
		return err
	}
	defer ok.Close()

	failures := 0
	for _, n := range a.config.Numerals {
		if err := ctx.Err(); err != nil {
			return err
		}
		r := convert("", n)
		if !r.OK {
			failures++
		}
		if err := emit(ok, failed, r); err != nil {
			return err
		}
	}

	if failures > 0 {
		return fmt.Errorf("%w: %d of %d numerals", ErrConversionFailed, failures, len(a.config.Numerals))
	}
	return nil
}

// RunBatch loads the configured batch files and converts every numeral in
// them.
func (a *App) RunBatch(ctx context.Context) error {
	entries, err := batch.Load(ctx, a.config.BatchPaths...)
	if err != nil {
		return fmt.Errorf("failed to load batch: %w", err)
	}
	a.logger.Info("Batch loaded.", "numerals", len(entries))

	results, err := batch.Run(ctx, entries, a.config.Workers)
	if err != nil {
		return fmt.Errorf("batch run failed: %w", err)
	}

	ok, failed, err := a.encoders()
	if err != nil {
		return err
	}
	defer ok.Close()

	failures := 0
	for _, res := range results {
		if !res.OK() {
			failures++
		}
		if err := emit(ok, failed, record(res)); err != nil {
			return err
		}
	}

	a.logger.Info("Batch finished.", "numerals", len(results), "failed", failures)
	if failures > 0 {
		return fmt.Errorf("%w: %d of %d numerals", ErrConversionFailed, failures, len(results))
	}
	return nil
}

// convert parses one numeral into a record.
func convert(name, input string) output.Record {
	v, err := roman.Parse(input)
	if err != nil {
		return output.Record{Name: name, Input: input, Error: err.Error()}
	}
	return output.Record{Name: name, Input: input, Value: v, OK: true}
}

// record turns a batch result into an output record.
func record(res batch.Result) output.Record {
	r := output.Record{
		Name:   res.Name,
		Input:  res.Input,
		Value:  res.Value,
		Expect: res.Expect,
		OK:     res.OK(),
	}
	// A mismatch is rendered from Value and Expect; only parse failures
	// carry a message.
	if res.Err != nil && !errors.Is(res.Err, batch.ErrUnexpectedValue) {
		r.Error = res.Err.Error()
	}
	return r
}
