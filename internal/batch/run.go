package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/romanparse/internal/ctxlog"
	"github.com/specialistvlad/romanparse/internal/roman"
	"golang.org/x/sync/errgroup"
)

// ErrUnexpectedValue marks a numeral that converted to something other than
// its declared expect value.
var ErrUnexpectedValue = errors.New("unexpected value")

// Result is the outcome of converting one Entry.
type Result struct {
	Entry
	Value int64
	Err   error
}

// OK reports whether the conversion succeeded and matched any expectation.
func (r Result) OK() bool {
	return r.Err == nil
}

// Run converts entries on up to workers goroutines. Results keep the order
// of entries. The returned error is only set when ctx is cancelled.
func Run(ctx context.Context, entries []Entry, workers int) ([]Result, error) {
	logger := ctxlog.FromContext(ctx)
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, entry := range entries {
		i, entry := i, entry
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = convert(entry)
			logger.Debug("Converted numeral.", "name", entry.Name, "input", entry.Input, "ok", results[i].OK())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func convert(e Entry) Result {
	v, err := roman.Parse(e.Input)
	if err != nil {
		return Result{Entry: e, Err: err}
	}
	if e.Expect != nil && *e.Expect != v {
		return Result{Entry: e, Value: v, Err: fmt.Errorf("%w: %q is %d, expected %d", ErrUnexpectedValue, e.Input, v, *e.Expect)}
	}
	return Result{Entry: e, Value: v}
}
