// Package execute applies a compiled Process to a collection of Rows.
// Per-row application is a pure function with no cross-row state, so the
// executor can fan work out across any number of workers without locking;
// results are collected into input-order slots, preserving the order of an
// ordered input collection. The executor performs no I/O.
package execute

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/go-reshape/reshape"
	"github.com/go-reshape/reshape/errors"
	"github.com/go-reshape/reshape/logging"
	"github.com/go-reshape/reshape/process"
)

// Config configures one execution run
type Config struct {
	// NumWorkers is the number of concurrent workers applying the Process.
	// Values below 2 select the sequential path.
	NumWorkers int
	// Lenient converts per-row failures into a Drop outcome for that row,
	// collected in Result.RowErrors, instead of aborting the run. This is
	// opt-in: the default is strict fail-fast.
	Lenient bool
	// Log, if non-nil, receives a warning for every row skipped in lenient mode
	Log logging.Logger
}

// Result pairs the kept output Rows with the Process's precomputed final
// Schema
type Result struct {
	// Rows holds the kept Rows, in the relative order of the input
	Rows []reshape.Row
	// Schema is the final Schema every kept Row conforms to
	Schema reshape.Schema
	// Dropped counts input Rows not present in Rows, whether dropped by a
	// filter step or skipped in lenient mode
	Dropped int
	// RowErrors aggregates the per-row failures converted to drops in
	// lenient mode, in input order. Nil in strict mode.
	RowErrors error
}

type slot struct {
	row  reshape.Row
	kept bool
	err  error
}

// Execute applies proc to every row independently. In strict mode (the
// default) the first failing row aborts the run with a RowError carrying
// its position; rows already completed are unaffected but no partial
// Result is returned. In lenient mode failing rows are dropped and their
// errors collected.
func Execute(ctx context.Context, proc *process.Process, rows []reshape.Row, conf *Config) (*Result, error) {
	if conf == nil {
		conf = &Config{}
	}
	slots := make([]slot, len(rows))
	if conf.NumWorkers < 2 || len(rows) < 2 {
		for i, r := range rows {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			slots[i] = applyOne(proc, i, r)
			if slots[i].err != nil && !conf.Lenient {
				return nil, slots[i].err
			}
		}
	} else {
		if err := applyParallel(ctx, proc, rows, slots, conf); err != nil {
			return nil, err
		}
	}
	return collect(proc, slots, conf)
}

// ExecuteSource streams rows from source through proc, one at a time, until
// the source is exhausted. Ordered sources yield ordered results.
func ExecuteSource(ctx context.Context, proc *process.Process, source reshape.RowSource, conf *Config) (*Result, error) {
	if conf == nil {
		conf = &Config{}
	}
	var slots []slot
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := source.Next()
		if err != nil {
			if _, done := err.(errors.NoMoreRowsError); done {
				break
			}
			return nil, errors.RowError{Position: i, Err: err}
		}
		s := applyOne(proc, i, r)
		if s.err != nil && !conf.Lenient {
			return nil, s.err
		}
		slots = append(slots, s)
	}
	return collect(proc, slots, conf)
}

// applyOne checks one row's shape against the Process input Schema and
// threads it through the step sequence. Only width and cell kinds are
// checked here, so a cell violating a column constraint can still be
// rewritten by a step downstream.
func applyOne(proc *process.Process, position int, r reshape.Row) slot {
	if err := proc.InputSchema().CheckRow(r); err != nil {
		return slot{err: errors.RowError{Position: position, Err: err}}
	}
	outcome, err := proc.ApplyToRow(r)
	if err != nil {
		return slot{err: errors.RowError{Position: position, Err: err}}
	}
	if outcome.Dropped {
		return slot{}
	}
	return slot{row: outcome.Row, kept: true}
}

// applyParallel fans rows out across conf.NumWorkers workers, writing each
// outcome into its input-order slot. In strict mode the first failure
// cancels the group.
func applyParallel(ctx context.Context, proc *process.Process, rows []reshape.Row, slots []slot, conf *Config) error {
	g, gctx := errgroup.WithContext(ctx)
	indices := make(chan int)
	g.Go(func() error {
		defer close(indices)
		for i := range rows {
			select {
			case indices <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < conf.NumWorkers; w++ {
		g.Go(func() error {
			for i := range indices {
				slots[i] = applyOne(proc, i, rows[i])
				if slots[i].err != nil && !conf.Lenient {
					return slots[i].err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// collect compacts kept slots into a Result, preserving input order
func collect(proc *process.Process, slots []slot, conf *Config) (*Result, error) {
	result := &Result{Schema: proc.FinalSchema()}
	var rowErrs *multierror.Error
	for _, s := range slots {
		if s.err != nil {
			// only reachable in lenient mode
			rowErrs = multierror.Append(rowErrs, s.err)
			result.Dropped++
			if conf.Log != nil {
				conf.Log(logging.WarnLevel, "skipping row: %v", s.err)
			}
			continue
		}
		if !s.kept {
			result.Dropped++
			continue
		}
		result.Rows = append(result.Rows, s.row)
	}
	result.RowErrors = rowErrs.ErrorOrNil()
	return result, nil
}
