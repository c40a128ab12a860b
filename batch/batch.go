// SPDX-License-Identifier: MIT
//
// File: batch.go
// Role: Solve independent instances on a bounded worker pool and sum the
//       results; the first failure cancels the rest.

package batch

import (
	"context"
	"fmt"
	"math/bits"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// Solver solves instance i. It must honor ctx cancellation.
type Solver[T any] func(ctx context.Context, i int, item T) (uint64, error)

// Sum solves every item with solve on a pool of Options.Workers goroutines
// and returns the results in input order together with their sum.
//
// Instances share nothing, so a solver may keep per-call state freely. The first
// error cancels the context handed to the other solvers, no further instance
// is started, and the error is returned as "batch: instance i: <err>" so that
// errors.Is still matches the solver's sentinel. Results of a failed run are
// discarded.
//
// An empty items slice yields a zero Total.
func Sum[T any](ctx context.Context, items []T, solve Solver[T], opts ...Option) (*Report, error) {
	// 1. Validate input and apply options
	if solve == nil {
		return nil, ErrNilSolver
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	rep := &Report{
		RunID:   uuid.NewString(),
		Name:    o.Name,
		Results: make([]uint64, len(items)),
	}
	log := o.Logger.WithFields(logrus.Fields{"run_id": rep.RunID, "batch": o.Name})

	ctx, span := o.Tracer.Start(ctx, o.Name,
		trace.WithAttributes(
			attribute.String("run_id", rep.RunID),
			attribute.Int("instances", len(items)),
			attribute.Int("workers", o.Workers),
		),
	)
	defer span.End()
	started := time.Now()

	// 2. Fan out
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, item := range items {
		if gctx.Err() != nil {
			break
		}
		i, item := i, item
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil // another instance already failed
			}
			v, err := solveOne(gctx, o, log, i, item, solve)
			if err != nil {
				return err
			}
			rep.Results[i] = v
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		// the loop may have stopped on an external cancellation
		err = ctx.Err()
	}
	rep.Elapsed = time.Since(started)

	// 3. Reduce in input order
	if err == nil {
		for i, v := range rep.Results {
			var carry uint64
			rep.Total, carry = bits.Add64(rep.Total, v, 0)
			if carry != 0 {
				err = fmt.Errorf("%w: at instance %d", ErrOverflow, i)
				break
			}
		}
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.WithError(err).WithField("elapsed", rep.Elapsed).Error("batch failed")
		return nil, err
	}
	span.SetAttributes(attribute.String("total", strconv.FormatUint(rep.Total, 10)))
	log.WithFields(logrus.Fields{
		"instances": len(items),
		"total":     rep.Total,
		"elapsed":   rep.Elapsed,
	}).Info("batch solved")

	return rep, nil
}

// solveOne runs a single instance inside its own span.
func solveOne[T any](ctx context.Context, o Options, log logrus.FieldLogger, i int, item T, solve Solver[T]) (uint64, error) {
	ctx, span := o.Tracer.Start(ctx, o.Name+".instance",
		trace.WithAttributes(attribute.Int("instance", i)),
	)
	defer span.End()

	started := time.Now()
	v, err := solve(ctx, i, item)
	elapsed := time.Since(started)
	span.SetAttributes(attribute.Int64("duration_ms", elapsed.Milliseconds()))

	entry := log.WithFields(logrus.Fields{"instance": i, "elapsed": elapsed})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		entry.WithError(err).Warn("instance failed")
		return 0, fmt.Errorf("batch: instance %d: %w", i, err)
	}
	span.SetAttributes(attribute.String("result", strconv.FormatUint(v, 10)))
	entry.WithField("result", v).Debug("instance solved")

	return v, nil
}
