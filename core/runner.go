// SPDX-License-Identifier: MIT

// Package core: the single work dispatcher behind every combinator.
//
// Purpose:
//   - Run n independent work items under the configured Strategy.
//   - Keep ordering guarantees in one place: each task writes its own result
//     slot, so completion order never leaks into outputs.
//
// Determinism:
//   - Sequential: items run in index order; the first failing index is reported.
//   - Parallel: indices are handed out in increasing order from an atomic
//     counter and a started task always runs to completion, so every index
//     below a failing one has finished when the pool drains. The lowest
//     failing index is reported, which matches the sequential strategy for
//     deterministic callbacks.

package core

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Task processes work item i. It writes its result into caller-owned
// storage at index i and never touches other slots.
type Task func(ctx context.Context, i int) error

// Run executes task for every i in [0, n) under the strategy in o.
//
// Implementation:
//   - Stage 1: Apply the configured timeout to ctx; fail fast if ctx is done.
//   - Stage 2: Dispatch sequentially, or through a fixed errgroup pool of
//     min(workers, n) goroutines pulling indices from an atomic counter.
//   - Stage 3: Resolve the outcome: cancellation first, then the lowest
//     failing index.
//
// Errors:
//   - *Cancelled when ctx is cancelled or the timeout expires.
//   - Whatever task returned for the lowest failing index.
//   - *CallbackFailure{Cause: *PanicError} when a task panics.
//
// Complexity:
//   - Time O(n) task invocations; Space O(n) for the failure slots in parallel mode.
func Run(ctx context.Context, op string, n int, o Options, task Task) error {
	// Stage 1 (Prepare): bound the call and honour an already-dead context.
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return &Cancelled{Cause: err}
	}

	log := o.logger.WithValues("op", op)
	if n <= 0 {
		return nil
	}

	var err error
	if o.strategy == Parallel && o.workers > 1 && n > 1 {
		workers := o.workers
		if workers > n {
			workers = n
		}
		log.V(1).Info("dispatch", "items", n, "strategy", Parallel.String(), "workers", workers)
		err = runParallel(ctx, n, workers, task)
	} else {
		log.V(1).Info("dispatch", "items", n, "strategy", Sequential.String(), "workers", 1)
		err = runSequential(ctx, n, task)
	}

	// Stage 3 (Finalize): cancellation outranks any racing task failure.
	if ctxErr := ctx.Err(); ctxErr != nil {
		log.V(1).Info("cancelled", "cause", ctxErr.Error())
		return &Cancelled{Cause: ctxErr}
	}
	if err != nil {
		log.Error(err, "dispatch failed")
	}
	return err
}

// runSequential runs items in index order on the calling goroutine.
func runSequential(ctx context.Context, n int, task Task) error {
	var i int
	for i = 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return &Cancelled{Cause: err}
		}
		if err := guard(ctx, i, task); err != nil {
			return err
		}
	}
	return nil
}

// runParallel runs items on a fixed pool. Each failure is stored in its own
// slot; the lowest failure that is not a cancellation wins.
func runParallel(ctx context.Context, n, workers int, task Task) error {
	g, gctx := errgroup.WithContext(ctx)
	failures := make([]error, n) // slot i written only by the worker that ran i
	var next atomic.Int64

	var w int
	for w = 0; w < workers; w++ {
		g.Go(func() error {
			for {
				if gctx.Err() != nil {
					return nil // a sibling failed or the caller cancelled
				}
				i := int(next.Add(1) - 1)
				if i >= n {
					return nil
				}
				if err := guard(gctx, i, task); err != nil {
					failures[i] = err
					return err // cancels gctx for the remaining workers
				}
			}
		})
	}
	_ = g.Wait() // failures holds the authoritative per-index outcome

	var cancelled error
	for _, err := range failures {
		if err == nil {
			continue
		}
		// Tasks and nested dispatchers observe gctx and may report Cancelled
		// or a bare context error because a sibling failed; that is not the
		// root cause.
		if isCancellation(err) {
			if cancelled == nil {
				cancelled = err
			}
			continue
		}
		return err
	}
	return cancelled
}

// isCancellation reports whether err only says that a context ended.
func isCancellation(err error) bool {
	return errors.Is(err, ErrCancelled) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// guard runs one task and converts a panic into a CallbackFailure.
func guard(ctx context.Context, i int, task Task) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &CallbackFailure{Index: i, Cause: &PanicError{Value: p}}
		}
	}()
	return task(ctx, i)
}
