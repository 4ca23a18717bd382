// SPDX-License-Identifier: MIT

// Package core: functional configuration of the execution strategy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - Gather, which resolves options for sibling packages.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option changes how Run dispatches work.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The execution strategy is the only configuration object the toolkit
//     accepts. Output ordering is identical under both strategies; Parallel
//     is valid only when callbacks are side-effect-free and items independent.
//     That independence is the caller's precondition, it is not verified.
package core

import (
	"time"

	"github.com/go-logr/logr"
)

// Strategy selects how Run distributes work items.
type Strategy int

const (
	// Sequential runs items one after another on the calling goroutine in
	// index order. Side effects, if any, happen in that order.
	Sequential Strategy = iota

	// Parallel distributes items to a fixed pool of worker goroutines.
	Parallel
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrategy is the strategy used when no option selects one.
	DefaultStrategy = Sequential

	// DefaultWorkers is the pool size reported for the sequential strategy.
	DefaultWorkers = 1

	// DefaultTimeout of zero means "no timeout beyond the caller's context".
	DefaultTimeout time.Duration = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "core: WithParallel: workers must be >= 1"
	panicTimeoutInvalid = "core: WithTimeout: timeout must be >= 0"
)

// Option mutates Options. Safe to apply repeatedly; the last one wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	strategy Strategy
	workers  int
	timeout  time.Duration
	logger   logr.Logger
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{
		strategy: DefaultStrategy,
		workers:  DefaultWorkers,
		timeout:  DefaultTimeout,
		logger:   logr.Discard(),
	}
}

// Gather applies opts in order over the defaults.
// Complexity: O(len(opts)).
func Gather(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithSequential selects the sequential strategy (the default).
func WithSequential() Option {
	return func(o *Options) {
		o.strategy = Sequential
		o.workers = DefaultWorkers
	}
}

// WithParallel selects the parallel strategy with a fixed pool of workers.
// Panics if workers < 1.
func WithParallel(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) {
		o.strategy = Parallel
		o.workers = workers
	}
}

// WithTimeout bounds the whole call. Zero disables the bound.
// Panics if d < 0.
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic(panicTimeoutInvalid)
	}
	return func(o *Options) {
		o.timeout = d
	}
}

// WithLogger routes dispatch diagnostics to l. The default discards them.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.logger = l
	}
}

// Strategy returns the selected strategy.
func (o Options) Strategy() Strategy { return o.strategy }

// Workers returns the worker pool size (1 for sequential).
func (o Options) Workers() int { return o.workers }

// Timeout returns the configured timeout (0 = none).
func (o Options) Timeout() time.Duration { return o.timeout }

// Logger returns the configured logger.
func (o Options) Logger() logr.Logger { return o.logger }

// AsOption returns o as an Option, so a resolved configuration can be
// forwarded to a nested combinator unchanged.
func (o Options) AsOption() Option {
	return func(dst *Options) { *dst = o }
}
