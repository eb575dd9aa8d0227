// SPDX-License-Identifier: MIT

// Package multiply: functional configuration for the divide-and-conquer kernels.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on nonsensical values (programmer error).
package multiply

import "log/slog"

// DefaultCutoff is the largest sub-problem handled without further recursion.
// 1 means the recursion bottoms out at single elements.
const DefaultCutoff = 1

const panicCutoffInvalid = "multiply: WithCutoff: cutoff must be >= 1"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	cutoff int
	logger *slog.Logger
}

// WithCutoff makes sub-problems of size ≤ k use the naive triple loop instead
// of recursing further. k must be ≥ 1; anything else panics.
//
// Notes:
//   - The result is identical for integer element types; floating-point results
//     may differ in the last bits because the summation order changes.
func WithCutoff(k int) Option {
	if k < 1 {
		panic(panicCutoffInvalid)
	}

	return func(o *Options) { o.cutoff = k }
}

// WithLogger routes debug records of each top-level call to l.
// A nil logger restores the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}

// defaultOptions returns the zero-configuration options.
func defaultOptions() Options {
	return Options{cutoff: DefaultCutoff, logger: slog.New(slog.DiscardHandler)}
}

// gatherOptions applies user options over the defaults.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
