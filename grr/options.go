// SPDX-License-Identifier: MIT

// Package grr: functional configuration for design matrices and mechanisms.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper that resolves defaults.
//
// Notes:
//   - Options never change numeric semantics. Exact row sums, the explicit
//     audit tolerance and the literal de-biasing formula are not configurable.
//   - The logger only receives the zero-perturbation diagnostic.
package grr

import "log/slog"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultProbability is the value of every cell of the default matrix
	// (maximal privacy, zero utility).
	DefaultProbability = 0.5

	// DefaultCalibrationTolerance is a fixed audit slack of about one ulp of
	// e^ε for ε ≤ 1. Above that the ulp of e^ε outgrows it and
	// exp(eps)+tol rounds back to exp(eps); use CalibrationTolerance(eps).
	DefaultCalibrationTolerance = 5e-16

	// calibrationULPs is how many ulps of e^ε CalibrationTolerance allows.
	calibrationULPs = 4
)

// ---------- Internal panic messages ----------

const (
	panicLoggerNil = "grr: WithLogger: logger must be non-nil"
)

// ---------- Public option type ----------

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	logger *slog.Logger  // nil ⇒ slog.Default() at use time
	design *DesignMatrix // nil ⇒ MaxPrivacy (Mechanism only)
}

// WithLogger routes diagnostics to l. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(o *Options) {
		o.logger = l
	}
}

// WithDesign sets the initial design matrix held by a Mechanism.
// It has no effect on NewDesignMatrix.
func WithDesign(m DesignMatrix) Option {
	return func(o *Options) {
		d := m
		o.design = &d
	}
}

// gatherOptions applies opts in order over the defaults.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// log returns the configured logger or slog.Default().
func (o Options) log() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}
	return o.logger
}
