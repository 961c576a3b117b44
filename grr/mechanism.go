// SPDX-License-Identifier: MIT

// Package grr - Mechanism: the object that owns a design matrix.
//
// Purpose:
//   - Hold one DesignMatrix and replace it wholesale on calibration.
//   - Offer the auditor and estimator as methods over the held design.
//
// Concurrency:
//   - The held design sits behind an atomic pointer: a reader sees either
//     the old or the new matrix, never a mix of cells.
//   - A calibrate-then-audit (or calibrate-then-estimate) sequence is two
//     calls; callers sharing a Mechanism must synchronize the pair themselves.
//     Use Design() once and pass the value along to pin a single matrix.

package grr

import (
	"log/slog"
	"sync/atomic"
)

// Mechanism is a generalized randomized-response mechanism.
// The zero value holds MaxPrivacy and logs to slog.Default().
type Mechanism struct {
	design atomic.Pointer[DesignMatrix]
	log    *slog.Logger
}

// New returns a mechanism holding MaxPrivacy, or the design given by WithDesign.
func New(opts ...Option) *Mechanism {
	o := gatherOptions(opts...)

	mech := &Mechanism{log: o.log()}
	d := MaxPrivacy
	if o.design != nil {
		d = *o.design
	}
	mech.design.Store(&d)

	return mech
}

// NewFromProbabilities validates the four cells (see NewDesignMatrix) and
// returns a mechanism holding the resulting design.
func NewFromProbabilities(p00, p01, p10, p11 float64, opts ...Option) (*Mechanism, error) {
	d, err := NewDesignMatrix(p00, p01, p10, p11, opts...)
	if err != nil {
		return nil, grrErrorf(opNewFromProbabilities, err)
	}

	return New(append(opts[:len(opts):len(opts)], WithDesign(d))...), nil
}

// Design returns the currently held design.
func (mech *Mechanism) Design() DesignMatrix {
	if d := mech.design.Load(); d != nil {
		return *d
	}
	return MaxPrivacy
}

// SetOptimalUtility replaces the held design with OptimalFor(eps) and
// returns the new design. eps is not validated (see OptimalFor).
func (mech *Mechanism) SetOptimalUtility(eps float64) DesignMatrix {
	d := OptimalFor(eps)
	mech.design.Store(&d)
	mech.logger().Debug("design calibrated",
		slog.Float64("eps", eps),
		slog.Float64("p00", d.P00()),
		slog.Float64("p01", d.P01()))

	return d
}

// CheckEpsPrivacy audits the held design; see SatisfiesEpsilon.
func (mech *Mechanism) CheckEpsPrivacy(eps, tol float64) (bool, error) {
	return SatisfiesEpsilon(mech.Design(), eps, tol)
}

// ObservedMass evaluates the forward mass under the held design.
func (mech *Mechanism) ObservedMass(shares ...Proportion) (Mass, error) {
	return ObservedMass(mech.Design(), shares...)
}

// UnbiasedEstimate de-biases observed shares under the held design.
func (mech *Mechanism) UnbiasedEstimate(observed ...Proportion) (Estimate, error) {
	return UnbiasedEstimate(mech.Design(), observed...)
}

// EstimateVariance always fails with ErrNotImplemented.
func (mech *Mechanism) EstimateVariance(observed ...Proportion) (Estimate, error) {
	return EstimateVariance(mech.Design(), observed...)
}

func (mech *Mechanism) logger() *slog.Logger {
	if mech.log == nil {
		return slog.Default()
	}
	return mech.log
}
