// SPDX-License-Identifier: MIT
// Package: grr
//
// Purpose:
//   - Decide whether a design satisfies ε-differential privacy.
//   - Expose the worst-case likelihood ratio and the tightest ε it implies.
//
// Definitions:
//   - p = p00/p01 (+Inf when p01 = 0), q = p11/p10 (+Inf when p10 = 0).
//   - m is ε-DP iff max(p, q) ≤ e^ε.
//
// Determinism:
//   - Pure functions of their arguments; nothing is retained.

package grr

import "math"

// LikelihoodRatio returns max(p00/p01, p11/p10), with a zero denominator
// mapping its ratio to +Inf.
func LikelihoodRatio(m DesignMatrix) float64 {
	p := math.Inf(1)
	if m.p[0][1] != 0 {
		p = m.p[0][0] / m.p[0][1]
	}

	q := math.Inf(1)
	if m.p[1][0] != 0 {
		q = m.p[1][1] / m.p[1][0]
	}

	return math.Max(p, q)
}

// SatisfiesEpsilon reports whether m is eps-differentially private:
// LikelihoodRatio(m) ≤ exp(eps) + tol.
//
// tol only absorbs float64 rounding when auditing a matrix calibrated for
// exactly eps (see CalibrationTolerance); exact audits pass 0.
// eps = +Inf is accepted and always satisfied.
//
// Errors:
//   - ErrInvalidEpsilon if eps < 0 or NaN.
func SatisfiesEpsilon(m DesignMatrix, eps, tol float64) (bool, error) {
	if err := ValidateEpsilon(eps); err != nil {
		return false, grrErrorf(opSatisfiesEpsilon, err)
	}

	return LikelihoodRatio(m) <= math.Exp(eps)+tol, nil
}

// EffectiveEpsilon returns the smallest ε ≥ 0 that m satisfies, up to
// rounding: max(0, ln LikelihoodRatio(m)).
// Designs with a zero off-diagonal cell yield +Inf.
func EffectiveEpsilon(m DesignMatrix) float64 {
	r := LikelihoodRatio(m)
	if r <= 1 {
		return 0
	}
	return math.Log(r)
}
