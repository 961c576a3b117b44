// SPDX-License-Identifier: MIT
// Package: grr
//
// Purpose:
//   - Closed-form utility-optimal calibration for a target ε.
//
// Among symmetric designs, the one with p00 = p11 = e^ε/(1+e^ε) and
// p01 = p10 = 1/(1+e^ε) meets the ε bound with equality and randomizes the
// least. No search or iteration is involved.

package grr

import "math"

// OptimalFor returns the utility-optimal symmetric design for eps.
//
// Behavior highlights:
//   - eps is NOT validated. A negative eps still yields cells in [0,1]
//     (the diagonal drops below 0.5), which is well defined but meaningless;
//     guard with ValidateEpsilon when eps comes from user input.
//   - Row sums are not re-checked: the two closed-form cells may miss 1 by
//     one ulp. keep/flip may exceed e^eps by one ulp; audit with
//     CalibrationTolerance(eps).
//   - eps large enough for e^eps to overflow (including +Inf) yields Direct.
func OptimalFor(eps float64) DesignMatrix {
	e := math.Exp(eps)
	if math.IsInf(e, 1) {
		return Direct
	}

	keep := e / (1 + e)
	flip := 1 / (1 + e)

	return DesignMatrix{p: [2][2]float64{
		{keep, flip},
		{flip, keep},
	}}
}

// CalibrationTolerance returns the audit slack for a design produced by
// OptimalFor(eps): a few ulps of e^eps, so the slack scales with the bound.
// Non-finite e^eps (eps = +Inf, NaN or overflow) yields 0.
func CalibrationTolerance(eps float64) float64 {
	e := math.Exp(eps)
	if math.IsInf(e, 0) || math.IsNaN(e) {
		return 0
	}
	return calibrationULPs * (math.Nextafter(e, math.Inf(1)) - e)
}
