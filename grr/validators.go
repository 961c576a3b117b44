// SPDX-License-Identifier: MIT
// Package: grr
//
// Purpose:
//   - Single source of truth for the guards used by the constructor, the
//     auditor and the estimator.
//   - Return plain sentinel errors tagged with the offending field; call
//     sites wrap with the operation name.
//
// Note:
//   - Row sums are compared with ==. There is deliberately no tolerance at
//     this layer: 0.7+0.3 passes, 0.1+0.2+0.7 style inputs may not.

package grr

import (
	"fmt"
	"math"
)

// validatorErrorf tags err with the name of the checked field.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateProbability ensures v is a number in the closed interval [0,1].
// NaN is rejected.
func ValidateProbability(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return validatorErrorf(name, ErrInvalidProbability)
	}
	return nil
}

// ValidateRowSums ensures both rows of the row-major table sum to exactly 1.
//
// The check is on ROWS (p00+p01, p10+p11) even though p_uv reads as
// P(Y=u | X=v), which would make the columns the stochastic direction.
// Symmetric matrices satisfy both conventions.
func ValidateRowSums(p [2][2]float64) error {
	if p[0][0]+p[0][1] != 1.0 {
		return validatorErrorf("row 0 sum", ErrInvalidProbability)
	}
	if p[1][0]+p[1][1] != 1.0 {
		return validatorErrorf("row 1 sum", ErrInvalidProbability)
	}
	return nil
}

// ValidateEpsilon ensures eps is non-negative. +Inf is accepted.
func ValidateEpsilon(eps float64) error {
	if math.IsNaN(eps) || eps < 0 {
		return validatorErrorf("eps", ErrInvalidEpsilon)
	}
	return nil
}

// validateOutcome rejects outcomes other than No and Yes.
func validateOutcome(o Outcome) error {
	if !o.Valid() {
		return validatorErrorf(o.String(), ErrUnknownOutcome)
	}
	return nil
}

// cellNames labels the four cells in row-major order for diagnostics.
var cellNames = [2][2]string{{"p00", "p01"}, {"p10", "p11"}}
