// SPDX-License-Identifier: MIT
// Package grr: sentinel error set.
// All exported operations return these sentinels (possibly wrapped with an
// operation tag) and tests match them via errors.Is. No operation panics on
// user-supplied values.

package grr

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "grr: ...". Operations wrap sentinels as
// "<Op>: <sentinel>" through grrErrorf, so errors.Is keeps working.
//
// ERROR PRIORITY (enforced in tests):
// probability range -> row sums -> epsilon sign -> invertibility.

var (
	// ErrInvalidProbability is returned when a probability lies outside [0,1],
	// is NaN, or when a design-matrix row does not sum to exactly 1.
	ErrInvalidProbability = errors.New("grr: invalid probability")

	// ErrInvalidEpsilon is returned when a privacy budget ε is negative or NaN.
	ErrInvalidEpsilon = errors.New("grr: epsilon cannot be negative")

	// ErrNonInvertible signals that the de-biasing inversion divides by zero
	// (p00 = 0.5): no information about the true split survives perturbation.
	ErrNonInvertible = errors.New("grr: mechanism is not invertible")

	// ErrMissingProportion is returned by ObservedMass when neither pi0 nor
	// pi1 was supplied.
	ErrMissingProportion = errors.New("grr: no population proportion supplied")

	// ErrUnknownOutcome marks an Outcome other than No or Yes.
	ErrUnknownOutcome = errors.New("grr: outcome must be 0 or 1")

	// ErrNotImplemented marks an operation that is part of the surface but
	// has no behavior yet (EstimateVariance).
	ErrNotImplemented = errors.New("grr: operation not implemented")
)

// Operation tags used in error wrappers.
const (
	opNewDesignMatrix      = "NewDesignMatrix"
	opNewFromProbabilities = "NewFromProbabilities"
	opSatisfiesEpsilon     = "SatisfiesEpsilon"
	opObservedMass         = "ObservedMass"
	opUnbiasedEstimate     = "UnbiasedEstimate"
	opEstimateVariance     = "EstimateVariance"
)

// grrErrorf wraps err with the operation tag.
func grrErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
