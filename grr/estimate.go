// SPDX-License-Identifier: MIT
// Package: grr
//
// Purpose:
//   - Forward mode: marginal mass of the reported bit given a true split.
//   - Inverse mode: de-biased estimate of the true split from observed shares.
//
// Exposed API:
//   - ObservedMass(m, shares...)       -> Mass
//   - UnbiasedEstimate(m, observed...) -> Estimate
//   - EstimateVariance(m, observed...) -> ErrNotImplemented
//
// Symmetric precondition:
//   - UnbiasedEstimate inverts the forward equation assuming p00 = p11 and
//     uses p00 for BOTH outcomes. With an asymmetric design the pi1 estimate
//     is biased. OptimalFor always returns a symmetric design.

package grr

// ObservedMass returns P(Y=0) and P(Y=1) for a population whose true split
// is given by one share:
//
//	P(Y=0) = pi0*p00 + pi1*p01
//	P(Y=1) = pi1*p11 + pi0*p10
//
// Derivation rule:
//   - A supplied pi0 sets pi1 = 1 - pi0; afterwards a supplied pi1 sets
//     pi0 = 1 - pi1. When both are passed, pi1 wins and pi0 is re-derived,
//     whatever the argument order. Repeated shares of one outcome: last wins.
//   - Shares are assumed to be proportions; out-of-range values are used as-is.
//
// Errors:
//   - ErrMissingProportion when shares is empty.
//   - ErrUnknownOutcome for a share with an outcome other than No/Yes.
func ObservedMass(m DesignMatrix, shares ...Proportion) (Mass, error) {
	if len(shares) == 0 {
		return Mass{}, grrErrorf(opObservedMass, ErrMissingProportion)
	}

	var given [2]*float64
	for i := range shares {
		if err := validateOutcome(shares[i].Outcome); err != nil {
			return Mass{}, grrErrorf(opObservedMass, err)
		}
		given[shares[i].Outcome] = &shares[i].Value
	}

	var pi0, pi1 float64
	if given[No] != nil {
		pi0 = *given[No]
		pi1 = 1.0 - pi0
	}
	if given[Yes] != nil {
		pi1 = *given[Yes]
		pi0 = 1.0 - pi1
	}

	return Mass{
		Y0: pi0*m.p[0][0] + pi1*m.p[0][1],
		Y1: pi1*m.p[1][1] + pi0*m.p[1][0],
	}, nil
}

// UnbiasedEstimate inverts the forward mass for every supplied observed share:
//
//	piHat_k = (p00 - 1)/(2*p00 - 1) + lambda_k/(2*p00 - 1)
//
// Implementation:
//   - Stage 1: each observed share must have a known outcome and lie in [0,1].
//   - Stage 2: p00 = 0.5 makes the denominator zero ⇒ ErrNonInvertible.
//     The check runs even when no share is supplied.
//   - Stage 3: evaluate the formula per supplied outcome; absent outcomes
//     stay absent in the result.
//
// The formula uses p00 for both outcomes and is exact only for symmetric
// designs (see IsSymmetric).
//
// Errors:
//   - ErrUnknownOutcome, ErrInvalidProbability, ErrNonInvertible.
func UnbiasedEstimate(m DesignMatrix, observed ...Proportion) (Estimate, error) {
	for _, l := range observed {
		if err := validateOutcome(l.Outcome); err != nil {
			return Estimate{}, grrErrorf(opUnbiasedEstimate, err)
		}
		if err := ValidateProbability("lambda"+l.Outcome.String(), l.Value); err != nil {
			return Estimate{}, grrErrorf(opUnbiasedEstimate, err)
		}
	}

	p00 := m.p[0][0]
	den := 2*p00 - 1
	if den == 0 {
		return Estimate{}, grrErrorf(opUnbiasedEstimate, ErrNonInvertible)
	}

	var est Estimate
	for _, l := range observed {
		est.set(l.Outcome, (p00-1)/den+l.Value/den)
	}

	return est, nil
}

// EstimateVariance would return the variance of the UnbiasedEstimate
// estimators. It has no defined behavior yet and always fails with
// ErrNotImplemented, so callers can tell "absent" from "zero".
func EstimateVariance(_ DesignMatrix, _ ...Proportion) (Estimate, error) {
	return Estimate{}, grrErrorf(opEstimateVariance, ErrNotImplemented)
}
