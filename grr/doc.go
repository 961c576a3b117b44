// Package grr implements the generalized randomized-response mechanism for
// a single sensitive binary attribute.
//
// 🚀 What is randomized response?
//
//	Each individual C_i holds a private bit x_i and sends the untrusted
//	collector a perturbed bit y_i drawn from a 2×2 design matrix
//	p_uv = P[y_i = u | x_i = v]. The collector never sees x_i, yet can
//	recover the population split from the perturbed answers.
//
// ✨ What the package provides:
//   - DesignMatrix      - immutable, validated 2×2 table (rows sum to exactly 1)
//   - SatisfiesEpsilon  - ε-differential-privacy audit of a design
//   - OptimalFor        - utility-optimal symmetric design for a target ε
//   - ObservedMass      - P(Y=0), P(Y=1) for a hypothesized true split
//   - UnbiasedEstimate  - de-biased true split from observed shares
//   - Mechanism         - owns one design and replaces it on calibration
//
// ⚙️ Usage:
//
//	mech := grr.New()              // max privacy, zero utility
//	mech.SetOptimalUtility(1.0)    // ε = 1
//	ok, _ := mech.CheckEpsPrivacy(1.0, grr.CalibrationTolerance(1.0))
//	est, err := mech.UnbiasedEstimate(grr.Lambda1(0.42))
//
// Caveats:
//   - Construction checks ROW sums although p_uv = P[Y=u|X=v] suggests
//     columns; both coincide for symmetric designs.
//   - UnbiasedEstimate assumes p00 = p11.
//   - EstimateVariance returns ErrNotImplemented.
//
// Errors are sentinels (ErrInvalidProbability, ErrInvalidEpsilon,
// ErrNonInvertible, ...) matched with errors.Is.
package grr
