// Package randresp is a small toolkit for generalized randomized response:
// collecting a sensitive yes/no attribute from individuals while bounding,
// in the ε-differential-privacy sense, what any single answer reveals.
//
// 🚀 What is randomized response?
//
//	Each respondent reports a randomized version of their private bit,
//	drawn from a 2×2 design matrix. The collector never learns an individual
//	bit, yet the population share can be recovered from the perturbed
//	answers because the perturbation is known.
//
// Under the hood, the module is organized in two packages:
//
//	grr/    - DesignMatrix, the ε-DP audit, utility-optimal calibration,
//	          forward mass and de-biased estimation, the owning Mechanism
//	survey/ - respondent-side perturbation, tallies and Monte Carlo studies
//
// Quick example:
//
//	mech := grr.New()
//	mech.SetOptimalUtility(1.0)
//	est, err := mech.UnbiasedEstimate(grr.Lambda1(0.42))
//
// See examples/ for an end-to-end survey.
//
//	go get github.com/katalvlaran/randresp
package randresp
