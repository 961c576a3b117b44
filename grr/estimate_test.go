// SPDX-License-Identifier: MIT
package grr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randresp/grr"
)

// TestObservedMass_Direct: with no perturbation the reported split equals
// the true split, whichever share is given.
func TestObservedMass_Direct(t *testing.T) {
	t.Parallel()

	m := mustDesign(t, 1, 0, 0, 1)
	for _, pi := range tenths() {
		got, err := grr.ObservedMass(m, grr.Pi1(pi))
		require.NoError(t, err)
		assert.InDelta(t, pi, got.Y1, 1e-12, "P(Y=1) for pi1=%g", pi)
		assert.InDelta(t, 1-pi, got.Y0, 1e-12, "P(Y=0) for pi1=%g", pi)

		got, err = grr.ObservedMass(m, grr.Pi0(pi))
		require.NoError(t, err)
		assert.InDelta(t, pi, got.Y0, 1e-12, "P(Y=0) for pi0=%g", pi)
		assert.InDelta(t, 1-pi, got.Y1, 1e-12, "P(Y=1) for pi0=%g", pi)
	}
}

// TestObservedMass_MaxPrivacy: blind responses carry no information.
func TestObservedMass_MaxPrivacy(t *testing.T) {
	t.Parallel()

	for _, pi := range tenths() {
		got, err := grr.ObservedMass(grr.MaxPrivacy, grr.Pi1(pi))
		require.NoError(t, err)
		assert.InDelta(t, 0.5, got.Y1, 1e-12, "pi1=%g", pi)
		assert.InDelta(t, 0.5, got.Y0, 1e-12, "pi1=%g", pi)
	}
}

// TestObservedMass_Pi1Overrides: when both shares are passed pi1 wins and
// pi0 is re-derived, independent of argument order.
func TestObservedMass_Pi1Overrides(t *testing.T) {
	t.Parallel()

	m := mustDesign(t, 0.75, 0.25, 0.25, 0.75)
	want := grr.Mass{Y0: 0.625, Y1: 0.375}

	got, err := grr.ObservedMass(m, grr.Pi0(0.9), grr.Pi1(0.25))
	require.NoError(t, err)
	requireMass(t, want, got)

	got, err = grr.ObservedMass(m, grr.Pi1(0.25), grr.Pi0(0.9))
	require.NoError(t, err)
	requireMass(t, want, got)

	only, err := grr.ObservedMass(m, grr.Pi1(0.25))
	require.NoError(t, err)
	requireMass(t, want, only)
}

// TestObservedMass_OutOfRangeNotValidated reproduces the unchecked domain.
func TestObservedMass_OutOfRangeNotValidated(t *testing.T) {
	t.Parallel()

	got, err := grr.ObservedMass(grr.Direct, grr.Pi1(1.5))
	require.NoError(t, err)
	requireMass(t, grr.Mass{Y0: -0.5, Y1: 1.5}, got)
}

// TestObservedMass_Errors covers the missing share and unknown outcomes.
func TestObservedMass_Errors(t *testing.T) {
	t.Parallel()

	_, err := grr.ObservedMass(grr.MaxPrivacy)
	assert.ErrorIs(t, err, grr.ErrMissingProportion)

	_, err = grr.ObservedMass(grr.MaxPrivacy, grr.Proportion{Outcome: 3, Value: 0.5})
	assert.ErrorIs(t, err, grr.ErrUnknownOutcome)
}

// TestMass_At maps outcomes to fields.
func TestMass_At(t *testing.T) {
	t.Parallel()

	m := grr.Mass{Y0: 0.25, Y1: 0.75}
	assert.Equal(t, 0.25, m.At(grr.No))
	assert.Equal(t, 0.75, m.At(grr.Yes))
	assert.Equal(t, 0.0, m.At(grr.Outcome(9)))
}

// TestUnbiasedEstimate_Symmetric inverts a known forward mass exactly.
func TestUnbiasedEstimate_Symmetric(t *testing.T) {
	t.Parallel()

	m := mustDesign(t, 0.75, 0.25, 0.25, 0.75)
	est, err := grr.UnbiasedEstimate(m, grr.Lambda0(0.625), grr.Lambda1(0.375))
	require.NoError(t, err)

	assert.Equal(t, 2, est.Len())
	assert.InDelta(t, 0.75, est.Pi0(), 1e-12)
	assert.InDelta(t, 0.25, est.Pi1(), 1e-12)
}

// TestUnbiasedEstimate_RoundTrip: forward then inverse recovers pi for the
// calibrated (symmetric) design.
func TestUnbiasedEstimate_RoundTrip(t *testing.T) {
	t.Parallel()

	m := grr.OptimalFor(1)
	for _, pi := range tenths() {
		mass, err := grr.ObservedMass(m, grr.Pi1(pi))
		require.NoError(t, err)

		est, err := grr.UnbiasedEstimate(m, grr.Lambda0(mass.Y0), grr.Lambda1(mass.Y1))
		require.NoError(t, err)
		assert.InDelta(t, pi, est.Pi1(), 1e-9, "pi1=%g", pi)
		assert.InDelta(t, 1-pi, est.Pi0(), 1e-9, "pi1=%g", pi)
	}
}

// TestUnbiasedEstimate_Partial: only supplied outcomes are estimated.
func TestUnbiasedEstimate_Partial(t *testing.T) {
	t.Parallel()

	m := mustDesign(t, 0.75, 0.25, 0.25, 0.75)
	est, err := grr.UnbiasedEstimate(m, grr.Lambda1(0.5))
	require.NoError(t, err)

	assert.Equal(t, 1, est.Len())
	_, ok := est.Get(grr.No)
	assert.False(t, ok, "pi0 was not requested")
	v, ok := est.Get(grr.Yes)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, v, 1e-12)

	_, ok = est.Get(grr.Outcome(2))
	assert.False(t, ok)

	empty, err := grr.UnbiasedEstimate(m)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

// TestUnbiasedEstimate_AsymmetricUsesP00 pins the literal formula: p11 is
// ignored, so an asymmetric design gives a biased pi1.
func TestUnbiasedEstimate_AsymmetricUsesP00(t *testing.T) {
	t.Parallel()

	m := mustDesign(t, 0.75, 0.25, 0.5, 0.5)
	require.False(t, m.IsSymmetric())

	est, err := grr.UnbiasedEstimate(m, grr.Lambda1(0.5))
	require.NoError(t, err)
	assert.InDelta(t, (0.75-1)/0.5+0.5/0.5, est.Pi1(), 1e-12)
}

// TestUnbiasedEstimate_Errors covers the validation order.
func TestUnbiasedEstimate_Errors(t *testing.T) {
	t.Parallel()

	m := mustDesign(t, 0.75, 0.25, 0.25, 0.75)
	for _, v := range []float64{-0.1, 1.5, math.NaN()} {
		_, err := grr.UnbiasedEstimate(m, grr.Lambda1(v))
		assert.ErrorIsf(t, err, grr.ErrInvalidProbability, "lambda1=%v", v)
	}

	_, err := grr.UnbiasedEstimate(m, grr.Proportion{Outcome: -1, Value: 0.5})
	assert.ErrorIs(t, err, grr.ErrUnknownOutcome)

	_, err = grr.UnbiasedEstimate(grr.MaxPrivacy, grr.Lambda1(0.5))
	assert.ErrorIs(t, err, grr.ErrNonInvertible)

	_, err = grr.UnbiasedEstimate(grr.MaxPrivacy)
	assert.ErrorIs(t, err, grr.ErrNonInvertible, "checked even with no shares")

	_, err = grr.UnbiasedEstimate(grr.MaxPrivacy, grr.Lambda0(2))
	assert.ErrorIs(t, err, grr.ErrInvalidProbability, "range check precedes invertibility")
}

// TestEstimateVariance_NotImplemented distinguishes "absent" from "zero".
func TestEstimateVariance_NotImplemented(t *testing.T) {
	t.Parallel()

	est, err := grr.EstimateVariance(grr.OptimalFor(1), grr.Lambda1(0.5))
	assert.ErrorIs(t, err, grr.ErrNotImplemented)
	assert.Equal(t, 0, est.Len())
}
