// SPDX-License-Identifier: MIT
// Package grr_test contains test helpers.
//
// Purpose:
//   • Deterministic fixtures (exact dyadic probabilities) so row sums are exact.
//   • Log capture for the zero-perturbation diagnostic.

package grr_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randresp/grr"
)

// approx compares float fields up to 1e-12 absolute error.
var approx = cmpopts.EquateApprox(0, 1e-12)

// captureLogger returns a logger writing text records into the returned buffer.
func captureLogger(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	h := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), buf
}

// mustDesign builds a design or fails the test.
func mustDesign(t *testing.T, p00, p01, p10, p11 float64) grr.DesignMatrix {
	t.Helper()
	m, err := grr.NewDesignMatrix(p00, p01, p10, p11)
	require.NoError(t, err)
	return m
}

// requireMass asserts got equals want up to approx.
func requireMass(t *testing.T, want, got grr.Mass) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("mass mismatch (-want +got):\n%s", diff)
	}
}

// tenths returns 0.0, 0.1, ..., 1.0.
func tenths() []float64 {
	out := make([]float64, 0, 11)
	for i := 0; i <= 10; i++ {
		out = append(out, float64(i)/10)
	}
	return out
}
