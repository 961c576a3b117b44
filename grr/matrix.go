// SPDX-License-Identifier: MIT

// Package grr - DesignMatrix: the 2×2 conditional-probability table.
//
// Purpose:
//   - Hold p_uv = P[Y=u | X=v] for u,v ∈ {0,1}, row-major [[p00,p01],[p10,p11]].
//   - Validate on construction: each cell in [0,1], each ROW summing to exactly 1.
//   - Stay immutable: calibration produces a new value, never edits cells.
//
// Row sums vs column sums:
//   - Reading p_uv as P[Y=u | X=v] makes the columns (p00+p10, p01+p11) the
//     natural stochastic constraint. Construction enforces the rows instead.
//     The two agree for symmetric matrices (p00 = p11), which is what
//     OptimalFor produces; build asymmetric matrices with the row convention.
//
// Complexity quicksheet:
//   - NewDesignMatrix: O(1); every accessor: O(1); no allocations.

package grr

import (
	"fmt"
	"log/slog"
)

// directQuestioningMsg is logged when p00 = p11 = 1.
const directQuestioningMsg = "design matrix is equivalent to direct questioning"

// DesignMatrix is an immutable 2×2 randomized-response design.
//
// The zero value is NOT a valid design (its rows sum to 0); obtain one from
// NewDesignMatrix, DefaultDesignMatrix or OptimalFor.
type DesignMatrix struct {
	p [2][2]float64
}

// MaxPrivacy is the all-0.5 design: responses carry no information.
var MaxPrivacy = DesignMatrix{p: [2][2]float64{
	{DefaultProbability, DefaultProbability},
	{DefaultProbability, DefaultProbability},
}}

// Direct is the identity design (p00 = p11 = 1): equivalent to asking the
// question directly, maximal utility and no privacy.
var Direct = DesignMatrix{p: [2][2]float64{{1, 0}, {0, 1}}}

// NewDesignMatrix validates and builds a design from its four cells.
//
// Implementation:
//   - Stage 1: every cell in [0,1] (NaN rejected), checked p00, p01, p10, p11.
//   - Stage 2: p00+p01 == 1 and p10+p11 == 1, exact float64 equality.
//   - Stage 3: if p00 == p11 == 1, log a warning; construction still succeeds.
//
// Errors:
//   - ErrInvalidProbability (wrapped with the offending cell or row).
func NewDesignMatrix(p00, p01, p10, p11 float64, opts ...Option) (DesignMatrix, error) {
	p := [2][2]float64{{p00, p01}, {p10, p11}}

	for u := 0; u < 2; u++ {
		for v := 0; v < 2; v++ {
			if err := ValidateProbability(cellNames[u][v], p[u][v]); err != nil {
				return DesignMatrix{}, grrErrorf(opNewDesignMatrix, err)
			}
		}
	}
	if err := ValidateRowSums(p); err != nil {
		return DesignMatrix{}, grrErrorf(opNewDesignMatrix, err)
	}

	m := DesignMatrix{p: p}
	if m.IsDirect() {
		o := gatherOptions(opts...)
		o.log().Warn(directQuestioningMsg,
			slog.Float64("p00", p00),
			slog.Float64("p11", p11))
	}

	return m, nil
}

// DefaultDesignMatrix returns MaxPrivacy, the design used when no cells are given.
func DefaultDesignMatrix() DesignMatrix {
	return MaxPrivacy
}

// At returns P[Y=u | X=v]. Invalid outcomes yield 0.
func (m DesignMatrix) At(u, v Outcome) float64 {
	if !u.Valid() || !v.Valid() {
		return 0
	}
	return m.p[u][v]
}

// P00 returns P[Y=0 | X=0].
func (m DesignMatrix) P00() float64 { return m.p[0][0] }

// P01 returns P[Y=0 | X=1].
func (m DesignMatrix) P01() float64 { return m.p[0][1] }

// P10 returns P[Y=1 | X=0].
func (m DesignMatrix) P10() float64 { return m.p[1][0] }

// P11 returns P[Y=1 | X=1].
func (m DesignMatrix) P11() float64 { return m.p[1][1] }

// Rows returns a copy of the table in row-major order.
func (m DesignMatrix) Rows() [2][2]float64 {
	return m.p
}

// IsDirect reports whether m is the zero-perturbation design (p00 = p11 = 1).
func (m DesignMatrix) IsDirect() bool {
	return m.p[0][0] == 1.0 && m.p[1][1] == 1.0
}

// IsSymmetric reports whether p00 == p11. The de-biasing formula of
// UnbiasedEstimate is only exact for symmetric designs.
func (m DesignMatrix) IsSymmetric() bool {
	return m.p[0][0] == m.p[1][1]
}

// String formats m as [[p00, p01], [p10, p11]].
func (m DesignMatrix) String() string {
	return fmt.Sprintf("[[%g, %g], [%g, %g]]", m.p[0][0], m.p[0][1], m.p[1][0], m.p[1][1])
}
