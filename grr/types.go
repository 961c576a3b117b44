// SPDX-License-Identifier: MIT
// Package grr: value types shared by the estimator and the mechanism.

package grr

import "fmt"

// Outcome is one of the two values of the sensitive binary attribute,
// used both for the true bit X and for the reported bit Y.
type Outcome int

const (
	// No is the outcome 0.
	No Outcome = 0

	// Yes is the outcome 1.
	Yes Outcome = 1
)

// Valid reports whether o is No or Yes.
func (o Outcome) Valid() bool {
	return o == No || o == Yes
}

// Flip returns the other outcome.
func (o Outcome) Flip() Outcome {
	return 1 - o
}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case No:
		return "0"
	case Yes:
		return "1"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Proportion is the share of a population attributed to one outcome.
// It carries either a true share (pi) or an observed share (lambda);
// the operation receiving it decides which.
type Proportion struct {
	Outcome Outcome
	Value   float64
}

// Pi0 is the true share of individuals whose private bit is 0.
func Pi0(v float64) Proportion { return Proportion{Outcome: No, Value: v} }

// Pi1 is the true share of individuals whose private bit is 1.
func Pi1(v float64) Proportion { return Proportion{Outcome: Yes, Value: v} }

// Lambda0 is the observed share of reported 0s.
func Lambda0(v float64) Proportion { return Proportion{Outcome: No, Value: v} }

// Lambda1 is the observed share of reported 1s.
func Lambda1(v float64) Proportion { return Proportion{Outcome: Yes, Value: v} }

// Mass is the marginal distribution of the reported bit:
// Y0 = P(Y=0), Y1 = P(Y=1).
type Mass struct {
	Y0 float64
	Y1 float64
}

// At returns P(Y=o). Unknown outcomes yield 0.
func (m Mass) At(o Outcome) float64 {
	switch o {
	case No:
		return m.Y0
	case Yes:
		return m.Y1
	default:
		return 0
	}
}

// Estimate holds de-biased estimates of the true shares. Only the outcomes
// whose observed share was supplied are present.
type Estimate struct {
	pi    [2]float64
	known [2]bool
}

// Get returns the estimate for o and whether it was computed.
func (e Estimate) Get(o Outcome) (float64, bool) {
	if !o.Valid() {
		return 0, false
	}
	return e.pi[o], e.known[o]
}

// Pi0 returns the estimate of the true 0-share (0 if absent).
func (e Estimate) Pi0() float64 { return e.pi[No] }

// Pi1 returns the estimate of the true 1-share (0 if absent).
func (e Estimate) Pi1() float64 { return e.pi[Yes] }

// Len is the number of outcomes present in e.
func (e Estimate) Len() int {
	n := 0
	for _, k := range e.known {
		if k {
			n++
		}
	}
	return n
}

func (e *Estimate) set(o Outcome, v float64) {
	e.pi[o] = v
	e.known[o] = true
}
