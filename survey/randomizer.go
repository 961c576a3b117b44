package survey

import (
	"context"
	"fmt"

	"github.com/katalvlaran/randresp/grr"
)

// ctxCheckEvery is how many respondents Collect processes between
// context checks.
const ctxCheckEvery = 1024

// Randomizer perturbs private bits through a design matrix.
//
// For a true bit x the reported bit is x with probability p_xx (the
// diagonal cell) and the other outcome otherwise, i.e. x flips with the
// row partner 1 - p_xx. grr.ObservedMass uses the off-diagonal cells
// p10 and p01 as the flip probabilities instead; the two agree only for
// symmetric designs (p00 = p11). For an asymmetric design such as
// (0.75, 0.25, 0.5, 0.5) the simulated P(Y=1 | X=0) is 0.25 while the
// forward mass uses 0.5.
type Randomizer struct {
	design grr.DesignMatrix
	src    Source
}

// NewRandomizer binds a design to a randomness source.
// A nil src selects CryptoSource.
func NewRandomizer(design grr.DesignMatrix, src Source) *Randomizer {
	if src == nil {
		src = CryptoSource{}
	}
	return &Randomizer{design: design, src: src}
}

// Design returns the design the randomizer perturbs with.
func (r *Randomizer) Design() grr.DesignMatrix {
	return r.design
}

// Perturb returns the bit reported for the private bit x.
func (r *Randomizer) Perturb(x grr.Outcome) (grr.Outcome, error) {
	if !x.Valid() {
		return x, surveyErrorf("Perturb", fmt.Errorf("%v: %w", x, grr.ErrUnknownOutcome))
	}
	if r.src.Float64() < r.design.At(x, x) {
		return x, nil
	}
	return x.Flip(), nil
}

// Collect perturbs every private bit in truths and tallies the reports.
// The context is checked every ctxCheckEvery respondents; on cancellation
// the partial tally is discarded.
func Collect(ctx context.Context, r *Randomizer, truths []grr.Outcome) (Tally, error) {
	var t Tally
	for i, x := range truths {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Tally{}, surveyErrorf("Collect", err)
			}
		}
		y, err := r.Perturb(x)
		if err != nil {
			return Tally{}, surveyErrorf("Collect", err)
		}
		t.counts[y]++
	}
	return t, nil
}

// Population returns n private bits of which round(n*pi1) are Yes,
// Yes first. The slice is deterministic; only perturbation is random.
func Population(n int, pi1 float64) ([]grr.Outcome, error) {
	if n < 0 {
		return nil, surveyErrorf("Population", ErrBadPopulation)
	}
	if err := grr.ValidateProbability("pi1", pi1); err != nil {
		return nil, surveyErrorf("Population", fmt.Errorf("%w: %w", ErrBadPopulation, err))
	}

	yes := int(float64(n)*pi1 + 0.5)
	out := make([]grr.Outcome, n)
	for i := 0; i < yes; i++ {
		out[i] = grr.Yes
	}
	return out, nil
}
