package survey

import "github.com/katalvlaran/randresp/grr"

// Tally counts reported bits. The zero value is an empty tally.
type Tally struct {
	counts [2]int64
}

// Add records one reported bit.
func (t *Tally) Add(y grr.Outcome) error {
	if !y.Valid() {
		return surveyErrorf("Tally.Add", grr.ErrUnknownOutcome)
	}
	t.counts[y]++
	return nil
}

// Merge adds the counts of o into t.
func (t *Tally) Merge(o Tally) {
	t.counts[0] += o.counts[0]
	t.counts[1] += o.counts[1]
}

// Count returns how many times y was reported.
func (t Tally) Count(y grr.Outcome) int64 {
	if !y.Valid() {
		return 0
	}
	return t.counts[y]
}

// Total is the number of recorded responses.
func (t Tally) Total() int64 {
	return t.counts[0] + t.counts[1]
}

// Observed returns the observed shares lambda0 and lambda1, ready for
// grr.UnbiasedEstimate.
func (t Tally) Observed() (grr.Proportion, grr.Proportion, error) {
	n := t.Total()
	if n == 0 {
		return grr.Proportion{}, grr.Proportion{}, surveyErrorf("Tally.Observed", ErrEmptyTally)
	}
	return grr.Lambda0(float64(t.counts[0]) / float64(n)),
		grr.Lambda1(float64(t.counts[1]) / float64(n)), nil
}
