package survey

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/randresp/grr"
)

// Defaults for a Study left partially configured.
const (
	// DefaultRespondents is the population size per trial.
	DefaultRespondents = 1000

	// DefaultTrials is the number of repeated collections.
	DefaultTrials = 200
)

// Study repeats a randomized-response collection over a fixed population
// and records the de-biased estimate of pi1 from each repetition.
//
// Fields:
//   - Design      - the design every respondent uses.
//   - Respondents - population size (0 ⇒ DefaultRespondents).
//   - Trials      - repetitions, at least 2 (0 ⇒ DefaultTrials).
//   - Pi1         - true share of Yes in the population, in [0,1].
//   - Source      - randomness (nil ⇒ CryptoSource).
//   - Logger      - receives a debug record per finished study (nil ⇒ slog.Default()).
type Study struct {
	Design      grr.DesignMatrix
	Respondents int
	Trials      int
	Pi1         float64
	Source      Source
	Logger      *slog.Logger
}

// Summary describes the sampling distribution of the pi1 estimate.
type Summary struct {
	Trials    int
	Mean      float64   // mean of the estimates
	StdDev    float64   // sample standard deviation of the estimates
	Bias      float64   // Mean - Pi1
	Estimates []float64 // one estimate per trial, in trial order
}

// Run executes the study.
//
// Implementation:
//   - Stage 1: resolve defaults and validate (ErrBadStudy).
//   - Stage 2: build the population once; for each trial Collect, take the
//     observed lambda1 and de-bias it with grr.UnbiasedEstimate.
//   - Stage 3: summarize with montanaflynn/stats.
//
// Errors:
//   - ErrBadStudy, grr.ErrNonInvertible (p00 = 0.5), context errors.
func (s Study) Run(ctx context.Context) (Summary, error) {
	n, trials := s.Respondents, s.Trials
	if n == 0 {
		n = DefaultRespondents
	}
	if trials == 0 {
		trials = DefaultTrials
	}
	if n < 0 || trials < 2 {
		return Summary{}, surveyErrorf("Study.Run", ErrBadStudy)
	}
	truths, err := Population(n, s.Pi1)
	if err != nil {
		return Summary{}, surveyErrorf("Study.Run", fmt.Errorf("%w: %w", ErrBadStudy, err))
	}

	r := NewRandomizer(s.Design, s.Source)
	estimates := make([]float64, 0, trials)
	for i := 0; i < trials; i++ {
		tally, err := Collect(ctx, r, truths)
		if err != nil {
			return Summary{}, surveyErrorf("Study.Run", err)
		}
		_, l1, err := tally.Observed()
		if err != nil {
			return Summary{}, surveyErrorf("Study.Run", err)
		}
		est, err := grr.UnbiasedEstimate(s.Design, l1)
		if err != nil {
			return Summary{}, surveyErrorf("Study.Run", err)
		}
		estimates = append(estimates, est.Pi1())
	}

	mean, err := stats.Mean(estimates)
	if err != nil {
		return Summary{}, surveyErrorf("Study.Run", err)
	}
	sd, err := stats.StandardDeviationSample(estimates)
	if err != nil {
		return Summary{}, surveyErrorf("Study.Run", err)
	}

	sum := Summary{
		Trials:    trials,
		Mean:      mean,
		StdDev:    sd,
		Bias:      mean - s.Pi1,
		Estimates: estimates,
	}

	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("study finished",
		slog.Int("respondents", n),
		slog.Int("trials", trials),
		slog.Float64("pi1", s.Pi1),
		slog.Float64("mean", sum.Mean),
		slog.Float64("stddev", sum.StdDev))

	return sum, nil
}
