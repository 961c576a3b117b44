// Package survey simulates the collection side of randomized response:
// individuals perturb their private bit through a grr design, the
// untrusted collector tallies the reported bits, and repeated studies
// measure how the de-biased estimate behaves.
//
// ✨ Key features:
//   - Randomizer - perturbs one private bit: keeps x with probability p_xx
//   - Tally      - counts reported bits and yields observed shares (lambda)
//   - Collect    - runs a whole population through a Randomizer
//   - Study      - Monte Carlo repetition with mean / std-dev / bias summary
//
// ⚙️ Usage:
//
//	design := grr.OptimalFor(1.0)
//	r := survey.NewRandomizer(design, survey.NewSeededSource(42))
//	truths, _ := survey.Population(1000, 0.3)
//	tally, _ := survey.Collect(ctx, r, truths)
//	l0, l1, _ := tally.Observed()
//	est, _ := grr.UnbiasedEstimate(design, l0, l1)
//
// Randomness:
//
//	NewSeededSource is deterministic (math/rand) and meant for tests and
//	reproducible studies. CryptoSource draws from a cryptographically secure
//	generator and is what a real respondent should use. Neither a Source nor a
//	Randomizer built on a seeded source is safe for concurrent use.
package survey
