package sampler

import "github.com/katalvlaran/bayesmc/chain"

// Private surfaces re-exported for white-box tests only.

// AcceptProbabilityForTest exposes the Metropolis ratio.
var AcceptProbabilityForTest = acceptProbability

// ThinForTest exposes the burn-in trim + thinning selection.
var ThinForTest = thin

// FindSeedForTest exposes the seeding stage.
func (r *Runner) FindSeedForTest() (chain.Sample, error) { return r.findSeed() }

// LogPosteriorForTest exposes the target density.
func (r *Runner) LogPosteriorForTest(parms []float64) float64 { return r.logPosterior(parms) }

// BalanceForTest exposes the balancing stage.
func (r *Runner) BalanceForTest(seed chain.Sample) (chain.Sample, []float64, error) {
	return r.balance(seed)
}

// PrepareForTest initializes the per-run random state that Estimate would
// normally set up, so individual stages can be driven directly.
func (r *Runner) PrepareForTest() {
	r.prepare()
}
