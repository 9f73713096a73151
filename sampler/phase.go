package sampler

// Phase is the state of an estimation run. Transitions are strictly
// sequential; Failed and Converged are terminal until Estimate is invoked
// again, which resets to NotStarted and restarts the whole pipeline.
type Phase int

const (
	// PhaseNotStarted: no estimation has run yet (or a re-run just reset).
	PhaseNotStarted Phase = iota

	// PhaseSeeding: searching the prior grid for a finite-likelihood seed.
	PhaseSeeding

	// PhaseBalancing: univariate per-parameter variance balancing.
	PhaseBalancing

	// PhaseMainSampling: the multivariate random-walk Metropolis loop.
	PhaseMainSampling

	// PhaseConverged: terminal success; posterior statistics are available.
	PhaseConverged

	// PhaseFailed: terminal failure; only the raw chain and the tuning
	// history remain queryable.
	PhaseFailed
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseSeeding:
		return "Seeding"
	case PhaseBalancing:
		return "Balancing"
	case PhaseMainSampling:
		return "MainSampling"
	case PhaseConverged:
		return "Converged"
	case PhaseFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}
