package sampler

import (
	"fmt"
	"io"
	"log"
	"math"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/bayesmc/chain"
	"github.com/katalvlaran/bayesmc/dist"
	"github.com/katalvlaran/bayesmc/model"
	"github.com/katalvlaran/bayesmc/prior"
)

// Substream identifiers for the run's independent random streams. The seed
// search draws through the priors' own sources, so it needs no stream here.
// Models conventionally use low identifiers; the runner starts at 10.
const (
	streamBalance  uint64 = 11
	streamMainWalk uint64 = 12
	streamAccept   uint64 = 13
)

// BalanceCheckpoint records the per-parameter acceptance rates and the
// proposal variances at one balancing checkpoint (after adjustment).
type BalanceCheckpoint struct {
	Iteration int
	Rates     []float64
	Variances []float64
}

// MainCheckpoint records the global acceptance rate and the cumulative
// covariance scale factor at one main-loop checkpoint (after rescaling).
type MainCheckpoint struct {
	Iteration int
	Rate      float64
	Scale     float64
}

// Runner owns one estimation run: the model, its prior registry, the evolving
// chain and the posterior result. Not goroutine-safe; distinct Runners are
// fully independent and may run concurrently.
type Runner struct {
	model  model.Model
	priors *prior.Registry
	opts   Options
	dim    int

	id     uuid.UUID
	logger *log.Logger
	accRNG *rand.Rand

	phase    Phase
	chain    *chain.Chain
	tunedVar []float64
	balHist  []BalanceCheckpoint
	mainHist []MainCheckpoint

	result *Result
}

// New builds a Runner: validates the options, registers the model's priors
// and checks that the registry covers the starting-estimate vector exactly.
// Registration problems are configuration errors, fatal at setup time.
func New(m model.Model, opts Options) (*Runner, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	reg := prior.NewRegistry()
	if err := m.RegisterPriors(reg); err != nil {
		return nil, err
	}
	dim := len(m.StartingEstimate())
	if err := reg.Validate(dim); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Runner{
		model:  m,
		priors: reg,
		opts:   opts,
		dim:    dim,
		logger: logger,
		phase:  PhaseNotStarted,
	}, nil
}

// ID returns the identifier of the most recent (or current) run.
func (r *Runner) ID() uuid.UUID { return r.id }

// Phase returns the current state-machine phase.
func (r *Runner) Phase() Phase { return r.phase }

// Converged reports whether the last run completed successfully.
func (r *Runner) Converged() bool { return r.phase == PhaseConverged }

// Chain returns the raw (un-trimmed, un-thinned) chain of the last run, also
// after a failed run; nil before the main loop started appending.
func (r *Runner) Chain() *chain.Chain { return r.chain }

// ParameterNames returns the registered parameter names in registration order.
func (r *Runner) ParameterNames() []string { return r.priors.Names() }

// ProposalVariances returns the balanced per-parameter proposal variances of
// the last run; nil until balancing completed.
func (r *Runner) ProposalVariances() []float64 {
	return append([]float64(nil), r.tunedVar...)
}

// BalanceHistory returns the balancing checkpoints of the last run.
func (r *Runner) BalanceHistory() []BalanceCheckpoint {
	return append([]BalanceCheckpoint(nil), r.balHist...)
}

// MainHistory returns the main-loop checkpoints of the last run.
func (r *Runner) MainHistory() []MainCheckpoint {
	return append([]MainCheckpoint(nil), r.mainHist...)
}

// Estimate runs the whole pipeline. A previous run's state is discarded
// first, so Estimate may be invoked repeatedly on the same Runner.
//
// On failure the terminal phase is Failed, the raw chain accumulated so far
// stays accessible, and the returned error wraps the stage sentinel.
func (r *Runner) Estimate() error {
	r.prepare()

	r.logger.Printf("run %s: estimation started (dim=%d, burnIn=%d, total=%d)",
		r.id, r.dim, r.opts.BurnIn, r.opts.TotalAccepted)

	r.phase = PhaseSeeding
	seed, err := r.findSeed()
	if err != nil {
		r.phase = PhaseFailed
		return fmt.Errorf("seeding: %w", err)
	}
	r.logger.Printf("run %s: seed found, logPosterior=%.6f", r.id, seed.LogPosterior())

	r.phase = PhaseBalancing
	state, vars, err := r.balance(seed)
	if err != nil {
		// Keep the seed readable for diagnosis; the balancing trajectory is
		// discarded even on success, so there is nothing else to retain.
		c := chain.New(1)
		c.Append(seed)
		r.chain = c
		r.phase = PhaseFailed
		return fmt.Errorf("balancing: %w", err)
	}
	r.tunedVar = vars
	r.logger.Printf("run %s: balancing done, logPosterior=%.6f", r.id, state.LogPosterior())

	r.phase = PhaseMainSampling
	if err := r.mainLoop(state); err != nil {
		r.phase = PhaseFailed
		return fmt.Errorf("sampling: %w", err)
	}

	r.phase = PhaseConverged
	r.logger.Printf("run %s: converged, chain length %d", r.id, r.chain.Len())
	return nil
}

// prepare discards any previous run's state and seeds the per-run streams.
func (r *Runner) prepare() {
	r.phase = PhaseNotStarted
	r.chain = nil
	r.tunedVar = nil
	r.balHist = nil
	r.mainHist = nil
	r.result = nil
	r.id = uuid.New()
	r.accRNG = rand.New(dist.DeriveSource(r.opts.Seed, streamAccept))
}

// logPosterior is the target density: log-likelihood plus the random-effect
// and fixed-effect prior log-densities. Any −∞ (or NaN likelihood) collapses
// the whole value to −∞, the ordinary reject outcome.
func (r *Runner) logPosterior(parms []float64) float64 {
	ll := r.model.LogLikelihood(parms)
	if math.IsInf(ll, -1) || math.IsNaN(ll) {
		return math.Inf(-1)
	}
	return ll + r.priors.LogDensityRandomEffects(parms) + r.priors.LogDensityFixed(parms)
}

// acceptProbability is the Metropolis ratio min(1, exp(Δ log-posterior)).
func acceptProbability(delta float64) float64 {
	if delta >= 0 {
		return 1
	}
	return math.Exp(delta)
}

// accept draws the Metropolis accept/reject decision for Δ log-posterior.
func (r *Runner) accept(delta float64) bool {
	if delta >= 0 {
		return true
	}
	return r.accRNG.Float64() < math.Exp(delta)
}
