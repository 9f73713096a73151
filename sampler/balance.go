package sampler

import (
	"math"

	"github.com/katalvlaran/bayesmc/chain"
	"github.com/katalvlaran/bayesmc/dist"
	"github.com/katalvlaran/bayesmc/model"
)

// balance runs the univariate adaptive Metropolis pass: BurnIn−1 outer
// iterations, each walking every parameter one component at a time, retrying
// a rejected component (up to MaxInnerIter) before moving on. At every
// CheckpointInterval outer iterations the per-parameter acceptance rates are
// compared against TargetBalanceRate±BalanceTolerance and each parameter's
// proposal variance is rescaled by ScaleUp/ScaleDown accordingly.
//
// A single shared step size converges slowly when parameters live on very
// different natural scales; equalizing the rates first is what makes the
// correlated multivariate walk afterwards affordable.
//
// Only the final state and the tuned variances survive; the trajectory is
// discarded. An exhausted inner loop returns ErrStuckChain.
func (r *Runner) balance(seed chain.Sample) (chain.Sample, []float64, error) {
	vars, err := r.startingVariances()
	if err != nil {
		return chain.Sample{}, nil, err
	}

	z, err := dist.NewGaussian(0, 1, dist.DeriveSource(r.opts.Seed, streamBalance))
	if err != nil {
		return chain.Sample{}, nil, err
	}

	var (
		cur    = seed.Parms()
		curLP  = seed.LogPosterior()
		trials = make([]int, r.dim)
		succ   = make([]int, r.dim)
	)
	for iter := 1; iter < r.opts.BurnIn; iter++ {
		for j := 0; j < r.dim; j++ {
			if !r.balanceComponent(cur, &curLP, j, vars[j], z, trials, succ) {
				return chain.Sample{}, nil, ErrStuckChain
			}
		}
		if iter%r.opts.CheckpointInterval == 0 {
			r.rebalance(iter, vars, trials, succ)
		}
	}
	return chain.NewSample(cur, curLP), vars, nil
}

// startingVariances extracts the diagonal of the model's starting proposal,
// the per-parameter step sizes the balancer tunes from.
func (r *Runner) startingVariances() ([]float64, error) {
	prop, err := model.StartingProposal(r.model, r.opts.CoefVar, dist.DeriveSource(r.opts.Seed, streamBalance+100))
	if err != nil {
		return nil, err
	}
	cov := prop.Covariance()
	vars := make([]float64, r.dim)
	for i := range vars {
		vars[i] = cov.At(i, i)
	}
	return vars, nil
}

// balanceComponent retries single-component proposals on index j until one
// is accepted or MaxInnerIter is exhausted. cur and curLP are advanced in
// place on acceptance; false reports a stuck component.
func (r *Runner) balanceComponent(cur []float64, curLP *float64, j int, variance float64, z *dist.Gaussian, trials, succ []int) bool {
	sd := math.Sqrt(variance)
	for inner := 0; inner < r.opts.MaxInnerIter; inner++ {
		trials[j]++
		old := cur[j]
		cur[j] = old + z.Rand()*sd

		// Zero fixed-prior density short-circuits the (possibly expensive)
		// likelihood evaluation; −∞ is the ordinary reject outcome.
		if !math.IsInf(r.priors.LogDensityFixed(cur), -1) {
			lp := r.logPosterior(cur)
			if r.accept(lp - *curLP) {
				*curLP = lp
				succ[j]++
				return true
			}
		}
		cur[j] = old
	}
	return false
}

// rebalance applies the per-parameter variance adjustment at a checkpoint
// and resets the counters.
func (r *Runner) rebalance(iter int, vars []float64, trials, succ []int) {
	cp := BalanceCheckpoint{
		Iteration: iter,
		Rates:     make([]float64, r.dim),
		Variances: make([]float64, r.dim),
	}
	for j := 0; j < r.dim; j++ {
		rate := 0.0
		if trials[j] > 0 {
			rate = float64(succ[j]) / float64(trials[j])
		}
		switch {
		case rate > r.opts.TargetBalanceRate+r.opts.BalanceTolerance:
			vars[j] *= r.opts.ScaleUp
		case rate < r.opts.TargetBalanceRate-r.opts.BalanceTolerance:
			vars[j] *= r.opts.ScaleDown
		}
		cp.Rates[j] = rate
		cp.Variances[j] = vars[j]
		trials[j], succ[j] = 0, 0
	}
	r.balHist = append(r.balHist, cp)
	r.logger.Printf("run %s: balancing %d, acceptance %v", r.id, iter, cp.Rates)
}
