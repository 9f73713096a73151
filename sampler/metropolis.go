package sampler

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bayesmc/chain"
	"github.com/katalvlaran/bayesmc/dist"
)

// mainLoop runs the full multivariate random-walk Metropolis-Hastings loop:
// TotalAccepted−1 outer iterations starting from the balanced state, whose
// sample becomes chain entry 0.
//
// The proposal is a multivariate Gaussian with the balanced per-parameter
// variances on the diagonal, re-centered at the last accepted state before
// every outer iteration. During the first BurnIn iterations the whole
// covariance is rescaled at every CheckpointInterval when the global
// acceptance rate leaves [LowerAcceptRate, UpperAcceptRate]; after burn-in
// the covariance is frozen (the retained chain must be stationary) and only
// progress is logged, every ReportInterval iterations.
//
// An outer iteration that exhausts MaxInnerIter without acceptance returns
// ErrStuckChain; the chain accumulated so far is kept on the Runner.
func (r *Runner) mainLoop(state chain.Sample) error {
	cov := mat.NewSymDense(r.dim, nil)
	for i, v := range r.tunedVar {
		cov.SetSym(i, i, v)
	}
	prop, err := dist.NewGaussianVector(state.Parms(), cov, dist.DeriveSource(r.opts.Seed, streamMainWalk))
	if err != nil {
		return err
	}

	ch := chain.New(r.opts.TotalAccepted)
	ch.Append(state)
	r.chain = ch

	var (
		cur    = state.Parms()
		curLP  = state.LogPosterior()
		cand   = make([]float64, r.dim)
		trials = 0
		succ   = 0
		scale  = 1.0
	)
	for iter := 1; iter < r.opts.TotalAccepted; iter++ {
		if err := prop.SetMean(cur); err != nil {
			return err
		}

		accepted := false
		for inner := 0; inner < r.opts.MaxInnerIter; inner++ {
			trials++
			if _, err := prop.Rand(cand); err != nil {
				return err
			}
			if math.IsInf(r.priors.LogDensityFixed(cand), -1) {
				continue
			}
			lp := r.logPosterior(cand)
			if r.accept(lp - curLP) {
				copy(cur, cand)
				curLP = lp
				succ++
				accepted = true
				break
			}
		}
		if !accepted {
			return ErrStuckChain
		}
		ch.Append(chain.NewSample(cur, curLP))

		switch {
		case iter < r.opts.BurnIn && iter%r.opts.CheckpointInterval == 0:
			rate := float64(succ) / float64(trials)
			switch {
			case rate > r.opts.UpperAcceptRate:
				if err := prop.ScaleCovariance(r.opts.ScaleUp); err != nil {
					return err
				}
				scale *= r.opts.ScaleUp
			case rate < r.opts.LowerAcceptRate:
				if err := prop.ScaleCovariance(r.opts.ScaleDown); err != nil {
					return err
				}
				scale *= r.opts.ScaleDown
			}
			r.mainHist = append(r.mainHist, MainCheckpoint{Iteration: iter, Rate: rate, Scale: scale})
			r.logger.Printf("run %s: burn-in %d, acceptance %.3f, scale %.4f", r.id, iter, rate, scale)
			trials, succ = 0, 0
		case iter >= r.opts.BurnIn && iter%r.opts.ReportInterval == 0:
			r.logger.Printf("run %s: iteration %d, logPosterior %.6f", r.id, iter, curLP)
		}
	}
	return nil
}
