package sampler

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/bayesmc/chain"
)

// Credible-interval tail probabilities of the posterior summary.
const (
	CredibleLowerTail = 0.025
	CredibleUpperTail = 0.975
)

// Result is the posterior summary of a converged run: empirical moments and
// quantile-based credible intervals of the thinned sample, plus the LPML
// model-comparison statistic.
type Result struct {
	// Names are the parameter names in registration order; every vector and
	// matrix below is indexed consistently with it.
	Names []string

	// Mean is the empirical posterior mean.
	Mean []float64

	// Covariance is the empirical posterior covariance.
	Covariance *mat.SymDense

	// Lower and Upper bound the equal-tailed 95% credible interval of each
	// parameter (empirical 2.5% and 97.5% quantiles).
	Lower []float64
	Upper []float64

	// LPML is the log pseudo-marginal likelihood: the sum over subjects of
	// the log Conditional Predictive Ordinate, where each CPO is the
	// harmonic mean of the subject's likelihood over the thinned sample.
	// Deliberately NOT divided by the number of subjects; that matches the
	// reference formula this engine reproduces, and normalizing would change
	// the model-comparison semantics.
	LPML float64

	// Sample is the thinned posterior sample (burn-in trimmed, every k-th
	// entry kept in chain order).
	Sample []chain.Sample
}

// Result returns the posterior summary of the last run, computing it lazily
// on first access and caching it until the next Estimate call.
//
// A non-converged run refuses with ErrNotConverged: the raw chain stays
// available through Chain for diagnosis, but no partial or stale posterior
// statistic is ever substituted.
func (r *Runner) Result() (*Result, error) {
	if r.phase != PhaseConverged {
		return nil, ErrNotConverged
	}
	if r.result != nil {
		return r.result, nil
	}
	r.result = r.finalize()
	return r.result, nil
}

// finalize builds the Result from the completed raw chain.
func (r *Runner) finalize() *Result {
	sel := thin(r.chain, r.opts.BurnIn, r.opts.ThinningInterval)
	s := len(sel)

	data := mat.NewDense(s, r.dim, nil)
	for i, smp := range sel {
		for j := 0; j < r.dim; j++ {
			data.Set(i, j, smp.Parm(j))
		}
	}

	res := &Result{
		Names:      r.priors.Names(),
		Mean:       make([]float64, r.dim),
		Covariance: mat.NewSymDense(r.dim, nil),
		Lower:      make([]float64, r.dim),
		Upper:      make([]float64, r.dim),
		Sample:     sel,
	}
	stat.CovarianceMatrix(res.Covariance, data, nil)

	col := make([]float64, s)
	for j := 0; j < r.dim; j++ {
		mat.Col(col, j, data)
		res.Mean[j] = stat.Mean(col, nil)
		sort.Float64s(col)
		res.Lower[j] = stat.Quantile(CredibleLowerTail, stat.Empirical, col, nil)
		res.Upper[j] = stat.Quantile(CredibleUpperTail, stat.Empirical, col, nil)
	}

	res.LPML = r.lpml(sel)
	return res
}

// thin trims the first burnIn entries and keeps every k-th remaining entry,
// in chain order: thinned[t] == raw[burnIn + t·k].
func thin(c *chain.Chain, burnIn, k int) []chain.Sample {
	if c == nil {
		return nil
	}
	var out []chain.Sample
	for i := burnIn; i < c.Len(); i += k {
		out = append(out, c.At(i))
	}
	return out
}

// lpml computes Σ_subjects log(CPO), CPO being the harmonic mean of the
// per-subject likelihood over the thinned sample. A zero likelihood anywhere
// drives that subject's CPO to zero and the total to −∞, faithfully.
func (r *Runner) lpml(sel []chain.Sample) float64 {
	s := float64(len(sel))
	buf := make([]float64, r.dim)

	total := 0.0
	for subj := 0; subj < r.model.NbSubjects(); subj++ {
		inv := 0.0
		for _, smp := range sel {
			l := r.model.LikelihoodOfSubject(smp.CopyParms(buf), subj)
			if l <= 0 {
				inv = math.Inf(1)
				break
			}
			inv += 1 / l
		}
		total += math.Log(s / inv)
	}
	return total
}
