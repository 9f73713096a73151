// Package chain holds the Markov-chain building blocks of the estimation
// pipeline: the immutable accepted-state record (Sample) and the append-only
// sequence of accepted states (Chain).
//
// A Chain is owned by exactly one estimation run; stages only ever append to
// it and read already-written entries, which is what makes independent runs
// embarrassingly parallel.
package chain

// Sample is one accepted parameter vector together with its log-posterior
// (log-likelihood + log-prior density). Immutable once created; samples are
// totally ordered by log-posterior, ties broken arbitrarily.
type Sample struct {
	parms   []float64
	logPost float64
}

// NewSample builds a Sample, copying the parameter vector.
func NewSample(parms []float64, logPosterior float64) Sample {
	return Sample{
		parms:   append([]float64(nil), parms...),
		logPost: logPosterior,
	}
}

// Dim returns the length of the parameter vector.
func (s Sample) Dim() int { return len(s.parms) }

// Parm returns the parameter value at index i.
func (s Sample) Parm(i int) float64 { return s.parms[i] }

// Parms returns a copy of the parameter vector.
func (s Sample) Parms() []float64 {
	return append([]float64(nil), s.parms...)
}

// CopyParms copies the parameter vector into dst (allocated when nil) and
// returns it. Avoids an allocation in hot loops that reuse dst.
func (s Sample) CopyParms(dst []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(s.parms))
	}
	copy(dst, s.parms)
	return dst
}

// LogPosterior returns the log-posterior of the sample.
func (s Sample) LogPosterior() float64 { return s.logPost }

// Less orders samples by log-posterior (ascending).
func (s Sample) Less(other Sample) bool { return s.logPost < other.logPost }

// Chain is the append-only ordered sequence of accepted samples produced by
// one estimation run. The zero value is ready to use.
type Chain struct {
	samples []Sample
}

// New returns an empty chain with capacity for n samples.
func New(n int) *Chain {
	return &Chain{samples: make([]Sample, 0, n)}
}

// Append adds a sample to the end of the chain.
func (c *Chain) Append(s Sample) { c.samples = append(c.samples, s) }

// Len returns the number of samples.
func (c *Chain) Len() int { return len(c.samples) }

// At returns the i-th sample in append order.
func (c *Chain) At(i int) Sample { return c.samples[i] }

// Last returns the most recently appended sample; ok is false on an empty chain.
func (c *Chain) Last() (Sample, bool) {
	if len(c.samples) == 0 {
		return Sample{}, false
	}
	return c.samples[len(c.samples)-1], true
}

// Best returns the sample with the highest log-posterior; ok is false on an
// empty chain.
func (c *Chain) Best() (Sample, bool) {
	if len(c.samples) == 0 {
		return Sample{}, false
	}
	best := c.samples[0]
	for _, s := range c.samples[1:] {
		if best.Less(s) {
			best = s
		}
	}
	return best, true
}
