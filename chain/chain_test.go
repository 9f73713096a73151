package chain_test

import (
	"testing"

	"github.com/katalvlaran/bayesmc/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSample_Immutability verifies the parameter vector is copied on both
// construction and access.
func TestSample_Immutability(t *testing.T) {
	src := []float64{1, 2, 3}
	s := chain.NewSample(src, -5)

	src[0] = 99
	assert.Equal(t, 1.0, s.Parm(0), "constructor must copy the input slice")

	out := s.Parms()
	out[1] = 99
	assert.Equal(t, 2.0, s.Parm(1), "Parms must return a copy")

	buf := make([]float64, 3)
	got := s.CopyParms(buf)
	assert.Equal(t, []float64{1, 2, 3}, got)
	assert.Equal(t, &buf[0], &got[0], "CopyParms must reuse dst")
}

// TestSample_Ordering checks the total order by log-posterior.
func TestSample_Ordering(t *testing.T) {
	lo := chain.NewSample([]float64{0}, -10)
	hi := chain.NewSample([]float64{0}, -1)

	assert.True(t, lo.Less(hi))
	assert.False(t, hi.Less(lo))
}

// TestChain_AppendOrderAndBest exercises the append-only sequence.
func TestChain_AppendOrderAndBest(t *testing.T) {
	c := chain.New(4)

	_, ok := c.Last()
	assert.False(t, ok, "empty chain has no last sample")
	_, ok = c.Best()
	assert.False(t, ok, "empty chain has no best sample")

	c.Append(chain.NewSample([]float64{1}, -3))
	c.Append(chain.NewSample([]float64{2}, -1))
	c.Append(chain.NewSample([]float64{3}, -2))

	require.Equal(t, 3, c.Len())
	assert.Equal(t, -3.0, c.At(0).LogPosterior(), "append order preserved")

	last, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, 3.0, last.Parm(0))

	best, ok := c.Best()
	require.True(t, ok)
	assert.Equal(t, -1.0, best.LogPosterior(), "best = highest log-posterior")
}
