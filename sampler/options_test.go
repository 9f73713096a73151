package sampler_test

import (
	"testing"

	"github.com/katalvlaran/bayesmc/sampler"
	"github.com/stretchr/testify/assert"
)

// TestDefaultOptions_DocumentedValues pins the documented defaults.
func TestDefaultOptions_DocumentedValues(t *testing.T) {
	o := sampler.DefaultOptions()

	assert.Equal(t, 10000, o.BurnIn)
	assert.Equal(t, 510000, o.TotalAccepted)
	assert.Equal(t, 100000, o.MaxInnerIter)
	assert.Equal(t, 50, o.ThinningInterval)
	assert.Equal(t, 10000, o.InitialGridSize)
	assert.Equal(t, 0, o.MaxSeedAttempts, "seed search unbounded by default")
	assert.InDelta(t, 0.5, o.TargetBalanceRate, 1e-12)
	assert.InDelta(t, 0.05, o.BalanceTolerance, 1e-12)
	assert.InDelta(t, 0.40, o.UpperAcceptRate, 1e-12)
	assert.InDelta(t, 0.30, o.LowerAcceptRate, 1e-12)
	assert.InDelta(t, 1.44, o.ScaleUp, 1e-12)
	assert.InDelta(t, 0.64, o.ScaleDown, 1e-12)
	assert.Equal(t, 1000, o.CheckpointInterval)
	assert.Equal(t, 10000, o.ReportInterval)
}

// TestNew_RejectsBadOptions walks the validation table through New.
func TestNew_RejectsBadOptions(t *testing.T) {
	mutations := []func(*sampler.Options){
		func(o *sampler.Options) { o.BurnIn = 0 },
		func(o *sampler.Options) { o.TotalAccepted = o.BurnIn },
		func(o *sampler.Options) { o.MaxInnerIter = 0 },
		func(o *sampler.Options) { o.ThinningInterval = 0 },
		func(o *sampler.Options) { o.InitialGridSize = -1 },
		func(o *sampler.Options) { o.MaxSeedAttempts = -1 },
		func(o *sampler.Options) { o.CoefVar = 0 },
		func(o *sampler.Options) { o.TargetBalanceRate = 1 },
		func(o *sampler.Options) { o.BalanceTolerance = 0 },
		func(o *sampler.Options) { o.LowerAcceptRate = 0.5 }, // ≥ upper
		func(o *sampler.Options) { o.UpperAcceptRate = 1.0 },
		func(o *sampler.Options) { o.ScaleUp = 1.0 },
		func(o *sampler.Options) { o.ScaleDown = 1.0 },
		func(o *sampler.Options) { o.CheckpointInterval = 0 },
		func(o *sampler.Options) { o.ReportInterval = 0 },
	}
	for i, mutate := range mutations {
		o := sampler.DefaultOptions()
		mutate(&o)
		_, err := sampler.New(newFlat(t, 0.5), o)
		assert.ErrorIs(t, err, sampler.ErrBadOptions, "mutation %d must be rejected", i)
	}
}

// TestNew_RejectsIncompleteRegistry: a registry not covering the parameter
// vector is a configuration error at setup time, not at run time.
func TestNew_RejectsIncompleteRegistry(t *testing.T) {
	_, err := sampler.New(newGappy(t), sampler.DefaultOptions())
	assert.Error(t, err)
}
