package sampler

import (
	"errors"
	"fmt"
	"log"
)

// Sentinel errors for the estimation pipeline.
var (
	// ErrBadOptions indicates an invalid run configuration.
	ErrBadOptions = errors.New("sampler: invalid options")

	// ErrStuckChain indicates the internal-iteration ceiling was exhausted
	// without a single acceptance; the stage fails and the run ends in the
	// Failed state with its raw chain retained.
	ErrStuckChain = errors.New("sampler: chain stuck, internal iteration ceiling reached")

	// ErrSeedExhausted indicates the capped seed search ran out of attempts
	// before collecting enough finite-likelihood draws.
	ErrSeedExhausted = errors.New("sampler: seed search exhausted")

	// ErrNotConverged indicates posterior statistics were requested while
	// the run has not (yet) converged.
	ErrNotConverged = errors.New("sampler: run not converged")
)

// Options configures one estimation run. Immutable once Estimate starts;
// mutate only between runs.
//
// The tuning fields at the bottom are deliberately exposed: the acceptance
// bands and rescaling factors are empirical knobs, not theory, and keeping
// them named makes them testable and overridable.
type Options struct {
	// BurnIn is the number of leading chain entries discarded by the
	// finalizer; it is also the length of the balancing pass and the
	// adaptive (covariance-rescaling) window of the main loop. Default 10000.
	BurnIn int

	// TotalAccepted is the total number of accepted realizations the main
	// loop produces, burn-in included; the raw chain has exactly this length
	// on success. Must exceed BurnIn. Default 510000.
	TotalAccepted int

	// MaxInnerIter caps the rejection-sampling retries of one outer
	// iteration; exhausting it marks the chain stuck. Default 100000.
	MaxInnerIter int

	// ThinningInterval keeps every k-th post-burn-in entry. Default 50.
	ThinningInterval int

	// InitialGridSize is the number of finite-likelihood prior draws scored
	// by the seed search. 0 skips the search and seeds the chain with the
	// model's own starting estimate. Default 10000.
	InitialGridSize int

	// MaxSeedAttempts caps the total draws (finite or not) the seed search
	// may consume; 0 means unbounded, which reproduces the historical
	// behavior and can loop forever on a pathological prior/likelihood
	// pair. Default 0.
	MaxSeedAttempts int

	// SeedOmitFixedPrior ranks grid draws without the fixed-prior density
	// term, for callers using the grid as an importance/integration sample.
	// The selected seed still enters the chain with its full log-posterior.
	// Default false.
	SeedOmitFixedPrior bool

	// CoefVar is the coefficient of variation of the starting proposal:
	// its diagonal covariance is (mean·CoefVar)². Default 0.1.
	CoefVar float64

	// Seed drives every random stream of the run; 0 maps to a fixed default
	// seed so unseeded runs stay reproducible.
	Seed uint64

	// Logger receives progress lines; nil discards them.
	Logger *log.Logger

	// TargetBalanceRate is the per-parameter acceptance rate the balancer
	// equalizes toward. A rate-balancing constant, not an efficiency
	// optimum. Default 0.5.
	TargetBalanceRate float64

	// BalanceTolerance is the dead band around TargetBalanceRate within
	// which a parameter's proposal variance is left alone. Default 0.05.
	BalanceTolerance float64

	// UpperAcceptRate / LowerAcceptRate bound the global acceptance band of
	// the main loop; outside it the whole covariance is rescaled during
	// burn-in. Defaults 0.40 / 0.30.
	UpperAcceptRate float64
	LowerAcceptRate float64

	// ScaleUp / ScaleDown are the variance rescaling factors applied when
	// acceptance is too high / too low. Defaults 1.2² and 0.8².
	ScaleUp   float64
	ScaleDown float64

	// CheckpointInterval is the outer-iteration period of acceptance-rate
	// evaluation (and rescaling, during burn-in). Default 1000.
	CheckpointInterval int

	// ReportInterval is the post-burn-in progress-logging period of the
	// main loop. Default 10000.
	ReportInterval int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		BurnIn:             10000,
		TotalAccepted:      510000,
		MaxInnerIter:       100000,
		ThinningInterval:   50,
		InitialGridSize:    10000,
		MaxSeedAttempts:    0,
		CoefVar:            0.1,
		TargetBalanceRate:  0.5,
		BalanceTolerance:   0.05,
		UpperAcceptRate:    0.40,
		LowerAcceptRate:    0.30,
		ScaleUp:            1.2 * 1.2,
		ScaleDown:          0.8 * 0.8,
		CheckpointInterval: 1000,
		ReportInterval:     10000,
	}
}

// validate rejects configurations the pipeline cannot run with.
func (o Options) validate() error {
	switch {
	case o.BurnIn <= 0:
		return fmt.Errorf("%w: BurnIn must be > 0", ErrBadOptions)
	case o.TotalAccepted <= o.BurnIn:
		return fmt.Errorf("%w: TotalAccepted must exceed BurnIn", ErrBadOptions)
	case o.MaxInnerIter <= 0:
		return fmt.Errorf("%w: MaxInnerIter must be > 0", ErrBadOptions)
	case o.ThinningInterval <= 0:
		return fmt.Errorf("%w: ThinningInterval must be > 0", ErrBadOptions)
	case o.InitialGridSize < 0:
		return fmt.Errorf("%w: InitialGridSize must be ≥ 0", ErrBadOptions)
	case o.MaxSeedAttempts < 0:
		return fmt.Errorf("%w: MaxSeedAttempts must be ≥ 0", ErrBadOptions)
	case o.CoefVar <= 0:
		return fmt.Errorf("%w: CoefVar must be > 0", ErrBadOptions)
	case o.TargetBalanceRate <= 0 || o.TargetBalanceRate >= 1:
		return fmt.Errorf("%w: TargetBalanceRate must be in (0,1)", ErrBadOptions)
	case o.BalanceTolerance <= 0:
		return fmt.Errorf("%w: BalanceTolerance must be > 0", ErrBadOptions)
	case o.LowerAcceptRate <= 0 || o.UpperAcceptRate >= 1 || o.LowerAcceptRate >= o.UpperAcceptRate:
		return fmt.Errorf("%w: acceptance band must satisfy 0 < lower < upper < 1", ErrBadOptions)
	case o.ScaleUp <= 1:
		return fmt.Errorf("%w: ScaleUp must be > 1", ErrBadOptions)
	case o.ScaleDown <= 0 || o.ScaleDown >= 1:
		return fmt.Errorf("%w: ScaleDown must be in (0,1)", ErrBadOptions)
	case o.CheckpointInterval <= 0:
		return fmt.Errorf("%w: CheckpointInterval must be > 0", ErrBadOptions)
	case o.ReportInterval <= 0:
		return fmt.Errorf("%w: ReportInterval must be > 0", ErrBadOptions)
	}
	return nil
}
