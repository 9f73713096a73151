package prior

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bayesmc/dist"
)

// Sentinel errors for prior registration and joint evaluation.
var (
	// ErrNilDistribution indicates a nil distribution was registered.
	ErrNilDistribution = errors.New("prior: nil distribution")

	// ErrBadIndex indicates a negative parameter index.
	ErrBadIndex = errors.New("prior: negative parameter index")

	// ErrDuplicateIndex indicates two registrations claimed the same index.
	ErrDuplicateIndex = errors.New("prior: duplicate parameter index")

	// ErrDuplicateName indicates two registrations claimed the same name.
	ErrDuplicateName = errors.New("prior: duplicate parameter name")

	// ErrStdPriorNotRegistered indicates a random-effect registration whose
	// standard-deviation prior is not itself registered as a fixed effect.
	ErrStdPriorNotRegistered = errors.New("prior: random-effect std prior not registered as fixed effect")

	// ErrSizeMismatch indicates the registry does not cover indices 0..n−1
	// of the declared parameter vector exactly once each.
	ErrSizeMismatch = errors.New("prior: registry does not cover the parameter vector")
)

// entry is one registered distribution instance owning one scalar index.
type entry struct {
	name         string
	d            dist.Distribution
	index        int
	randomEffect bool
	stdIndex     int // parameter index of the linked std prior; valid iff randomEffect
}

// Registry maps scalar parameter indices to prior distributions and tracks
// which entries are random effects tied to a std prior elsewhere in the same
// vector. The zero value is not usable; call NewRegistry.
type Registry struct {
	entries []entry
	indices map[int]struct{}
	names   map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		indices: make(map[int]struct{}),
		names:   make(map[string]struct{}),
	}
}

func (r *Registry) add(name string, d dist.Distribution, index int, randomEffect bool, stdIndex int) error {
	if d == nil {
		return ErrNilDistribution
	}
	if index < 0 {
		return ErrBadIndex
	}
	if _, dup := r.indices[index]; dup {
		return fmt.Errorf("index %d: %w", index, ErrDuplicateIndex)
	}
	if _, dup := r.names[name]; dup {
		return fmt.Errorf("name %q: %w", name, ErrDuplicateName)
	}
	r.entries = append(r.entries, entry{
		name:         name,
		d:            d,
		index:        index,
		randomEffect: randomEffect,
		stdIndex:     stdIndex,
	})
	r.indices[index] = struct{}{}
	r.names[name] = struct{}{}
	return nil
}

// RegisterFixedEffect records d as the prior of the scalar parameter at the
// given index. Registration order fixes both the draw order and the export
// column order.
func (r *Registry) RegisterFixedEffect(name string, d dist.Distribution, index int) error {
	return r.add(name, d, index, false, 0)
}

// RegisterRandomEffectStd records re as a random-effect distribution whose
// realization occupies the given index, linked to stdPrior: before any draw
// or density query involving re, its variance is refreshed to std², where std
// is the current value of stdPrior's parameter.
//
// stdPrior must already be registered as a fixed effect in this registry
// (ErrStdPriorNotRegistered otherwise), which also guarantees the joint draw
// produces the standard deviation before it is needed.
func (r *Registry) RegisterRandomEffectStd(name string, re, stdPrior dist.Distribution, index int) error {
	if re == nil || stdPrior == nil {
		return ErrNilDistribution
	}
	stdIndex := -1
	for _, e := range r.entries {
		if !e.randomEffect && e.d == stdPrior {
			stdIndex = e.index
			break
		}
	}
	if stdIndex < 0 {
		return ErrStdPriorNotRegistered
	}
	return r.add(name, re, index, true, stdIndex)
}

// Len returns the element count: one scalar per registered distribution
// instance, fixed effects and random effects alike.
func (r *Registry) Len() int { return len(r.entries) }

// Names returns the parameter names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.name
	}
	return out
}

// Validate checks that the registry covers indices 0..dim−1 exactly once
// each. Uniqueness is enforced at registration; this catches gaps and a
// count/vector-length mismatch before the first draw.
func (r *Registry) Validate(dim int) error {
	if len(r.entries) != dim {
		return fmt.Errorf("%w: %d registered, vector length %d", ErrSizeMismatch, len(r.entries), dim)
	}
	for i := 0; i < dim; i++ {
		if _, ok := r.indices[i]; !ok {
			return fmt.Errorf("%w: index %d unassigned", ErrSizeMismatch, i)
		}
	}
	return nil
}

// refresh re-parameterizes a random-effect entry from the vector: its
// variance becomes std², std read at the linked index. A non-positive std
// makes the re-parameterization impossible; ok=false reports that.
func (r *Registry) refresh(e entry, x []float64) bool {
	std := x[e.stdIndex]
	return e.d.SetVariance(std*std) == nil
}

// DrawJoint draws one realization from every registered prior, in
// registration order, into dst (allocated when nil) and returns it.
// Random-effect variances are refreshed from the in-progress vector, so a
// std prior is always drawn before its dependent random effect.
func (r *Registry) DrawJoint(dst []float64) ([]float64, error) {
	if dst == nil {
		dst = make([]float64, len(r.entries))
	}
	if err := r.Validate(len(dst)); err != nil {
		return nil, err
	}
	for _, e := range r.entries {
		if e.randomEffect && !r.refresh(e, dst) {
			return nil, fmt.Errorf("prior: refresh %q: %w", e.name, dist.ErrNonPositiveVariance)
		}
		dst[e.index] = e.d.Rand()
	}
	return dst, nil
}

// LogDensityFixed sums the log-density of every non-random-effect prior over
// the vector. Returns −∞ as soon as any single density is exactly zero.
func (r *Registry) LogDensityFixed(x []float64) float64 {
	sum := 0.0
	for _, e := range r.entries {
		if e.randomEffect {
			continue
		}
		lp := e.d.LogProb(x[e.index])
		if math.IsInf(lp, -1) {
			return math.Inf(-1)
		}
		sum += lp
	}
	return sum
}

// LogDensityRandomEffects sums the log-density of every random-effect
// distribution over the vector, refreshing each variance first. Returns −∞
// on any zero density or impossible refresh (std ≤ 0). Returns exactly 0
// when no random effects are registered: the neutral element, not an error.
func (r *Registry) LogDensityRandomEffects(x []float64) float64 {
	sum := 0.0
	for _, e := range r.entries {
		if !e.randomEffect {
			continue
		}
		if !r.refresh(e, x) {
			return math.Inf(-1)
		}
		lp := e.d.LogProb(x[e.index])
		if math.IsInf(lp, -1) {
			return math.Inf(-1)
		}
		sum += lp
	}
	return sum
}
