// Package sampler implements the adaptive random-walk Metropolis-Hastings
// engine: the control logic that turns a Model, its prior registry and a
// starting proposal into a posterior sample.
//
// Pipeline (strictly sequential, one goroutine per run):
//
//	Seeding    — rejection-sample the joint prior for a finite-likelihood
//	             seed state (or take the model's starting estimate verbatim
//	             when the grid size is 0).
//	Balancing  — a univariate adaptive Metropolis pass that equalizes
//	             per-parameter acceptance rates before the correlated walk;
//	             only the tuned per-parameter variances and the final state
//	             survive, the trajectory is discarded.
//	Sampling   — the full multivariate random-walk loop; the proposal
//	             covariance is rescaled globally at checkpoints during
//	             burn-in and frozen afterwards, preserving stationarity of
//	             the retained chain.
//	Finalizing — burn-in trim, thinning, empirical moments, credible
//	             intervals and the LPML model-comparison statistic.
//
// A run walks the state machine
//
//	NotStarted → Seeding → Balancing → MainSampling → {Converged | Failed}
//
// Balancing or sampling failure (an internal-iteration ceiling exhausted
// without acceptance) short-circuits to Failed; the raw chain accumulated so
// far stays readable for diagnosis, but posterior statistics refuse to answer
// with ErrNotConverged rather than returning partial values.
//
// Independent runs share nothing and are embarrassingly parallel; within one
// run nothing is goroutine-safe, including the prior registry, whose
// random-effect re-parameterization mutates shared distribution state.
package sampler
