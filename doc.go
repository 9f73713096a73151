// Package bayesmc is an adaptive Metropolis-Hastings engine for Bayesian
// parameter estimation — from seed search on the joint prior to the final
// posterior summary.
//
// 🚀 What is bayesmc?
//
//	A deterministic, fully seeded MCMC pipeline that brings together:
//		• Seed search: rejection sampling over the joint prior
//		• Variance balancing: per-parameter acceptance-rate equalization
//		• Main walk: multivariate random-walk Metropolis with burn-in tuning
//		• Posterior summary: moments, credible intervals, LPML
//		• Export: thinned-sample CSV and human-readable tables
//
// ✨ Why choose bayesmc?
//
//   - Reproducible – one seed drives every random stream, bit for bit
//   - Honest failures – sentinel errors per phase, no partial posteriors
//   - Pluggable models – implement model.Model, register priors, estimate
//   - Batteries included – a univariate Normal reference model and a CLI
//
// Under the hood, everything is organized under these subpackages:
//
//	dist/    — seeded scalar and multivariate proposal distributions
//	prior/   — the joint prior registry with random-effect linkage
//	chain/   — immutable samples and the append-only Markov chain
//	model/   — the Model contract plus the univariate Normal reference
//	sampler/ — the four-phase estimation pipeline and posterior summary
//	export/  — CSV and table rendering of the thinned sample
//
// Quick start:
//
//	m, _ := model.NewNormal(obs, model.DefaultNormalBounds(), 1)
//	r, _ := sampler.New(m, sampler.DefaultOptions())
//	if err := r.Estimate(); err != nil { ... }
//	res, _ := r.Result()
//
// Or from the command line:
//
//	go run ./cmd/bayesmc run -c config.yaml
package bayesmc
