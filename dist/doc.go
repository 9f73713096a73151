// Package dist provides the probability-distribution collaborators used by
// the estimation pipeline.
//
// Two surfaces live here:
//
//   - Distribution — the scalar contract (random draw, log-density, first two
//     moments, and mutable re-parameterization) with Gaussian, Uniform and
//     ChiSquared variants backed by gonum stat/distuv.
//
//   - GaussianVector — the multivariate Gaussian used as the random-walk
//     proposal: mean re-centering is O(n), covariance changes re-run a
//     Cholesky factorization, and each draw transforms iid standard normals
//     through the cached lower-triangular factor.
//
// Randomness policy (shared by the whole module):
//   - Every source is created from an explicit seed; seed==0 maps to a fixed
//     default so "unseeded" runs stay reproducible.
//   - Independent substreams are derived with a SplitMix64 finalizer, never
//     by reusing one source across consumers.
package dist
