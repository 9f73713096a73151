// Package prior maps every scalar parameter of a model onto its prior
// distribution and computes the joint quantities the sampler needs: a joint
// random draw, the joint log-density of the fixed-effect priors, and the
// joint log-density of the random-effect distributions.
//
// Random effects are handled as an explicit re-parameterization step: a
// random-effect distribution is linked to the parameter index of its
// standard-deviation prior, and its variance is refreshed to std² from the
// current parameter vector immediately before every draw or density query
// touching it. The refresh mutates the linked distribution object, so a
// registry must never be shared between two concurrently evaluating chains.
//
// Registration order matters for the joint draw: a random effect reads its
// standard deviation from the in-progress vector, so its std prior must be
// registered (and therefore drawn) before it.
package prior
