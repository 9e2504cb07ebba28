// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// No global state: every call receives its policy explicitly.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance of structural checks (symmetry,
	// AllClose) and the relative clamp window of SqrtSymmetric.
	DefaultEpsilon = 1e-9

	// DefaultEigenTolerance is the Jacobi convergence threshold on the
	// largest off-diagonal magnitude.
	DefaultEigenTolerance = 1e-12

	// DefaultMaxIterations caps the number of full Jacobi sweeps.
	DefaultMaxIterations = 100
)

const (
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite and >= 0"
	panicEigenTolInvalid = "matrix: WithEigenTolerance: tol must be finite and > 0"
	panicMaxIterInvalid  = "matrix: WithMaxIterations: n must be > 0"
)

// Option configures Options. Apply in order; last writer wins.
type Option func(*Options)

// Options holds the numeric policy of an operation.
// Fields are unexported; use the WithX constructors.
type Options struct {
	eps     float64 // symmetry / closeness / clamp tolerance
	eigTol  float64 // Jacobi convergence threshold
	maxIter int     // Jacobi sweep cap
}

// Epsilon reports the configured epsilon.
func (o Options) Epsilon() float64 { return o.eps }

// EigenTolerance reports the configured Jacobi tolerance.
func (o Options) EigenTolerance() float64 { return o.eigTol }

// MaxIterations reports the configured Jacobi sweep cap.
func (o Options) MaxIterations() int { return o.maxIter }

// WithEpsilon sets the structural tolerance. Panics when eps is negative or
// not finite.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithEigenTolerance sets the Jacobi convergence threshold. Panics when tol
// is not a finite positive number.
func WithEigenTolerance(tol float64) Option {
	if isNonFinite(tol) || tol <= 0 {
		panic(panicEigenTolInvalid)
	}

	return func(o *Options) { o.eigTol = tol }
}

// WithMaxIterations sets the Jacobi sweep cap. Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// NewOptions resolves opts over the defaults. Exposed so that callers can
// log or inspect the effective policy.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

func gatherOptions(user ...Option) Options {
	o := Options{
		eps:     DefaultEpsilon,
		eigTol:  DefaultEigenTolerance,
		maxIter: DefaultMaxIterations,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
