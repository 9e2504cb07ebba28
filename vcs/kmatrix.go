// SPDX-License-Identifier: MIT

package vcs

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/sp3rlib/matrix"
	"github.com/katalvlaran/sp3rlib/sp3r"
	"github.com/katalvlaran/sp3rlib/u3"
	"github.com/katalvlaran/sp3rlib/u3coef"
)

// Irrep is the basis structure the generator walks. *sp3r.Space implements it.
type Irrep interface {
	Sigma() u3.U3
	Size() int
	Subspace(i int) sp3r.Subspace
	Index(omega u3.U3) int
}

var _ Irrep = (*sp3r.Space)(nil)

var (
	// bosonPair is the SU(3) label (2,0) of one boson pair.
	bosonPair = u3.SU3{Lambda: 2}
	// lowering removes one boson pair: U(3) label [0,0,-2].
	lowering = u3.U3{F3: -2}
)

// KMatrices holds S(ω) and K(ω) for every subspace of one irrep.
type KMatrices struct {
	sigma u3.U3
	order []u3.U3
	s, k  map[u3.U3]*matrix.Dense
	asym  map[u3.U3]float64
}

// Sigma returns the lowest weight of the irrep.
func (km *KMatrices) Sigma() u3.U3 { return km.sigma }

// Len returns the number of subspaces.
func (km *KMatrices) Len() int { return len(km.order) }

// Order returns the subspace labels in the order they were processed.
func (km *KMatrices) Order() []u3.U3 { return append([]u3.U3(nil), km.order...) }

// K returns K(ω), or nil when ω is not a subspace of the irrep.
func (km *KMatrices) K(omega u3.U3) *matrix.Dense { return km.k[omega] }

// S returns S(ω) as accumulated, or nil when ω is not a subspace of the
// irrep. K(ω)² equals the symmetric part ½(S + Sᵀ).
func (km *KMatrices) S(omega u3.U3) *matrix.Dense { return km.s[omega] }

// Asymmetry returns the relative asymmetry of S(ω) (see matrix.Asymmetry),
// 0 for the base subspace and for labels outside the irrep.
func (km *KMatrices) Asymmetry(omega u3.U3) float64 { return km.asym[omega] }

// GenerateKMatrices computes the K matrices of irrep, subspace by subspace in
// the irrep's order. U coefficients are read through cache, which may be
// shared by successive calls but must not be used concurrently.
//
// K(ω) is the square root of the symmetric part of S(ω). An S matrix whose
// relative asymmetry exceeds the matrix epsilon is logged at Warn, or fails
// with ErrAsymmetric under WithStrictSymmetry.
//
// A subspace whose lower neighbour exists but comes later in the order fails
// with ErrOrder; an S matrix without a positive square root fails with
// ErrNonPhysical. All three errors name the offending subspace.
func GenerateKMatrices(irrep Irrep, cache *u3coef.UCache, opts ...Option) (*KMatrices, error) {
	if irrep == nil {
		return nil, ErrNilIrrep
	}
	if cache == nil {
		return nil, ErrNilCache
	}
	o := gatherOptions(opts...)
	eps := matrix.NewOptions(o.matrix...).Epsilon()
	sigma := irrep.Sigma()

	km := &KMatrices{
		sigma: sigma,
		order: make([]u3.U3, 0, irrep.Size()),
		s:     make(map[u3.U3]*matrix.Dense, irrep.Size()),
		k:     make(map[u3.U3]*matrix.Dense, irrep.Size()),
		asym:  make(map[u3.U3]float64, irrep.Size()),
	}

	for i := 0; i < irrep.Size(); i++ {
		sub := irrep.Subspace(i)
		omegaP := sub.Label()

		var s, k *matrix.Dense
		if omegaP == sigma {
			s, k = matrix.Identity(sub.Size()), matrix.Identity(sub.Size())
		} else {
			var err error
			if s, err = accumulateS(irrep, km, sub, cache); err != nil {
				return nil, err
			}
			asym, err := matrix.Asymmetry(s)
			if err != nil {
				return nil, fmt.Errorf("subspace %s: %w", omegaP, err)
			}
			if asym > eps {
				if o.strict {
					return nil, fmt.Errorf("subspace %s: %w: relative asymmetry %g", omegaP, ErrAsymmetric, asym)
				}
				o.logger.Warn("S matrix asymmetric",
					slog.String("sigma", sigma.String()),
					slog.String("omega", omegaP.String()),
					slog.Float64("asymmetry", asym),
				)
			}
			km.asym[omegaP] = asym
			sym, err := matrix.Symmetrize(s)
			if err != nil {
				return nil, fmt.Errorf("subspace %s: %w", omegaP, err)
			}
			if k, err = matrix.SqrtSymmetric(sym, o.matrix...); err != nil {
				if errors.Is(err, matrix.ErrNotPositiveSemiDefinite) {
					return nil, fmt.Errorf("subspace %s: %w: %w", omegaP, ErrNonPhysical, err)
				}
				return nil, fmt.Errorf("subspace %s: %w", omegaP, err)
			}
		}
		km.s[omegaP], km.k[omegaP] = s, k
		km.order = append(km.order, omegaP)

		o.logger.Debug("K matrix built",
			slog.String("sigma", sigma.String()),
			slog.String("omega", omegaP.String()),
			slog.Int("dim", sub.Size()),
		)
	}

	return km, nil
}

// accumulateS sums C1·S(ω)·C2 over the lower neighbours ω of sub.
func accumulateS(irrep Irrep, km *KMatrices, sub sp3r.Subspace, cache *u3coef.UCache) (*matrix.Dense, error) {
	omegaP := sub.Label()
	acc := matrix.NewZeros(sub.Size())

	for _, lower := range u3.KroneckerProductU3(omegaP, lowering) {
		omega := lower.Irrep
		j := irrep.Index(omega)
		if j < 0 {
			continue
		}
		sLower, done := km.s[omega]
		if !done {
			return nil, fmt.Errorf("subspace %s needs %s: %w", omegaP, omega, ErrOrder)
		}
		low := irrep.Subspace(j)

		c1, c2, err := couplings(km.sigma, sub, low, cache)
		if err != nil {
			return nil, fmt.Errorf("subspace %s from %s: %w", omegaP, omega, err)
		}
		term, err := matrix.MulTriple(c1, sLower, c2)
		if err != nil {
			return nil, fmt.Errorf("subspace %s from %s: %w", omegaP, omega, err)
		}
		if acc, err = matrix.Add(acc, term); err != nil {
			return nil, fmt.Errorf("subspace %s from %s: %w", omegaP, omega, err)
		}
	}

	return acc, nil
}

// couplings fills
//
//	C1(i,j) = 2/N(n′_i) · (Ω(n′_i,ω′) − Ω(n_j,ω)) · U(σ n_j ω′ (2,0); ω ρ_j, 1, n′_i, 1 ρ′_i) · RME(n′_i, n_j)
//	C2(j,i) = U(σ n_j ω′ (2,0); ω ρ_j, 1, n′_i, 1 ρ′_i) · RME(n′_i, n_j)
//
// for the states n′_i of upper and n_j of lower.
func couplings(sigma u3.U3, upper, lower sp3r.Subspace, cache *u3coef.UCache) (*matrix.Dense, *matrix.Dense, error) {
	dp, d := upper.Size(), lower.Size()
	c1, err := matrix.NewDense(dp, d)
	if err != nil {
		return nil, nil, err
	}
	c2, err := matrix.NewDense(d, dp)
	if err != nil {
		return nil, nil, err
	}
	omegaP, omega := upper.Label(), lower.Label()

	var i, j int
	for i = 0; i < dp; i++ {
		np := upper.State(i)
		for j = 0; j < d; j++ {
			n := lower.State(j)
			rme := BosonCreationRME(np.Irrep, n.Irrep)
			if rme == 0 {
				continue
			}
			coef, err := u3coef.UCached(cache,
				sigma.SU3(), n.Irrep.SU3(), omegaP.SU3(), bosonPair, omega.SU3(),
				n.Tag, 1, np.Irrep.SU3(), 1, np.Tag)
			if err != nil {
				return nil, nil, fmt.Errorf("state %s <- %s: %w", np, n, err)
			}
			coef *= rme
			grade := 2 / np.Irrep.N() * (u3.Omega(np.Irrep, omegaP) - u3.Omega(n.Irrep, omega))

			// indices are in range by construction
			_ = c1.Set(i, j, grade*coef)
			_ = c2.Set(j, i, coef)
		}
	}

	return c1, c2, nil
}
