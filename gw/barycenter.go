package gw

import (
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// initDim is the ambient dimension of the random point cloud used for
// barycenter initialization.
const initDim = 2

// Barycenter — Gromov-Wasserstein barycenter of S measured similarity
// matrices.
//
// Description:
//
//	Finds an N×N structure matrix C minimizing Σ_s λ_s·GW(C, Cs[s], p, ps[s])
//	by alternating (i) S independent GW solves of each space against the
//	current estimate and (ii) a closed-form update of C from the
//	resulting couplings.
//
// Algorithm Outline:
//  1. Initialize C from an N×2 standard-normal point cloud: pairwise
//     Euclidean distances, scaled to a maximum entry of 1. The problem
//     is non-convex, so the starting point (Seed / Rand) selects which
//     local optimum the loop settles into. InitStructure overrides the
//     random draw entirely.
//  2. While changed and under budget: snapshot Cprev; solve the S GW
//     problems concurrently against the frozen snapshot (each reads
//     only Cs[s], ps[s] and C, so the fan-out is race-free), joining
//     before the update; apply the update rule for the loss kernel.
//  3. Every 10th iteration, measure ‖C − Cprev‖_F; record and emit
//     diagnostics as in GromovWasserstein.
//
// The per-space solves use the fixed inner threshold 1e-5 regardless of
// opts.StopThreshold, which governs the outer loop only. Their verbose
// output is suppressed (S goroutines would interleave it); structured
// diagnostics still flow through opts.Logger tagged with a "space"
// field.
//
// The returned matrix's point indexing is arbitrary up to permutation:
// row i carries no fixed identity across runs or seeds.
//
// Errors:
//   - ErrUnknownLoss   — loss outside the supported set.
//   - ErrCountMismatch — len(Cs), len(ps), len(lambdas) disagree.
//   - wrapped per-space solver errors, tagged with the space index.
func Barycenter(n int, Cs []*mat.Dense, ps [][]float64, p []float64, lambdas []float64, loss LossKind, epsilon float64, opts *Options) (*mat.Dense, *Trace, error) {
	if _, err := kernelFor(loss); err != nil {
		return nil, nil, err
	}
	if len(Cs) != len(ps) || len(Cs) != len(lambdas) {
		return nil, nil, ErrCountMismatch
	}
	o := resolveOptions(opts)

	C := o.InitStructure
	if C == nil {
		C = randomStructure(n, o.rng())
	}

	var trace *Trace
	if o.RecordTrace {
		trace = &Trace{}
	}

	couplings := make([]*mat.Dense, len(Cs))
	iter := 0
	delta := 1.0
	for delta > o.StopThreshold && iter < o.MaxIter {
		Cprev := mat.DenseCopyOf(C)

		var g errgroup.Group
		for s := range Cs {
			s := s
			g.Go(func() error {
				inner := o
				inner.StopThreshold = innerStopThreshold
				inner.RecordTrace = false
				inner.Verbose = false
				inner.Logger = o.Logger.With().Int("space", s).Logger()

				T, _, err := GromovWasserstein(Cs[s], C, ps[s], p, loss, epsilon, &inner)
				if err != nil {
					return fmt.Errorf("gw: barycenter space %d: %w", s, err)
				}
				couplings[s] = T

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}

		C = updateStructure(loss, p, lambdas, couplings, Cs)

		if iter%checkInterval == 0 {
			var diff mat.Dense
			diff.Sub(C, Cprev)
			delta = mat.Norm(&diff, 2)
			if trace != nil {
				trace.Err = append(trace.Err, delta)
			}
			o.checkpoint(iter, delta)
		}
		iter++
	}

	return C, trace, nil
}

// updateStructure applies the closed-form barycenter update:
//
//	square loss: C = (Σ_s λ_s · Tₛᵀ·Cs[s]·Tₛ) ⊘ (p ⊗ pᵀ)
//	KL loss:     C = exp of the same quotient
//
// Zero entries of p produce Inf/NaN in the quotient; accepted, not
// guarded.
func updateStructure(loss LossKind, p, lambdas []float64, couplings, Cs []*mat.Dense) *mat.Dense {
	n := len(p)
	acc := mat.NewDense(n, n, nil)
	for s := range couplings {
		var left, term mat.Dense
		left.Mul(couplings[s].T(), Cs[s])
		term.Mul(&left, couplings[s])
		term.Scale(lambdas[s], &term)
		acc.Add(acc, &term)
	}

	pv := mat.NewVecDense(n, p)
	var ppt mat.Dense
	ppt.Outer(1, pv, pv)

	acc.DivElem(acc, &ppt)
	if loss == KLLoss {
		acc.Apply(func(_, _ int, x float64) float64 { return math.Exp(x) }, acc)
	}

	return acc
}

// randomStructure draws n points from a standard normal in the plane
// and returns their pairwise Euclidean distance matrix scaled so the
// maximum entry is 1 — an arbitrary, well-scaled, symmetric
// non-negative starting estimate.
func randomStructure(n int, rng *rand.Rand) *mat.Dense {
	pts := mat.NewDense(n, initDim, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < initDim; j++ {
			pts.Set(i, j, rng.NormFloat64())
		}
	}

	C := PairwiseEuclidean(pts, pts)
	C.Scale(1/mat.Max(C), C)

	return C
}
