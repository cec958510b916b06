package sinkhorn

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Sinkhorn — entropic-regularized optimal transport.
//
// Description:
//
//	Solves min_T <T, cost> − ε·H(T) subject to T·1 = p, Tᵀ·1 = q, T ≥ 0
//	by Sinkhorn-Knopp alternating scaling. The coupling is represented
//	implicitly as diag(u)·K·diag(v) with K = exp(−cost/ε); only u and v
//	are updated per sweep.
//
// Algorithm Outline:
//  1. K[i,j] = exp(−cost[i,j]/ε); u = 1/n, v = 1/m.
//  2. Per sweep: v = q ./ (Kᵀu), then u = p ./ (K·v).
//  3. Every 10th sweep, measure ‖colsum(diag(u)·K·diag(v)) − q‖₂ and
//     stop once it drops to StopThreshold.
//  4. Return T[i,j] = u[i]·K[i,j]·v[j].
//
// Numerical breakdown:
//
//	For very small ε relative to the cost scale, K underflows and the
//	scaling quotients produce zeros, Infs or NaNs. The sweep detects
//	this, restores the last finite (u, v) pair and stops; the returned
//	coupling is the best iterate reached, not an error.
//
// Errors:
//   - ErrNilCost            — cost is nil.
//   - ErrNonPositiveEpsilon — epsilon ≤ 0.
//   - ErrDimensionMismatch  — len(p) or len(q) does not match cost.
//
// Complexity:
//
//	Time O(MaxIter·n·m), Memory O(n·m).
func Sinkhorn(p, q []float64, cost *mat.Dense, epsilon float64, opts *Options) (*mat.Dense, error) {
	if cost == nil {
		return nil, ErrNilCost
	}
	if epsilon <= 0 {
		return nil, ErrNonPositiveEpsilon
	}
	n, m := cost.Dims()
	if len(p) != n || len(q) != m {
		return nil, ErrDimensionMismatch
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	// Gibbs kernel.
	K := mat.NewDense(n, m, nil)
	K.Apply(func(_, _ int, c float64) float64 {
		return math.Exp(-c / epsilon)
	}, cost)

	u := make([]float64, n)
	v := make([]float64, m)
	for i := range u {
		u[i] = 1 / float64(n)
	}
	for j := range v {
		v[j] = 1 / float64(m)
	}
	uPrev := make([]float64, n)
	vPrev := make([]float64, m)
	colMarg := make([]float64, m)

	uVec := mat.NewVecDense(n, u)
	vVec := mat.NewVecDense(m, v)
	var ktu, kv mat.VecDense

	sweep := 0
	delta := 1.0
	for delta > o.StopThreshold && sweep < o.MaxIter {
		copy(uPrev, u)
		copy(vPrev, v)

		ktu.MulVec(K.T(), uVec)
		for j := 0; j < m; j++ {
			v[j] = q[j] / ktu.AtVec(j)
		}
		kv.MulVec(K, vVec)
		for i := 0; i < n; i++ {
			u[i] = p[i] / kv.AtVec(i)
		}

		if scalingBroken(&ktu, &kv, u, v) {
			// ε too small for the cost scale: keep the last finite pair.
			copy(u, uPrev)
			copy(v, vPrev)
			break
		}

		if sweep%checkInterval == 0 {
			ktu.MulVec(K.T(), uVec)
			for j := 0; j < m; j++ {
				colMarg[j] = v[j] * ktu.AtVec(j)
			}
			delta = floats.Distance(colMarg, q, 2)
		}
		sweep++
	}

	T := mat.NewDense(n, m, nil)
	T.Apply(func(i, j int, k float64) float64 {
		return u[i] * k * v[j]
	}, K)

	return T, nil
}

// scalingBroken reports whether the current sweep hit a numerical
// breakdown: a zero denominator in either quotient, or a non-finite
// entry in the scaling vectors.
func scalingBroken(ktu, kv *mat.VecDense, u, v []float64) bool {
	for j := 0; j < ktu.Len(); j++ {
		if ktu.AtVec(j) == 0 {
			return true
		}
	}
	for i := 0; i < kv.Len(); i++ {
		if kv.AtVec(i) == 0 {
			return true
		}
	}
	for _, x := range u {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return true
		}
	}
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return true
		}
	}
	return false
}
