// Package sinkhorn solves the entropic-regularized optimal transport
// problem between two discrete distributions by Sinkhorn-Knopp matrix
// scaling.
//
// 🚀 What is Sinkhorn?
//
//	Given marginals p (length n), q (length m), a non-negative cost
//	matrix M (n×m) and a regularization strength ε > 0, Sinkhorn finds
//	the coupling T minimizing
//
//	    <T, M> − ε·H(T)   s.t.  T·1 = p,  Tᵀ·1 = q,  T ≥ 0
//
//	where H is the entropy of T. The entropy term makes the problem
//	strictly convex and solvable by alternating diagonal rescaling of
//	the Gibbs kernel K = exp(−M/ε).
//
// ✨ Key properties:
//   - O(n·m) per scaling sweep, matrix-vector products only
//   - convergence measured as column-marginal violation, checked every
//     10th sweep (cheap checkpointing)
//   - numerical-breakdown guard: when ε is too small for the cost scale
//     the scaling vectors overflow; the solver reverts to the last
//     finite iterate and returns it instead of propagating NaNs
//
// ⚙️ Usage:
//
//	import "github.com/psuarezserrato/gwot/sinkhorn"
//
//	opts := sinkhorn.DefaultOptions()
//	T, err := sinkhorn.Sinkhorn(p, q, cost, 0.1, &opts)
//
// Performance:
//
//   - Time:   O(MaxIter · n·m)
//   - Memory: O(n·m) for the kernel and the returned coupling
//
// See example_test.go for worked examples.
package sinkhorn
