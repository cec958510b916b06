// Package gwot computes Gromov-Wasserstein optimal transport between
// finite metric-measure spaces — couplings, discrepancy values and
// barycenters over pairwise distance matrices.
//
// 🚀 What is gwot?
//
//	A numeric library for matching spaces that share no common embedding:
//		• GW couplings: align two spaces given only their intra-space
//		  distance (or similarity) matrices and marginal weights
//		• GW discrepancy: the realized matching cost at the fixed point
//		• GW barycenters: one structure matrix summarizing S spaces
//		• Sinkhorn: the entropic-regularized transport subproblem solver
//
// ✨ Why choose gwot?
//
//   - Small API – dense gonum matrices in, dense gonum matrices out
//   - Deterministic – seedable randomness, no global state
//   - Concurrent where it pays – per-space barycenter solves fan out
//     across goroutines and join before each update
//   - Swappable core – the transport subproblem solver is injectable
//
// Everything is organized under two subpackages:
//
//	gw/       — loss kernels, tensor contraction, the GW fixed-point
//	            solver and the barycenter solver
//	sinkhorn/ — entropic-regularized transport via Sinkhorn-Knopp scaling
//
// Quick sketch:
//
//	    C1 (ns×ns)  ─┐
//	    C2 (nt×nt)  ─┼─► gw.GromovWasserstein ─► T (ns×nt)
//	    p, q        ─┘
//
//	T is a coupling: row sums ≈ p, column sums ≈ q, and T matches
//	similar pairs in C1 to similar pairs in C2.
//
//	go get github.com/psuarezserrato/gwot/gw
package gwot
