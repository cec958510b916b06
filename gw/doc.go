// Package gw computes Gromov-Wasserstein (GW) optimal transport between
// finite metric-measure spaces, given only their intra-space distance
// (or similarity) matrices and marginal weights.
//
// 🚀 What is Gromov-Wasserstein?
//
//	Classical optimal transport needs a cost between points of the two
//	spaces. GW needs none: it matches pairs to pairs, finding a coupling
//	T minimizing
//
//	    Σ_{i,j,k,l} L(C1[i,k], C2[j,l]) · T[i,j] · T[k,l] − ε·H(T)
//
//	so that points whose within-space relationships look alike end up
//	coupled. It's widely used in:
//	  • shape and graph matching
//	  • cross-lingual / cross-domain embedding alignment
//	  • comparing datasets that live in different spaces
//
// ✨ Key features:
//   - square and KL loss kernels via a closed separable decomposition
//     (tensor work reduces to two matrix products — no 4-index tensor)
//   - entropic inner solver injectable via Options.Solver
//     (defaults to gwot/sinkhorn)
//   - discrepancy value on top of the coupling (GromovWassersteinDistance)
//   - GW barycenters of S spaces with concurrent per-space solves
//   - sparse convergence checkpoints (every 10th iteration), optional
//     structured trace and zerolog diagnostics
//
// ⚙️ Usage:
//
//	import "github.com/psuarezserrato/gwot/gw"
//
//	opts := gw.DefaultOptions()
//	opts.MaxIter = 200
//
//	T, _, err := gw.GromovWasserstein(C1, C2, p, q, gw.SquareLoss, 0.1, &opts)
//
// Performance:
//
//   - Time:   O(MaxIter · (ns²·nt + ns·nt² + sinkhorn))
//   - Memory: O(ns·nt) beyond the inputs
//
// The fixed-point iteration is non-convex; neither solver guarantees a
// global optimum, and barycenter results are arbitrary up to a
// permutation of their points. See example_test.go for walkthroughs.
package gw
