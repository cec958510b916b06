// Package sinkhorn defines options and sentinel errors for the
// entropic-regularized transport solver.
package sinkhorn

import "errors"

// ErrNonPositiveEpsilon indicates a regularization strength ε ≤ 0.
var ErrNonPositiveEpsilon = errors.New("sinkhorn: epsilon must be positive")

// ErrNilCost indicates a nil cost matrix.
var ErrNilCost = errors.New("sinkhorn: cost matrix must be non-nil")

// ErrDimensionMismatch indicates marginals whose lengths do not match
// the cost matrix shape.
var ErrDimensionMismatch = errors.New("sinkhorn: marginal length does not match cost shape")

// checkInterval is the sweep interval between convergence checkpoints.
// The marginal-violation norm costs an extra Kᵀu product, so it is only
// recomputed every 10th sweep; between checkpoints the last measured
// value is reused.
const checkInterval = 10

// Options configures the Sinkhorn-Knopp iteration.
//
// Fields:
//   - MaxIter       — maximum number of scaling sweeps (u then v both
//     updated per sweep). Exhausting the budget is not an error; the
//     current iterate is returned.
//   - StopThreshold — convergence threshold on the Euclidean norm of the
//     column-marginal violation ‖colsum(T) − q‖₂.
//
// Example:
//
//	opts := sinkhorn.DefaultOptions()
//	opts.MaxIter = 200
//	T, err := sinkhorn.Sinkhorn(p, q, cost, 0.05, &opts)
type Options struct {
	MaxIter       int
	StopThreshold float64
}

// DefaultMaxIter is the default scaling-sweep budget.
const DefaultMaxIter = 1000

// DefaultStopThreshold is the default marginal-violation threshold.
const DefaultStopThreshold = 1e-9

// DefaultOptions returns the canonical defaults.
func DefaultOptions() Options {
	return Options{
		MaxIter:       DefaultMaxIter,
		StopThreshold: DefaultStopThreshold,
	}
}
