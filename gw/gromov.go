package gw

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/psuarezserrato/gwot/sinkhorn"
)

// GromovWasserstein — entropic Gromov-Wasserstein coupling.
//
// Description:
//
//	Couples the two measured similarity matrices (C1, p) and (C2, q) by
//	solving
//
//	    min_T Σ_{i,j,k,l} L(C1[i,k], C2[j,l])·T[i,j]·T[k,l] − ε·H(T)
//	    s.t.  T·1 = p, Tᵀ·1 = q, T ≥ 0
//
//	with a fixed-point loop: linearize the quadratic cost around the
//	current T (tensor contraction), solve the resulting entropic
//	transport subproblem, repeat.
//
// Algorithm Outline:
//  1. T₀ = p ⊗ qᵀ (rank-1 outer product, merely a starting point).
//  2. While changed and under budget: save Tprev, contract the tensor,
//     T = Solver(p, q, tens, ε).
//  3. Every 10th iteration, measure ‖T − Tprev‖_F; record it in the
//     trace and emit diagnostics. Between checkpoints the loop runs on
//     the stale value.
//  4. Stop on threshold or budget. Budget exhaustion is a valid
//     terminal state, returned silently.
//
// Shapes: C1 is ns×ns, C2 is nt×nt, len(p) == ns, len(q) == nt; the
// returned coupling is ns×nt. Shapes are not validated here —
// mismatches are fatal precondition violations that surface as panics
// from the underlying matrix products.
//
// Returns (coupling, trace, error); trace is non-nil only when
// opts.RecordTrace is set.
//
// Errors:
//   - ErrUnknownLoss — loss outside the supported set, reported before
//     any iteration.
//   - wrapped solver errors from the transport subproblem.
func GromovWasserstein(C1, C2 *mat.Dense, p, q []float64, loss LossKind, epsilon float64, opts *Options) (*mat.Dense, *Trace, error) {
	kr, err := kernelFor(loss)
	if err != nil {
		return nil, nil, err
	}
	o := resolveOptions(opts)

	T := mat.NewDense(len(p), len(q), nil)
	T.Outer(1, mat.NewVecDense(len(p), p), mat.NewVecDense(len(q), q))

	var trace *Trace
	if o.RecordTrace {
		trace = &Trace{}
	}

	iter := 0
	delta := 1.0
	for delta > o.StopThreshold && iter < o.MaxIter {
		Tprev := mat.DenseCopyOf(T)

		tens := contractTensor(C1, C2, T, kr)
		next, solveErr := o.Solver(p, q, tens, epsilon)
		if solveErr != nil {
			return nil, nil, fmt.Errorf("gw: transport subproblem: %w", solveErr)
		}
		T = next

		if iter%checkInterval == 0 {
			var diff mat.Dense
			diff.Sub(T, Tprev)
			delta = mat.Norm(&diff, 2)
			if trace != nil {
				trace.Err = append(trace.Err, delta)
			}
			o.checkpoint(iter, delta)
		}
		iter++
	}

	return T, trace, nil
}

// GromovWassersteinDistance — entropic Gromov-Wasserstein discrepancy.
//
// Runs GromovWasserstein and returns the realized objective value
// Σ T ⊙ tens(T) at the fixed point. The tensor is contracted once more
// against the final coupling: the last tensor computed inside the loop
// belongs to the previous iterate, not the returned one.
func GromovWassersteinDistance(C1, C2 *mat.Dense, p, q []float64, loss LossKind, epsilon float64, opts *Options) (float64, *Trace, error) {
	kr, err := kernelFor(loss)
	if err != nil {
		return 0, nil, err
	}

	T, trace, err := GromovWasserstein(C1, C2, p, q, loss, epsilon, opts)
	if err != nil {
		return 0, nil, err
	}

	tens := contractTensor(C1, C2, T, kr)
	var prod mat.Dense
	prod.MulElem(T, tens)

	return mat.Sum(&prod), trace, nil
}

// defaultSolver is the stock transport subproblem solver.
func defaultSolver(p, q []float64, cost *mat.Dense, epsilon float64) (*mat.Dense, error) {
	return sinkhorn.Sinkhorn(p, q, cost, epsilon, nil)
}

// checkpoint emits per-checkpoint diagnostics: a structured event on
// the configured logger, and the classic iteration/error table when
// Verbose is set (header reprinted every 200 iterations).
func (o *Options) checkpoint(iter int, delta float64) {
	o.Logger.Debug().Int("iter", iter).Float64("err", delta).Msg("convergence checkpoint")

	if !o.Verbose {
		return
	}
	w := io.Writer(os.Stdout)
	if o.Progress != nil {
		w = o.Progress
	}
	if iter%headerInterval == 0 {
		fmt.Fprintf(w, "%5s|%12s\n%s\n", "It.", "Err", strings.Repeat("-", 19))
	}
	fmt.Fprintf(w, "%5d|%8e|\n", iter, delta)
}
