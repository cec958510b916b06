// Package gw defines options, sentinel errors and the trace structure
// shared by the GW solver and the barycenter solver.
package gw

import (
	"errors"
	"io"
	"math/rand"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
)

// ErrUnknownLoss indicates a LossKind outside the closed set of
// supported kernels. It is reported before any iteration begins.
var ErrUnknownLoss = errors.New("gw: unknown loss kind")

// ErrCountMismatch indicates barycenter inputs whose per-space slices
// (Cs, ps, lambdas) disagree in length.
var ErrCountMismatch = errors.New("gw: Cs, ps and lambdas must have equal length")

// TransportSolver solves the entropic-regularized transport subproblem:
// given marginals p, q, a non-negative cost matrix and a regularization
// strength ε, it returns a coupling with the shape of cost. The default
// is gwot/sinkhorn; substitute your own to change the inner solver.
type TransportSolver func(p, q []float64, cost *mat.Dense, epsilon float64) (*mat.Dense, error)

// DefaultMaxIter is the default outer-iteration budget.
const DefaultMaxIter = 1000

// DefaultStopThreshold is the default convergence threshold on the
// Frobenius norm of successive-iterate change.
const DefaultStopThreshold = 1e-9

// checkInterval is the iteration interval between convergence
// checkpoints. The norm is only recomputed every 10th iteration;
// between checkpoints the loop runs on the stale value, so it may take
// up to 9 extra iterations past actual convergence before stopping.
const checkInterval = 10

// headerInterval controls how often the verbose progress table reprints
// its header row.
const headerInterval = 200

// innerStopThreshold is the convergence threshold of the per-space GW
// solves inside Barycenter. It is intentionally decoupled from
// Options.StopThreshold, which governs the outer structure loop only.
const innerStopThreshold = 1e-5

// Trace records the convergence error measured at every 10th iteration
// of one solve. It is returned by the solvers when Options.RecordTrace
// is set; entries are append-only and never shared across solves.
type Trace struct {
	// Err holds ‖x − x_prev‖_F per checkpoint, in checkpoint order.
	Err []float64
}

// Options configures GromovWasserstein, GromovWassersteinDistance and
// Barycenter. The zero value is usable but starts from DefaultOptions
// for sane budgets; a MaxIter of 0 returns the initial iterate without
// ever invoking the transport solver.
//
// Fields:
//   - MaxIter       — outer-iteration budget. Exhausting it is not an
//     error; the last iterate is returned silently.
//   - StopThreshold — convergence threshold on ‖x − x_prev‖_F,
//     evaluated only at checkpoints.
//   - Verbose       — print an iteration/error table at checkpoints.
//   - Progress      — destination of the verbose table; nil ⇒ os.Stdout.
//   - RecordTrace   — return a *Trace of checkpoint errors.
//   - Logger        — structured checkpoint diagnostics; the zero value
//     and zerolog.Nop() are both silent.
//   - Solver        — transport subproblem solver; nil ⇒ gwot/sinkhorn.
//   - Seed          — seed of the barycenter's random initialization;
//     0 selects a fixed default seed for reproducibility.
//   - Rand          — overrides Seed with a caller-owned generator.
//   - InitStructure — overrides the barycenter's random initialization
//     with a caller-supplied N×N starting estimate.
type Options struct {
	MaxIter       int
	StopThreshold float64
	Verbose       bool
	Progress      io.Writer
	RecordTrace   bool
	Logger        zerolog.Logger
	Solver        TransportSolver
	Seed          int64
	Rand          *rand.Rand
	InitStructure *mat.Dense
}

// DefaultOptions returns the canonical defaults.
func DefaultOptions() Options {
	return Options{
		MaxIter:       DefaultMaxIter,
		StopThreshold: DefaultStopThreshold,
		Logger:        zerolog.Nop(),
	}
}

// resolveOptions copies opts (or the defaults when nil) and fills the
// injectable collaborators.
func resolveOptions(opts *Options) Options {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Solver == nil {
		o.Solver = defaultSolver
	}
	return o
}

// rng resolves the pseudo-random source for barycenter initialization.
func (o *Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return rngFromSeed(o.Seed)
}
