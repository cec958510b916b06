package gw

import "math"

// logFloor is added inside every logarithm of the KL kernel so that
// exact zeros in the inputs yield large negative finite values instead
// of -Inf or NaN. Required stabilization, not a tunable.
const logFloor = 1e-15

// LossKind selects the pairwise loss L(a, b) comparing one entry of the
// source structure matrix against one entry of the target structure
// matrix. The set is closed: any value outside it fails construction
// with ErrUnknownLoss before iteration starts.
type LossKind int

const (
	// SquareLoss is L(a,b) = ½·(a−b)².
	SquareLoss LossKind = iota

	// KLLoss is L(a,b) = a·log(a/b) − a + b, floored inside the
	// logarithms so zero entries stay finite.
	KLLoss
)

// String implements fmt.Stringer.
func (k LossKind) String() string {
	switch k {
	case SquareLoss:
		return "square_loss"
	case KLLoss:
		return "kl_loss"
	default:
		return "unknown_loss"
	}
}

// lossKernel bundles the separable decomposition of a pairwise loss:
//
//	L(a,b) = f1(a) + f2(b) − h1(a)·h2(b)
//
// The h factors are what the tensor contraction consumes; keeping all
// four together makes each kernel self-describing.
type lossKernel struct {
	f1, f2, h1, h2 func(float64) float64
}

// kernelFor returns the kernel of kind, or ErrUnknownLoss for values
// outside the closed set.
func kernelFor(kind LossKind) (lossKernel, error) {
	switch kind {
	case SquareLoss:
		return lossKernel{
			f1: func(a float64) float64 { return a * a / 2 },
			f2: func(b float64) float64 { return b * b / 2 },
			h1: func(a float64) float64 { return a },
			h2: func(b float64) float64 { return b },
		}, nil
	case KLLoss:
		return lossKernel{
			f1: func(a float64) float64 { return a*math.Log(a+logFloor) - a },
			f2: func(b float64) float64 { return b },
			h1: func(a float64) float64 { return a },
			h2: func(b float64) float64 { return math.Log(b + logFloor) },
		}, nil
	default:
		return lossKernel{}, ErrUnknownLoss
	}
}

// Eval returns L(a, b) under kind, evaluated through the separable
// decomposition (so it agrees exactly with what the solver optimizes).
// Unknown kinds return NaN.
func (k LossKind) Eval(a, b float64) float64 {
	kr, err := kernelFor(k)
	if err != nil {
		return math.NaN()
	}
	return kr.f1(a) + kr.f2(b) - kr.h1(a)*kr.h2(b)
}
