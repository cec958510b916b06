package sinkhorn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/psuarezserrato/gwot/sinkhorn"
)

// TestSinkhorn_InputValidation covers the fail-fast error surface.
func TestSinkhorn_InputValidation(t *testing.T) {
	cost := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
	p := []float64{0.5, 0.5}

	_, err := sinkhorn.Sinkhorn(p, p, nil, 0.1, nil)
	assert.ErrorIs(t, err, sinkhorn.ErrNilCost)

	_, err = sinkhorn.Sinkhorn(p, p, cost, 0, nil)
	assert.ErrorIs(t, err, sinkhorn.ErrNonPositiveEpsilon)

	_, err = sinkhorn.Sinkhorn(p, p, cost, -1, nil)
	assert.ErrorIs(t, err, sinkhorn.ErrNonPositiveEpsilon)

	_, err = sinkhorn.Sinkhorn([]float64{1}, p, cost, 0.1, nil)
	assert.ErrorIs(t, err, sinkhorn.ErrDimensionMismatch)

	_, err = sinkhorn.Sinkhorn(p, []float64{0.2, 0.3, 0.5}, cost, 0.1, nil)
	assert.ErrorIs(t, err, sinkhorn.ErrDimensionMismatch)
}

// TestSinkhorn_MatchesMarginals: the scaled coupling reproduces both
// prescribed marginals on a plain asymmetric instance.
func TestSinkhorn_MatchesMarginals(t *testing.T) {
	p := []float64{0.3, 0.7}
	q := []float64{0.6, 0.4}
	cost := mat.NewDense(2, 2, []float64{1, 2, 3, 0.5})

	T, err := sinkhorn.Sinkhorn(p, q, cost, 0.5, nil)
	require.NoError(t, err)

	for i, want := range p {
		rowSum := T.At(i, 0) + T.At(i, 1)
		assert.InDelta(t, want, rowSum, 1e-6, "row %d", i)
	}
	for j, want := range q {
		colSum := T.At(0, j) + T.At(1, j)
		assert.InDelta(t, want, colSum, 1e-6, "col %d", j)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.GreaterOrEqual(t, T.At(i, j), 0.0)
		}
	}
	// The expensive route (0,1) carries almost no mass.
	assert.Less(t, T.At(0, 1), 0.01)
}

// TestSinkhorn_ZeroCostReturnsProductCoupling: with a constant cost the
// entropy term alone decides, and the optimum is the product coupling
// p ⊗ qᵀ.
func TestSinkhorn_ZeroCostReturnsProductCoupling(t *testing.T) {
	p := []float64{0.3, 0.7}
	q := []float64{0.2, 0.3, 0.5}
	cost := mat.NewDense(2, 3, nil)

	T, err := sinkhorn.Sinkhorn(p, q, cost, 0.1, nil)
	require.NoError(t, err)

	for i := range p {
		for j := range q {
			assert.InDelta(t, p[i]*q[j], T.At(i, j), 1e-9)
		}
	}
}

// TestSinkhorn_RectangularShape: the coupling always takes the shape of
// the cost matrix.
func TestSinkhorn_RectangularShape(t *testing.T) {
	p := []float64{0.25, 0.25, 0.25, 0.25}
	q := []float64{0.5, 0.3, 0.2}
	cost := mat.NewDense(4, 3, []float64{
		0, 1, 2,
		1, 0, 1,
		2, 1, 0,
		3, 2, 1,
	})

	T, err := sinkhorn.Sinkhorn(p, q, cost, 0.3, nil)
	require.NoError(t, err)

	r, c := T.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 3, c)
}

// TestSinkhorn_BreakdownStaysFinite: an ε far below the cost scale
// underflows the Gibbs kernel; the solver must return a finite iterate
// instead of NaNs, and must not error.
func TestSinkhorn_BreakdownStaysFinite(t *testing.T) {
	p := []float64{0.5, 0.5}
	cost := mat.NewDense(2, 2, []float64{5000, 5000, 0, 1})

	T, err := sinkhorn.Sinkhorn(p, p, cost, 1e-3, nil)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v := T.At(i, j)
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0),
				"non-finite entry at (%d,%d)", i, j)
		}
	}
}

// TestSinkhorn_BudgetExhaustionIsSilent: a tiny sweep budget returns
// the current iterate without error.
func TestSinkhorn_BudgetExhaustionIsSilent(t *testing.T) {
	p := []float64{0.3, 0.7}
	q := []float64{0.6, 0.4}
	cost := mat.NewDense(2, 2, []float64{1, 2, 3, 0.5})

	opts := sinkhorn.Options{MaxIter: 2, StopThreshold: 1e-12}
	T, err := sinkhorn.Sinkhorn(p, q, cost, 0.5, &opts)
	require.NoError(t, err)
	require.NotNil(t, T)
}

// TestDefaultOptions pins the documented defaults.
func TestDefaultOptions(t *testing.T) {
	o := sinkhorn.DefaultOptions()
	assert.Equal(t, 1000, o.MaxIter)
	assert.Equal(t, 1e-9, o.StopThreshold)
}
