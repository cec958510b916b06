package gw

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// lineMetric returns the distance matrix of points on a line.
func lineMetric(pts []float64) *mat.Dense {
	n := len(pts)
	C := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			C.Set(i, j, math.Abs(pts[i]-pts[j]))
		}
	}
	return C
}

// uniformCoupling returns the product coupling of two uniform marginals.
func uniformCoupling(n, m int) *mat.Dense {
	T := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			T.Set(i, j, 1/float64(n*m))
		}
	}
	return T
}

// TestContractTensor_MinIsExactlyZero checks the shift invariant for
// both kernels: the minimum entry of the contracted tensor is 0, not
// merely close to it.
func TestContractTensor_MinIsExactlyZero(t *testing.T) {
	C1 := lineMetric([]float64{0, 1, 3})
	C2 := lineMetric([]float64{0, 2, 2.5, 4})
	T := uniformCoupling(3, 4)

	for _, kind := range []LossKind{SquareLoss, KLLoss} {
		kr, err := kernelFor(kind)
		require.NoError(t, err)

		tens := contractTensor(C1, C2, T, kr)
		r, c := tens.Dims()
		assert.Equal(t, 3, r)
		assert.Equal(t, 4, c)
		assert.Equal(t, 0.0, mat.Min(tens), "min must be exactly zero under %v", kind)
	}
}

// TestContractTensor_NonNegativeAndFinite covers the KL kernel on
// structure matrices containing exact zeros (every metric has a zero
// diagonal): the floored logarithms must keep the tensor finite.
func TestContractTensor_NonNegativeAndFinite(t *testing.T) {
	C1 := lineMetric([]float64{0, 0.5, 1})
	C2 := lineMetric([]float64{0, 1, 2})
	T := uniformCoupling(3, 3)

	kr, err := kernelFor(KLLoss)
	require.NoError(t, err)

	tens := contractTensor(C1, C2, T, kr)
	r, c := tens.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := tens.At(i, j)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0),
				"non-finite tensor entry at (%d,%d)", i, j)
		}
	}
}

// TestContractTensor_SquareMatchesDirectProduct validates the
// rank-reduced contraction against the explicit −h1(C1)·T·h2(C2)ᵀ
// product computed entrywise.
func TestContractTensor_SquareMatchesDirectProduct(t *testing.T) {
	C1 := lineMetric([]float64{0, 1, 3})
	C2 := lineMetric([]float64{0, 2})
	T := uniformCoupling(3, 2)

	kr, err := kernelFor(SquareLoss)
	require.NoError(t, err)
	tens := contractTensor(C1, C2, T, kr)

	// Direct computation: raw[i,j] = −Σ_{k,l} C1[i,k]·T[k,l]·C2[j,l].
	raw := mat.NewDense(3, 2, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				for l := 0; l < 2; l++ {
					sum += C1.At(i, k) * T.At(k, l) * C2.At(j, l)
				}
			}
			raw.Set(i, j, -sum)
		}
	}
	shift := mat.Min(raw)

	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, raw.At(i, j)-shift, tens.At(i, j), 1e-12)
		}
	}
}
