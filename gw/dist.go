package gw

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// PairwiseEuclidean returns the nx×ny matrix of Euclidean distances
// between the rows of X and the rows of Y. The row dimensions may
// differ; the column (feature) dimensions must match, and a mismatch
// panics in the underlying distance computation.
//
// Used for the barycenter's random initialization, and exported so
// callers can build structure matrices from point clouds.
//
// Complexity: O(nx·ny·d) time, O(nx·ny) space.
func PairwiseEuclidean(X, Y *mat.Dense) *mat.Dense {
	nx, _ := X.Dims()
	ny, _ := Y.Dims()

	D := mat.NewDense(nx, ny, nil)
	for i := 0; i < nx; i++ {
		xi := X.RawRowView(i)
		for j := 0; j < ny; j++ {
			D.Set(i, j, floats.Distance(xi, Y.RawRowView(j), 2))
		}
	}

	return D
}
