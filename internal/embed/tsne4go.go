package embed

import (
	"github.com/sacado/tsne4go"
	"gonum.org/v1/gonum/mat"
)

// TSNE4Go runs t-SNE via the tsne4go package, which is driven one gradient
// step at a time over a pairwise-distance view of the input.
type TSNE4Go struct {
	// Iterations is the number of gradient steps to drive.
	Iterations int
}

// NewTSNE4Go returns a TSNE4Go with a default step budget.
func NewTSNE4Go() *TSNE4Go {
	return &TSNE4Go{Iterations: 1000}
}

// Name implements Embedder.
func (t *TSNE4Go) Name() string { return "tsne4go" }

// FitTransform implements Embedder.
func (t *TSNE4Go) FitTransform(X *mat.Dense) (*mat.Dense, error) {
	n, _, err := checkInput(X)
	if err != nil {
		return nil, err
	}

	vectors := make(tsne4go.VectorDistancer, n)
	for i := 0; i < n; i++ {
		vectors[i] = X.RawRowView(i)
	}

	estimator := tsne4go.New(vectors, nil)
	for i := 0; i < t.Iterations; i++ {
		estimator.Step()
	}
	estimator.NormalizeSolution()

	out := mat.NewDense(n, 2, nil)
	for i, p := range estimator.Solution {
		out.Set(i, 0, p[0])
		out.Set(i, 1, p[1])
	}
	return out, nil
}
