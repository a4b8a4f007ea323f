package embed

import (
	"fmt"

	"github.com/danaugrs/go-tsne/tsne"
	"gonum.org/v1/gonum/mat"
)

// TSNE runs t-SNE via the gonum-native go-tsne package.
type TSNE struct {
	// Perplexity balances local against global structure. The classic
	// default is 30; it must be well below the sample count.
	Perplexity float64

	// LearningRate is the gradient-descent step size.
	LearningRate float64

	// Iterations is the number of optimization steps.
	Iterations int

	// Verbose makes the underlying estimator log divergence per step.
	Verbose bool
}

// NewTSNE returns a TSNE with the conventional defaults.
func NewTSNE() *TSNE {
	return &TSNE{
		Perplexity:   30,
		LearningRate: 200,
		Iterations:   1000,
	}
}

// Name implements Embedder.
func (t *TSNE) Name() string { return "go-tsne" }

// FitTransform implements Embedder.
func (t *TSNE) FitTransform(X *mat.Dense) (*mat.Dense, error) {
	n, _, err := checkInput(X)
	if err != nil {
		return nil, err
	}
	// The perplexity must leave room for at least that many neighbors.
	if float64(n) <= t.Perplexity {
		return nil, fmt.Errorf("go-tsne: %d samples too few for perplexity %g", n, t.Perplexity)
	}

	estimator := tsne.NewTSNE(2, t.Perplexity, t.LearningRate, t.Iterations, t.Verbose)
	Y := estimator.EmbedData(X, nil)
	return mat.DenseCopyOf(Y), nil
}
