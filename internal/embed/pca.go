package embed

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// PCA projects onto the first two principal components. It is the cheap
// linear baseline the t-SNE embeddings are compared against.
type PCA struct{}

// NewPCA returns a PCA estimator.
func NewPCA() *PCA { return &PCA{} }

// Name implements Embedder.
func (*PCA) Name() string { return "pca" }

// FitTransform implements Embedder.
func (*PCA) FitTransform(X *mat.Dense) (*mat.Dense, error) {
	n, d, err := checkInput(X)
	if err != nil {
		return nil, err
	}
	if d < 2 {
		return nil, fmt.Errorf("pca: need at least 2 features, got %d", d)
	}
	if n < 2 {
		return nil, fmt.Errorf("pca: need at least 2 samples, got %d", n)
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(X, nil); !ok {
		return nil, errors.New("pca: decomposition failed")
	}

	var vectors mat.Dense
	pc.VectorsTo(&vectors)
	projection := vectors.Slice(0, d, 0, 2)

	var out mat.Dense
	out.Mul(X, projection)
	return &out, nil
}
