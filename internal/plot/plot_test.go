package plot

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/embedml/tsnebench/internal/idx"
)

func testEmbedding(n int) (*mat.Dense, idx.LabelSet) {
	rng := rand.New(rand.NewSource(1))
	Y := mat.NewDense(n, 2, nil)
	labels := make(idx.LabelSet, n)
	for i := 0; i < n; i++ {
		Y.Set(i, 0, rng.NormFloat64())
		Y.Set(i, 1, rng.NormFloat64())
		labels[i] = uint8(i % 10)
	}
	return Y, labels
}

func TestScatter(t *testing.T) {
	Y, labels := testEmbedding(50)
	path := filepath.Join(t.TempDir(), "embedding.png")

	require.NoError(t, Scatter(Y, labels, "test embedding", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestScatterShapeErrors(t *testing.T) {
	Y, labels := testEmbedding(10)
	path := filepath.Join(t.TempDir(), "out.png")

	assert.Error(t, Scatter(nil, labels, "t", path))
	assert.Error(t, Scatter(mat.NewDense(10, 3, nil), labels, "t", path))
	assert.Error(t, Scatter(Y, labels[:5], "t", path))
}
