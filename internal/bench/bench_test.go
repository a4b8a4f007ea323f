package bench

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/embedml/tsnebench/internal/embed"
)

// stubEmbedder returns a fixed embedding after an optional sleep.
type stubEmbedder struct {
	name  string
	delay time.Duration
	err   error
}

func (s *stubEmbedder) Name() string { return s.name }

func (s *stubEmbedder) FitTransform(X *mat.Dense) (*mat.Dense, error) {
	if s.err != nil {
		return nil, s.err
	}
	time.Sleep(s.delay)
	n, _ := X.Dims()
	return mat.NewDense(n, 2, nil), nil
}

func input(n int) *mat.Dense {
	return mat.NewDense(n, 4, make([]float64, n*4))
}

func TestRun(t *testing.T) {
	stub := &stubEmbedder{name: "stub", delay: 5 * time.Millisecond}

	r, err := Run(stub, input(3))
	require.NoError(t, err)

	assert.Equal(t, "stub", r.Name)
	assert.Equal(t, 3, r.Samples)
	assert.Equal(t, 4, r.Dims)
	assert.GreaterOrEqual(t, r.Elapsed, 5*time.Millisecond)

	rows, cols := r.Embedding.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)
}

func TestRunError(t *testing.T) {
	boom := errors.New("boom")
	stub := &stubEmbedder{name: "bad", err: boom}

	_, err := Run(stub, input(3))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "bad:")
}

func TestRunAll(t *testing.T) {
	estimators := []embed.Embedder{
		&stubEmbedder{name: "a"},
		&stubEmbedder{name: "b"},
	}

	results, err := RunAll(estimators, input(2))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Name)
	assert.Equal(t, "b", results[1].Name)
}

func TestRunAllStopsOnFailure(t *testing.T) {
	estimators := []embed.Embedder{
		&stubEmbedder{name: "a"},
		&stubEmbedder{name: "bad", err: errors.New("boom")},
		&stubEmbedder{name: "c"},
	}

	_, err := RunAll(estimators, input(2))
	require.Error(t, err)
}

func TestReport(t *testing.T) {
	results := []*Result{
		{Name: "slow", Samples: 100, Dims: 784, Elapsed: 400 * time.Millisecond},
		{Name: "fast", Samples: 100, Dims: 784, Elapsed: 100 * time.Millisecond},
	}

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, results))

	out := buf.String()
	assert.Contains(t, out, "ESTIMATOR")
	assert.Contains(t, out, "4.00x")
	assert.Contains(t, out, "fastest")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3)
}

func TestReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Report(&buf, nil))
	assert.Empty(t, buf.String())
}
