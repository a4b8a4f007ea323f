// Package embed adapts off-the-shelf dimensionality-reduction estimators to a
// common fit-transform interface. None of the reduction math lives here: the
// similarity construction and embedding optimization are delegated entirely
// to the wrapped third-party packages.
package embed

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrEmptyInput is returned when an estimator is handed a nil or zero-row
// matrix.
var ErrEmptyInput = errors.New("embed: empty input matrix")

// Embedder reduces a (N, D) feature matrix to a (N, 2) embedding.
type Embedder interface {
	// Name identifies the estimator in benchmark reports.
	Name() string

	// FitTransform fits the estimator on X and returns the 2-D embedding.
	// Row order is preserved: embedding row i corresponds to X row i.
	FitTransform(X *mat.Dense) (*mat.Dense, error)
}

// checkInput rejects empty matrices and reports the input size.
func checkInput(X *mat.Dense) (n, d int, err error) {
	if X == nil {
		return 0, 0, ErrEmptyInput
	}
	n, d = X.Dims()
	if n == 0 || d == 0 {
		return 0, 0, ErrEmptyInput
	}
	return n, d, nil
}
