// Package mnist assembles the MNIST digit dataset from its IDX files into the
// flattened matrix form the dimensionality-reduction estimators consume.
package mnist

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"gonum.org/v1/gonum/mat"

	"github.com/embedml/tsnebench/internal/idx"
)

// Standard MNIST file names, as distributed.
const (
	TrainImagesFile = "train-images-idx3-ubyte"
	TrainLabelsFile = "train-labels-idx1-ubyte"
	TestImagesFile  = "t10k-images-idx3-ubyte"
	TestLabelsFile  = "t10k-labels-idx1-ubyte"
)

// Dataset holds one MNIST split: images and their labels in matching order.
type Dataset struct {
	Images *idx.ImageSet
	Labels idx.LabelSet
}

// Load reads an MNIST split from dir. The IDX loaders themselves do not
// cross-check the two files, so the image/label count check happens here.
func Load(dir string, train bool) (*Dataset, error) {
	imageFile, labelFile := TestImagesFile, TestLabelsFile
	if train {
		imageFile, labelFile = TrainImagesFile, TrainLabelsFile
	}

	images, err := idx.ReadImages(filepath.Join(dir, imageFile))
	if err != nil {
		return nil, fmt.Errorf("load images: %w", err)
	}
	labels, err := idx.ReadLabels(filepath.Join(dir, labelFile))
	if err != nil {
		return nil, fmt.Errorf("load labels: %w", err)
	}

	if images.Len() != len(labels) {
		return nil, fmt.Errorf("image count (%d) != label count (%d)", images.Len(), len(labels))
	}

	return &Dataset{Images: images, Labels: labels}, nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return d.Images.Len() }

// Matrix flattens the images into a (N, rows×cols) matrix with pixel values
// normalized to [0, 1]. Returns nil for an empty dataset.
func (d *Dataset) Matrix() *mat.Dense {
	n := d.Images.Len()
	dims := d.Images.Rows() * d.Images.Cols()
	if n == 0 || dims == 0 {
		return nil
	}

	data := make([]float64, n*dims)
	for i := 0; i < n; i++ {
		img := d.Images.Image(i)
		row := data[i*dims : (i+1)*dims]
		for j, px := range img {
			row[j] = float64(px) / 255.0
		}
	}
	return mat.NewDense(n, dims, data)
}

// Subsample returns a new dataset of n samples drawn without replacement.
// If n is at least the dataset size, the receiver is returned unchanged.
func (d *Dataset) Subsample(n int, rng *rand.Rand) (*Dataset, error) {
	if n < 0 {
		return nil, fmt.Errorf("subsample size %d is negative", n)
	}
	if n >= d.Len() {
		return d, nil
	}

	rows, cols := d.Images.Rows(), d.Images.Cols()
	size := rows * cols
	pixels := make([]uint8, 0, n*size)
	labels := make(idx.LabelSet, 0, n)

	for _, i := range rng.Perm(d.Len())[:n] {
		pixels = append(pixels, d.Images.Image(i)...)
		labels = append(labels, d.Labels[i])
	}

	images, err := idx.NewImageSet(rows, cols, pixels)
	if err != nil {
		return nil, fmt.Errorf("subsample: %w", err)
	}
	return &Dataset{Images: images, Labels: labels}, nil
}
