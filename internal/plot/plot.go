// Package plot renders 2-D embeddings as scatter plots, one color per digit
// class.
package plot

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/embedml/tsnebench/internal/idx"
)

// Scatter writes a PNG scatter plot of an (N, 2) embedding to path. Each
// sample is colored by its digit label and each digit gets a legend entry.
func Scatter(embedding *mat.Dense, labels idx.LabelSet, title, path string) error {
	if embedding == nil {
		return fmt.Errorf("plot: nil embedding")
	}
	n, c := embedding.Dims()
	if c != 2 {
		return fmt.Errorf("plot: embedding has %d columns, want 2", c)
	}
	if n != len(labels) {
		return fmt.Errorf("plot: %d embedding rows but %d labels", n, len(labels))
	}

	// Bucket points by digit so each class is one scatter series.
	classes := make(map[uint8]plotter.XYs)
	for i := 0; i < n; i++ {
		d := labels[i]
		classes[d] = append(classes[d], plotter.XY{
			X: embedding.At(i, 0),
			Y: embedding.At(i, 1),
		})
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "dim 1"
	p.Y.Label.Text = "dim 2"

	for digit := 0; digit < 10; digit++ {
		pts, ok := classes[uint8(digit)]
		if !ok {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("plot digit %d: %w", digit, err)
		}
		s.GlyphStyle.Color = plotutil.Color(digit)
		s.GlyphStyle.Radius = vg.Points(2)
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("%d", digit), s)
	}

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
