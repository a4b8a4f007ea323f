// Package bench times dimensionality-reduction estimators on a shared input
// matrix and formats the comparison.
package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/embedml/tsnebench/internal/embed"
)

// Result holds one timed estimator run.
type Result struct {
	Name      string
	Samples   int
	Dims      int
	Elapsed   time.Duration
	Embedding *mat.Dense
}

// Run executes a single timed FitTransform. t-SNE runs are long, so there is
// no warmup loop; the one-shot wall time is what the comparison reports.
func Run(e embed.Embedder, X *mat.Dense) (*Result, error) {
	n, d := X.Dims()

	start := time.Now()
	Y, err := e.FitTransform(X)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Name(), err)
	}

	return &Result{
		Name:      e.Name(),
		Samples:   n,
		Dims:      d,
		Elapsed:   elapsed,
		Embedding: Y,
	}, nil
}

// RunAll runs every estimator against the same matrix, in order. It stops at
// the first failure.
func RunAll(estimators []embed.Embedder, X *mat.Dense) ([]*Result, error) {
	results := make([]*Result, 0, len(estimators))
	for _, e := range estimators {
		r, err := Run(e, X)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Report writes an aligned comparison table. The fastest run is marked and
// the others get a slowdown factor relative to it.
func Report(w io.Writer, results []*Result) error {
	if len(results) == 0 {
		return nil
	}

	fastest := results[0].Elapsed
	for _, r := range results[1:] {
		if r.Elapsed < fastest {
			fastest = r.Elapsed
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ESTIMATOR\tSAMPLES\tDIMS\tTIME\tRELATIVE")
	for _, r := range results {
		relative := "fastest"
		if r.Elapsed != fastest && fastest > 0 {
			relative = fmt.Sprintf("%.2fx", float64(r.Elapsed)/float64(fastest))
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n",
			r.Name, r.Samples, r.Dims, formatDuration(r.Elapsed), relative)
	}
	return tw.Flush()
}

// formatDuration renders durations at millisecond precision, matching how
// the timings are meaningfully comparable.
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
}
