// Command tsnebench benchmarks off-the-shelf dimensionality-reduction
// estimators on the MNIST digit dataset.
//
// It downloads MNIST if asked, loads the IDX files, flattens a subsample of
// images into a (N, 784) matrix, runs each selected estimator, prints a
// timing comparison, and optionally writes a scatter plot of each 2-D
// embedding colored by digit.
//
// Usage:
//
//	tsnebench -data ./data -download -samples 1000 -plot ./out
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/embedml/tsnebench/internal/bench"
	"github.com/embedml/tsnebench/internal/device"
	"github.com/embedml/tsnebench/internal/embed"
	"github.com/embedml/tsnebench/internal/mnist"
	"github.com/embedml/tsnebench/internal/plot"
)

func main() {
	dataDir := flag.String("data", "data", "Directory holding the MNIST IDX files")
	download := flag.Bool("download", false, "Download missing MNIST files first")
	useTest := flag.Bool("test", false, "Use the 10k test split instead of the 60k train split")
	samples := flag.Int("samples", 1000, "Number of images to subsample (0 = all)")
	seed := flag.Int64("seed", 42, "Subsampling seed")
	estimators := flag.String("estimators", "go-tsne,tsne4go,pca", "Comma-separated estimators to run")
	perplexity := flag.Float64("perplexity", 30, "t-SNE perplexity")
	learningRate := flag.Float64("lr", 200, "t-SNE learning rate")
	iterations := flag.Int("iterations", 1000, "t-SNE optimization steps")
	plotDir := flag.String("plot", "", "Directory for embedding plots (empty = no plots)")
	flag.Parse()

	if err := run(&config{
		dataDir:      *dataDir,
		download:     *download,
		train:        !*useTest,
		samples:      *samples,
		seed:         *seed,
		estimators:   *estimators,
		perplexity:   *perplexity,
		learningRate: *learningRate,
		iterations:   *iterations,
		plotDir:      *plotDir,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "tsnebench: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	dataDir      string
	download     bool
	train        bool
	samples      int
	seed         int64
	estimators   string
	perplexity   float64
	learningRate float64
	iterations   int
	plotDir      string
}

func run(cfg *config) error {
	if cfg.download {
		fmt.Printf("Downloading MNIST into %s...\n", cfg.dataDir)
		if err := mnist.Download(cfg.dataDir); err != nil {
			return err
		}
	}

	dataset, err := mnist.Load(cfg.dataDir, cfg.train)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d images (%dx%d)\n", dataset.Len(), dataset.Images.Rows(), dataset.Images.Cols())

	if cfg.samples > 0 {
		dataset, err = dataset.Subsample(cfg.samples, rand.New(rand.NewSource(cfg.seed)))
		if err != nil {
			return err
		}
	}

	X := dataset.Matrix()
	if X == nil {
		return fmt.Errorf("dataset is empty")
	}
	n, d := X.Dims()
	fmt.Printf("Benchmarking on %d samples, %d features\n\n", n, d)

	if device.Available() {
		name, err := device.AdapterName()
		if err != nil {
			name = "unknown adapter"
		}
		fmt.Printf("GPU: %s (no GPU estimator available, running CPU estimators)\n\n", name)
	} else {
		fmt.Printf("GPU: not available\n\n")
	}

	selected, err := selectEstimators(cfg)
	if err != nil {
		return err
	}

	results := make([]*bench.Result, 0, len(selected))
	for _, e := range selected {
		fmt.Printf("Running %s...\n", e.Name())
		r, err := bench.Run(e, X)
		if err != nil {
			return err
		}
		fmt.Printf("  done in %s\n", r.Elapsed.Round(1e6))
		results = append(results, r)
	}

	fmt.Println()
	if err := bench.Report(os.Stdout, results); err != nil {
		return err
	}

	if cfg.plotDir == "" {
		return nil
	}
	if err := os.MkdirAll(cfg.plotDir, 0o755); err != nil {
		return fmt.Errorf("create plot dir: %w", err)
	}
	for _, r := range results {
		path := filepath.Join(cfg.plotDir, r.Name+".png")
		title := fmt.Sprintf("MNIST %s embedding (%d samples)", r.Name, r.Samples)
		if err := plot.Scatter(r.Embedding, dataset.Labels, title, path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
	}
	return nil
}

// selectEstimators builds the requested estimators in the order given.
func selectEstimators(cfg *config) ([]embed.Embedder, error) {
	var selected []embed.Embedder
	for _, name := range strings.Split(cfg.estimators, ",") {
		switch strings.TrimSpace(name) {
		case "go-tsne":
			selected = append(selected, &embed.TSNE{
				Perplexity:   cfg.perplexity,
				LearningRate: cfg.learningRate,
				Iterations:   cfg.iterations,
			})
		case "tsne4go":
			selected = append(selected, &embed.TSNE4Go{Iterations: cfg.iterations})
		case "pca":
			selected = append(selected, embed.NewPCA())
		case "":
		default:
			return nil, fmt.Errorf("unknown estimator %q (have go-tsne, tsne4go, pca)", name)
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("no estimators selected")
	}
	return selected, nil
}
