package mnist

import (
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// DefaultBaseURL is a public mirror of the MNIST distribution. The original
// yann.lecun.com host rejects plain HTTP clients.
const DefaultBaseURL = "https://storage.googleapis.com/cvdf-datasets/mnist/"

var downloadClient = &http.Client{Timeout: 5 * time.Minute}

// Download fetches any missing MNIST files into dir, decompressing the
// gzipped archives the mirror serves. Files already present are left alone.
func Download(dir string) error {
	return DownloadFrom(DefaultBaseURL, dir)
}

// DownloadFrom is Download against an alternate mirror. baseURL must end
// with a slash; each file is fetched as baseURL + name + ".gz".
func DownloadFrom(baseURL, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	files := []string{TrainImagesFile, TrainLabelsFile, TestImagesFile, TestLabelsFile}
	for _, name := range files {
		dest := filepath.Join(dir, name)
		if _, err := os.Stat(dest); err == nil {
			continue
		}
		if err := fetchGzip(baseURL+name+".gz", dest); err != nil {
			return fmt.Errorf("download %s: %w", name, err)
		}
	}
	return nil
}

// fetchGzip downloads a gzipped file and writes the decompressed bytes to
// dest. The write goes through a temp file so a failed download never leaves
// a truncated file behind.
func fetchGzip(url, dest string) error {
	resp, err := downloadClient.Get(url)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	gz, err := gzip.NewReader(resp.Body)
	if err != nil {
		return fmt.Errorf("gunzip: %w", err)
	}
	defer func() {
		_ = gz.Close()
	}()

	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, gz); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", dest, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
