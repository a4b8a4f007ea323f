package mnist

import (
	"bytes"
	"compress/gzip"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embedml/tsnebench/internal/idx"
)

// gzipped returns body compressed with gzip.
func gzipped(t *testing.T, body []byte) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	gz := gzip.NewWriter(buf)
	_, err := gz.Write(body)
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

// mirrorFixtures builds one well-formed IDX body per MNIST file name.
func mirrorFixtures(t *testing.T) map[string][]byte {
	t.Helper()

	set, err := idx.NewImageSet(2, 2, []byte{1, 2, 3, 4})
	require.NoError(t, err)
	img := new(bytes.Buffer)
	require.NoError(t, idx.EncodeImages(img, set))

	lbl := new(bytes.Buffer)
	require.NoError(t, idx.EncodeLabels(lbl, idx.LabelSet{5}))

	return map[string][]byte{
		TrainImagesFile: img.Bytes(),
		TrainLabelsFile: lbl.Bytes(),
		TestImagesFile:  img.Bytes(),
		TestLabelsFile:  lbl.Bytes(),
	}
}

func TestDownloadFrom(t *testing.T) {
	fixtures := mirrorFixtures(t)

	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		name := filepath.Base(r.URL.Path)
		body, ok := fixtures[name[:len(name)-len(".gz")]]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(gzipped(t, body))
	}))
	defer srv.Close()

	dir := t.TempDir()
	require.NoError(t, DownloadFrom(srv.URL+"/", dir))
	assert.Equal(t, 4, hits)

	// Decompressed files must load as a consistent split.
	d, err := Load(dir, true)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, uint8(5), d.Labels[0])

	// A second run finds everything in place and fetches nothing.
	hits = 0
	require.NoError(t, DownloadFrom(srv.URL+"/", dir))
	assert.Equal(t, 0, hits)
}

func TestDownloadFromHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dir := t.TempDir()
	err := DownloadFrom(srv.URL+"/", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")

	// No partial files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDownloadFromBadGzip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not gzip"))
	}))
	defer srv.Close()

	err := DownloadFrom(srv.URL+"/", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gunzip")
}
