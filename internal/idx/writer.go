package idx

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// EncodeImages writes an ImageSet as an IDX image stream. Decoding the output
// yields a set identical to the input.
func EncodeImages(w io.Writer, set *ImageSet) error {
	header := []uint32{MagicImages, uint32(set.count), uint32(set.rows), uint32(set.cols)}
	for _, v := range header {
		if err := binary.Write(w, binary.BigEndian, v); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if _, err := w.Write(set.pixels); err != nil {
		return fmt.Errorf("write pixels: %w", err)
	}
	return nil
}

// EncodeLabels writes a LabelSet as an IDX label stream.
func EncodeLabels(w io.Writer, labels LabelSet) error {
	header := []uint32{MagicLabels, uint32(len(labels))}
	for _, v := range header {
		if err := binary.Write(w, binary.BigEndian, v); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if _, err := w.Write(labels); err != nil {
		return fmt.Errorf("write labels: %w", err)
	}
	return nil
}

// WriteImages writes an ImageSet to an IDX file on disk.
//
//nolint:gosec // G304: path comes from trusted caller, not user input.
func WriteImages(path string, set *ImageSet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := EncodeImages(f, set); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// WriteLabels writes a LabelSet to an IDX file on disk.
//
//nolint:gosec // G304: path comes from trusted caller, not user input.
func WriteLabels(path string, labels LabelSet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := EncodeLabels(f, labels); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
