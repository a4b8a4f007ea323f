package idx

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// ReadImages reads an IDX image file from disk.
//
//nolint:gosec // G304: path comes from trusted caller, not user input.
func ReadImages(path string) (*ImageSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close() // Ignore close error on read-only file.
	}()

	set, err := DecodeImages(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return set, nil
}

// DecodeImages decodes an IDX image stream: a 16-byte header (magic, count,
// rows, cols as big-endian uint32) followed by count×rows×cols pixel bytes.
// The payload must match the declared dimensions exactly.
func DecodeImages(r io.Reader) (*ImageSet, error) {
	magic, err := readHeaderField(r, "images", "magic")
	if err != nil {
		return nil, err
	}
	if magic != MagicImages {
		return nil, &FormatError{
			Kind:   "images",
			Detail: fmt.Sprintf("got 0x%08X, want 0x%08X", magic, MagicImages),
			Err:    ErrBadMagic,
		}
	}

	count, err := readHeaderField(r, "images", "count")
	if err != nil {
		return nil, err
	}
	rows, err := readHeaderField(r, "images", "rows")
	if err != nil {
		return nil, err
	}
	cols, err := readHeaderField(r, "images", "cols")
	if err != nil {
		return nil, err
	}

	pixels, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pixels: %w", err)
	}

	want := int(count) * int(rows) * int(cols)
	if len(pixels) != want {
		return nil, &FormatError{
			Kind: "images",
			Detail: fmt.Sprintf("got %d payload bytes, want %d (%d×%d×%d)",
				len(pixels), want, count, rows, cols),
			Err: ErrPayloadSize,
		}
	}

	return &ImageSet{
		count:  int(count),
		rows:   int(rows),
		cols:   int(cols),
		pixels: pixels,
	}, nil
}

// ReadLabels reads an IDX label file from disk.
//
//nolint:gosec // G304: path comes from trusted caller, not user input.
func ReadLabels(path string) (LabelSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close() // Ignore close error on read-only file.
	}()

	labels, err := DecodeLabels(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return labels, nil
}

// DecodeLabels decodes an IDX label stream: an 8-byte header (magic, count)
// followed by one byte per label. The payload must hold exactly count bytes;
// both truncated and oversized files are rejected.
func DecodeLabels(r io.Reader) (LabelSet, error) {
	magic, err := readHeaderField(r, "labels", "magic")
	if err != nil {
		return nil, err
	}
	if magic != MagicLabels {
		return nil, &FormatError{
			Kind:   "labels",
			Detail: fmt.Sprintf("got 0x%08X, want 0x%08X", magic, MagicLabels),
			Err:    ErrBadMagic,
		}
	}

	count, err := readHeaderField(r, "labels", "count")
	if err != nil {
		return nil, err
	}

	labels, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}
	if len(labels) != int(count) {
		return nil, &FormatError{
			Kind:   "labels",
			Detail: fmt.Sprintf("got %d payload bytes, want %d", len(labels), count),
			Err:    ErrPayloadSize,
		}
	}

	return LabelSet(labels), nil
}

// readHeaderField reads one big-endian uint32 header field.
func readHeaderField(r io.Reader, kind, field string) (uint32, error) {
	var v uint32
	if err := binary.Read(r, binary.BigEndian, &v); err != nil {
		return 0, &FormatError{
			Kind:   kind,
			Detail: fmt.Sprintf("read %s: %v", field, err),
			Err:    ErrShortHeader,
		}
	}
	return v, nil
}
