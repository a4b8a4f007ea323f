// Package idx reads and writes the IDX binary container format used by the
// MNIST distribution.
//
// An IDX file is a fixed big-endian header of unsigned 32-bit integers
// followed by a raw row-major payload of unsigned bytes:
//
//	image files: magic (0x00000803), count, rows, cols, pixel bytes
//	label files: magic (0x00000801), count, label bytes
//
// Loading is a pure function of the file contents; the decoded sets are
// immutable and carry no reference to the source file.
package idx

import "fmt"

// Magic numbers for the two MNIST file kinds.
const (
	MagicImages = 0x00000803 // 2051
	MagicLabels = 0x00000801 // 2049
)

// ImageSet holds a decoded IDX image file: count items of rows×cols unsigned
// 8-bit pixels, stored row-major in a single flat slice indexed as
// [item][row][column].
type ImageSet struct {
	count  int
	rows   int
	cols   int
	pixels []uint8
}

// NewImageSet builds an ImageSet from raw row-major pixel data.
// The pixel slice length must be an exact multiple of rows×cols.
func NewImageSet(rows, cols int, pixels []uint8) (*ImageSet, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("idx: negative dimensions %dx%d", rows, cols)
	}
	size := rows * cols
	if size == 0 {
		if len(pixels) != 0 {
			return nil, fmt.Errorf("idx: %d pixel bytes with zero-sized items", len(pixels))
		}
		return &ImageSet{rows: rows, cols: cols}, nil
	}
	if len(pixels)%size != 0 {
		return nil, fmt.Errorf("idx: %d pixel bytes is not a multiple of item size %d", len(pixels), size)
	}
	return &ImageSet{
		count:  len(pixels) / size,
		rows:   rows,
		cols:   cols,
		pixels: pixels,
	}, nil
}

// Len returns the number of images.
func (s *ImageSet) Len() int { return s.count }

// Rows returns the pixel row count per image.
func (s *ImageSet) Rows() int { return s.rows }

// Cols returns the pixel column count per image.
func (s *ImageSet) Cols() int { return s.cols }

// Image returns the rows×cols pixel bytes of item i as a view into the
// underlying payload. Callers must not modify the returned slice.
func (s *ImageSet) Image(i int) []uint8 {
	size := s.rows * s.cols
	return s.pixels[i*size : (i+1)*size]
}

// At returns the pixel at row r, column c of item i.
func (s *ImageSet) At(i, r, c int) uint8 {
	return s.pixels[(i*s.rows+r)*s.cols+c]
}

// LabelSet holds a decoded IDX label file: one unsigned 8-bit label per item,
// in the same order as the matching image file.
type LabelSet []uint8
