package idx

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrBadMagic    = errors.New("invalid magic number")
	ErrShortHeader = errors.New("truncated header")
	ErrPayloadSize = errors.New("payload size mismatch")
)

// FormatError describes a structural problem in an IDX file. It wraps one of
// the sentinel errors above, so errors.Is can be used to classify failures.
type FormatError struct {
	Kind   string // "images" or "labels"
	Detail string // what disagreed, with the observed values
	Err    error  // sentinel category
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("idx %s: %v: %s", e.Kind, e.Err, e.Detail)
}

// Unwrap returns the sentinel category.
func (e *FormatError) Unwrap() error { return e.Err }
