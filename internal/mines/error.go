package mines

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedLayout   = errors.New("malformed layout")
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrInvalidMineCount  = errors.New("invalid mine count")
	ErrOutOfBounds       = errors.New("position out of bounds")
	ErrCellOpen          = errors.New("cell is already open")
)

// LayoutError reports a layout row whose length differs from the first row.
// Row is the index among non-blank rows.
type LayoutError struct {
	Row    int
	Length int
	Width  int
}

// [LayoutError] implements [error]
func (e *LayoutError) Error() string {
	return fmt.Sprintf(
		"%s: all rows must have the same length (row %d has %d cells, want %d)",
		ErrMalformedLayout, e.Row, e.Length, e.Width,
	)
}

func (e *LayoutError) Unwrap() error {
	return ErrMalformedLayout
}

func outOfBounds(pos Position, width, height int) error {
	return fmt.Errorf("%w: %s on %dx%d board", ErrOutOfBounds, pos, width, height)
}
