package grid

import "errors"

var (
	// ErrInvalidDimension is returned when a board is created with a
	// non-positive width or height.
	ErrInvalidDimension = errors.New("invalid board dimension")

	// ErrOutOfBounds is returned by Board.Cell for coordinates outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")

	// ErrInvalidPaintValue marks a Paint that is neither a ground nor an
	// entity paint. It is a programming error, never user input.
	ErrInvalidPaintValue = errors.New("invalid paint value")
)
