package board

import "errors"

var (
	// ErrOutOfBounds is returned when a placement names a row or column off the grid.
	ErrOutOfBounds = errors.New("board: coordinate out of bounds")
	// ErrUnknownLevel is returned for intensity levels with no coverage band.
	ErrUnknownLevel = errors.New("board: unsupported intensity level")
	// ErrUnknownKind is returned when a side, unit kind, hazard kind or axis does not parse.
	ErrUnknownKind = errors.New("board: unknown kind")
)
