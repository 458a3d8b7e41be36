package grid

import "errors"

// ErrInvalidDimensions indicates a non-positive width or height.
var ErrInvalidDimensions = errors.New("grid: width and height must be > 0")

// ErrIndexOutOfBounds indicates a coordinate fell outside the topology.
var ErrIndexOutOfBounds = errors.New("grid: coordinate out of bounds")
