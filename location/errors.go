package location

import "errors"

// ErrNoOpenCells indicates every cell is already resolved or empty; callers
// must check wave.IsResolved before invoking a Heuristic.
var ErrNoOpenCells = errors.New("location: no open cells remain")

// ErrInvalidDimensions indicates preferences or curve dimensions disagree
// with the wave's declared H×V extent.
var ErrInvalidDimensions = errors.New("location: dimensions must match the wave")
