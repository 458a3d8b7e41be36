package wave

import "errors"

// Sentinel errors for wave operations.
var (
	// ErrInvalidDimensions indicates that P, H, or V is not positive.
	ErrInvalidDimensions = errors.New("wave: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a (pattern, x, y) or (x, y, p, d) lookup
	// fell outside the tensor's bounds.
	ErrIndexOutOfBounds = errors.New("wave: index out of bounds")

	// ErrNotResolved indicates Collapse was called on a wave with an open
	// or empty cell.
	ErrNotResolved = errors.New("wave: not every cell is resolved")

	// ErrInvalidGroundPattern indicates a ground-set pattern index is
	// outside [0, P).
	ErrInvalidGroundPattern = errors.New("wave: ground pattern index out of range")
)
