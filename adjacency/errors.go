package adjacency

import "errors"

// Sentinel errors for adjacency compilation and lookup.
var (
	// ErrInvalidDimensions indicates a non-positive pattern count or an
	// empty direction order.
	ErrInvalidDimensions = errors.New("adjacency: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a pattern or direction index fell
	// outside the compiled table's bounds.
	ErrIndexOutOfBounds = errors.New("adjacency: index out of bounds")

	// ErrMissingDirection indicates the adjacency-list map omitted an
	// offset that appears in the caller's canonical Offsets order.
	ErrMissingDirection = errors.New("adjacency: adjacency list missing a direction")

	// ErrPatternCountMismatch indicates an adjacency list's length, or a
	// listed neighbor index, disagreed with the declared pattern count P.
	ErrPatternCountMismatch = errors.New("adjacency: adjacency list disagrees with pattern count")

	// ErrNoInverse indicates a direction offset has no negation within the
	// caller's Offsets order; required for the incremental propagator.
	ErrNoInverse = errors.New("adjacency: direction has no inverse in this offset order")
)
