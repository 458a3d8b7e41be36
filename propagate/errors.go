package propagate

import "errors"

// ErrContradiction indicates some cell reached zero admissible patterns
// during propagation.
var ErrContradiction = errors.New("propagate: contradiction, a cell has no admissible pattern")

// ErrDimensionMismatch indicates the wave, adjacency table, and offsets
// disagree on P or D.
var ErrDimensionMismatch = errors.New("propagate: wave, table, and offsets disagree on dimensions")
