package pattern

import "errors"

// ErrCellResolvedOrEmpty indicates Heuristic was asked to choose within a
// cell that already has zero or one admissible pattern; callers must only
// invoke a pattern Heuristic on a cell the location Heuristic selected.
var ErrCellResolvedOrEmpty = errors.New("pattern: cell is already resolved or has no admissible patterns")

// ErrWeightsLengthMismatch indicates a weights slice's length disagreed
// with the wave's pattern count P.
var ErrWeightsLengthMismatch = errors.New("pattern: weights length must equal P")
