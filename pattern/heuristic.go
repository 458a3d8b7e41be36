package pattern

import "github.com/arboria/wfc-core/wave"

// Heuristic selects an admissible pattern index at cell (x, y) of w.
// Implementations must only be called on a cell with at least two
// admissible patterns; calling one on a resolved or empty cell returns
// ErrCellResolvedOrEmpty.
type Heuristic func(w *wave.Wave, x, y int) (int, error)

// admissible returns the indices of patterns still true at (x, y).
func admissible(w *wave.Wave, x, y int) ([]int, error) {
	slice, err := w.PatternSlice(x, y)
	if err != nil {
		return nil, err
	}
	var idx []int
	for p, ok := range slice {
		if ok {
			idx = append(idx, p)
		}
	}
	if len(idx) < 2 {
		return nil, ErrCellResolvedOrEmpty
	}
	return idx, nil
}
