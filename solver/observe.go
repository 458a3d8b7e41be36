package solver

import (
	"fmt"

	"github.com/arboria/wfc-core/location"
	"github.com/arboria/wfc-core/pattern"
	"github.com/arboria/wfc-core/wave"
)

// Observe asks locHeu for a cell and patHeu for a pattern within it,
// returning (p, x, y). It asserts the location heuristic's chosen cell is
// genuinely open and the pattern heuristic's choice is itself admissible
// there; either violation is a programmer error reported via ErrAssertion,
// never as ErrContradiction.
func Observe(w *wave.Wave, locHeu location.Heuristic, patHeu pattern.Heuristic) (p, x, y int, err error) {
	cell, err := locHeu(w)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("solver: location heuristic: %w", err)
	}

	slice, err := w.PatternSlice(cell.X, cell.Y)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("solver: %w: location heuristic returned an invalid cell: %v", ErrAssertion, err)
	}
	count := 0
	for _, ok := range slice {
		if ok {
			count++
		}
	}
	if count < 2 {
		return 0, 0, 0, fmt.Errorf("solver: %w: location heuristic returned a resolved or empty cell (%d admissible)", ErrAssertion, count)
	}

	chosen, err := patHeu(w, cell.X, cell.Y)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("solver: pattern heuristic: %w", err)
	}
	if chosen < 0 || chosen >= w.Patterns() || !slice[chosen] {
		return 0, 0, 0, fmt.Errorf("solver: %w: pattern heuristic chose an inadmissible pattern %d", ErrAssertion, chosen)
	}

	return chosen, cell.X, cell.Y, nil
}
