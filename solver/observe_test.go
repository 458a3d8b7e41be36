package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arboria/wfc-core/location"
	"github.com/arboria/wfc-core/pattern"
	"github.com/arboria/wfc-core/solver"
	"github.com/arboria/wfc-core/wave"
)

// TestObserveDispatchesToBothHeuristics checks that a location heuristic
// that always returns (1, 2) and a pattern heuristic that always returns
// 3 yield an Observe result of (3, 1, 2).
func TestObserveDispatchesToBothHeuristics(t *testing.T) {
	w, err := wave.New(5, 3, 4)
	require.NoError(t, err)
	for p := 0; p < 5; p++ {
		require.NoError(t, w.Set(p, 1, 2, true))
	}

	locHeu := location.Heuristic(func(*wave.Wave) (location.Cell, error) {
		return location.Cell{X: 1, Y: 2}, nil
	})
	patHeu := pattern.Heuristic(func(*wave.Wave, int, int) (int, error) {
		return 3, nil
	})

	p, x, y, err := solver.Observe(w, locHeu, patHeu)
	require.NoError(t, err)
	require.Equal(t, 3, p)
	require.Equal(t, 1, x)
	require.Equal(t, 2, y)
}

func TestObserveRejectsResolvedCellFromLocationHeuristic(t *testing.T) {
	w, err := wave.New(3, 2, 2)
	require.NoError(t, err)
	require.NoError(t, w.Set(0, 0, 0, true)) // exactly one admissible pattern

	locHeu := location.Heuristic(func(*wave.Wave) (location.Cell, error) {
		return location.Cell{X: 0, Y: 0}, nil
	})
	patHeu := pattern.Heuristic(func(*wave.Wave, int, int) (int, error) {
		return 0, nil
	})

	_, _, _, err = solver.Observe(w, locHeu, patHeu)
	require.ErrorIs(t, err, solver.ErrAssertion)
}

func TestObserveRejectsInadmissiblePatternFromPatternHeuristic(t *testing.T) {
	w, err := wave.New(3, 1, 1)
	require.NoError(t, err)
	require.NoError(t, w.Set(0, 0, 0, true))
	require.NoError(t, w.Set(1, 0, 0, true))

	locHeu := location.Heuristic(func(*wave.Wave) (location.Cell, error) {
		return location.Cell{X: 0, Y: 0}, nil
	})
	patHeu := pattern.Heuristic(func(*wave.Wave, int, int) (int, error) {
		return 2, nil // banned at (0,0)
	})

	_, _, _, err = solver.Observe(w, locHeu, patHeu)
	require.ErrorIs(t, err, solver.ErrAssertion)
}
