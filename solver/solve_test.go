package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arboria/wfc-core/adjacency"
	"github.com/arboria/wfc-core/constraint"
	"github.com/arboria/wfc-core/location"
	"github.com/arboria/wfc-core/pattern"
	"github.com/arboria/wfc-core/solver"
	"github.com/arboria/wfc-core/wave"
)

// checkerboardTable builds the four-direction, three-pattern adjacency table
// shared by the checkerboard/uniform-fill scenarios below: pattern 0
// neighbors only 1, pattern 1 neighbors only 0, pattern 2 neighbors only
// itself.
func checkerboardTable(t *testing.T) (*adjacency.Table, adjacency.Offsets) {
	t.Helper()
	offs := adjacency.Offsets{{DX: 0, DY: -1}, {DX: 1, DY: 0}, {DX: 0, DY: 1}, {DX: -1, DY: 0}}
	rows := [][]int{{1}, {0}, {2}}
	lists := map[adjacency.Direction][][]int{
		offs[0]: rows, offs[1]: rows, offs[2]: rows, offs[3]: rows,
	}
	tbl, err := adjacency.Compile(offs, lists, 3)
	require.NoError(t, err)
	return tbl, offs
}

func TestSolveCheckerboardNonPeriodic(t *testing.T) {
	tbl, offs := checkerboardTable(t)

	got, err := solver.Solve(3, 3, 4, offs, tbl, location.Lexical(), pattern.Lexical())
	require.NoError(t, err)

	want := [][]int{{0, 1, 0, 1}, {1, 0, 1, 0}, {0, 1, 0, 1}}
	require.Equal(t, want, got)
}

func TestSolveForcedUniformFillUnderPeriodicBacktracking(t *testing.T) {
	tbl, offs := checkerboardTable(t)

	backtracks := 0
	got, err := solver.Solve(3, 3, 4, offs, tbl, location.Lexical(), pattern.Lexical(),
		solver.WithPeriodic(true),
		solver.WithBacktracking(true),
		solver.WithOnBacktrack(func(int) { backtracks++ }),
	)
	require.NoError(t, err)

	want := [][]int{{2, 2, 2, 2}, {2, 2, 2, 2}, {2, 2, 2, 2}}
	require.Equal(t, want, got)
	require.GreaterOrEqual(t, backtracks, 1, "a toroidal 3-wide/4-tall checkerboard is unsatisfiable; at least one color must be backtracked out of (0,0)")
}

func TestSolveFeasibilityPredicateAbortsWithContradiction(t *testing.T) {
	tbl, offs := checkerboardTable(t)

	// P*H*V = 36 is the maximum possible popcount for this wave, so a
	// threshold above it fails on the very first check, before any
	// observation runs — deterministic regardless of how much a single
	// propagation call would otherwise resolve. Backtracking stays off: the
	// predicate never passes no matter how many times the state is
	// unwound, so enabling it would only trade this Contradiction for a
	// depth-limit TimedOut once the churn exhausted the limit.
	_, err := solver.Solve(3, 3, 4, offs, tbl, location.Lexical(), pattern.Lexical(),
		solver.WithFeasibility(constraint.PopcountAtLeast(40)),
	)
	require.ErrorIs(t, err, solver.ErrContradiction)
}

func TestSolveRejectsMismatchedTableShape(t *testing.T) {
	tbl, offs := checkerboardTable(t)

	_, err := solver.Solve(4, 3, 4, offs, tbl, location.Lexical(), pattern.Lexical())
	require.ErrorIs(t, err, solver.ErrAssertion)
}

func TestSolveWithSnapshotStoreJournalsBacktrackDepths(t *testing.T) {
	tbl, offs := checkerboardTable(t)

	store, err := wave.OpenSnapshotStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	got, err := solver.Solve(3, 3, 4, offs, tbl, location.Lexical(), pattern.Lexical(),
		solver.WithPeriodic(true),
		solver.WithBacktracking(true),
		solver.WithSnapshotStore(store),
	)
	require.NoError(t, err)

	want := [][]int{{2, 2, 2, 2}, {2, 2, 2, 2}, {2, 2, 2, 2}}
	require.Equal(t, want, got)
}

func TestSolveEmitsObserversAcrossAFullRun(t *testing.T) {
	tbl, offs := checkerboardTable(t)

	var choices, propagations int
	var finalErr error
	finalSeen := false
	got, err := solver.Solve(3, 3, 4, offs, tbl, location.Lexical(), pattern.Lexical(),
		solver.WithOnChoice(func(p, x, y, depth int) { choices++ }),
		solver.WithOnPropagate(func(w *wave.Wave, depth int) { propagations++ }),
		solver.WithOnFinal(func(w *wave.Wave, depth int, err error) { finalSeen = true; finalErr = err }),
	)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.GreaterOrEqual(t, choices, 1, "at least one cell must have been observed")
	require.GreaterOrEqual(t, propagations, 1, "propagation must have run at least once")
	require.True(t, finalSeen, "onFinal must be emitted on success")
	require.NoError(t, finalErr)
}
