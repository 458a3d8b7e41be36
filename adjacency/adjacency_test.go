package adjacency_test

import (
	"testing"

	"github.com/arboria/wfc-core/adjacency"
	"github.com/stretchr/testify/require"
)

var fourWay = adjacency.Offsets{
	{DX: 0, DY: -1}, // N
	{DX: 1, DY: 0},  // E
	{DX: 0, DY: 1},  // S
	{DX: -1, DY: 0}, // W
}

func TestCompileAndAllowed(t *testing.T) {
	// P=2: pattern 0 only tolerates itself to the east/west; pattern 1
	// tolerates both, in all directions.
	lists := map[adjacency.Direction][][]int{
		fourWay[0]: {{0, 1}, {0, 1}},
		fourWay[1]: {{0}, {0, 1}},
		fourWay[2]: {{0, 1}, {0, 1}},
		fourWay[3]: {{0}, {0, 1}},
	}

	tbl, err := adjacency.Compile(fourWay, lists, 2)
	require.NoError(t, err)
	require.Equal(t, 2, tbl.P())
	require.Equal(t, 4, tbl.D())

	ok, err := tbl.Allowed(1, 0, 1) // east, pattern 0 rejects 1
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = tbl.Allowed(1, 1, 0) // pattern 1's row lists 0 too
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCompileMissingDirection(t *testing.T) {
	lists := map[adjacency.Direction][][]int{
		fourWay[0]: {{0}, {0}},
	}
	_, err := adjacency.Compile(fourWay, lists, 2)
	require.ErrorIs(t, err, adjacency.ErrMissingDirection)
}

func TestCompilePatternCountMismatch(t *testing.T) {
	lists := map[adjacency.Direction][][]int{
		fourWay[0]: {{0}},
		fourWay[1]: {{0}, {0}},
		fourWay[2]: {{0}, {0}},
		fourWay[3]: {{0}, {0}},
	}
	_, err := adjacency.Compile(fourWay, lists, 2)
	require.ErrorIs(t, err, adjacency.ErrPatternCountMismatch)
}

func TestCompileNeighborOutOfRange(t *testing.T) {
	lists := map[adjacency.Direction][][]int{
		fourWay[0]: {{0, 7}, {0}},
		fourWay[1]: {{0}, {0}},
		fourWay[2]: {{0}, {0}},
		fourWay[3]: {{0}, {0}},
	}
	_, err := adjacency.Compile(fourWay, lists, 2)
	require.ErrorIs(t, err, adjacency.ErrPatternCountMismatch)
}

func TestInverse(t *testing.T) {
	inv, err := fourWay.Inverse()
	require.NoError(t, err)
	// N(0) <-> S(2), E(1) <-> W(3)
	require.Equal(t, []int{2, 3, 0, 1}, inv)
}

func TestInverseMissing(t *testing.T) {
	asym := adjacency.Offsets{{DX: 1, DY: 0}}
	_, err := asym.Inverse()
	require.ErrorIs(t, err, adjacency.ErrNoInverse)
}

func TestBoolMatrixBounds(t *testing.T) {
	m, err := adjacency.NewBoolMatrix(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, true))

	ok, err := m.At(0, 1)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, adjacency.ErrIndexOutOfBounds)
}

func TestBoolMatrixRowCountAndClone(t *testing.T) {
	m, err := adjacency.NewBoolMatrix(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, true))
	require.NoError(t, m.Set(0, 2, true))

	n, err := m.RowCount(0)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 1, true))
	n, err = m.RowCount(0)
	require.NoError(t, err)
	require.Equal(t, 2, n, "mutating the clone must not affect the original")
}

func TestInvalidDimensions(t *testing.T) {
	_, err := adjacency.NewBoolMatrix(0)
	require.ErrorIs(t, err, adjacency.ErrInvalidDimensions)

	_, err = adjacency.Compile(nil, nil, 2)
	require.ErrorIs(t, err, adjacency.ErrInvalidDimensions)
}
