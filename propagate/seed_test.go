package propagate_test

import (
	"testing"

	"github.com/arboria/wfc-core/grid"
	"github.com/arboria/wfc-core/propagate"
	"github.com/arboria/wfc-core/wave"
	"github.com/stretchr/testify/require"
)

func TestSeedBansPushesAlreadyFalseEntries(t *testing.T) {
	tbl, _ := checkerboardTable(t)
	topo, err := grid.New(2, 2, false)
	require.NoError(t, err)

	w, err := wave.Build(3, 2, 2, wave.NewGroundSet(2))
	require.NoError(t, err)
	compat, err := propagate.InitCompat(topo, tbl)
	require.NoError(t, err)

	var stack propagate.Stack
	require.NoError(t, propagate.SeedBans(w, compat, &stack))
	require.NotEmpty(t, stack)

	require.NoError(t, propagate.Incremental(w, compat, topo, tbl, &stack, nil))
}
