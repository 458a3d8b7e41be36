package wave_test

import (
	"testing"

	"github.com/arboria/wfc-core/wave"
	"github.com/stretchr/testify/require"
)

// TestCloneIndependence verifies a snapshot + ban + restore cycle leaves
// the pre-snapshot state bitwise equal, which requires Clone to produce
// fully independent storage.
func TestCloneIndependence(t *testing.T) {
	w, err := wave.Build(3, 2, 2, nil)
	require.NoError(t, err)

	snap := w.Clone()
	require.True(t, w.Equal(snap))

	require.NoError(t, w.Set(0, 0, 0, false))
	require.False(t, w.Equal(snap))

	// restoring from snap must reproduce the original exactly
	restored := snap.Clone()
	require.True(t, restored.Equal(snap))
	ok, err := restored.At(0, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestCompatCloneIndependence mirrors TestCloneIndependence for Compat.
func TestCompatCloneIndependence(t *testing.T) {
	c, err := wave.NewCompat(2, 2, 3, 4)
	require.NoError(t, err)
	require.NoError(t, c.Set(0, 0, 0, 0, 5))

	snap := c.Clone()
	require.NoError(t, c.Set(0, 0, 0, 0, 1))

	val, err := snap.At(0, 0, 0, 0)
	require.NoError(t, err)
	require.EqualValues(t, 5, val)
}
