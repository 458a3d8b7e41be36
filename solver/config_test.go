package solver_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/arboria/wfc-core/location"
	"github.com/arboria/wfc-core/pattern"
	"github.com/arboria/wfc-core/solver"
)

func TestWithLogOutputWritesProgressLines(t *testing.T) {
	tbl, offs := checkerboardTable(t)

	var buf bytes.Buffer
	_, err := solver.Solve(3, 3, 4, offs, tbl, location.Lexical(), pattern.Lexical(),
		solver.WithLogOutput(&buf, zerolog.DebugLevel),
	)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "solve: starting")
}

func TestWithDepthLimitPanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { solver.WithDepthLimit(0) })
}

func TestWithContextPanicsOnNil(t *testing.T) {
	require.Panics(t, func() { solver.WithContext(nil) })
}
