// Package obslog centralizes the solver's optional structured-logging sink.
//
// It wraps github.com/rs/zerolog the way github.com/smilemakc/mbflow wires a
// package-level zerolog.Logger through its executor: callers that never
// configure a logger get a zerolog.Nop() sink, so the hot propagation/search
// loop pays nothing beyond a pointer comparison for an absent sink.
package obslog

import (
	"io"

	"github.com/rs/zerolog"
)

// Nop returns a logger that discards everything, the zero-cost default.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// New returns a logger writing JSON lines to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
