// Package solver drives the observe → propagate → backtrack state machine
// that collapses a wave into a single resolved grid.
//
// Configuration follows github.com/katalvlaran/lvlath/builder's functional-
// options shape: Option mutates a config, newConfig applies defaults then
// each Option in order, and option constructors that receive a structurally
// meaningless value (a nil callback, a non-positive depth limit) panic
// immediately rather than defer the failure to Solve.
//
// Observers (OnChoice, OnObserve, OnPropagate, OnBacktrack, OnFinal) are
// optional polymorphic sinks: an absent observer is a branchless no-op. The
// solver logs its own high-level progress via github.com/rs/zerolog,
// independent of caller-supplied observers.
package solver
