// Package pattern implements the pattern-selection half of observation:
// given an open cell, pick which still-admissible pattern to collapse it to.
//
// lexical and weighted/random/rarest/most-common are exposed as Heuristic
// closures over captured state (weights, an RNG stream), matching
// location's Heuristic shape so the solver depends on one capability
// interface for both halves of observation.
//
// RNG-backed variants use a deterministic *rand.Rand supplied by the
// caller, following github.com/katalvlaran/lvlath/tsp's rngFromSeed
// convention rather than a time-seeded global source.
package pattern
