// Package wave owns the possibility tensor at the heart of the solver: a
// flat, row-major boolean array indexed by (pattern, x, y) plus the
// convenience queries a location/pattern heuristic or the solver loop needs
// (per-cell popcount, resolution state, collapse to a concrete grid).
//
// The storage layout mirrors github.com/katalvlaran/lvlath's matrix.Dense: a
// single flat slice with a bounds-checked indexOf, rather than a [][]bool of
// slices-of-slices, to keep the tensor cache-friendly for the tight
// propagation loops in the sibling propagate package.
//
//	types.go, build.go, queries.go — Wave, GroundSet, Build, the resolution queries
//	compat.go   — the [H][V][P][D] compatibility counter tensor
//	clone.go    — deep-copy support for solver snapshot/restore
//	snapshot_store.go — optional Badger-backed journal for long backtracking runs
package wave
