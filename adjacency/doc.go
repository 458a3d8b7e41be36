// Package adjacency compiles caller-supplied adjacency lists into the
// per-direction boolean matrices A_d the propagators consume, and derives
// the inverse-offset map the incremental propagator needs to interpret a
// ban.
//
// The boolean matrix type is a flat-slice Dense, modeled directly on
// github.com/katalvlaran/lvlath's matrix.Dense (row-major storage, bounds
// checked indexOf, At/Set pair) but over bool instead of float64, since A_d
// is a pure admissibility relation rather than a weighted graph.
//
//	types.go    — Direction, Offsets (the caller-chosen canonical order)
//	boolmatrix.go — BoolMatrix, the flat P×P admissibility matrix
//	table.go    — Compile, the adjacency-list -> Table constructor
//	inverse.go  — Offsets.Inverse, the direction-negation bijection
package adjacency
