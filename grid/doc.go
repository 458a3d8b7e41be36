// Package grid resolves a cell's neighbor across an arbitrary offset under
// either clamped (non-periodic) or toroidal (periodic) boundary conditions.
// It is the propagators' sole source of neighbor coordinates, so that bulk
// and incremental propagation share one definition of "off the edge" instead
// of each re-deriving it.
//
// Adapted from github.com/katalvlaran/lvlath's gridgraph package: the same
// InBounds/offset-table shape, generalized from a fixed 4/8-connectivity
// island walk to an arbitrary caller-supplied Offsets and a periodic mode.
package grid
