package propagate

import (
	"github.com/arboria/wfc-core/adjacency"
	"github.com/arboria/wfc-core/grid"
	"github.com/arboria/wfc-core/wave"
)

// Bulk restricts w to a fixed point under the adjacency table's
// constraints. Each iteration, for every direction d, it computes
// support_d[p,x,y] = true iff some still-admissible neighbor pattern q in
// direction d has A_d[p,q] (q acceptable as p's neighbor), then intersects
// w with the conjunction of all directions' support. A non-periodic
// neighbor that falls off the grid contributes no restriction for that
// direction, matching "padded with all-ones".
//
// onPropagate, if non-nil, is invoked once per call after the fixed point
// is reached; it is not invoked when the call ends in ErrContradiction.
func Bulk(w *wave.Wave, topo *grid.Topology, table *adjacency.Table, onPropagate Observer) error {
	if w.Patterns() != table.P() || topo.Width() != w.Width() || topo.Height() != w.Height() {
		return ErrDimensionMismatch
	}

	for {
		n0 := w.Popcount()

		for x := 0; x < w.Width(); x++ {
			for y := 0; y < w.Height(); y++ {
				for p := 0; p < w.Patterns(); p++ {
					cur, err := w.At(p, x, y)
					if err != nil {
						return err
					}
					if !cur {
						continue
					}
					if !allSupported(w, topo, table, p, x, y) {
						if err := w.Set(p, x, y, false); err != nil {
							return err
						}
					}
				}
			}
		}

		if err := checkNonEmpty(w); err != nil {
			return err
		}

		if w.Popcount() == n0 {
			break
		}
	}

	if onPropagate != nil {
		onPropagate(w)
	}
	return nil
}

// allSupported reports whether pattern p at (x, y) has support in every
// direction: for each direction d, either the neighbor is off a
// non-periodic grid (unconstrained), or some admissible neighbor pattern
// q satisfies A_d[p, q].
func allSupported(w *wave.Wave, topo *grid.Topology, table *adjacency.Table, p, x, y int) bool {
	for d, dir := range table.Offsets() {
		nx, ny, ok := topo.Neighbor(x, y, dir.DX, dir.DY)
		if !ok {
			continue // off a non-periodic grid: unconstrained in this direction
		}
		if !anyNeighborAllows(w, table, d, p, nx, ny) {
			return false
		}
	}
	return true
}

// anyNeighborAllows reports whether some still-admissible pattern q at
// (nx, ny) has A_d[p, q], i.e. q is an acceptable neighbor of p across
// direction d.
func anyNeighborAllows(w *wave.Wave, table *adjacency.Table, d, p, nx, ny int) bool {
	slice, err := w.PatternSlice(nx, ny)
	if err != nil {
		return false
	}
	for q, ok := range slice {
		if !ok {
			continue
		}
		allowed, err := table.Allowed(d, p, q)
		if err == nil && allowed {
			return true
		}
	}
	return false
}

func checkNonEmpty(w *wave.Wave) error {
	counts := w.CountPerCell()
	for x := range counts {
		for _, n := range counts[x] {
			if n == 0 {
				return ErrContradiction
			}
		}
	}
	return nil
}
