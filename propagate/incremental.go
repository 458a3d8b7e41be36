package propagate

import (
	"github.com/arboria/wfc-core/adjacency"
	"github.com/arboria/wfc-core/grid"
	"github.com/arboria/wfc-core/wave"
)

// InitCompat builds the compatibility counter tensor C for a topology of
// shape (H, V) over table's patterns and directions. Per cell and
// direction d, C[x,y,p,d] is seeded to the row sum of A_d for pattern p:
// the number of patterns q with A_d[p,q] true, i.e. the count of patterns
// that may sit at the direction-d neighbor of a cell holding p when every
// pattern is still admissible there. This is the structural maximum
// support count, independent of the wave's current state; callers must
// drain any bans already applied to the wave (e.g. from a ground
// constraint) through Incremental before trusting the result.
func InitCompat(topo *grid.Topology, table *adjacency.Table) (*wave.Compat, error) {
	compat, err := wave.NewCompat(topo.Width(), topo.Height(), table.P(), table.D())
	if err != nil {
		return nil, err
	}
	rowSum := make([][]int32, table.D())
	for d := 0; d < table.D(); d++ {
		rowSum[d] = make([]int32, table.P())
		for p := 0; p < table.P(); p++ {
			n := int32(0)
			for q := 0; q < table.P(); q++ {
				ok, err := table.Allowed(d, p, q)
				if err != nil {
					return nil, err
				}
				if ok {
					n++
				}
			}
			rowSum[d][p] = n
		}
	}
	topo.Each(func(x, y int) {
		for d := 0; d < table.D(); d++ {
			for p := 0; p < table.P(); p++ {
				_ = compat.Set(x, y, p, d, rowSum[d][p])
			}
		}
	})
	return compat, nil
}

// BanPattern removes pattern p at (x, y): sets W[p,x,y] false, zeros every
// direction's counter for that (cell, pattern), and pushes the ban onto
// stack. Idempotent: a re-ban of an already-false entry is a no-op and
// does not push the stack again.
func BanPattern(w *wave.Wave, compat *wave.Compat, stack *Stack, x, y, p int) error {
	cur, err := w.At(p, x, y)
	if err != nil {
		return err
	}
	if !cur {
		return nil
	}
	if err := w.Set(p, x, y, false); err != nil {
		return err
	}
	if err := compat.ZeroPattern(x, y, p); err != nil {
		return err
	}
	stack.Push(Ban{X: x, Y: y, P: p})
	return nil
}

// Incremental drains stack, propagating the consequences of each ban until
// either the stack empties (success) or some cell loses its last
// admissible pattern (ErrContradiction). For each popped (cell, p), and
// for every direction d with offset (dx, dy): the neighbor is computed
// modulo (H, V) when periodic; otherwise a neighbor off the grid means
// this direction contributes nothing and the loop continues to the next
// direction — it never aborts the remaining directions, since each is
// independent.
//
// C[x,y,q,d] counts support for q at (x,y) contributed by (x,y)'s own
// direction-d neighbor; it is indexed by the direction pointing outward
// from (x,y), not from the cell being banned. So when p is banned at the
// popped cell, the neighbor (nx,ny) reached by walking direction d is not
// itself updated at slot d — that slot looks further outward, away from
// the popped cell. It is updated at the inverse direction, the slot that
// looks back toward the popped cell: for every q with A_inv(d)[q, p] true
// (q was relying on p, in the direction pointing back here, to be
// admissible at (nx,ny)), C[nx,ny,q,inv(d)] is decremented; reaching zero
// while W[q,nx,ny] is still true triggers BanPattern(nx, ny, q).
func Incremental(w *wave.Wave, compat *wave.Compat, topo *grid.Topology, table *adjacency.Table, stack *Stack, onPropagate Observer) error {
	if w.Patterns() != table.P() || topo.Width() != w.Width() || topo.Height() != w.Height() {
		return ErrDimensionMismatch
	}

	inv, err := table.Offsets().Inverse()
	if err != nil {
		return err
	}

	for {
		b, ok := stack.Pop()
		if !ok {
			break
		}
		for d, dir := range table.Offsets() {
			nx, ny, inBounds := topo.Neighbor(b.X, b.Y, dir.DX, dir.DY)
			if !inBounds {
				continue
			}
			invD := inv[d]
			for q := 0; q < table.P(); q++ {
				allowed, err := table.Allowed(invD, q, b.P)
				if err != nil {
					return err
				}
				if !allowed {
					continue
				}
				v, err := compat.Decrement(nx, ny, q, invD)
				if err != nil {
					return err
				}
				if v != 0 {
					continue
				}
				stillAdmissible, err := w.At(q, nx, ny)
				if err != nil {
					return err
				}
				if stillAdmissible {
					if err := BanPattern(w, compat, stack, nx, ny, q); err != nil {
						return err
					}
				}
			}
		}
		if err := checkNonEmpty(w); err != nil {
			return err
		}
	}

	if onPropagate != nil {
		onPropagate(w)
	}

	return checkNonEmpty(w)
}
