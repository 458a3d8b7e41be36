package adjacency

import "fmt"

// Table is the compiled form of a caller's adjacency lists: one BoolMatrix
// per direction, indexed in the caller's canonical Offsets order.
type Table struct {
	offsets  Offsets
	p        int
	matrices []*BoolMatrix // len == len(offsets)
}

// Compile builds a Table from per-direction adjacency lists. lists maps each
// direction in order to a [][]int of length p, where lists[dir][pat] is the
// set of pattern indices allowed as the dir-neighbor of pat. Every direction
// in order must have an entry in lists, every inner slice must have length
// p, and every listed neighbor index must be in [0, p).
func Compile(order Offsets, lists map[Direction][][]int, p int) (*Table, error) {
	if p <= 0 || len(order) == 0 {
		return nil, ErrInvalidDimensions
	}

	matrices := make([]*BoolMatrix, len(order))
	for d, dir := range order {
		rows, ok := lists[dir]
		if !ok {
			return nil, fmt.Errorf("adjacency: %w: %v", ErrMissingDirection, dir)
		}
		if len(rows) != p {
			return nil, fmt.Errorf("adjacency: %w: direction %v has %d rows, want %d", ErrPatternCountMismatch, dir, len(rows), p)
		}

		m, err := NewBoolMatrix(p)
		if err != nil {
			return nil, err
		}
		for pat, neighbors := range rows {
			for _, q := range neighbors {
				if q < 0 || q >= p {
					return nil, fmt.Errorf("adjacency: %w: direction %v pattern %d lists neighbor %d", ErrPatternCountMismatch, dir, pat, q)
				}
				if err := m.Set(pat, q, true); err != nil {
					return nil, err
				}
			}
		}
		matrices[d] = m
	}

	return &Table{offsets: order, p: p, matrices: matrices}, nil
}

// Offsets returns the table's canonical direction order.
func (t *Table) Offsets() Offsets { return t.offsets }

// D returns the number of directions.
func (t *Table) D() int { return len(t.offsets) }

// P returns the pattern count.
func (t *Table) P() int { return t.p }

// Allowed reports whether pattern q may sit adjacent to pattern p across
// direction index d (an index into Offsets(), not an offset value).
func (t *Table) Allowed(d, p, q int) (bool, error) {
	if d < 0 || d >= len(t.matrices) {
		return false, ErrIndexOutOfBounds
	}
	return t.matrices[d].At(p, q)
}

// Matrix returns the compiled BoolMatrix for direction index d.
func (t *Table) Matrix(d int) (*BoolMatrix, error) {
	if d < 0 || d >= len(t.matrices) {
		return nil, ErrIndexOutOfBounds
	}
	return t.matrices[d], nil
}

// Clone returns an independent deep copy of the table.
func (t *Table) Clone() *Table {
	ms := make([]*BoolMatrix, len(t.matrices))
	for i, m := range t.matrices {
		ms[i] = m.Clone()
	}
	offs := make(Offsets, len(t.offsets))
	copy(offs, t.offsets)
	return &Table{offsets: offs, p: t.p, matrices: ms}
}
