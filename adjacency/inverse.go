package adjacency

// Inverse computes, for each direction in o, the index of its negation
// (dx, dy) -> (-dx, -dy) within o. The incremental propagator needs this to
// translate "pattern p was banned at cell c" into "re-check cell c's
// neighbor in direction d against direction d's inverse compatibility row",
// since compatibility across a direction is defined from the emitter's side.
func (o Offsets) Inverse() ([]int, error) {
	inv := make([]int, len(o))
	for i, d := range o {
		neg := Direction{DX: -d.DX, DY: -d.DY}
		j := o.IndexOf(neg)
		if j < 0 {
			return nil, ErrNoInverse
		}
		inv[i] = j
	}
	return inv, nil
}
