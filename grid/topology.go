package grid

// Topology fixes a wave's spatial extent and boundary behavior. It answers
// exactly one question: given a cell and a direction offset, what is the
// neighbor, if any?
type Topology struct {
	h, v     int
	periodic bool
}

// New constructs a Topology of the given width (h) and height (v).
// periodic selects toroidal wraparound; non-periodic clamps at the edges,
// meaning a step off the grid has no neighbor.
func New(h, v int, periodic bool) (*Topology, error) {
	if h <= 0 || v <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Topology{h: h, v: v, periodic: periodic}, nil
}

// Width returns the horizontal extent.
func (t *Topology) Width() int { return t.h }

// Height returns the vertical extent.
func (t *Topology) Height() int { return t.v }

// Periodic reports whether the topology wraps.
func (t *Topology) Periodic() bool { return t.periodic }

// InBounds reports whether (x, y) lies within [0,h) x [0,v).
func (t *Topology) InBounds(x, y int) bool {
	return x >= 0 && x < t.h && y >= 0 && y < t.v
}

// Neighbor resolves the cell reached from (x, y) by offset (dx, dy). ok is
// false when the step falls off a non-periodic grid; periodic topologies
// always report ok=true, wrapping coordinates modulo (h, v).
//
// Callers in the incremental propagator must treat ok=false as "skip this
// direction and continue with the next direction", never as a reason to
// skip the remaining directions of the popped ban: an edge cell
// legitimately has fewer than D neighbors under non-periodic boundaries.
func (t *Topology) Neighbor(x, y, dx, dy int) (nx, ny int, ok bool) {
	nx, ny = x+dx, y+dy
	if t.periodic {
		nx = ((nx % t.h) + t.h) % t.h
		ny = ((ny % t.v) + t.v) % t.v
		return nx, ny, true
	}
	if !t.InBounds(nx, ny) {
		return 0, 0, false
	}
	return nx, ny, true
}

// Each invokes fn for every cell of the topology in (x outer, y inner)
// order, matching Wave's flat storage layout so callers can stream through
// a wave without re-deriving the iteration order.
func (t *Topology) Each(fn func(x, y int)) {
	for x := 0; x < t.h; x++ {
		for y := 0; y < t.v; y++ {
			fn(x, y)
		}
	}
}
