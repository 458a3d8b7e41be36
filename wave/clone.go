package wave

// Clone returns a deep copy of the Wave, used by the solver to snapshot
// (W, C) before each observation so a later Contradiction can restore state
// exactly. Modeled on lvlath's core.Graph.Clone: copy dimensions, then
// allocate a fresh backing slice and copy element-by-element rather than
// sharing the source's storage.
func (w *Wave) Clone() *Wave {
	data := make([]bool, len(w.data))
	copy(data, w.data)
	return &Wave{p: w.p, h: w.h, v: w.v, data: data}
}

// Equal reports whether two waves have identical shape and contents — used
// by tests to verify the snapshot/restore cycle leaves state bitwise equal.
func (w *Wave) Equal(other *Wave) bool {
	if other == nil || w.p != other.p || w.h != other.h || w.v != other.v {
		return false
	}
	for i, b := range w.data {
		if other.data[i] != b {
			return false
		}
	}
	return true
}
