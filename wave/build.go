package wave

import "fmt"

// Build initializes a P×H×V Wave with every entry admissible, then applies
// the ground constraint when provided: patterns outside g are cleared from
// the bottom row (y = V-1), and patterns in g are cleared from every
// non-bottom row.
//
// After Build, W[p, x, V-1] is false for all p not in g, and W[g, x, y]
// is false for all g in the ground set and y < V-1.
func Build(p, h, v int, ground GroundSet) (*Wave, error) {
	w, err := New(p, h, v)
	if err != nil {
		return nil, err
	}
	for pp := 0; pp < p; pp++ {
		for x := 0; x < h; x++ {
			for y := 0; y < v; y++ {
				_ = w.Set(pp, x, y, true)
			}
		}
	}
	if ground == nil {
		return w, nil
	}
	for pp := range ground {
		if pp < 0 || pp >= p {
			return nil, fmt.Errorf("Build: ground pattern %d: %w", pp, ErrInvalidGroundPattern)
		}
	}
	bottom := v - 1
	for x := 0; x < h; x++ {
		for pp := 0; pp < p; pp++ {
			if !ground.Has(pp) {
				_ = w.Set(pp, x, bottom, false)
			}
		}
	}
	for pp := range ground {
		for x := 0; x < h; x++ {
			for y := 0; y < bottom; y++ {
				_ = w.Set(pp, x, y, false)
			}
		}
	}
	return w, nil
}
