package constraint

import "github.com/arboria/wfc-core/wave"

// Feasibility inspects a wave and reports whether the solve can still
// succeed from this state. Returning false raises a Contradiction before
// the solver attempts another observation.
type Feasibility func(w *wave.Wave) bool

// UseAllPatterns returns true iff every pattern index in [0, p) is still
// admissible somewhere in the wave — the union, over all cells, of
// admissible patterns equals the full pattern set.
func UseAllPatterns(p int) Feasibility {
	return func(w *wave.Wave) bool {
		counts := w.GlobalCounts()
		if len(counts) != p {
			return false
		}
		for _, c := range counts {
			if c == 0 {
				return false
			}
		}
		return true
	}
}

// PopcountAtLeast returns true iff the wave's total popcount is at least
// min. A caller wanting to abort once the wave has thinned out below a
// threshold of 20 would use PopcountAtLeast(20).
func PopcountAtLeast(min int) Feasibility {
	return func(w *wave.Wave) bool {
		return w.Popcount() >= min
	}
}
