package location

import "github.com/arboria/wfc-core/wave"

// Cell identifies a single grid position chosen for observation.
type Cell struct {
	X, Y int
}

// Heuristic selects the next cell to collapse from a wave. Implementations
// must never return a cell whose remaining-pattern count is 1 (resolved) or
// 0 (contradiction) — doing so is a programmer error the solver does not
// try to recover from.
type Heuristic func(w *wave.Wave) (Cell, error)

// openCounts returns the per-cell remaining-pattern count alongside a mask
// of which cells are still open (count > 1). It is the shared first step
// of every heuristic below.
func openCounts(w *wave.Wave) (counts [][]int, open [][]bool) {
	counts = w.CountPerCell()
	open = make([][]bool, len(counts))
	for x := range counts {
		open[x] = make([]bool, len(counts[x]))
		for y := range counts[x] {
			open[x][y] = counts[x][y] > 1
		}
	}
	return counts, open
}
