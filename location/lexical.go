package location

import "github.com/arboria/wfc-core/wave"

// Lexical returns the minimum (x, y) among open cells, scanning in the
// wave's own storage order (x outer, y inner).
func Lexical() Heuristic {
	return func(w *wave.Wave) (Cell, error) {
		_, open := openCounts(w)
		for x := range open {
			for y := range open[x] {
				if open[x][y] {
					return Cell{X: x, Y: y}, nil
				}
			}
		}
		return Cell{}, ErrNoOpenCells
	}
}
