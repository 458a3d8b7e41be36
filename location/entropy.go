package location

import (
	"math"

	"github.com/arboria/wfc-core/wave"
)

// SimpleEntropy returns the open cell with the fewest remaining patterns,
// ties broken by array order (x outer, y inner).
func SimpleEntropy() Heuristic {
	return func(w *wave.Wave) (Cell, error) {
		counts, open := openCounts(w)
		best := Cell{}
		bestScore := math.MaxInt64
		found := false
		for x := range open {
			for y := range open[x] {
				if !open[x][y] {
					continue
				}
				if counts[x][y] < bestScore {
					bestScore = counts[x][y]
					best = Cell{X: x, Y: y}
					found = true
				}
			}
		}
		if !found {
			return Cell{}, ErrNoOpenCells
		}
		return best, nil
	}
}

// WeightedEntropy returns the open cell minimizing preferences[x][y] +
// remaining-count. preferences must be an H×V field matching the wave's
// extent; it is typically noise used to break ties and bias selection.
func WeightedEntropy(preferences [][]float64) Heuristic {
	return scoredEntropy(preferences, false)
}

// AntiEntropy returns the open cell maximizing preferences[x][y] +
// remaining-count, the inverse of WeightedEntropy.
func AntiEntropy(preferences [][]float64) Heuristic {
	return scoredEntropy(preferences, true)
}

func scoredEntropy(preferences [][]float64, maximize bool) Heuristic {
	return func(w *wave.Wave) (Cell, error) {
		if err := checkDims(preferences, w); err != nil {
			return Cell{}, err
		}
		counts, open := openCounts(w)
		best := Cell{}
		var bestScore float64
		found := false
		for x := range open {
			for y := range open[x] {
				if !open[x][y] {
					continue
				}
				score := preferences[x][y] + float64(counts[x][y])
				better := !found || (maximize && score > bestScore) || (!maximize && score < bestScore)
				if better {
					bestScore = score
					best = Cell{X: x, Y: y}
					found = true
				}
			}
		}
		if !found {
			return Cell{}, ErrNoOpenCells
		}
		return best, nil
	}
}

// Random returns the open cell minimizing preferences[x][y] alone — the
// entropy term is dropped entirely, so a uniform-random preferences field
// yields a uniformly random open cell.
func Random(preferences [][]float64) Heuristic {
	return func(w *wave.Wave) (Cell, error) {
		if err := checkDims(preferences, w); err != nil {
			return Cell{}, err
		}
		_, open := openCounts(w)
		best := Cell{}
		bestScore := math.Inf(1)
		found := false
		for x := range open {
			for y := range open[x] {
				if !open[x][y] {
					continue
				}
				if preferences[x][y] < bestScore {
					bestScore = preferences[x][y]
					best = Cell{X: x, Y: y}
					found = true
				}
			}
		}
		if !found {
			return Cell{}, ErrNoOpenCells
		}
		return best, nil
	}
}

func checkDims(preferences [][]float64, w *wave.Wave) error {
	if len(preferences) != w.Width() {
		return ErrInvalidDimensions
	}
	for _, row := range preferences {
		if len(row) != w.Height() {
			return ErrInvalidDimensions
		}
	}
	return nil
}
