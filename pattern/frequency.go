package pattern

import (
	"math/rand"

	"github.com/arboria/wfc-core/wave"
)

// Rarest returns the admissible pattern with the greatest global
// admissibility count (GlobalCounts), ties broken uniformly at random via
// rng (nil selects the fixed default stream).
func Rarest(rng *rand.Rand) Heuristic {
	return extremeGlobal(func(a, b int) bool { return a > b }, rng)
}

// MostCommon returns the admissible pattern with the least global
// admissibility count, the inverse of Rarest: among still-admissible
// patterns, the one occupying the fewest cells elsewhere in the wave.
// Despite its name, it therefore picks the least common pattern.
func MostCommon(rng *rand.Rand) Heuristic {
	return extremeGlobal(func(a, b int) bool { return a < b }, rng)
}

// extremeGlobal builds a Heuristic that selects the admissible pattern(s)
// extremizing GlobalCounts per better(candidate, current), breaking ties
// uniformly at random via rng (nil selects the fixed default stream).
func extremeGlobal(better func(candidate, current int) bool, rng *rand.Rand) Heuristic {
	return func(w *wave.Wave, x, y int) (int, error) {
		idx, err := admissible(w, x, y)
		if err != nil {
			return 0, err
		}
		counts := w.GlobalCounts()

		var winners []int
		bestCount := counts[idx[0]]
		winners = append(winners, idx[0])
		for _, p := range idx[1:] {
			c := counts[p]
			switch {
			case better(c, bestCount):
				bestCount = c
				winners = winners[:0]
				winners = append(winners, p)
			case c == bestCount:
				winners = append(winners, p)
			}
		}
		if len(winners) == 1 {
			return winners[0], nil
		}
		return winners[rngOrDefault(rng).Intn(len(winners))], nil
	}
}
