package pattern

import (
	"math/rand"

	"github.com/arboria/wfc-core/wave"
)

// Weighted samples an admissible pattern with probability proportional to
// weights[p] for each admissible p, normalized over the admissible subset.
// weights must have length P. rng selects the deterministic stream; a nil
// rng uses a fixed default seed (see Random).
func Weighted(weights []float64, rng *rand.Rand) Heuristic {
	return func(w *wave.Wave, x, y int) (int, error) {
		idx, err := admissible(w, x, y)
		if err != nil {
			return 0, err
		}
		if len(weights) != w.Patterns() {
			return 0, ErrWeightsLengthMismatch
		}
		r := rngOrDefault(rng)

		total := 0.0
		for _, p := range idx {
			total += weights[p]
		}
		if total <= 0 {
			return idx[0], nil
		}

		target := r.Float64() * total
		acc := 0.0
		for _, p := range idx {
			acc += weights[p]
			if acc >= target {
				return p, nil
			}
		}
		return idx[len(idx)-1], nil
	}
}

// Random returns a uniform choice among still-admissible patterns.
func Random(rng *rand.Rand) Heuristic {
	return func(w *wave.Wave, x, y int) (int, error) {
		idx, err := admissible(w, x, y)
		if err != nil {
			return 0, err
		}
		r := rngOrDefault(rng)
		return idx[r.Intn(len(idx))], nil
	}
}

// defaultSeed is the fixed seed used when callers pass a nil RNG, keeping
// runs reproducible rather than falling back to a time-based source.
const defaultSeed = 1

func rngOrDefault(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(defaultSeed))
}
