package pattern

import "github.com/arboria/wfc-core/wave"

// Lexical returns the first admissible pattern along the pattern axis.
func Lexical() Heuristic {
	return func(w *wave.Wave, x, y int) (int, error) {
		idx, err := admissible(w, x, y)
		if err != nil {
			return 0, err
		}
		return idx[0], nil
	}
}
