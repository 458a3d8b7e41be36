package propagate

import "github.com/arboria/wfc-core/wave"

// SeedBans scans w for every (p, x, y) already false — typically the
// direct wave.Set calls a ground constraint makes during wave.Build,
// which bypass BanPattern's bookkeeping — and pushes each onto stack while
// zeroing its compatibility counters, so a subsequent Incremental call
// correctly propagates their consequences. Unlike BanPattern, this does not
// consult the wave's current value to decide idempotency: it is meant to
// run once, before any incremental propagation, over a freshly built wave.
func SeedBans(w *wave.Wave, compat *wave.Compat, stack *Stack) error {
	for p := 0; p < w.Patterns(); p++ {
		for x := 0; x < w.Width(); x++ {
			for y := 0; y < w.Height(); y++ {
				ok, err := w.At(p, x, y)
				if err != nil {
					return err
				}
				if ok {
					continue
				}
				if err := compat.ZeroPattern(x, y, p); err != nil {
					return err
				}
				stack.Push(Ban{X: x, Y: y, P: p})
			}
		}
	}
	return nil
}
