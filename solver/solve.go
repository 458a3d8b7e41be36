package solver

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/arboria/wfc-core/adjacency"
	"github.com/arboria/wfc-core/grid"
	"github.com/arboria/wfc-core/location"
	"github.com/arboria/wfc-core/pattern"
	"github.com/arboria/wfc-core/propagate"
	"github.com/arboria/wfc-core/wave"
)

// trial records a (pattern, x, y) choice baked into the wave. Each snapshot
// on the pastWaves stack carries the trial that produced it from its own
// parent (nil for the bottommost snapshot, taken before any observation
// ever ran), so that an unwind cascading past several restore points in a
// row always knows which choice to ban at the next level down, rather than
// losing track of it once the choice responsible for the current failure
// has already been dealt with.
type trial struct {
	p, x, y int
}

// Solve runs the observe -> propagate -> backtrack state machine to
// completion: it builds a Wave of the given extent (applying any
// configured ground constraint), drives it to a fixed point under the
// chosen propagator, and repeatedly asks loc/pat to pick and pin a cell
// until every cell is resolved, a Contradiction cannot be recovered from,
// the configured depth limit is exceeded, or the caller's context is
// cancelled.
//
// table must agree with p (pattern count) and len(offs) (direction count);
// a disagreement is reported as ErrAssertion, not ErrContradiction.
func Solve(p, h, v int, offs adjacency.Offsets, table *adjacency.Table, loc location.Heuristic, pat pattern.Heuristic, opts ...Option) ([][]int, error) {
	cfg := newConfig(opts...)

	if table.P() != p {
		return nil, fmt.Errorf("solver: %w: adjacency table has P=%d, Solve called with p=%d", ErrAssertion, table.P(), p)
	}
	if table.D() != len(offs) {
		return nil, fmt.Errorf("solver: %w: adjacency table has D=%d, offsets has %d entries", ErrAssertion, table.D(), len(offs))
	}

	runID := uuid.NewString()
	log := cfg.logger.With().Str("run_id", runID).Logger()
	log.Debug().Int("p", p).Int("h", h).Int("v", v).Bool("periodic", cfg.periodic).
		Bool("backtrack", cfg.backtrack).Msg("solve: starting")

	topo, err := grid.New(h, v, cfg.periodic)
	if err != nil {
		return nil, err
	}

	w, err := wave.Build(p, h, v, cfg.ground)
	if err != nil {
		return nil, err
	}

	var compat *wave.Compat
	var stack propagate.Stack

	propagateStep := func(depth int) error {
		if cfg.mode == ModeIncremental {
			return propagate.Incremental(w, compat, topo, table, &stack, func(cw *wave.Wave) { cfg.onPropagate(cw, depth) })
		}
		return propagate.Bulk(w, topo, table, func(cw *wave.Wave) { cfg.onPropagate(cw, depth) })
	}

	if cfg.mode == ModeIncremental {
		compat, err = propagate.InitCompat(topo, table)
		if err != nil {
			return nil, err
		}
		if err := propagate.SeedBans(w, compat, &stack); err != nil {
			return nil, err
		}
	}

	// Initialization: run the propagator once before the first observation
	// to apply the ground constraint and any structural restrictions.
	if err := propagateStep(0); err != nil {
		if errors.Is(err, propagate.ErrContradiction) {
			cfg.onFinal(w, 0, ErrContradiction)
			return nil, ErrContradiction
		}
		return nil, err
	}

	banOthers := func(x, y, keep int) error {
		for pp := 0; pp < p; pp++ {
			if pp == keep {
				continue
			}
			if cfg.mode == ModeIncremental {
				if err := propagate.BanPattern(w, compat, &stack, x, y, pp); err != nil {
					return err
				}
			} else if err := w.Set(pp, x, y, false); err != nil {
				return err
			}
		}
		return nil
	}

	banOne := func(x, y, pat int) error {
		if cfg.mode == ModeIncremental {
			return propagate.BanPattern(w, compat, &stack, x, y, pat)
		}
		return w.Set(pat, x, y, false)
	}

	var pastWaves []snapshot
	depth := 0

	saveSnapshot := func(t *trial) {
		pastWaves = append(pastWaves, takeSnapshot(w, compat, depth, t))
		if cfg.snapshotStore != nil {
			_ = cfg.snapshotStore.Save(depth, w, compat)
		}
	}

	// The initial, post-structural-propagation state is itself a valid
	// restore point: if the very first observation ever made fails, this
	// is what a backtrack unwinds to. It has no trial of its own — nothing
	// was chosen to reach it.
	saveSnapshot(nil)

	for {
		select {
		case <-cfg.ctx.Done():
			return nil, fmt.Errorf("solver: %w: %v", ErrStopEarly, cfg.ctx.Err())
		default:
		}

		if cfg.depthLimit > 0 && depth >= cfg.depthLimit {
			cfg.onFinal(w, depth, ErrTimedOut)
			return nil, ErrTimedOut
		}

		contradicted := false
		var failTrial *trial // the choice to ban at the next restore point, if any

		switch {
		case cfg.feasibility != nil && !cfg.feasibility(w):
			contradicted = true // no choice made this iteration: failTrial stays nil

		default:
			chosenP, x, y, oerr := Observe(w, loc, pat)
			if oerr != nil {
				return nil, oerr
			}
			cfg.onChoice(chosenP, x, y, depth)
			curTrial := &trial{p: chosenP, x: x, y: y}

			if err := banOthers(x, y, chosenP); err != nil {
				return nil, err
			}
			cfg.onObserve(w, depth)

			switch perr := propagateStep(depth); {
			case perr == nil:
				if w.IsResolved() {
					cfg.onFinal(w, depth, nil)
					log.Debug().Int("depth", depth).Msg("solve: resolved")
					return w.Collapse()
				}
				saveSnapshot(curTrial)
				depth++
				continue
			case errors.Is(perr, propagate.ErrContradiction):
				contradicted = true
				failTrial = curTrial
			default:
				return nil, perr
			}
		}

		if !contradicted {
			continue
		}

		// Unwind: pop restore points until one accepts the additional ban
		// (or requires none) without immediately contradicting again, or
		// until backtracking is disabled or exhausted. A restore point
		// that is still dead after banning failTrial means the choice
		// that produced *that* restore point from its own parent must be
		// banned one level further down — snap.trial carries exactly that
		// choice forward, so the cascade never loses track of it.
		for {
			if !cfg.backtrack || len(pastWaves) == 0 {
				cfg.onFinal(w, depth, ErrContradiction)
				return nil, ErrContradiction
			}

			n := len(pastWaves)
			snap := pastWaves[n-1]
			pastWaves = pastWaves[:n-1]
			if cfg.snapshotStore != nil {
				_ = cfg.snapshotStore.Delete(snap.depth)
			}

			w = snap.w
			compat = snap.compat
			stack = nil
			cfg.onBacktrack(depth)
			depth++

			if failTrial != nil {
				if err := banOne(failTrial.x, failTrial.y, failTrial.p); err != nil {
					return nil, err
				}
			}

			perr := propagateStep(depth)
			if perr != nil {
				if errors.Is(perr, propagate.ErrContradiction) {
					failTrial = snap.trial
					continue // keep unwinding; this restore point was itself dead
				}
				return nil, perr
			}

			if w.IsResolved() {
				cfg.onFinal(w, depth, nil)
				log.Debug().Int("depth", depth).Msg("solve: resolved after backtrack")
				return w.Collapse()
			}
			saveSnapshot(snap.trial)
			break
		}
	}
}
