package solver

import "github.com/arboria/wfc-core/wave"

// snapshot is a deep copy of the propagation state taken before an
// observation, used to restore on backtrack. compat is nil in bulk mode,
// since Bulk never builds a compatibility tensor. depth records the
// iteration depth this snapshot was taken at, used as the journal key when
// a SnapshotStore is configured — distinct from the pastWaves slice index,
// since the depth counter keeps climbing across backtracks while the
// slice's length does not: the depth counter is never reset by backtracking.
//
// trial is the choice that was baked into the parent state (the snapshot
// immediately below this one on the pastWaves stack) to produce this one;
// nil for the bottommost snapshot, taken before any observation ever ran.
// It is what lets an unwind that cascades past this snapshot — because
// banning the choice that caused *this* contradiction still leaves the
// state dead — know what to ban one level further down, instead of losing
// track of it once the single choice responsible for reaching this level
// has already been superseded.
type snapshot struct {
	w      *wave.Wave
	compat *wave.Compat
	depth  int
	trial  *trial
}

func takeSnapshot(w *wave.Wave, compat *wave.Compat, depth int, t *trial) snapshot {
	s := snapshot{w: w.Clone(), depth: depth, trial: t}
	if compat != nil {
		s.compat = compat.Clone()
	}
	return s
}
