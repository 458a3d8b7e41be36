package wave

import (
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

// SnapshotStore persists backtracking snapshots to an embedded Badger
// database instead of holding every (Wave, Compat) pair in process memory,
// storing JSON-encoded values under small fixed keys. It supplements the
// in-memory past-waves stack with an on-disk copy that Load reads back by
// depth; solver.Solve itself has no way to start from a loaded snapshot.
//
// SnapshotStore is optional. The solver works entirely from its in-memory
// stack when one is not configured (solver.WithSnapshotStore is unset).
type SnapshotStore struct {
	db *badger.DB
}

type wireWave struct {
	P, H, V int
	Data    []bool
}

type wireCompat struct {
	H, V, P, D int
	Data       []int32
}

type wireSnapshot struct {
	Wave   wireWave
	Compat *wireCompat // nil when the bulk propagator is in use
}

func snapshotKey(depth int) []byte {
	return []byte(fmt.Sprintf("snapshot:%08d", depth))
}

// OpenSnapshotStore opens (or creates) a Badger database rooted at dir.
func OpenSnapshotStore(dir string) (*SnapshotStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("wave: open snapshot store at %q: %w", dir, err)
	}
	return &SnapshotStore{db: db}, nil
}

// Close releases the underlying Badger handles.
func (s *SnapshotStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save journals the (W, C) pair for the given backtracking depth. compat may
// be nil when the bulk propagator is in use.
func (s *SnapshotStore) Save(depth int, w *Wave, compat *Compat) error {
	snap := wireSnapshot{Wave: wireWave{P: w.p, H: w.h, V: w.v, Data: w.data}}
	if compat != nil {
		snap.Compat = &wireCompat{H: compat.h, V: compat.v, P: compat.p, D: compat.d, Data: compat.data}
	}
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("wave: marshal snapshot at depth %d: %w", depth, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(snapshotKey(depth), blob)
	})
}

// Load restores the (W, C) pair journaled for depth. The returned Compat is
// nil if none was saved (bulk-propagator runs).
func (s *SnapshotStore) Load(depth int) (*Wave, *Compat, error) {
	var blob []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapshotKey(depth))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			blob = append([]byte(nil), val...)
			return nil
		})
	})
	if err != nil {
		return nil, nil, fmt.Errorf("wave: load snapshot at depth %d: %w", depth, err)
	}
	var snap wireSnapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return nil, nil, fmt.Errorf("wave: unmarshal snapshot at depth %d: %w", depth, err)
	}
	w := &Wave{p: snap.Wave.P, h: snap.Wave.H, v: snap.Wave.V, data: snap.Wave.Data}
	if snap.Compat == nil {
		return w, nil, nil
	}
	c := &Compat{h: snap.Compat.H, v: snap.Compat.V, p: snap.Compat.P, d: snap.Compat.D, data: snap.Compat.Data}
	return w, c, nil
}

// Delete removes the journal entry for depth, once the solver has moved
// past the point where it could still be needed.
func (s *SnapshotStore) Delete(depth int) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(snapshotKey(depth))
	})
}
