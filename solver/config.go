package solver

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/arboria/wfc-core/constraint"
	"github.com/arboria/wfc-core/internal/obslog"
	"github.com/arboria/wfc-core/wave"
)

// Mode selects which propagator drives every iteration of a solve.
type Mode int

const (
	// ModeIncremental drains a per-ban work stack via the compatibility
	// counter tensor; amortizes cost across many small bans.
	ModeIncremental Mode = iota
	// ModeBulk recomputes a fixed point from scratch each call via
	// boolean matrix-style restriction.
	ModeBulk
)

// ChoiceFunc observes an accepted (pattern, x, y) choice at the given
// search depth.
type ChoiceFunc func(p, x, y, depth int)

// WaveFunc observes the wave at the given depth: for OnObserve, after the
// chosen cell's other patterns are banned; for OnPropagate, after a
// propagation step.
type WaveFunc func(w *wave.Wave, depth int)

// BacktrackFunc observes a backtrack at the given depth.
type BacktrackFunc func(depth int)

// FinalFunc observes the terminal outcome: err is nil on success.
type FinalFunc func(w *wave.Wave, depth int, err error)

type config struct {
	mode        Mode
	periodic    bool
	backtrack   bool
	ground      wave.GroundSet
	feasibility constraint.Feasibility
	depthLimit  int // 0 means unlimited

	onChoice    ChoiceFunc
	onObserve   WaveFunc
	onPropagate WaveFunc
	onBacktrack BacktrackFunc
	onFinal     FinalFunc

	logger zerolog.Logger
	ctx    context.Context

	snapshotStore *wave.SnapshotStore
}

// Option customizes a solve by mutating a config before it runs.
// As with github.com/katalvlaran/lvlath/builder's BuilderOption, option
// constructors validate and panic on structurally meaningless inputs
// (nil callbacks, predicates or contexts, non-positive limits); Solve's own
// algorithm never panics.
type Option func(*config)

func newConfig(opts ...Option) *config {
	cfg := &config{
		mode:        ModeIncremental,
		periodic:    false,
		backtrack:   false,
		depthLimit:  0,
		onChoice:    func(int, int, int, int) {},
		onObserve:   func(*wave.Wave, int) {},
		onPropagate: func(*wave.Wave, int) {},
		onBacktrack: func(int) {},
		onFinal:     func(*wave.Wave, int, error) {},
		logger:      obslog.Nop(),
		ctx:         context.Background(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMode selects the propagator driving every iteration.
func WithMode(m Mode) Option {
	return func(c *config) { c.mode = m }
}

// WithPeriodic enables toroidal wraparound.
func WithPeriodic(periodic bool) Option {
	return func(c *config) { c.periodic = periodic }
}

// WithBacktracking enables snapshot/restore recovery from Contradiction.
func WithBacktracking(enabled bool) Option {
	return func(c *config) { c.backtrack = enabled }
}

// WithGround pins the given patterns to the bottom row, per wave.Build.
func WithGround(g wave.GroundSet) Option {
	return func(c *config) { c.ground = g }
}

// WithFeasibility installs a predicate checked once per iteration ahead of
// observation; returning false raises ErrContradiction for that step.
// Panics if f is nil.
func WithFeasibility(f constraint.Feasibility) Option {
	if f == nil {
		panic("solver: WithFeasibility(nil)")
	}
	return func(c *config) { c.feasibility = f }
}

// WithDepthLimit caps the number of observation iterations; exceeding it
// raises ErrTimedOut. Panics if limit <= 0; omit the option for "no limit".
func WithDepthLimit(limit int) Option {
	if limit <= 0 {
		panic("solver: WithDepthLimit(limit<=0)")
	}
	return func(c *config) { c.depthLimit = limit }
}

// WithOnChoice installs the onChoice observer. Panics if fn is nil.
func WithOnChoice(fn ChoiceFunc) Option {
	if fn == nil {
		panic("solver: WithOnChoice(nil)")
	}
	return func(c *config) { c.onChoice = fn }
}

// WithOnObserve installs the onObserve observer. Panics if fn is nil.
func WithOnObserve(fn WaveFunc) Option {
	if fn == nil {
		panic("solver: WithOnObserve(nil)")
	}
	return func(c *config) { c.onObserve = fn }
}

// WithOnPropagate installs the onPropagate observer. Panics if fn is nil.
func WithOnPropagate(fn WaveFunc) Option {
	if fn == nil {
		panic("solver: WithOnPropagate(nil)")
	}
	return func(c *config) { c.onPropagate = fn }
}

// WithOnBacktrack installs the onBacktrack observer. Panics if fn is nil.
func WithOnBacktrack(fn BacktrackFunc) Option {
	if fn == nil {
		panic("solver: WithOnBacktrack(nil)")
	}
	return func(c *config) { c.onBacktrack = fn }
}

// WithOnFinal installs the onFinal observer. Panics if fn is nil.
func WithOnFinal(fn FinalFunc) Option {
	if fn == nil {
		panic("solver: WithOnFinal(nil)")
	}
	return func(c *config) { c.onFinal = fn }
}

// WithLogger attaches a zerolog.Logger for the solver's own progress
// logging, independent of caller-supplied observers.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithLogOutput is a convenience over WithLogger for the common case of
// writing JSON lines to w at the given level, via internal/obslog.
func WithLogOutput(w io.Writer, level zerolog.Level) Option {
	return func(c *config) { c.logger = obslog.New(w, level) }
}

// WithContext installs a context checked once per iteration, exactly as
// bfs.walker.loop checks ctx.Done() once per loop iteration. A cancellation
// or deadline surfaces as ErrStopEarly; OnFinal is not emitted for it.
// Panics if ctx is nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("solver: WithContext(nil)")
	}
	return func(c *config) { c.ctx = ctx }
}

// WithSnapshotStore persists the backtracking past-waves stack to an
// on-disk Badger journal instead of holding every snapshot purely in
// process memory. Depths are journaled as they are pushed and deleted
// once popped; the in-memory stack still drives control flow, so
// observable restore semantics are unchanged.
func WithSnapshotStore(store *wave.SnapshotStore) Option {
	return func(c *config) { c.snapshotStore = store }
}
