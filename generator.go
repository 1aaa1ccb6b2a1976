package guidgen

import (
	"crypto/rand"
	"errors"
	"io"
	"log/slog"
)

// Generator produces UUIDs of every supported version.
//
// A Generator owns the mutable state the time-based versions need: one clock
// state with 100-ns ticks for versions 1, 2 and 6, one with millisecond ticks
// for version 7, and the lazily resolved node ID. All methods are safe for
// concurrent use. A Generator must not be copied after first use.
type Generator struct {
	rand     io.Reader
	clock    Clock
	localIDs LocalIDSource
	store    StateStore
	log      *slog.Logger

	gregorian *clockState
	unix      *clockState
	node      nodeIdentity
}

// Option configures a Generator.
type Option func(g *Generator)

// WithRandReader sets the entropy source. It defaults to crypto/rand.Reader.
func WithRandReader(r io.Reader) Option {
	return func(g *Generator) { g.rand = r }
}

// WithClock sets the wall-clock source. It defaults to SystemClock.
func WithClock(c Clock) Option {
	return func(g *Generator) { g.clock = c }
}

// WithNodeSource sets where the node ID comes from. It defaults to
// HardwareNodeSource with a random fallback.
func WithNodeSource(s NodeSource) Option {
	return func(g *Generator) { g.node.source = s }
}

// WithNodeID pins the node ID.
func WithNodeID(node [6]byte) Option {
	return func(g *Generator) { g.node.set(node) }
}

// WithLocalIDSource sets how version 2 resolves the Person and Group local IDs.
func WithLocalIDSource(s LocalIDSource) Option {
	return func(g *Generator) { g.localIDs = s }
}

// WithStateStore restores the clock state and random node from s when the
// generator is created, and saves them back on Close.
func WithStateStore(s StateStore) Option {
	return func(g *Generator) { g.store = s }
}

// WithLogger sets the logger for diagnostic events. Nothing is logged by default.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// NewGenerator creates a Generator. Without options it uses crypto/rand, the
// system clock and the host's hardware address.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rand:     rand.Reader,
		clock:    SystemClock,
		localIDs: OSLocalIDSource,
		node:     nodeIdentity{source: HardwareNodeSource},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	g.gregorian = newClockState("gregorian", gregorianTicks, 14, g.log)
	g.unix = newClockState("unix", unixMillis, 12, g.log)

	if g.store != nil {
		g.load()
	}
	return g
}

// NewGeneratorWithReader creates a Generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return NewGenerator(WithRandReader(r))
}

// load restores persisted state. A missing or unreadable state is not fatal:
// the generator then starts from fresh random sequences.
func (g *Generator) load() {
	state, err := g.store.LoadState()
	if err != nil {
		if !errors.Is(err, ErrStateNotFound) {
			g.log.Warn("load generator state", slog.Any("error", err))
		}
		return
	}
	g.Restore(state)
}

// Close saves the generator state to the StateStore, if one is configured.
// The generator stays usable afterwards.
func (g *Generator) Close() error {
	if g.store == nil {
		return nil
	}
	if err := g.store.SaveState(g.State()); err != nil {
		g.log.Warn("save generator state", slog.Any("error", err))
		return err
	}
	return nil
}

// State returns a snapshot of the generator's clock states and node.
func (g *Generator) State() State {
	var s State
	if tick, seq, ok := g.gregorian.snapshot(); ok {
		s.LastTicks, s.ClockSeq = tick, seq
	}
	if ms, counter, ok := g.unix.snapshot(); ok {
		s.LastMillis, s.Counter = ms, counter
	}
	s.Node, s.HasNode = g.node.peek()
	return s
}

// Restore seeds the generator from a snapshot taken by State, typically in a
// previous process. A restored random node is only used when the node source
// fails; hardware nodes are always resolved again.
func (g *Generator) Restore(s State) {
	if s.LastTicks > 0 {
		g.gregorian.restore(s.LastTicks, s.ClockSeq)
	}
	if s.LastMillis > 0 {
		g.unix.restore(s.LastMillis, s.Counter)
	}
	if s.HasNode {
		g.node.remember(s.Node)
	}
}

// read fills b from the entropy source.
func (g *Generator) read(op string, b []byte) error {
	if _, err := io.ReadFull(g.rand, b); err != nil {
		return newError(op, ErrEntropyUnavailable, err)
	}
	return nil
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = guidgen.Must(generator.NewV7())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}
