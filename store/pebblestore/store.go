// Package pebblestore keeps generator state in a local Pebble database so
// that clock sequences and random nodes survive process restarts.
package pebblestore

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"

	"github.com/Lzww0608/guidgen"
)

// DefaultKey is the key the state is stored under when Options.Key is empty.
const DefaultKey = "guidgen/state"

// Options configures the Pebble store.
type Options struct {
	// DataDir is the path to the Pebble database directory.
	DataDir string
	// Key names the state entry, letting several generators share a database.
	Key string
	// Sync forces a WAL fsync on every save.
	Sync bool
	// PebbleOptions allows advanced tuning of Pebble. If nil, defaults are used.
	PebbleOptions *pebble.Options
}

// Store is a guidgen.StateStore backed by Pebble.
type Store struct {
	inner *pebble.DB
	key   []byte
	sync  bool
}

var _ guidgen.StateStore = (*Store)(nil)

// Open creates or opens the database in opts.DataDir.
func Open(opts Options) (*Store, error) {
	if opts.DataDir == "" {
		return nil, errors.New("pebblestore: Options.DataDir is required")
	}
	po := opts.PebbleOptions
	if po == nil {
		po = &pebble.Options{}
	}
	inner, err := pebble.Open(opts.DataDir, po)
	if err != nil {
		return nil, fmt.Errorf("pebblestore: open %s: %w", opts.DataDir, err)
	}
	key := opts.Key
	if key == "" {
		key = DefaultKey
	}
	return &Store{inner: inner, key: []byte(key), sync: opts.Sync}, nil
}

// Close closes the Pebble database.
func (s *Store) Close() error {
	if s == nil || s.inner == nil {
		return nil
	}
	return s.inner.Close()
}

// LoadState reads the saved state, or returns guidgen.ErrStateNotFound.
func (s *Store) LoadState() (guidgen.State, error) {
	var state guidgen.State
	val, closer, err := s.inner.Get(s.key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return state, guidgen.ErrStateNotFound
		}
		return state, fmt.Errorf("pebblestore: get: %w", err)
	}
	defer closer.Close()
	if err := state.UnmarshalBinary(val); err != nil {
		return state, fmt.Errorf("pebblestore: decode state: %w", err)
	}
	return state, nil
}

// SaveState overwrites the saved state.
func (s *Store) SaveState(state guidgen.State) error {
	val, err := state.MarshalBinary()
	if err != nil {
		return err
	}
	b := s.inner.NewBatch()
	defer b.Close()
	if err := b.Set(s.key, val, nil); err != nil {
		return err
	}
	mode := pebble.NoSync
	if s.sync {
		mode = pebble.Sync
	}
	return b.Commit(mode)
}
