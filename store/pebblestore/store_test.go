package pebblestore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lzww0608/guidgen"
)

func newTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := Open(Options{DataDir: dir, Sync: true})
	require.NoError(t, err)
	return s
}

func TestOpenRequiresDataDir(t *testing.T) {
	_, err := Open(Options{})
	assert.Error(t, err)
}

func TestLoadStateNotFound(t *testing.T) {
	s := newTestStore(t, t.TempDir())
	t.Cleanup(func() { _ = s.Close() })

	_, err := s.LoadState()
	assert.ErrorIs(t, err, guidgen.ErrStateNotFound)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	want := guidgen.State{
		LastTicks:  139000000000000000,
		ClockSeq:   0x1234,
		LastMillis: 1700000000000,
		Counter:    0x0abc,
		Node:       [6]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06},
		HasNode:    true,
	}

	s := newTestStore(t, dir)
	require.NoError(t, s.SaveState(want))
	require.NoError(t, s.Close())

	// Reopen to make sure the state reached disk.
	s = newTestStore(t, dir)
	t.Cleanup(func() { _ = s.Close() })
	got, err := s.LoadState()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSeparateKeys(t *testing.T) {
	dir := t.TempDir()
	a, err := Open(Options{DataDir: dir, Key: "a"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	require.NoError(t, a.SaveState(guidgen.State{LastTicks: 1}))

	b := &Store{inner: a.inner, key: []byte("b")}
	_, err = b.LoadState()
	assert.ErrorIs(t, err, guidgen.ErrStateNotFound)
}

func TestGeneratorRoundTrip(t *testing.T) {
	dir := t.TempDir()
	node := [6]byte{0x03, 0xaa, 0xbb, 0xcc, 0xdd, 0xee}
	failing := guidgen.NodeSourceFunc(func() ([6]byte, error) {
		return [6]byte{}, errors.New("no interfaces")
	})

	s := newTestStore(t, dir)
	gen := guidgen.NewGenerator(guidgen.WithStateStore(s), guidgen.WithNodeID(node))
	first, err := gen.NewV1()
	require.NoError(t, err)
	require.NoError(t, gen.Close())
	require.NoError(t, s.Close())

	s = newTestStore(t, dir)
	t.Cleanup(func() { _ = s.Close() })
	gen = guidgen.NewGenerator(guidgen.WithStateStore(s), guidgen.WithNodeSource(failing))
	second, err := gen.NewV1()
	require.NoError(t, err)

	// The random node survives the restart and the sequence keeps its order.
	assert.Equal(t, node, second.NodeID())
	assert.GreaterOrEqual(t, second.Ticks(), first.Ticks())
}
