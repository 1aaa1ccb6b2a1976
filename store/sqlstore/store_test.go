package sqlstore

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lzww0608/guidgen"
)

func newTestStore(t *testing.T, name string) (*Store, *sql.DB) {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "state.db")
	s, err := Open("sqlite3", dsn, name)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, s.db
}

func TestLoadStateNotFound(t *testing.T) {
	s, _ := newTestStore(t, "")
	_, err := s.LoadState()
	assert.ErrorIs(t, err, guidgen.ErrStateNotFound)
}

func TestSaveInsertsThenUpdates(t *testing.T) {
	s, db := newTestStore(t, "worker-1")

	first := guidgen.State{LastTicks: 100, ClockSeq: 7}
	require.NoError(t, s.SaveState(first))
	got, err := s.LoadState()
	require.NoError(t, err)
	assert.Equal(t, first, got)

	second := guidgen.State{
		LastTicks:  200,
		ClockSeq:   8,
		LastMillis: 1700000000000,
		Counter:    3,
		Node:       [6]byte{0x01, 0, 0, 0, 0, 0x02},
		HasNode:    true,
	}
	require.NoError(t, s.SaveState(second))
	// Saving the same value twice must not trip the primary key.
	require.NoError(t, s.SaveState(second))
	got, err = s.LoadState()
	require.NoError(t, err)
	assert.Equal(t, second, got)

	var rows int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM guidgen_state").Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestSaveStateConcurrentFirstSave(t *testing.T) {
	s, db := newTestStore(t, "shared")
	other := New(db, "shared")

	// Another process inserts the row between our UPDATE and INSERT.
	calls := 0
	s.now = func() time.Time {
		calls++
		if calls == 2 {
			require.NoError(t, other.SaveState(guidgen.State{LastTicks: 1, ClockSeq: 1}))
		}
		return time.Now()
	}

	mine := guidgen.State{LastTicks: 500, ClockSeq: 9, LastMillis: 1700000000000, Counter: 4}
	require.NoError(t, s.SaveState(mine))

	got, err := s.LoadState()
	require.NoError(t, err)
	assert.Equal(t, mine, got)

	var rows int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM guidgen_state").Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestNamesAreIndependent(t *testing.T) {
	a, db := newTestStore(t, "a")
	b := New(db, "b")

	require.NoError(t, a.SaveState(guidgen.State{LastTicks: 1}))
	_, err := b.LoadState()
	assert.ErrorIs(t, err, guidgen.ErrStateNotFound)

	require.NoError(t, b.SaveState(guidgen.State{LastTicks: 2}))
	got, err := a.LoadState()
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.LastTicks)
}

func TestCorruptRow(t *testing.T) {
	s, db := newTestStore(t, "bad")
	_, err := db.Exec("INSERT INTO guidgen_state (name, state, updated_at) VALUES (?, ?, ?)",
		"bad", []byte{0x09}, 0)
	require.NoError(t, err)

	_, err = s.LoadState()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, guidgen.ErrStateNotFound)
}

func TestGeneratorPersistsClockState(t *testing.T) {
	s, _ := newTestStore(t, "")

	gen := guidgen.NewGenerator(guidgen.WithStateStore(s))
	id, err := gen.NewV7()
	if errors.Is(err, guidgen.ErrUnsupportedScheme) {
		t.Skip("version 7 disabled in this build")
	}
	require.NoError(t, err)
	require.NoError(t, gen.Close())

	state, err := s.LoadState()
	require.NoError(t, err)
	assert.Equal(t, id.Timestamp(), state.LastMillis)
	assert.Equal(t, id.Counter(), int(state.Counter))
}
