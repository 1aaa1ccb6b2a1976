// Package sqlstore keeps generator state in a SQL table. It works with any
// database/sql driver whose placeholder is "?", such as MySQL and SQLite.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Lzww0608/guidgen"
)

// DefaultName is the row name used when none is given.
const DefaultName = "default"

const schema = `CREATE TABLE IF NOT EXISTS guidgen_state (
	name       VARCHAR(64) NOT NULL PRIMARY KEY,
	state      BLOB        NOT NULL,
	updated_at BIGINT      NOT NULL
)`

// Store is a guidgen.StateStore backed by one row of the guidgen_state table.
type Store struct {
	db   *sql.DB
	name string
	now  func() time.Time
}

var _ guidgen.StateStore = (*Store)(nil)

// Open connects with the given driver and DSN and makes sure the table exists.
func Open(driver, dsn, name string) (*Store, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	s := New(db, name)
	if err := s.CreateTable(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an existing connection pool. The caller owns db.
func New(db *sql.DB, name string) *Store {
	if name == "" {
		name = DefaultName
	}
	return &Store{db: db, name: name, now: time.Now}
}

// CreateTable creates the guidgen_state table if it is missing.
func (s *Store) CreateTable(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlstore: create table: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadState reads the row, or returns guidgen.ErrStateNotFound.
func (s *Store) LoadState() (guidgen.State, error) {
	var state guidgen.State
	var raw []byte
	err := s.db.QueryRowContext(context.Background(),
		"SELECT state FROM guidgen_state WHERE name = ?", s.name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return state, guidgen.ErrStateNotFound
	}
	if err != nil {
		return state, fmt.Errorf("sqlstore: load %q: %w", s.name, err)
	}
	if err := state.UnmarshalBinary(raw); err != nil {
		return state, fmt.Errorf("sqlstore: decode %q: %w", s.name, err)
	}
	return state, nil
}

// SaveState overwrites the row, inserting it on first use. Each statement is
// atomic on its own, so two processes saving the same name for the first
// time both succeed: the loser of the INSERT falls back to the UPDATE.
func (s *Store) SaveState(state guidgen.State) error {
	raw, err := state.MarshalBinary()
	if err != nil {
		return err
	}
	ctx := context.Background()

	updated, err := s.update(ctx, raw)
	if err != nil {
		return fmt.Errorf("sqlstore: save %q: %w", s.name, err)
	}
	if updated {
		return nil
	}

	_, insertErr := s.db.ExecContext(ctx,
		"INSERT INTO guidgen_state (name, state, updated_at) VALUES (?, ?, ?)",
		s.name, raw, s.now().UnixMilli())
	if insertErr == nil {
		return nil
	}

	// The row appeared since the UPDATE, most likely a duplicate key.
	if updated, err = s.update(ctx, raw); err != nil {
		return fmt.Errorf("sqlstore: save %q: %w", s.name, errors.Join(insertErr, err))
	}
	if !updated {
		if ok, err := s.exists(ctx); err != nil || !ok {
			return fmt.Errorf("sqlstore: save %q: %w", s.name, insertErr)
		}
	}
	return nil
}

// update reports whether a row matched. MySQL counts only changed rows, so an
// identical rewrite within the same millisecond reports false.
func (s *Store) update(ctx context.Context, raw []byte) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE guidgen_state SET state = ?, updated_at = ? WHERE name = ?",
		raw, s.now().UnixMilli(), s.name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) exists(ctx context.Context) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM guidgen_state WHERE name = ?", s.name).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}
