// Package postgres provides a PostgreSQL-backed implementation of the
// state persistence port, storing one JSON blob per key.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the adapter needs. pgxmock's pool
// interface satisfies it, which keeps the adapter testable without a
// running database.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store persists state blobs in a storefront_state table. It implements
// store.Persister.
//
// Expected schema:
//
//	CREATE TABLE storefront_state (
//	    key        TEXT PRIMARY KEY,
//	    value      JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type Store struct {
	db DB
}

// NewStore creates a PostgreSQL-backed persistence adapter.
func NewStore(db DB) *Store {
	return &Store{db: db}
}

// Load returns the value stored under key, if any.
func (s *Store) Load(ctx context.Context, key string) ([]byte, bool, error) {
	query := `SELECT value FROM storefront_state WHERE key = $1`

	var value []byte
	err := s.db.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load state %s: %w", key, err)
	}
	return value, true, nil
}

// Save upserts value under key.
func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO storefront_state (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	if _, err := s.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("save state %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM storefront_state WHERE key = $1`

	if _, err := s.db.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("delete state %s: %w", key, err)
	}
	return nil
}
