// Package store persists todos and categories in PostgreSQL. Not-found is a
// sentinel (nil record or false), never an error; constraint violations
// surface as pq errors for the classifier to map.
package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// psql builds queries with $N placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const schema = `
CREATE TABLE IF NOT EXISTS categories (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	color      TEXT NOT NULL DEFAULT '#6366f1',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS todos (
	id          UUID PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT,
	completed   BOOLEAN NOT NULL DEFAULT FALSE,
	priority    TEXT NOT NULL DEFAULT 'medium' CHECK (priority IN ('low', 'medium', 'high')),
	due_date    TIMESTAMPTZ,
	category_id UUID REFERENCES categories (id) ON DELETE SET NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS todos_created_at_idx ON todos (created_at DESC);
CREATE INDEX IF NOT EXISTS todos_category_id_idx ON todos (category_id);
`

// Store owns the database handle and exposes the per-entity stores.
type Store struct {
	db *sqlx.DB

	Todos      *TodoStore
	Categories *CategoryStore
	Stats      *StatsStore
}

// Open connects to PostgreSQL and verifies the connection.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return New(db), nil
}

// New wraps an existing handle; tests use it with a mocked *sqlx.DB.
func New(db *sqlx.DB) *Store {
	return &Store{
		db:         db,
		Todos:      &TodoStore{db: db},
		Categories: &CategoryStore{db: db},
		Stats:      &StatsStore{db: db},
	}
}

// Migrate creates the tables and indexes if they do not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
