// Package store persists the four SPEC_FULL.md vector layers (cells,
// rivers, lakes, terrain features) to a single SQLite file opened
// through modernc.org/sqlite, geometries marshaled with orb's WKB
// encoding into BLOB columns and attributes as typed columns — a
// concrete, pure-Go stand-in for "geopackage or equivalent multi-layer
// vector store".
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store is a single SQLite-backed layer store.
type Store struct {
	db *sql.DB
	id uuid.UUID
}

// Open creates (or reuses) the SQLite file at path and ensures the
// layer tables exist. A project is identified by a UUID stamped into
// it the first time it's opened, stable across every later command
// that reopens the same file.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.loadOrAssignProjectID(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// ID returns the project's stable identifier.
func (s *Store) ID() uuid.UUID {
	return s.id
}

func (s *Store) loadOrAssignProjectID(ctx context.Context) error {
	row := s.db.QueryRowContext(ctx, `SELECT id FROM project LIMIT 1`)
	var text string
	if err := row.Scan(&text); err == nil {
		parsed, err := uuid.Parse(text)
		if err != nil {
			return fmt.Errorf("parsing project id: %w", err)
		}
		s.id = parsed
		return nil
	}
	s.id = uuid.New()
	if _, err := s.db.ExecContext(ctx, `INSERT INTO project (id) VALUES (?)`, s.id.String()); err != nil {
		return fmt.Errorf("assigning project id: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS project (
	id TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS cells (
	id INTEGER PRIMARY KEY,
	site BLOB NOT NULL,
	polygon BLOB NOT NULL,
	elevation INTEGER NOT NULL,
	is_ocean INTEGER NOT NULL,
	temperature INTEGER NOT NULL,
	precipitation INTEGER NOT NULL,
	biome_id INTEGER NOT NULL,
	terrain_feature_id INTEGER NOT NULL,
	habitability INTEGER NOT NULL,
	population REAL NOT NULL,
	culture_id INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS rivers (
	id INTEGER PRIMARY KEY,
	parent_id INTEGER NOT NULL,
	basin_id INTEGER NOT NULL,
	polyline BLOB NOT NULL,
	length REAL NOT NULL,
	width REAL NOT NULL,
	discharge REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS lakes (
	id INTEGER PRIMARY KEY,
	polygon BLOB NOT NULL,
	lake_group TEXT NOT NULL,
	surface_elevation REAL NOT NULL,
	flux REAL NOT NULL,
	closed INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS terrain_features (
	id INTEGER PRIMARY KEY,
	feature_type TEXT NOT NULL,
	cell_count INTEGER NOT NULL,
	polygon BLOB NOT NULL
);
`

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrating store schema: %w", err)
	}
	return nil
}
