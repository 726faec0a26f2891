package store

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"

	"github.com/worldforge/atlas/pkg/worldmodel"
)

// SaveWorld persists a full in-memory World snapshot (including the
// neighbor CSR, which the public vector layers omit) so a later
// command in the same project can resume a stage sequence without
// recomputing topology. This is the "project" a CLI command's
// <project> argument names.
func (s *Store) SaveWorld(ctx context.Context, w *worldmodel.World) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(w); err != nil {
		return fmt.Errorf("encoding world snapshot: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS world_snapshot (id INTEGER PRIMARY KEY CHECK (id = 0), data BLOB NOT NULL)`); err != nil {
		return fmt.Errorf("ensuring world snapshot table: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `INSERT INTO world_snapshot (id, data) VALUES (0, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data`, buf.Bytes()); err != nil {
		return fmt.Errorf("writing world snapshot: %w", err)
	}
	return nil
}

// LoadWorld reads back the snapshot written by SaveWorld. Returns
// worldmodel.ErrMissingInput if the project has no snapshot yet (e.g.
// convert-heightmap has not run).
func (s *Store) LoadWorld(ctx context.Context) (*worldmodel.World, error) {
	row := s.db.QueryRowContext(ctx, `SELECT data FROM world_snapshot WHERE id = 0`)
	var data []byte
	if err := row.Scan(&data); err != nil {
		return nil, fmt.Errorf("loading world snapshot: %w", worldmodel.ErrMissingInput)
	}
	w := &worldmodel.World{}
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(w); err != nil {
		return nil, fmt.Errorf("decoding world snapshot: %w", err)
	}
	return w, nil
}
