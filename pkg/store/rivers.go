package store

import (
	"context"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/worldforge/atlas/pkg/worldmodel"
)

// RiverRecord is one row of the rivers layer.
type RiverRecord struct {
	ID        int32
	ParentID  int32
	BasinID   int32
	Polyline  orb.LineString
	Length    float64
	Width     float64
	Discharge float64
}

// WriteRivers replaces the rivers layer.
func (s *Store) WriteRivers(ctx context.Context, rivers []worldmodel.River) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("writing rivers: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM rivers`); err != nil {
		return fmt.Errorf("clearing rivers: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO rivers
		(id, parent_id, basin_id, polyline, length, width, discharge)
		VALUES (?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("preparing river insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rivers {
		line := orb.LineString(r.Polyline)
		lineBytes, err := wkb.Marshal(line)
		if err != nil {
			return fmt.Errorf("encoding river %d polyline: %w", r.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, r.ID, r.ParentID, r.BasinID, lineBytes, r.Length, r.Width, r.Discharge); err != nil {
			return fmt.Errorf("inserting river %d: %w", r.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing rivers: %w", err)
	}
	return nil
}

// ReadRivers loads every row of the rivers layer.
func (s *Store) ReadRivers(ctx context.Context) ([]RiverRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, parent_id, basin_id, polyline, length, width, discharge FROM rivers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("reading rivers: %w", err)
	}
	defer rows.Close()

	var out []RiverRecord
	for rows.Next() {
		var r RiverRecord
		var lineBytes []byte
		if err := rows.Scan(&r.ID, &r.ParentID, &r.BasinID, &lineBytes, &r.Length, &r.Width, &r.Discharge); err != nil {
			return nil, fmt.Errorf("scanning river row: %w", err)
		}
		geom, err := wkb.Unmarshal(lineBytes)
		if err != nil {
			return nil, fmt.Errorf("decoding polyline for river %d: %w", r.ID, err)
		}
		r.Polyline = geom.(orb.LineString)
		out = append(out, r)
	}
	return out, rowsErr(rows)
}
