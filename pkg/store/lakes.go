package store

import (
	"context"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/worldforge/atlas/pkg/worldmodel"
)

// LakeRecord is one row of the lakes layer. The polygon is the union
// (as a MultiPolygon, no dissolve) of the member cells' polygons.
type LakeRecord struct {
	ID               int32
	Polygon          orb.MultiPolygon
	Group            string
	SurfaceElevation float64
	Flux             float64
	Closed           bool
}

// WriteLakes replaces the lakes layer, deriving each lake's geometry
// from the polygons of its member cells in w.
func (s *Store) WriteLakes(ctx context.Context, w *worldmodel.World) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("writing lakes: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM lakes`); err != nil {
		return fmt.Errorf("clearing lakes: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO lakes
		(id, polygon, lake_group, surface_elevation, flux, closed)
		VALUES (?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("preparing lake insert: %w", err)
	}
	defer stmt.Close()

	for _, l := range w.Lakes {
		mp := make(orb.MultiPolygon, 0, len(l.Cells))
		for _, c := range l.Cells {
			mp = append(mp, w.Polygons[c])
		}
		polyBytes, err := wkb.Marshal(mp)
		if err != nil {
			return fmt.Errorf("encoding lake %d polygon: %w", l.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, l.ID, polyBytes, l.Group.String(), l.SurfaceElevation, l.Flux, l.Closed); err != nil {
			return fmt.Errorf("inserting lake %d: %w", l.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing lakes: %w", err)
	}
	return nil
}

// ReadLakes loads every row of the lakes layer.
func (s *Store) ReadLakes(ctx context.Context) ([]LakeRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, polygon, lake_group, surface_elevation, flux, closed FROM lakes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("reading lakes: %w", err)
	}
	defer rows.Close()

	var out []LakeRecord
	for rows.Next() {
		var r LakeRecord
		var polyBytes []byte
		if err := rows.Scan(&r.ID, &polyBytes, &r.Group, &r.SurfaceElevation, &r.Flux, &r.Closed); err != nil {
			return nil, fmt.Errorf("scanning lake row: %w", err)
		}
		geom, err := wkb.Unmarshal(polyBytes)
		if err != nil {
			return nil, fmt.Errorf("decoding polygon for lake %d: %w", r.ID, err)
		}
		r.Polygon = geom.(orb.MultiPolygon)
		out = append(out, r)
	}
	return out, rowsErr(rows)
}
