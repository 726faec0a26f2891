package store

import (
	"context"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/worldforge/atlas/pkg/features"
	"github.com/worldforge/atlas/pkg/worldmodel"
)

// FeatureRecord is one row of the terrain-feature layer: a labeled
// connected component (continent, island, ocean, lake, ...).
type FeatureRecord struct {
	ID        int32
	Type      string
	CellCount int
	Polygon   orb.MultiPolygon
}

// WriteTerrainFeatures replaces the terrain-feature layer.
func (s *Store) WriteTerrainFeatures(ctx context.Context, w *worldmodel.World, components []features.Component) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("writing terrain features: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM terrain_features`); err != nil {
		return fmt.Errorf("clearing terrain features: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO terrain_features (id, feature_type, cell_count, polygon) VALUES (?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("preparing terrain feature insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range components {
		mp := make(orb.MultiPolygon, 0, len(c.Cells))
		for _, cell := range c.Cells {
			mp = append(mp, w.Polygons[cell])
		}
		polyBytes, err := wkb.Marshal(mp)
		if err != nil {
			return fmt.Errorf("encoding terrain feature %d polygon: %w", c.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, c.ID, c.Type.String(), len(c.Cells), polyBytes); err != nil {
			return fmt.Errorf("inserting terrain feature %d: %w", c.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing terrain features: %w", err)
	}
	return nil
}

// ReadTerrainFeatures loads every row of the terrain-feature layer.
func (s *Store) ReadTerrainFeatures(ctx context.Context) ([]FeatureRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, feature_type, cell_count, polygon FROM terrain_features ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("reading terrain features: %w", err)
	}
	defer rows.Close()

	var out []FeatureRecord
	for rows.Next() {
		var r FeatureRecord
		var polyBytes []byte
		if err := rows.Scan(&r.ID, &r.Type, &r.CellCount, &polyBytes); err != nil {
			return nil, fmt.Errorf("scanning terrain feature row: %w", err)
		}
		geom, err := wkb.Unmarshal(polyBytes)
		if err != nil {
			return nil, fmt.Errorf("decoding polygon for terrain feature %d: %w", r.ID, err)
		}
		r.Polygon = geom.(orb.MultiPolygon)
		out = append(out, r)
	}
	return out, rowsErr(rows)
}
