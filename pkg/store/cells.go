package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/worldforge/atlas/pkg/worldmodel"
)

// CellRecord is one row of the cells layer.
type CellRecord struct {
	ID               int32
	Site             orb.Point
	Polygon          orb.Polygon
	Elevation        int32
	IsOcean          bool
	Temperature      int32
	Precipitation    uint32
	BiomeID          int32
	TerrainFeatureID int32
	Habitability     int32
	Population       float64
	CultureID        int32
}

// WriteCells replaces the cells layer with the current state of w.
func (s *Store) WriteCells(ctx context.Context, w *worldmodel.World) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("writing cells: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cells`); err != nil {
		return fmt.Errorf("clearing cells: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO cells
		(id, site, polygon, elevation, is_ocean, temperature, precipitation,
		 biome_id, terrain_feature_id, habitability, population, culture_id)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("preparing cell insert: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < w.N; i++ {
		siteBytes, err := wkb.Marshal(w.Sites[i])
		if err != nil {
			return fmt.Errorf("encoding site %d: %w", i, err)
		}
		polyBytes, err := wkb.Marshal(w.Polygons[i])
		if err != nil {
			return fmt.Errorf("encoding polygon %d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, i, siteBytes, polyBytes,
			w.Elevation[i], w.IsOcean[i], w.Temperature[i], w.Precipitation[i],
			w.BiomeID[i], w.TerrainFeatureID[i], w.Habitability[i], w.Population[i], w.CultureID[i],
		); err != nil {
			return fmt.Errorf("inserting cell %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing cells: %w", err)
	}
	return nil
}

// ReadCells loads every row of the cells layer.
func (s *Store) ReadCells(ctx context.Context) ([]CellRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		id, site, polygon, elevation, is_ocean, temperature, precipitation,
		biome_id, terrain_feature_id, habitability, population, culture_id
		FROM cells ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("reading cells: %w", err)
	}
	defer rows.Close()

	var out []CellRecord
	for rows.Next() {
		var r CellRecord
		var siteBytes, polyBytes []byte
		if err := rows.Scan(&r.ID, &siteBytes, &polyBytes, &r.Elevation, &r.IsOcean,
			&r.Temperature, &r.Precipitation, &r.BiomeID, &r.TerrainFeatureID,
			&r.Habitability, &r.Population, &r.CultureID); err != nil {
			return nil, fmt.Errorf("scanning cell row: %w", err)
		}
		geom, err := wkb.Unmarshal(siteBytes)
		if err != nil {
			return nil, fmt.Errorf("decoding site for cell %d: %w", r.ID, err)
		}
		r.Site = geom.(orb.Point)
		geom, err = wkb.Unmarshal(polyBytes)
		if err != nil {
			return nil, fmt.Errorf("decoding polygon for cell %d: %w", r.ID, err)
		}
		r.Polygon = geom.(orb.Polygon)
		out = append(out, r)
	}
	return out, rowsErr(rows)
}

func rowsErr(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}
	return nil
}
