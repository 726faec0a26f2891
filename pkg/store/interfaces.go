package store

import (
	"context"

	"github.com/worldforge/atlas/pkg/features"
	"github.com/worldforge/atlas/pkg/worldmodel"
)

// Writer persists the four vector layers. pkg/pipeline depends on this
// interface rather than *Store directly, so a real geopackage codec
// could swap in without touching stage code.
type Writer interface {
	WriteCells(ctx context.Context, w *worldmodel.World) error
	WriteRivers(ctx context.Context, rivers []worldmodel.River) error
	WriteLakes(ctx context.Context, w *worldmodel.World) error
	WriteTerrainFeatures(ctx context.Context, w *worldmodel.World, components []features.Component) error
}

// Reader reads the four vector layers back, e.g. for a viewer or a
// subsequent gen-* stage resuming from a persisted world.
type Reader interface {
	ReadCells(ctx context.Context) ([]CellRecord, error)
	ReadRivers(ctx context.Context) ([]RiverRecord, error)
	ReadLakes(ctx context.Context) ([]LakeRecord, error)
	ReadTerrainFeatures(ctx context.Context) ([]FeatureRecord, error)
}

var (
	_ Writer = (*Store)(nil)
	_ Reader = (*Store)(nil)
)
