package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/worldforge/atlas/pkg/biome"
	"github.com/worldforge/atlas/pkg/climate"
	"github.com/worldforge/atlas/pkg/config"
	"github.com/worldforge/atlas/pkg/features"
	"github.com/worldforge/atlas/pkg/habitability"
	"github.com/worldforge/atlas/pkg/hydrology"
	"github.com/worldforge/atlas/pkg/mesh"
	"github.com/worldforge/atlas/pkg/terrain"
	"github.com/worldforge/atlas/pkg/worldrand"
)

func TestStoreRoundTripsAllFourLayers(t *testing.T) {
	extent := mesh.Extent{MinX: 0, MinY: 0, MaxX: 300, MaxY: 300}
	rng := worldrand.New(9543572450198918714)
	w := mesh.Build(rng, extent, 150)
	circles := terrain.GenerateGreatCircles(rng, 16)
	terrain.AttachProcedural(w, extent, circles, 7)
	climate.AttachTemperature(w, 27, -25, 2)
	climate.AttachWindTier(w, climate.DefaultWindTierTable())
	climate.AttachPrecipitation(w, climate.DefaultPrecipitationParams())
	hydrology.Accumulate(w, hydrology.DefaultParams())
	hydrology.RenderRivers(w, hydrology.DefaultParams())
	hydrology.ComputeShoreMetrics(w)

	cat := config.DefaultBiomeCatalog()
	biome.Classify(w, cat)
	components := features.Classify(w)
	habitability.Score(w, cat, habitability.Params{EstuaryThreshold: 20})

	dbPath := filepath.Join(t.TempDir(), "world.sqlite")
	s, err := Open(dbPath)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.WriteCells(ctx, w))
	require.NoError(t, s.WriteRivers(ctx, w.Rivers))
	require.NoError(t, s.WriteLakes(ctx, w))
	require.NoError(t, s.WriteTerrainFeatures(ctx, w, components))

	cells, err := s.ReadCells(ctx)
	require.NoError(t, err)
	require.Len(t, cells, w.N)

	rivers, err := s.ReadRivers(ctx)
	require.NoError(t, err)
	require.Len(t, rivers, len(w.Rivers))

	lakes, err := s.ReadLakes(ctx)
	require.NoError(t, err)
	require.Len(t, lakes, len(w.Lakes))

	featureRows, err := s.ReadTerrainFeatures(ctx)
	require.NoError(t, err)
	require.Len(t, featureRows, len(components))
}

func TestStoreRoundTripsWorldSnapshot(t *testing.T) {
	extent := mesh.Extent{MinX: 0, MinY: 0, MaxX: 200, MaxY: 200}
	rng := worldrand.New(9543572450198918714)
	w := mesh.Build(rng, extent, 80)

	s, err := Open(filepath.Join(t.TempDir(), "project.sqlite"))
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.SaveWorld(ctx, w))

	loaded, err := s.LoadWorld(ctx)
	require.NoError(t, err)
	require.Equal(t, w.N, loaded.N)
	require.Equal(t, w.Sites, loaded.Sites)
}

func TestStoreProjectIDIsStableAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stable.sqlite")

	s1, err := Open(path)
	require.NoError(t, err)
	firstID := s1.ID()
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	require.Equal(t, firstID, s2.ID())
}

func TestStoreLoadWorldWithoutSnapshotIsMissingInput(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "empty.sqlite"))
	require.NoError(t, err)
	defer s.Close()

	_, err = s.LoadWorld(context.Background())
	require.Error(t, err)
}
