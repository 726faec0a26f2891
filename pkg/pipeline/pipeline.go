// Package pipeline drives the mesh -> terrain -> climate -> hydrology ->
// biome -> habitability -> culture stage sequence over
// a single shared *worldmodel.World, threading one worldrand.Stream
// instance through every stage for deterministic output.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/worldforge/atlas/pkg/biome"
	"github.com/worldforge/atlas/pkg/climate"
	"github.com/worldforge/atlas/pkg/config"
	"github.com/worldforge/atlas/pkg/culture"
	"github.com/worldforge/atlas/pkg/features"
	"github.com/worldforge/atlas/pkg/habitability"
	"github.com/worldforge/atlas/pkg/hydrology"
	"github.com/worldforge/atlas/pkg/mesh"
	"github.com/worldforge/atlas/pkg/raster"
	"github.com/worldforge/atlas/pkg/store"
	"github.com/worldforge/atlas/pkg/terrain"
	"github.com/worldforge/atlas/pkg/worldmodel"
	"github.com/worldforge/atlas/pkg/worldrand"
)

// ErrCancelled is returned when a stage observes a cancelled context
// between outer-loop iterations; cancellation is cooperative and
// coarse-grained, never mid-stage.
var ErrCancelled = errors.New("pipeline: cancelled")

// Run holds the shared state threaded through every stage.
type Run struct {
	Ctx    context.Context
	World      *worldmodel.World
	RNG        *worldrand.Stream
	Config     config.RuntimeConfig
	Biomes     *config.BiomeCatalog
	Log        zerolog.Logger
	Components []features.Component
}

// NewRun constructs a Run with a fresh World-less state; Mesh populates
// World.
func NewRun(ctx context.Context, cfg config.RuntimeConfig, biomes *config.BiomeCatalog, log zerolog.Logger) *Run {
	return &Run{
		Ctx:    ctx,
		RNG:    worldrand.New(cfg.Seed),
		Config: cfg,
		Biomes: biomes,
		Log:    log,
	}
}

func (r *Run) checkCancelled() error {
	select {
	case <-r.Ctx.Done():
		return ErrCancelled
	default:
		return nil
	}
}

// Mesh runs the mesh-construction stage, building the cell graph.
func (r *Run) Mesh() error {
	if err := r.checkCancelled(); err != nil {
		return err
	}
	r.Log.Info().Int("cells", r.Config.Cells).Msg("building mesh")
	extent := mesh.Extent{MinX: 0, MinY: 0, MaxX: 1000, MaxY: 1000}
	r.World = mesh.Build(r.RNG, extent, r.Config.Cells)
	if r.World.N == 0 {
		return fmt.Errorf("mesh stage produced zero cells: %w", worldmodel.ErrDegenerateGeometry)
	}
	return nil
}

// TerrainFromHeightmap runs the terrain stage sampling a decoded raster.
func (r *Run) TerrainFromHeightmap(grid *raster.Grid, mask *raster.Mask, seaLevelRaw, maxRaw float64) error {
	if err := r.requireWorld(); err != nil {
		return err
	}
	extent := mesh.Extent{MinX: 0, MinY: 0, MaxX: 1000, MaxY: 1000}
	terrain.AttachFromHeightmap(r.World, extent, grid, seaLevelRaw, maxRaw)
	if mask != nil {
		terrain.AttachOceanFromMask(r.World, extent, mask)
	} else {
		terrain.AttachOceanFromThreshold(r.World, 20)
	}
	return nil
}

// TerrainProcedural runs the no-heightmap terrain generation path.
func (r *Run) TerrainProcedural(featureCount int) error {
	if err := r.requireWorld(); err != nil {
		return err
	}
	extent := mesh.Extent{MinX: 0, MinY: 0, MaxX: 1000, MaxY: 1000}
	circles := terrain.GenerateGreatCircles(r.RNG, featureCount)
	noiseSeed := int64(r.RNG.NextInt(1 << 30))
	terrain.AttachProcedural(r.World, extent, circles, noiseSeed)
	return nil
}

// Climate runs the climate stage.
func (r *Run) Climate() error {
	if err := r.requireWorld(); err != nil {
		return err
	}
	r.Log.Info().Msg("computing climate")
	climate.AttachTemperature(r.World, r.Config.TemperatureEquator, r.Config.TemperaturePole, r.Config.HeightExponent)
	climate.AttachWindTier(r.World, climate.DefaultWindTierTable())
	params := climate.DefaultPrecipitationParams()
	params.Modifier = r.Config.PrecipitationModifier
	climate.AttachPrecipitation(r.World, params)
	return nil
}

// Hydrology runs flow accumulation, river rendering, shore metrics, and
// erosion.
func (r *Run) Hydrology() error {
	if err := r.requireWorld(); err != nil {
		return err
	}
	r.Log.Info().Msg("running hydrology")
	params := hydrology.Params{
		CellCountModifier:    1,
		MinFluxToFormRiver:   r.Config.MinFluxToFormRiver,
		LakeElevationLimit:   r.Config.LakeElevationLimit,
		MaxPassableElevation: r.Config.MaxPassableElevation,
		MaxIterations:        50,
		MaxDowncut:           r.Config.MaxDowncut,
		Meandering:           0.3,
		WidthK:               50,
	}
	hydrology.Accumulate(r.World, params)
	hydrology.RenderRivers(r.World, params)
	hydrology.ComputeShoreMetrics(r.World)
	hydrology.Erode(r.World, params)
	return nil
}

// Biome runs biome classification.
func (r *Run) Biome() error {
	if err := r.requireWorld(); err != nil {
		return err
	}
	r.Log.Info().Msg("classifying biomes")
	biome.Classify(r.World, r.Biomes)
	r.Components = features.Classify(r.World)
	return nil
}

// Habitability runs the habitability and population stage.
func (r *Run) Habitability() error {
	if err := r.requireWorld(); err != nil {
		return err
	}
	r.Log.Info().Msg("scoring habitability")
	habitability.Score(r.World, r.Biomes, habitability.Params{EstuaryThreshold: r.Config.EstuaryThreshold})
	return nil
}

// Culture runs culture selection, placement, and expansion.
func (r *Run) Culture(set *config.CultureSet) error {
	if err := r.requireWorld(); err != nil {
		return err
	}
	r.Log.Info().Int("configured_count", r.Config.CultureCount).Msg("seeding cultures")

	populated := 0
	for i := 0; i < r.World.N; i++ {
		if r.World.Population[i] > 0 {
			populated++
		}
	}

	entries := culture.Select(r.RNG, set, populated, r.Config.CultureCount)
	if len(entries) == 0 {
		return fmt.Errorf("culture selection produced no entries: %w", worldmodel.ErrInsufficientHabitat)
	}

	extent := mesh.Extent{MinX: 0, MinY: 0, MaxX: 1000, MaxY: 1000}
	params := culture.Params{
		CultureCount: r.Config.CultureCount,
		NeutralRate:  r.Config.NeutralRate,
		PowerInput:   r.Config.PowerInput,
		Extent:       extent,
	}
	cultures := culture.PlaceCenters(r.RNG, r.World, r.Biomes, entries, params)
	for i := range cultures {
		r.World.CultureID[cultures[i].CenterCell] = int32(i)
	}
	r.World.Cultures = cultures
	culture.Expand(r.World, r.Biomes, cultures, params)
	return nil
}

// Persist writes the current world state's cells/rivers/lakes/
// terrain-feature layers to w, the project store the command opened.
func (r *Run) Persist(ctx context.Context, w store.Writer) error {
	if err := r.requireWorld(); err != nil {
		return err
	}
	if err := w.WriteCells(ctx, r.World); err != nil {
		return err
	}
	if err := w.WriteRivers(ctx, r.World.Rivers); err != nil {
		return err
	}
	if err := w.WriteLakes(ctx, r.World); err != nil {
		return err
	}
	if err := w.WriteTerrainFeatures(ctx, r.World, r.Components); err != nil {
		return err
	}
	return nil
}

func (r *Run) requireWorld() error {
	if err := r.checkCancelled(); err != nil {
		return err
	}
	if r.World == nil || r.World.N == 0 {
		return fmt.Errorf("stage requires a built mesh: %w", worldmodel.ErrMissingInput)
	}
	return nil
}
