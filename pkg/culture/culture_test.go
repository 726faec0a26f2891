package culture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldforge/atlas/pkg/biome"
	"github.com/worldforge/atlas/pkg/climate"
	"github.com/worldforge/atlas/pkg/config"
	"github.com/worldforge/atlas/pkg/habitability"
	"github.com/worldforge/atlas/pkg/hydrology"
	"github.com/worldforge/atlas/pkg/mesh"
	"github.com/worldforge/atlas/pkg/terrain"
	"github.com/worldforge/atlas/pkg/worldmodel"
	"github.com/worldforge/atlas/pkg/worldrand"
)

func buildPopulatedWorld(seed uint64) (*worldmodel.World, *config.BiomeCatalog) {
	extent := mesh.Extent{MinX: 0, MinY: 0, MaxX: 300, MaxY: 300}
	rng := worldrand.New(seed)
	w := mesh.Build(rng, extent, 200)
	circles := terrain.GenerateGreatCircles(rng, 16)
	terrain.AttachProcedural(w, extent, circles, 5)
	climate.AttachTemperature(w, 27, -25, 2)
	climate.AttachWindTier(w, climate.DefaultWindTierTable())
	climate.AttachPrecipitation(w, climate.DefaultPrecipitationParams())
	hydrology.Accumulate(w, hydrology.DefaultParams())
	hydrology.ComputeShoreMetrics(w)

	cat := config.DefaultBiomeCatalog()
	biome.Classify(w, cat)
	habitability.Score(w, cat, habitability.Params{EstuaryThreshold: 20})
	return w, cat
}

func TestSelectShrinksWhenUnderpopulated(t *testing.T) {
	rng := worldrand.New(9543572450198918714)
	set := config.DefaultCultureSet()

	entries := Select(rng, set, 10, 12)
	assert.LessOrEqual(t, len(entries), 12)
}

func TestSelectReturnsWildlandsWhenNoPopulation(t *testing.T) {
	rng := worldrand.New(1)
	set := config.DefaultCultureSet()

	entries := Select(rng, set, 0, 12)
	require.Len(t, entries, 1)
	assert.Equal(t, "Wildlands", entries[0].Name)
}

func TestPlaceCentersAndExpandKeepCentersOnTheMesh(t *testing.T) {
	w, cat := buildPopulatedWorld(9543572450198918714)
	rng := worldrand.New(9543572450198918714)
	set := config.DefaultCultureSet()

	populated := 0
	for i := 0; i < w.N; i++ {
		if w.Population[i] > 0 {
			populated++
		}
	}

	entries := Select(rng, set, populated, 6)
	params := Params{CultureCount: 6, NeutralRate: 1, PowerInput: 1, Extent: mesh.Extent{MinX: 0, MinY: 0, MaxX: 300, MaxY: 300}}
	cultures := PlaceCenters(rng, w, cat, entries, params)

	for i := range cultures {
		w.CultureID[cultures[i].CenterCell] = int32(i)
	}
	Expand(w, cat, cultures, params)

	for _, c := range cultures {
		assert.GreaterOrEqual(t, int(c.CenterCell), 0)
		assert.Less(t, int(c.CenterCell), w.N)
	}
}
