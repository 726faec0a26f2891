package hydrology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldforge/atlas/pkg/climate"
	"github.com/worldforge/atlas/pkg/mesh"
	"github.com/worldforge/atlas/pkg/terrain"
	"github.com/worldforge/atlas/pkg/worldmodel"
	"github.com/worldforge/atlas/pkg/worldrand"
)

func buildTestWorld(seed uint64, cells int) *worldmodel.World {
	extent := mesh.Extent{MinX: 0, MinY: 0, MaxX: 200, MaxY: 200}
	rng := worldrand.New(seed)
	w := mesh.Build(rng, extent, cells)
	circles := terrain.GenerateGreatCircles(rng, 12)
	terrain.AttachProcedural(w, extent, circles, 3)
	climate.AttachTemperature(w, 27, -25, 2)
	climate.AttachWindTier(w, climate.DefaultWindTierTable())
	climate.AttachPrecipitation(w, climate.DefaultPrecipitationParams())
	return w
}

func TestAccumulateRiverCellsAreValidIDs(t *testing.T) {
	w := buildTestWorld(9543572450198918714, 120)
	Accumulate(w, DefaultParams())

	for _, r := range w.Rivers {
		require.NotEmpty(t, r.Cells)
		for _, c := range r.Cells {
			assert.GreaterOrEqual(t, int(c), 0)
			assert.Less(t, int(c), w.N)
		}
	}
}

func TestAccumulateAssignsRiverIDOnlyToKnownRivers(t *testing.T) {
	w := buildTestWorld(1, 90)
	Accumulate(w, DefaultParams())

	riverIDs := map[int32]bool{}
	for _, r := range w.Rivers {
		riverIDs[r.ID] = true
	}
	for i := 0; i < w.N; i++ {
		if w.RiverID[i] == worldmodel.NoID {
			continue
		}
		assert.Truef(t, riverIDs[w.RiverID[i]], "river id %d should trace back to a known basin", w.RiverID[i])
	}
}

func TestAccumulatePopulatesWaterFlowOnLandCells(t *testing.T) {
	w := buildTestWorld(9543572450198918714, 120)
	Accumulate(w, DefaultParams())

	found := false
	for i := 0; i < w.N; i++ {
		if !w.IsOcean[i] && w.WaterFlow[i] > 0 {
			found = true
			break
		}
	}
	assert.True(t, found, "expected at least one land cell with positive WaterFlow")
}

func TestClassifyLakesAssignsAGroup(t *testing.T) {
	w := buildTestWorld(42, 150)
	Accumulate(w, DefaultParams())

	for _, l := range w.Lakes {
		assert.NotEmpty(t, l.Group.String())
		assert.NotEqual(t, "unknown", l.Group.String())
	}
}

func TestRenderRiversDiscardsShortRivers(t *testing.T) {
	w := buildTestWorld(7, 100)
	Accumulate(w, DefaultParams())
	RenderRivers(w, DefaultParams())

	for _, r := range w.Rivers {
		assert.GreaterOrEqual(t, len(r.Cells), 3)
	}
}
