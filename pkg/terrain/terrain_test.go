package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldforge/atlas/pkg/mesh"
	"github.com/worldforge/atlas/pkg/raster"
	"github.com/worldforge/atlas/pkg/worldmodel"
	"github.com/worldforge/atlas/pkg/worldrand"
)

func TestAttachFromHeightmapScalesAroundSeaLevel(t *testing.T) {
	extent := mesh.Extent{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	w := worldmodel.NewWorld(2)
	w.Sites[0] = [2]float64{0, 0}
	w.Sites[1] = [2]float64{10, 10}

	grid := &raster.Grid{Width: 2, Height: 2, Values: []float64{0.2, 0.2, 1.0, 1.0}}
	AttachFromHeightmap(w, extent, grid, 0.2, 1.0)

	assert.InDelta(t, 20, w.Elevation[0], 1)
	assert.InDelta(t, 100, w.Elevation[1], 1)
}

func TestAttachOceanFromThresholdUsesElevation(t *testing.T) {
	w := worldmodel.NewWorld(3)
	w.Elevation[0] = 5
	w.Elevation[1] = 20
	w.Elevation[2] = 80
	AttachOceanFromThreshold(w, 20)

	assert.True(t, w.IsOcean[0])
	assert.False(t, w.IsOcean[1])
	assert.False(t, w.IsOcean[2])
}

func TestAttachProceduralProducesBoundedElevation(t *testing.T) {
	extent := mesh.Extent{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	rng := worldrand.New(9543572450198918714)
	w := mesh.Build(rng, extent, 40)
	require.Greater(t, w.N, 0)

	circles := GenerateGreatCircles(rng, 16)
	AttachProcedural(w, extent, circles, 7)

	for i := 0; i < w.N; i++ {
		assert.GreaterOrEqual(t, w.Elevation[i], int32(0))
		assert.LessOrEqual(t, w.Elevation[i], int32(100))
	}
}
