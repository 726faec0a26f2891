package hydrology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/worldforge/atlas/pkg/mesh"
	"github.com/worldforge/atlas/pkg/worldmodel"
	"github.com/worldforge/atlas/pkg/worldrand"
)

func TestComputeShoreMetricsMarksCoastalCells(t *testing.T) {
	extent := mesh.Extent{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	rng := worldrand.New(9543572450198918714)
	w := mesh.Build(rng, extent, 80)
	for i := 0; i < w.N; i++ {
		w.IsOcean[i] = i%4 == 0
	}

	ComputeShoreMetrics(w)

	foundCoastalLand, foundCoastalWater := false, false
	for i := 0; i < w.N; i++ {
		if w.ShoreDistance[i] == 1 {
			foundCoastalLand = true
			assert.NotEqual(t, worldmodel.NoID, w.ClosestWater[i])
		}
		if w.ShoreDistance[i] == -1 {
			foundCoastalWater = true
		}
	}
	assert.True(t, foundCoastalLand)
	assert.True(t, foundCoastalWater)
}
