package biome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/worldforge/atlas/pkg/config"
	"github.com/worldforge/atlas/pkg/worldmodel"
)

func newTestWorld(n int) *worldmodel.World {
	return worldmodel.NewWorld(n)
}

func TestClassifyMarineForOceanCells(t *testing.T) {
	w := newTestWorld(1)
	w.IsOcean[0] = true
	cat := config.DefaultBiomeCatalog()

	Classify(w, cat)
	assert.Equal(t, int32(cat.IndexOf("Marine")), w.BiomeID[0])
}

func TestClassifyPermafrostForColdLand(t *testing.T) {
	w := newTestWorld(1)
	w.Temperature[0] = -10
	cat := config.DefaultBiomeCatalog()

	Classify(w, cat)
	assert.Equal(t, int32(cat.IndexOf("Permafrost")), w.BiomeID[0])
}

func TestClassifyWetlandForLowElevationHighMoisture(t *testing.T) {
	w := newTestWorld(1)
	w.Temperature[0] = 10
	w.Elevation[0] = 10
	w.Precipitation[0] = 90
	cat := config.DefaultBiomeCatalog()

	Classify(w, cat)
	assert.Equal(t, int32(cat.IndexOf("Wetland")), w.BiomeID[0])
}

func TestClassifyFallsBackToMatrixLookup(t *testing.T) {
	w := newTestWorld(1)
	w.Temperature[0] = 20
	w.Elevation[0] = 50
	w.Precipitation[0] = 5
	cat := config.DefaultBiomeCatalog()

	Classify(w, cat)
	assert.GreaterOrEqual(t, w.BiomeID[0], int32(0))
	assert.Less(t, int(w.BiomeID[0]), len(cat.Biomes))
}
