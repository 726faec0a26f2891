package habitability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/worldforge/atlas/pkg/config"
	"github.com/worldforge/atlas/pkg/worldmodel"
)

func TestScoreZeroHabitabilityBiomeYieldsNoPopulation(t *testing.T) {
	w := worldmodel.NewWorld(1)
	cat := config.DefaultBiomeCatalog()
	w.BiomeID[0] = int32(cat.IndexOf("Marine")) // habitability 0

	Score(w, cat, Params{EstuaryThreshold: 20})
	assert.Equal(t, float64(0), w.Population[0])
}

func TestScorePositiveHabitabilityYieldsPopulation(t *testing.T) {
	w := worldmodel.NewWorld(1)
	w.Area[0] = 10
	cat := config.DefaultBiomeCatalog()
	w.BiomeID[0] = int32(cat.IndexOf("Grassland"))
	w.Elevation[0] = 40

	Score(w, cat, Params{EstuaryThreshold: 20})
	assert.Greater(t, w.Population[0], 0.0)
}

func TestScoreSkipsOceanCells(t *testing.T) {
	w := worldmodel.NewWorld(1)
	w.IsOcean[0] = true
	cat := config.DefaultBiomeCatalog()

	Score(w, cat, Params{EstuaryThreshold: 20})
	assert.Equal(t, int32(0), w.Habitability[0])
	assert.Equal(t, float64(0), w.Population[0])
}
