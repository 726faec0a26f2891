package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/worldforge/atlas/pkg/mesh"
	"github.com/worldforge/atlas/pkg/worldrand"
)

func TestClassifyLabelsEveryCell(t *testing.T) {
	extent := mesh.Extent{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	rng := worldrand.New(9543572450198918714)
	w := mesh.Build(rng, extent, 80)
	for i := 0; i < w.N; i++ {
		w.IsOcean[i] = i%3 == 0
	}

	components := Classify(w)
	assert.NotEmpty(t, components)
	for i := 0; i < w.N; i++ {
		assert.GreaterOrEqual(t, w.TerrainFeatureID[i], int32(0))
	}

	totalCells := 0
	for _, c := range components {
		totalCells += len(c.Cells)
	}
	assert.Equal(t, w.N, totalCells)
}

func TestClassifyAllOceanIsOneOceanComponent(t *testing.T) {
	extent := mesh.Extent{MinX: 0, MinY: 0, MaxX: 50, MaxY: 50}
	rng := worldrand.New(1)
	w := mesh.Build(rng, extent, 30)
	for i := 0; i < w.N; i++ {
		w.IsOcean[i] = true
	}

	components := Classify(w)
	assert.Len(t, components, 1)
	assert.Equal(t, ComponentOcean, components[0].Type)
}
