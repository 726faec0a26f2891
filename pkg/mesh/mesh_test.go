package mesh

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldforge/atlas/pkg/worldrand"
)

func TestBuildProducesSymmetricNeighbors(t *testing.T) {
	extent := Extent{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	rng := worldrand.New(9543572450198918714)

	w := Build(rng, extent, 50)
	require.Greater(t, w.N, 0)

	i, j, ok := w.CheckNeighborSymmetry()
	assert.Truef(t, ok, "expected symmetric neighbor graph, found asymmetric pair (%d, %d)", i, j)
}

func TestBuildCellsHaveProjectedArea(t *testing.T) {
	extent := Extent{MinX: 0, MinY: 0, MaxX: 50, MaxY: 50}
	rng := worldrand.New(1)

	w := Build(rng, extent, 30)
	for i := 0; i < w.N; i++ {
		assert.Greaterf(t, w.Area[i], 0.0, "cell %d should have positive area", i)
		assert.LessOrEqualf(t, w.Area[i], extent.Width()*extent.Height(), "cell %d area should not exceed the extent", i)
	}
}

func TestBuildEveryCellHasAtLeastOneNeighborWhenMultipleSites(t *testing.T) {
	extent := Extent{MinX: 0, MinY: 0, MaxX: 40, MaxY: 40}
	rng := worldrand.New(42)

	w := Build(rng, extent, 25)
	require.Greater(t, w.N, 1)
	for i := 0; i < w.N; i++ {
		assert.NotEmptyf(t, w.Neighbors(i), "cell %d should have at least one neighbor", i)
	}
}

func TestClipToExtentKeepsPolygonInsideBounds(t *testing.T) {
	extent := Extent{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	ring := []orb.Point{{-5, 5}, {5, -5}, {15, 5}, {5, 15}, {-5, 5}}
	clipped := ClipToExtent(ring, extent)
	require.NotEmpty(t, clipped)
	for _, p := range clipped {
		assert.GreaterOrEqual(t, p[0], extent.MinX-1e-9)
		assert.LessOrEqual(t, p[0], extent.MaxX+1e-9)
		assert.GreaterOrEqual(t, p[1], extent.MinY-1e-9)
		assert.LessOrEqual(t, p[1], extent.MaxY+1e-9)
	}
}
