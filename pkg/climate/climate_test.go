package climate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/worldforge/atlas/pkg/mesh"
	"github.com/worldforge/atlas/pkg/worldrand"
)

func TestAttachTemperatureColderTowardPoles(t *testing.T) {
	extent := mesh.Extent{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	rng := worldrand.New(9543572450198918714)
	w := mesh.Build(rng, extent, 60)

	AttachTemperature(w, 27, -25, 2)

	for i := 0; i < w.N; i++ {
		assert.GreaterOrEqual(t, w.Temperature[i], int32(-128))
		assert.LessOrEqual(t, w.Temperature[i], int32(127))
	}

	equatorIdx, poleIdx := 0, 0
	for i := 1; i < w.N; i++ {
		if abs(w.Latitude[i]) < abs(w.Latitude[equatorIdx]) {
			equatorIdx = i
		}
		if abs(w.Latitude[i]) > abs(w.Latitude[poleIdx]) {
			poleIdx = i
		}
	}
	assert.Greater(t, w.Temperature[equatorIdx], w.Temperature[poleIdx])
}

func TestAttachWindTierWithinBandCount(t *testing.T) {
	extent := mesh.Extent{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	rng := worldrand.New(1)
	w := mesh.Build(rng, extent, 40)

	AttachWindTier(w, DefaultWindTierTable())
	for i := 0; i < w.N; i++ {
		assert.Less(t, w.WindTier[i], uint8(bandCount))
	}
}

func TestAttachPrecipitationIsDeterministic(t *testing.T) {
	extent := mesh.Extent{MinX: 0, MinY: 0, MaxX: 200, MaxY: 200}
	rng1 := worldrand.New(9543572450198918714)
	w1 := mesh.Build(rng1, extent, 80)
	AttachTemperature(w1, 27, -25, 2)
	AttachWindTier(w1, DefaultWindTierTable())
	AttachPrecipitation(w1, DefaultPrecipitationParams())

	rng2 := worldrand.New(9543572450198918714)
	w2 := mesh.Build(rng2, extent, 80)
	AttachTemperature(w2, 27, -25, 2)
	AttachWindTier(w2, DefaultWindTierTable())
	AttachPrecipitation(w2, DefaultPrecipitationParams())

	for i := 0; i < w1.N; i++ {
		assert.Equal(t, w1.Precipitation[i], w2.Precipitation[i])
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
