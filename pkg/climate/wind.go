package climate

import (
	"math"

	"github.com/worldforge/atlas/pkg/worldmodel"
)

// bandCount is the number of 30-degree latitude bands spanning pole to
// pole.
const bandCount = 6

// WindTierTable holds the configured prevailing-wind angle (degrees,
// standard math convention: 0=east, 90=north) for each 30-degree band,
// indexed 0 (south pole) through 5 (north pole).
type WindTierTable struct {
	Angles [bandCount]float64
}

// DefaultWindTierTable encodes a idealized three-cell circulation:
// polar easterlies, mid-latitude westerlies, and trade winds, mirrored
// across the equator.
func DefaultWindTierTable() WindTierTable {
	return WindTierTable{Angles: [bandCount]float64{
		135, // 60-90 S: polar easterlies (blowing toward the northwest)
		315, // 30-60 S: westerlies (blowing toward the southeast)
		135, // 0-30 S: southeast trades (blowing toward the northwest)
		225, // 0-30 N: northeast trades (blowing toward the southwest)
		45,  // 30-60 N: westerlies (blowing toward the northeast)
		225, // 60-90 N: polar easterlies (blowing toward the southwest)
	}}
}

// BandIndex maps a latitude in [-90, 90] to its 30-degree band index.
func BandIndex(lat float64) int {
	idx := int((lat + 90) / 30)
	return worldmodel.ClampInt(idx, 0, bandCount-1)
}

// AttachWindTier sets WindTier per cell from its latitude band.
func AttachWindTier(w *worldmodel.World, table WindTierTable) {
	for i := 0; i < w.N; i++ {
		w.WindTier[i] = uint8(BandIndex(w.Latitude[i]))
	}
}

// Directions reports the four boolean wind directions a cell in tier
// contributes to, derived from the tier's prevailing-wind angle.
func Directions(table WindTierTable, tier int) (west, east, north, south bool) {
	angle := table.Angles[tier] * math.Pi / 180
	vx, vy := math.Cos(angle), math.Sin(angle)
	const eps = 1e-6
	return vx < -eps, vx > eps, vy > eps, vy < -eps
}
