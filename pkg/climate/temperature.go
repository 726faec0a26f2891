// Package climate attaches temperature, prevailing wind tier, and
// precipitation to every cell.
package climate

import (
	"math"

	"github.com/worldforge/atlas/pkg/worldmodel"
)

// AttachTemperature computes per-cell temperature from latitude and, for
// land cells, an adiabatic lapse correction for elevation.
func AttachTemperature(w *worldmodel.World, equator, pole, adiabaticExponent float64) {
	for i := 0; i < w.N; i++ {
		t := ease(math.Abs(w.Latitude[i]) / 90)
		temp := equator - t*(equator-pole)
		if !w.IsOcean[i] {
			temp -= adiabatic(float64(w.Elevation[i]), adiabaticExponent)
		}
		temp = worldmodel.Clamp(worldmodel.RoundTo(temp, 0), -128, 127)
		w.Temperature[i] = int32(temp)
	}
}

// ease is a quintic smoothstep: flat near 0, steep through the middle,
// flat again near 1.
func ease(t float64) float64 {
	t = worldmodel.Clamp(t, 0, 1)
	return 6*t*t*t*t*t - 15*t*t*t*t + 10*t*t*t
}

// adiabatic returns the lapse-rate temperature loss for land elevation h,
// with configurable exponent k. The base (h-18) may be negative (cells
// below the nominal sea-level datum), so the exponent is applied to its
// magnitude and the sign is restored rather than evaluating a fractional
// power of a negative number.
func adiabatic(h, k float64) float64 {
	base := h - 18
	signed := math.Copysign(math.Pow(math.Abs(base), k), base)
	return worldmodel.RoundTo(signed/1000*6.5, 0)
}
