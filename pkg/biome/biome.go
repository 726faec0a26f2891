// Package biome classifies every cell into a biome key
// by moisture, temperature, and the configured biome catalog matrix.
package biome

import (
	"github.com/worldforge/atlas/pkg/config"
	"github.com/worldforge/atlas/pkg/worldmodel"
)

const (
	moistureBands    = 5
	temperatureBands = 26
)

// Classify attaches BiomeID to every cell using the ocean/permafrost/
// wetland special cases and, otherwise, the catalog's moisture x
// temperature matrix.
func Classify(w *worldmodel.World, cat *config.BiomeCatalog) {
	marineIdx := cat.IndexOf("Marine")
	permafrostIdx := cat.IndexOf("Permafrost")
	wetlandIdx := cat.IndexOf("Wetland")

	for i := 0; i < w.N; i++ {
		switch {
		case w.IsOcean[i]:
			w.BiomeID[i] = int32(marineIdx)
		case w.Temperature[i] < -5:
			w.BiomeID[i] = int32(permafrostIdx)
		default:
			moisture := moistureAt(w, i)
			elevation := w.Elevation[i]
			temp := w.Temperature[i]
			if isWetland(moisture, temp, elevation) {
				w.BiomeID[i] = int32(wetlandIdx)
				continue
			}
			mBand := worldmodel.ClampInt(int(moisture/20), 0, moistureBands-1)
			tBand := worldmodel.ClampInt(int(temp), 0, temperatureBands-1)
			key := cat.Matrix[mBand][tBand]
			w.BiomeID[i] = int32(cat.IndexOf(key))
		}
	}
}

// moistureAt computes base precipitation plus a river bonus, smoothed
// against the mean precipitation of land neighbors.
func moistureAt(w *worldmodel.World, i int) float64 {
	moisture := float64(w.Precipitation[i])
	if w.RiverID[i] != worldmodel.NoID {
		flux := w.ConfluenceFlux[i]
		if flux <= 0 {
			flux = w.WaterFlow[i]
		}
		bonus := flux / 20
		if bonus < 2 {
			bonus = 2
		}
		moisture += bonus
	}

	neighborTotal, neighborCount := 0.0, 0
	for _, n := range w.Neighbors(i) {
		if !w.IsOcean[n] {
			neighborTotal += float64(w.Precipitation[n])
			neighborCount++
		}
	}
	if neighborCount > 0 {
		moisture = (moisture + neighborTotal/float64(neighborCount)) / 2
	}
	return moisture + 1 // smoothing constant
}

// isWetland implements the two wetland thresholds.
func isWetland(moisture float64, temp, elevation int32) bool {
	if moisture > 40 && temp > -2 && elevation < 25 {
		return true
	}
	if moisture > 24 && elevation > 24 && elevation < 60 {
		return true
	}
	return false
}
