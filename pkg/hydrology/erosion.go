package hydrology

import "github.com/worldforge/atlas/pkg/worldmodel"

// Erode downcuts land cells at or above elevation 35 that have at least
// one higher neighbor carrying flux, by min(flux/upstreamMeanFlux,
// MaxDowncut). Flux is read from ConfluenceFlux where present, falling
// back to accumulated WaterFlow for cells outside any recorded river.
func Erode(w *worldmodel.World, p Params) {
	flux := make([]float64, w.N)
	for i := 0; i < w.N; i++ {
		flux[i] = fluxAt(w, int32(i))
	}

	for i := 0; i < w.N; i++ {
		if w.IsOcean[i] || w.Elevation[i] < 35 {
			continue
		}
		upstreamTotal, upstreamCount := 0.0, 0
		higherHasFlux := false
		for _, n := range w.Neighbors(i) {
			if w.Elevation[n] > w.Elevation[i] && flux[n] > 0 {
				higherHasFlux = true
				upstreamTotal += flux[n]
				upstreamCount++
			}
		}
		if !higherHasFlux || upstreamCount == 0 {
			continue
		}
		upstreamMean := upstreamTotal / float64(upstreamCount)
		if upstreamMean == 0 {
			continue
		}
		cut := flux[i] / upstreamMean
		if cut > p.MaxDowncut {
			cut = p.MaxDowncut
		}
		w.Elevation[i] = int32(worldmodel.ClampInt(int(float64(w.Elevation[i])-cut), 0, 100))
	}
}

func fluxAt(w *worldmodel.World, cell int32) float64 {
	if w.ConfluenceFlux[cell] > 0 {
		return w.ConfluenceFlux[cell]
	}
	return w.WaterFlow[cell]
}
