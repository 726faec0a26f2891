// Package hydrology implements flow accumulation, depression resolution,
// lake formation, confluence handling, river rendering and optional
// erosion. It operates on a *worldmodel.World already
// carrying elevation, is_ocean, and precipitation.
package hydrology

import (
	"math"
	"sort"

	"github.com/worldforge/atlas/pkg/worldmodel"
)

// resolveDepressions returns a working elevation copy with enclosed
// land-locked basins raised by +0.1 above their lowest neighbor,
// iterated up to maxIterations times. The original
// worldmodel.World elevation is never mutated: this working height is
// used only to route flow. If raising depressions increases the number
// of remaining sinks instead of decreasing it, the working copy reverts
// to the unmodified elevations and resolution stops early (lakes absorb
// whatever depressions remain).
func resolveDepressions(w *worldmodel.World, maxIterations int) []float64 {
	height := make([]float64, w.N)
	for i := range height {
		height[i] = float64(w.Elevation[i])
	}
	original := append([]float64(nil), height...)
	prevSinks := countSinks(w, height)

	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i := 0; i < w.N; i++ {
			if w.IsOcean[i] {
				continue
			}
			lowest := math.Inf(1)
			for _, n := range w.Neighbors(i) {
				if height[n] < lowest {
					lowest = height[n]
				}
			}
			if math.IsInf(lowest, 1) {
				continue
			}
			if height[i] <= lowest {
				height[i] = lowest + 0.1
				changed = true
			}
		}
		if !changed {
			break
		}
		sinks := countSinks(w, height)
		if sinks > prevSinks {
			copy(height, original)
			break
		}
		prevSinks = sinks
	}
	return height
}

// countSinks counts land cells with no neighbor strictly lower than
// themselves.
func countSinks(w *worldmodel.World, height []float64) int {
	count := 0
	for i := 0; i < w.N; i++ {
		if w.IsOcean[i] {
			continue
		}
		isSink := true
		for _, n := range w.Neighbors(i) {
			if height[n] < height[i] {
				isSink = false
				break
			}
		}
		if isSink {
			count++
		}
	}
	return count
}

// descendingLandOrder returns land cell ids sorted by descending working
// height, ties broken by ascending cell id for determinism.
func descendingLandOrder(w *worldmodel.World, height []float64) []int32 {
	ids := make([]int32, 0, w.N)
	for i := 0; i < w.N; i++ {
		if !w.IsOcean[i] {
			ids = append(ids, int32(i))
		}
	}
	sort.Slice(ids, func(a, b int) bool {
		ha, hb := height[ids[a]], height[ids[b]]
		if ha != hb {
			return ha > hb
		}
		return ids[a] < ids[b]
	})
	return ids
}
