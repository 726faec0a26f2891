// Package habitability scores land cells and derives population.
package habitability

import (
	"context"
	"runtime"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"github.com/worldforge/atlas/pkg/config"
	"github.com/worldforge/atlas/pkg/worldmodel"
)

// EstuaryThreshold and similar tunables come from the runtime config;
// Params bundles what this stage needs.
type Params struct {
	EstuaryThreshold float64
}

// lakeGroupBonus mirrors its lake-group switch.
var lakeGroupBonus = map[worldmodel.LakeGroup]float64{
	worldmodel.LakeFreshwater: 30,
	worldmodel.LakeSalt:       10,
	worldmodel.LakeFrozen:     1,
	worldmodel.LakeDry:        -5,
	worldmodel.LakeSinkhole:   -5,
}

// Score computes Habitability and Population for every land cell; ocean
// cells are left at their zero value. Cells are scored on a fixed-size
// worker pool: each cell only reads the pre-aggregated flux/area stats
// and writes its own index, so splitting the range changes nothing about
// the result.
func Score(w *worldmodel.World, cat *config.BiomeCatalog, p Params) {
	meanFlux, maxFlux := fluxStats(w)
	meanArea := meanArea(w)

	workers := runtime.GOMAXPROCS(0)
	if workers > w.N {
		workers = w.N
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (w.N + workers - 1) / workers

	g, _ := errgroup.WithContext(context.Background())
	for lo := 0; lo < w.N; lo += chunk {
		hi := lo + chunk
		if hi > w.N {
			hi = w.N
		}
		lo, hi := lo, hi
		g.Go(func() error {
			scoreRange(w, cat, p, meanFlux, maxFlux, meanArea, lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}

func scoreRange(w *worldmodel.World, cat *config.BiomeCatalog, p Params, meanFlux, maxFlux, meanArea float64, lo, hi int) {
	for i := lo; i < hi; i++ {
		if w.IsOcean[i] {
			continue
		}
		biomeIdx := int(w.BiomeID[i])
		if biomeIdx < 0 || biomeIdx >= len(cat.Biomes) {
			continue
		}
		biome := cat.Biomes[biomeIdx]

		s := float64(biome.Habitability)
		if s == 0 {
			w.Population[i] = 0
			continue
		}

		if meanFlux > 0 && maxFlux > meanFlux {
			flow := fluxOf(w, int32(i))
			s += worldmodel.Clamp((flow-meanFlux)/(maxFlux-meanFlux), 0, 1) * 250
		}
		s -= (float64(w.Elevation[i]) - 50) / 5

		if w.ShoreDistance[i] == 1 {
			s += shoreBonus(w, i, p)
		}

		habitability := s / 5
		w.Habitability[i] = int32(worldmodel.RoundTo(habitability, 0))
		if habitability > 0 {
			w.Population[i] = habitability * w.Area[i] / meanArea
		} else {
			w.Population[i] = 0
		}
	}
}

func shoreBonus(w *worldmodel.World, i int, p Params) float64 {
	bonus := 0.0
	flux := fluxOf(w, int32(i))
	if flux > p.EstuaryThreshold {
		bonus += 15
	}

	closest := w.ClosestWater[i]
	if closest == worldmodel.NoID {
		return bonus
	}

	if lake := w.LakeByID(lakeIDAt(w, closest)); lake != nil {
		bonus += lakeGroupBonus[lake.Group]
		return bonus
	}

	// Not a recorded lake: treat as open ocean shore.
	bonus += 5
	if w.WaterCount[i] == 1 {
		bonus += 20 // bay/harbor
	}
	return bonus
}

// lakeIDAt returns the lake id that contains cell, or NoID.
func lakeIDAt(w *worldmodel.World, cell int32) int32 {
	for _, l := range w.Lakes {
		for _, c := range l.Cells {
			if c == cell {
				return l.ID
			}
		}
	}
	return worldmodel.NoID
}

func fluxOf(w *worldmodel.World, cell int32) float64 {
	if w.ConfluenceFlux[cell] > 0 {
		return w.ConfluenceFlux[cell]
	}
	return w.WaterFlow[cell]
}

func fluxStats(w *worldmodel.World) (mean, max float64) {
	var samples stats.Float64Data
	for i := 0; i < w.N; i++ {
		if w.IsOcean[i] {
			continue
		}
		samples = append(samples, fluxOf(w, int32(i)))
	}
	if len(samples) == 0 {
		return 0, 0
	}
	mean, _ = samples.Mean()
	max, _ = samples.Max()
	return mean, max
}

func meanArea(w *worldmodel.World) float64 {
	if w.N == 0 {
		return 1
	}
	mean, _ := stats.Float64Data(w.Area).Mean()
	if mean == 0 {
		return 1
	}
	return mean
}
