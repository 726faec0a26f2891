package culture

import (
	"math"
	"sort"

	"github.com/worldforge/atlas/pkg/config"
	"github.com/worldforge/atlas/pkg/worldmodel"
)

// PlaceCenters sorts populated cells by each culture's preference
// expression, picks a biased-random index, enforces minimum spacing
// between centers (shrinking it 0.9x per retry up to 100 attempts),
// classifies the culture's type from its center cell, and derives
// expansionism.
func PlaceCenters(rng biasedRNG, w *worldmodel.World, cat *config.BiomeCatalog, entries []config.CultureSetEntry, p Params) []worldmodel.Culture {
	populated := make([]int32, 0, w.N)
	for i := 0; i < w.N; i++ {
		if w.Population[i] > 0 {
			populated = append(populated, int32(i))
		}
	}
	if len(populated) == 0 {
		return nil
	}

	spacing := (p.Extent.Width() + p.Extent.Height()) / (2 * float64(len(entries)))
	if spacing <= 0 {
		spacing = 1
	}

	ctx := worldmodel.NewEvalContext(w)
	var centers []int32
	var cultures []worldmodel.Culture

	for _, entry := range entries {
		ranked := rankByPreference(ctx, populated, entry.Preference)

		trySpacing := spacing
		chosen := int32(worldmodel.NoID)
		for attempt := 0; attempt < 100; attempt++ {
			half := len(ranked) / 2
			if half < 1 {
				half = 1
			}
			pick := rng.Biased(0, half, 5)
			if pick >= len(ranked) {
				pick = len(ranked) - 1
			}
			candidate := ranked[pick]

			if contains(centers, candidate) {
				continue
			}
			if tooClose(w, centers, candidate, trySpacing) {
				trySpacing *= 0.9
				continue
			}
			chosen = candidate
			break
		}
		if chosen == worldmodel.NoID {
			continue
		}

		centers = append(centers, chosen)
		ctype := classifyType(w, cat, chosen)
		expansionism := ((rng.Next()*p.PowerInput)/2 + 1) * baseExpansionism[ctype]

		cultures = append(cultures, worldmodel.Culture{
			Name:         entry.Name,
			CenterCell:   chosen,
			Type:         ctype,
			Expansionism: expansionism,
			NameBaseID:   entry.Base,
			Preference:   entry.Preference,
		})
	}
	return cultures
}

func rankByPreference(ctx *worldmodel.EvalContext, populated []int32, pref worldmodel.Expr) []int32 {
	ranked := append([]int32(nil), populated...)
	sort.Slice(ranked, func(i, j int) bool {
		return pref.Eval(ctx, ranked[i]) > pref.Eval(ctx, ranked[j])
	})
	return ranked
}

func contains(ids []int32, id int32) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func tooClose(w *worldmodel.World, centers []int32, candidate int32, spacing float64) bool {
	for _, c := range centers {
		dx := w.Sites[candidate][0] - w.Sites[c][0]
		dy := w.Sites[candidate][1] - w.Sites[c][1]
		if math.Hypot(dx, dy) < spacing {
			return true
		}
	}
	return false
}

// classifyType derives a culture's type from its center cell.
func classifyType(w *worldmodel.World, cat *config.BiomeCatalog, center int32) worldmodel.CultureType {
	biome, ok := biomeByIndex(cat, w.BiomeID[center])

	if ok && w.Elevation[center] < 25 && biome.IsNomadic {
		return worldmodel.CultureNomadic
	}
	if w.Elevation[center] > 50 {
		return worldmodel.CultureHighland
	}
	if adjacentLakeSize(w, center) > 5 {
		return worldmodel.CultureLake
	}
	if w.ShoreDistance[center] == 1 && w.WaterCount[center] >= 1 {
		return worldmodel.CultureNaval
	}
	if w.RiverID[center] != worldmodel.NoID && w.ConfluenceFlux[center] > 0 {
		return worldmodel.CultureRiver
	}
	if w.ShoreDistance[center] > 2 && ok && biome.IsHuntable {
		return worldmodel.CultureHunting
	}
	return worldmodel.CultureGeneric
}

func adjacentLakeSize(w *worldmodel.World, cell int32) int {
	for _, n := range w.Neighbors(int(cell)) {
		for _, l := range w.Lakes {
			if contains(l.Cells, n) {
				return len(l.Cells)
			}
		}
	}
	return 0
}
