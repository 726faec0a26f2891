package culture

import (
	"github.com/worldforge/atlas/pkg/config"
	"github.com/worldforge/atlas/pkg/worldmodel"
)

// biomeCost scores moving into targetBiome from a culture's native biome.
func biomeCost(ctype worldmodel.CultureType, native, target worldmodel.Biome, nativeIdx, targetIdx int32) float64 {
	if nativeIdx == targetIdx {
		return 10
	}
	switch {
	case ctype == worldmodel.CultureHunting && !target.IsHuntable:
		return float64(target.MovementCost) * 5
	case ctype == worldmodel.CultureNomadic && forestBiomeNames[keyOrEmpty(target)]:
		return float64(target.MovementCost) * 10
	default:
		return float64(target.MovementCost) * 2
	}
}

func keyOrEmpty(b worldmodel.Biome) string { return b.KeyName }

// biomeChangeCost is a flat penalty for crossing a biome boundary,
// distinct from biomeCost's native-biome comparison.
func biomeChangeCost(currentIdx, targetIdx int32) float64 {
	if currentIdx == targetIdx {
		return 0
	}
	return 5
}

// heightCost scores the target cell's elevation/water class against the
// culture's type.
func heightCost(ctype worldmodel.CultureType, w *worldmodel.World, target int32) float64 {
	isOcean := w.IsOcean[target]
	area := w.Area[target]
	elevation := w.Elevation[target]

	switch {
	case ctype == worldmodel.CultureLake && adjacentLakeSize(w, target) > 0:
		return 10
	case ctype == worldmodel.CultureNaval && isOcean:
		return area * 2
	case ctype == worldmodel.CultureNomadic && isOcean:
		return area * 50
	case isOcean:
		return area * 6
	case ctype == worldmodel.CultureHighland:
		switch {
		case elevation < 30:
			return 3000
		case elevation < 60:
			return 200
		default:
			return 0
		}
	default:
		switch {
		case elevation >= 60:
			return 200
		case elevation >= 40:
			return 30
		default:
			return 0
		}
	}
}

// riverCost scores crossing into a riverine target cell.
func riverCost(ctype worldmodel.CultureType, w *worldmodel.World, target int32) float64 {
	hasRiver := w.RiverID[target] != worldmodel.NoID
	if ctype == worldmodel.CultureRiver {
		if !hasRiver {
			return 100
		}
		return 0
	}
	if hasRiver {
		return worldmodel.Clamp(fluxOf(w, target)/10, 20, 100)
	}
	return 0
}

func fluxOf(w *worldmodel.World, cell int32) float64 {
	if w.ConfluenceFlux[cell] > 0 {
		return w.ConfluenceFlux[cell]
	}
	return w.WaterFlow[cell]
}

// typeCost applies the small fixed coastline/second-rank-land matrix.
func typeCost(ctype worldmodel.CultureType, shoreDistance int8) float64 {
	switch shoreDistance {
	case 1:
		switch ctype {
		case worldmodel.CultureNaval:
			return 0
		case worldmodel.CultureLake:
			return 10
		case worldmodel.CultureNomadic:
			return 50
		default:
			return 20
		}
	case 2:
		if ctype == worldmodel.CultureNaval {
			return 30
		}
		return 5
	default:
		return 0
	}
}

// cellCost combines every sub-cost into the total cost of moving into
// target from current on behalf of culture.
func cellCost(cat *config.BiomeCatalog, w *worldmodel.World, culture worldmodel.Culture, current, target int32) float64 {
	nativeIdx := w.BiomeID[culture.CenterCell]
	targetIdx := w.BiomeID[target]
	native, _ := biomeByIndex(cat, nativeIdx)
	targetBiome, _ := biomeByIndex(cat, targetIdx)
	currentIdx := w.BiomeID[current]

	total := biomeCost(culture.Type, native, targetBiome, nativeIdx, targetIdx)
	total += biomeChangeCost(currentIdx, targetIdx)
	total += heightCost(culture.Type, w, target)
	total += riverCost(culture.Type, w, target)
	total += typeCost(culture.Type, w.ShoreDistance[target])
	return total / culture.Expansionism
}
