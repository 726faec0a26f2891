package hydrology

import "github.com/worldforge/atlas/pkg/worldmodel"

// classifyLakes assigns each lake's Group from its surface chemistry,
// evaluated top-to-bottom with the first matching condition winning.
func classifyLakes(w *worldmodel.World, lakes []worldmodel.Lake, p Params) {
	for i := range lakes {
		l := &lakes[i]
		avgTemp := averageTemp(w, l.Cells)
		hasInlet := len(l.Inlets) > 0
		hasOutlet := l.OutletCell != worldmodel.NoID

		switch {
		case avgTemp < -3:
			l.Group = worldmodel.LakeFrozen
		case l.SurfaceElevation > 60 && len(l.Cells) < 10 && l.ID%10 == 0:
			l.Group = worldmodel.LakeLava
		case !hasInlet && !hasOutlet && l.Evaporation > 4*l.Flux:
			l.Group = worldmodel.LakeDry
		case !hasInlet && !hasOutlet && len(l.Cells) < 3 && l.ID%10 == 0:
			l.Group = worldmodel.LakeSinkhole
		case !hasOutlet && l.Evaporation > l.Flux:
			l.Group = worldmodel.LakeSalt
		default:
			l.Group = worldmodel.LakeFreshwater
		}
	}
}

func averageTemp(w *worldmodel.World, cells []int32) float64 {
	if len(cells) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range cells {
		total += float64(w.Temperature[c])
	}
	return total / float64(len(cells))
}
