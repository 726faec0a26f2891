package hydrology

import (
	"container/heap"
	"math"

	"github.com/worldforge/atlas/pkg/worldmodel"
)

// Accumulate runs the full flow-accumulation pass: depression resolution,
// downhill flux routing with lake flood-fill at sinks, confluence
// bookkeeping, and river assignment. It populates w.Rivers, w.Lakes,
// w.RiverID, w.ConfluenceFlux, w.WaterFlow, and w.LakeDepth.
func Accumulate(w *worldmodel.World, p Params) {
	height := resolveDepressions(w, p.MaxIterations)
	order := descendingLandOrder(w, height)

	flux := make([]float64, w.N)
	for i := 0; i < w.N; i++ {
		if !w.IsOcean[i] {
			flux[i] = float64(w.Precipitation[i]) * p.CellCountModifier
		}
	}

	lakeOf := make([]int32, w.N)
	for i := range lakeOf {
		lakeOf[i] = worldmodel.NoID
	}
	riverOf := make([]int32, w.N)
	for i := range riverOf {
		riverOf[i] = worldmodel.NoID
	}

	var lakes []worldmodel.Lake
	var rivers []worldmodel.River
	riverFlux := map[int32]float64{}
	var nextRiverID int32

	for _, cur := range order {
		if lakeOf[cur] != worldmodel.NoID {
			continue // resolved as part of an earlier lake fill
		}

		lowest, ok := lowestNeighbor(w, height, lakeOf, lakes, cur)
		if !ok {
			formLake(w, height, lakeOf, &lakes, flux, cur, p)
			continue
		}

		routeFlux(w, flux, riverOf, lakeOf, &lakes, &rivers, riverFlux, &nextRiverID, cur, lowest, p)
	}

	classifyLakes(w, lakes, p)

	for _, l := range lakes {
		for _, m := range l.Cells {
			if depth := l.SurfaceElevation - float64(w.Elevation[m]); depth > 0 {
				w.LakeDepth[m] = depth
			}
		}
	}

	w.Rivers = rivers
	w.Lakes = lakes
	copy(w.RiverID, riverOf)
	copy(w.WaterFlow, flux)
}

// lowestNeighbor finds cur's lowest-elevation neighbor, treating lake
// members by their lake's surface elevation and ocean cells as
// bottomless sinks so flux always prefers draining into them. Ties break
// on ascending cell id.
func lowestNeighbor(w *worldmodel.World, height []float64, lakeOf []int32, lakes []worldmodel.Lake, cur int32) (int32, bool) {
	best := int32(-1)
	bestH := height[cur]
	for _, n := range w.Neighbors(int(cur)) {
		nh := effectiveHeight(w, height, lakeOf, lakes, n)
		if nh < bestH || (best != -1 && nh == bestH && n < best) {
			bestH = nh
			best = n
		}
	}
	return best, best != -1
}

func effectiveHeight(w *worldmodel.World, height []float64, lakeOf []int32, lakes []worldmodel.Lake, cell int32) float64 {
	if w.IsOcean[cell] {
		return math.Inf(-1)
	}
	if idx := lakeOf[cell]; idx != worldmodel.NoID {
		return lakes[idx].SurfaceElevation
	}
	return height[cell]
}

// formLake flood-fills outward from sinkID, raising the surface to the
// lowest unvisited shoreline candidate each step, until it finds a cell
// lower than the current surface (the outlet) or the ocean.
func formLake(w *worldmodel.World, height []float64, lakeOf []int32, lakes *[]worldmodel.Lake, flux []float64, sinkID int32, p Params) {
	surface := height[sinkID]
	members := []int32{sinkID}
	memberSet := map[int32]bool{sinkID: true}

	var h cellHeap
	pushShoreline(w, height, memberSet, &h, sinkID)

	outlet := int32(worldmodel.NoID)
	for h.Len() > 0 {
		item := heap.Pop(&h).(heapItem)
		if memberSet[item.id] {
			continue
		}
		if w.IsOcean[item.id] {
			outlet = item.id
			break
		}
		if item.height < surface {
			outlet = item.id
			break
		}
		surface = item.height
		memberSet[item.id] = true
		members = append(members, item.id)
		pushShoreline(w, height, memberSet, &h, item.id)
	}

	inflow := 0.0
	for _, m := range members {
		inflow += flux[m]
	}
	evap := evaporationEstimate(w, members, surface)

	lakeIdx := int32(len(*lakes))
	closed := outlet == worldmodel.NoID
	lake := worldmodel.Lake{
		ID:               lakeIdx,
		Cells:            members,
		SurfaceElevation: surface,
		Flux:             inflow,
		Evaporation:      evap,
		OutletCell:       outlet,
		Closed:           closed,
	}
	for _, m := range members {
		lakeOf[m] = lakeIdx
	}
	*lakes = append(*lakes, lake)

	if outlet != worldmodel.NoID && !w.IsOcean[outlet] {
		flux[outlet] += math.Max(inflow-evap, 0)
	}
}

// pushShoreline adds every non-member neighbor of cell to the flood-fill
// frontier.
func pushShoreline(w *worldmodel.World, height []float64, memberSet map[int32]bool, h *cellHeap, cell int32) {
	for _, n := range w.Neighbors(int(cell)) {
		if memberSet[n] {
			continue
		}
		heap.Push(h, heapItem{id: n, height: height[n]})
	}
}

// evaporationEstimate approximates lake evaporation as a function of
// surface temperature, lake area (cell count), and elevation.
func evaporationEstimate(w *worldmodel.World, members []int32, surface float64) float64 {
	if len(members) == 0 {
		return 0
	}
	avgTemp := 0.0
	for _, m := range members {
		avgTemp += float64(w.Temperature[m])
	}
	avgTemp /= float64(len(members))

	warmth := math.Max(avgTemp+20, 0) / 40
	heightFactor := math.Max(1-surface/100, 0.1)
	perCell := warmth * heightFactor * 0.5
	return perCell * float64(len(members))
}

// routeFlux pushes cur's flux onto lowest, updates lake inflow
// bookkeeping, and extends or merges river segments once the transferred
// flux clears MinFluxToFormRiver.
func routeFlux(w *worldmodel.World, flux []float64, riverOf, lakeOf []int32, lakes *[]worldmodel.Lake, rivers *[]worldmodel.River, riverFlux map[int32]float64, nextRiverID *int32, cur, lowest int32, p Params) {
	transferred := flux[cur]
	flux[lowest] += transferred

	if idx := lakeOf[lowest]; idx != worldmodel.NoID {
		(*lakes)[idx].Inlets = append((*lakes)[idx].Inlets, cur)
		(*lakes)[idx].Flux += transferred
	}

	if transferred < p.MinFluxToFormRiver {
		return
	}

	curRiver := riverOf[cur]
	if curRiver == worldmodel.NoID {
		curRiver = *nextRiverID
		*nextRiverID++
		riverOf[cur] = curRiver
		*rivers = append(*rivers, worldmodel.River{
			ID:      curRiver,
			Cells:   []int32{cur},
			ParentID: worldmodel.NoID,
			BasinID: curRiver,
		})
	}
	riverFlux[curRiver] = transferred

	targetRiver := riverOf[lowest]
	switch {
	case targetRiver == worldmodel.NoID:
		riverOf[lowest] = curRiver
		idx := riverIndex(*rivers, curRiver)
		(*rivers)[idx].Cells = append((*rivers)[idx].Cells, lowest)
	case targetRiver != curRiver:
		dominant, weak := curRiver, targetRiver
		if riverFlux[targetRiver] > riverFlux[curRiver] {
			dominant, weak = targetRiver, curRiver
		}
		weakIdx := riverIndex(*rivers, weak)
		(*rivers)[weakIdx].ParentID = dominant
		w.ConfluenceFlux[lowest] = riverFlux[curRiver] + riverFlux[targetRiver] - riverFlux[dominant]
		riverOf[lowest] = dominant
		domIdx := riverIndex(*rivers, dominant)
		(*rivers)[domIdx].Cells = append((*rivers)[domIdx].Cells, lowest)
	}
}

func riverIndex(rivers []worldmodel.River, id int32) int {
	for i := range rivers {
		if rivers[i].ID == id {
			return i
		}
	}
	return -1
}
