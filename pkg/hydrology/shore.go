package hydrology

import "github.com/worldforge/atlas/pkg/worldmodel"

// ComputeShoreMetrics fills ShoreDistance, ClosestWater, and WaterCount
// for every cell. "Water" here means ocean or any lake
// cell, so it must run after Accumulate has populated w.Lakes.
func ComputeShoreMetrics(w *worldmodel.World) {
	isWater := make([]bool, w.N)
	for i := 0; i < w.N; i++ {
		isWater[i] = w.IsOcean[i]
	}
	for _, l := range w.Lakes {
		for _, c := range l.Cells {
			isWater[c] = true
		}
	}

	for i := 0; i < w.N; i++ {
		count := 0
		for _, n := range w.Neighbors(i) {
			if isWater[n] != isWater[i] {
				count++
			}
		}
		w.WaterCount[i] = uint8(count)
	}

	dist, nearest := multiSourceBFS(w, isWater)
	for i := 0; i < w.N; i++ {
		w.ClosestWater[i] = nearest[i]
		// multiSourceBFS's dist is 0 at the cells directly touching the
		// opposite class; +1 shifts that ring to magnitude 1 (coastal),
		// matching the cell/water sign convention below. Anything past
		// the +-2 band is interior.
		magnitude := dist[i] + 1
		switch {
		case magnitude > 2:
			w.ShoreDistance[i] = 0
		case isWater[i]:
			w.ShoreDistance[i] = int8(-magnitude)
		default:
			w.ShoreDistance[i] = int8(magnitude)
		}
	}
}

// multiSourceBFS computes, for every cell, the graph distance to the
// nearest cell of the opposite land/water class and that cell's id.
func multiSourceBFS(w *worldmodel.World, isWater []bool) (dist []int, nearest []int32) {
	dist = make([]int, w.N)
	nearest = make([]int32, w.N)
	for i := range dist {
		dist[i] = -1
		nearest[i] = worldmodel.NoID
	}

	var queue []int32
	for i := 0; i < w.N; i++ {
		for _, n := range w.Neighbors(i) {
			if isWater[n] != isWater[i] {
				if dist[i] == -1 {
					dist[i] = 0
					nearest[i] = int32(n)
					queue = append(queue, int32(i))
				}
				break
			}
		}
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, n := range w.Neighbors(int(cur)) {
			if isWater[n] != isWater[cur] {
				continue // opposite class, already distance 0 from its own side
			}
			if dist[n] == -1 {
				dist[n] = dist[cur] + 1
				nearest[n] = nearest[cur]
				queue = append(queue, n)
			}
		}
	}

	for i := range dist {
		if dist[i] == -1 {
			dist[i] = 1 << 30
		}
	}
	return dist, nearest
}
