package culture

import (
	"container/heap"

	"github.com/worldforge/atlas/pkg/config"
	"github.com/worldforge/atlas/pkg/worldmodel"
)

// frontierItem is a pending expansion step: culture cultureIdx has
// reached cell at accumulated cost.
type frontierItem struct {
	cost       float64
	cell       int32
	cultureIdx int
}

type frontier []frontierItem

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].cell < f[j].cell
}
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)        { *f = append(*f, x.(frontierItem)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// Expand runs the cost-field Dijkstra that assigns CultureID to every
// reachable cell. Cultures already marked
// Locked keep their existing cells untouched and are not used as new
// expansion seeds.
func Expand(w *worldmodel.World, cat *config.BiomeCatalog, cultures []worldmodel.Culture, p Params) {
	maxCost := float64(w.N) * 0.6 * p.NeutralRate

	bestCost := make([]float64, w.N)
	for i := range bestCost {
		bestCost[i] = -1
	}

	var pq frontier
	heap.Init(&pq)
	for idx, c := range cultures {
		if c.Locked {
			continue
		}
		bestCost[c.CenterCell] = 0
		w.CultureID[c.CenterCell] = int32(idx)
		heap.Push(&pq, frontierItem{cost: 0, cell: c.CenterCell, cultureIdx: idx})
	}

	locked := make([]bool, w.N)
	for i := 0; i < w.N; i++ {
		if id := w.CultureID[i]; id >= 0 && int(id) < len(cultures) && cultures[id].Locked {
			locked[i] = true
		}
	}
	for _, c := range cultures {
		if c.Locked {
			locked[c.CenterCell] = true
		}
	}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(frontierItem)
		if bestCost[item.cell] >= 0 && item.cost > bestCost[item.cell] {
			continue
		}
		culture := cultures[item.cultureIdx]

		for _, n := range w.Neighbors(int(item.cell)) {
			if locked[n] {
				continue
			}
			total := item.cost + cellCost(cat, w, culture, item.cell, n)
			if total > maxCost {
				continue
			}
			if bestCost[n] >= 0 && total >= bestCost[n] {
				continue
			}
			bestCost[n] = total
			if w.Population[n] > 0 {
				w.CultureID[n] = int32(item.cultureIdx)
			}
			heap.Push(&pq, frontierItem{cost: total, cell: n, cultureIdx: item.cultureIdx})
		}
	}
}
