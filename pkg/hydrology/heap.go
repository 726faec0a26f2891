package hydrology

import "container/heap"

// heapItem is a candidate shoreline cell considered while flood-filling a
// lake; priority order is ascending height, so the lowest unvisited
// neighbor is always popped next as the lake surface is raised until it
// overtops the lowest shoreline cell.
type heapItem struct {
	id     int32
	height float64
}

type cellHeap []heapItem

func (h cellHeap) Len() int { return len(h) }
func (h cellHeap) Less(i, j int) bool {
	if h[i].height != h[j].height {
		return h[i].height < h[j].height
	}
	return h[i].id < h[j].id // deterministic tie-break on cell id
}
func (h cellHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *cellHeap) Push(x any) { *h = append(*h, x.(heapItem)) }
func (h *cellHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

var _ = heap.Interface(&cellHeap{})
