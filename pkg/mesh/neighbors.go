package mesh

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/quadtree"
)

// siteRef is the orb.Pointer wrapper the spatial index stores: just
// enough to map a quadtree hit back to a cell id.
type siteRef struct {
	id   int
	site orb.Point
}

func (s siteRef) Point() orb.Point { return s.site }

// NeighborGraph computes the symmetric adjacency between cell polygons:
// cell i and j are neighbors iff their rings share a boundary edge
// segment of positive length (not merely a point). Candidates are
// narrowed with an orb/quadtree spatial index over cell sites, expanding
// each cell's bounding box by twice its diagonal (plus eps) before
// querying, which covers every site whose cell can share an edge with it,
// and rejecting disjoint pairs after a candidate match.
func NeighborGraph(sites []orb.Point, polygons []orb.Ring, eps float64) [][]int32 {
	n := len(polygons)
	adjacency := make([][]int32, n)

	bound := orb.Bound{Min: orb.Point{math.Inf(1), math.Inf(1)}, Max: orb.Point{math.Inf(-1), math.Inf(-1)}}
	for _, s := range sites {
		bound = bound.Extend(s)
	}
	if bound.IsEmpty() {
		return adjacency
	}
	// Pad the index bound so edge-of-extent sites are still indexable.
	pad := math.Max(bound.Max[0]-bound.Min[0], bound.Max[1]-bound.Min[1])
	if pad <= 0 {
		pad = 1
	}
	bound = orb.Bound{
		Min: orb.Point{bound.Min[0] - pad, bound.Min[1] - pad},
		Max: orb.Point{bound.Max[0] + pad, bound.Max[1] + pad},
	}

	tree := quadtree.New(bound)
	for i, s := range sites {
		if len(polygons[i]) == 0 {
			continue
		}
		_ = tree.Add(siteRef{id: i, site: s})
	}

	marked := make(map[[2]int32]bool)
	for i := 0; i < n; i++ {
		if len(polygons[i]) == 0 {
			continue
		}
		rb := ringBound(polygons[i])
		reach := 2*math.Hypot(rb.Max[0]-rb.Min[0], rb.Max[1]-rb.Min[1]) + eps
		b := orb.Bound{
			Min: orb.Point{rb.Min[0] - reach, rb.Min[1] - reach},
			Max: orb.Point{rb.Max[0] + reach, rb.Max[1] + reach},
		}
		var buf []orb.Pointer
		hits := tree.InBound(buf, b)
		for _, h := range hits {
			j := h.(siteRef).id
			if j <= i || len(polygons[j]) == 0 {
				continue
			}
			key := [2]int32{int32(i), int32(j)}
			if marked[key] {
				continue
			}
			if sharesEdge(polygons[i], polygons[j], eps) {
				marked[key] = true
				adjacency[i] = append(adjacency[i], int32(j))
				adjacency[j] = append(adjacency[j], int32(i))
			}
		}
	}
	return adjacency
}

func ringBound(ring orb.Ring) orb.Bound {
	b := orb.Bound{Min: orb.Point{math.Inf(1), math.Inf(1)}, Max: orb.Point{math.Inf(-1), math.Inf(-1)}}
	for _, p := range ring {
		b = b.Extend(p)
	}
	return b
}

// sharesEdge reports whether any edge of ring a overlaps any edge of
// ring b on a collinear sub-segment of length > eps (a shared point,
// such as two cells meeting at a single vertex, does not count).
func sharesEdge(a, b orb.Ring, eps float64) bool {
	for i := 0; i+1 < len(a); i++ {
		a1, a2 := a[i], a[i+1]
		for j := 0; j+1 < len(b); j++ {
			b1, b2 := b[j], b[j+1]
			if overlapLength(a1, a2, b1, b2) > eps {
				return true
			}
		}
	}
	return false
}

// overlapLength returns the length of the collinear overlap between
// segments (a1,a2) and (b1,b2), or 0 if they are not collinear/overlapping.
func overlapLength(a1, a2, b1, b2 orb.Point) float64 {
	ux, uy := a2[0]-a1[0], a2[1]-a1[1]
	segLen := math.Hypot(ux, uy)
	if segLen == 0 {
		return 0
	}
	// Both b endpoints must lie on the line through a1-a2.
	if math.Abs(cross(ux, uy, b1[0]-a1[0], b1[1]-a1[1])) > 1e-6*segLen {
		return 0
	}
	if math.Abs(cross(ux, uy, b2[0]-a1[0], b2[1]-a1[1])) > 1e-6*segLen {
		return 0
	}
	// Project onto the line to get scalar ranges, then intersect them.
	ta1, ta2 := 0.0, segLen
	tb1 := (ux*(b1[0]-a1[0]) + uy*(b1[1]-a1[1])) / segLen
	tb2 := (ux*(b2[0]-a1[0]) + uy*(b2[1]-a1[1])) / segLen
	if tb1 > tb2 {
		tb1, tb2 = tb2, tb1
	}
	lo := math.Max(ta1, tb1)
	hi := math.Min(ta2, tb2)
	if hi <= lo {
		return 0
	}
	return hi - lo
}

func cross(ux, uy, vx, vy float64) float64 { return ux*vy - uy*vx }
