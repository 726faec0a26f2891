package mesh

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// circumcenter returns the circumcenter of triangle (a,b,c).
func circumcenter(a, b, c orb.Point) orb.Point {
	ax, ay := a[0], a[1]
	bx, by := b[0], b[1]
	cx, cy := c[0], c[1]

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if d == 0 {
		// Degenerate/collinear triangle: fall back to centroid so callers
		// get a finite point instead of NaN; the degenerate-geometry
		// recovery path drops the resulting cell later.
		return orb.Point{(ax + bx + cx) / 3, (ay + by + cy) / 3}
	}

	ax2ay2 := ax*ax + ay*ay
	bx2by2 := bx*bx + by*by
	cx2cy2 := cx*cx + cy*cy

	ux := (ax2ay2*(by-cy) + bx2by2*(cy-ay) + cx2cy2*(ay-by)) / d
	uy := (ax2ay2*(cx-bx) + bx2by2*(ax-cx) + cx2cy2*(bx-ax)) / d
	return orb.Point{ux, uy}
}

// CellPolygons builds one Voronoi polygon per original site (indices
// 0..numSites-1 in points/triangles) by connecting the circumcenters of
// triangles incident to that site, ordered by angle around it. Sites
// on the convex hull rely on the caller's anchor
// points already being part of the triangulation to close off their fan.
func CellPolygons(points []orb.Point, triangles []Triangle, numSites int) []orb.Ring {
	incident := make([][]int, numSites)
	for ti, t := range triangles {
		for _, v := range [3]int{t.A, t.B, t.C} {
			if v < numSites {
				incident[v] = append(incident[v], ti)
			}
		}
	}

	centers := make([]orb.Point, len(triangles))
	for i, t := range triangles {
		centers[i] = circumcenter(points[t.A], points[t.B], points[t.C])
	}

	rings := make([]orb.Ring, numSites)
	for site := 0; site < numSites; site++ {
		tris := incident[site]
		if len(tris) < 3 {
			continue
		}
		site0 := points[site]
		sort.Slice(tris, func(i, j int) bool {
			ai := math.Atan2(centers[tris[i]][1]-site0[1], centers[tris[i]][0]-site0[0])
			aj := math.Atan2(centers[tris[j]][1]-site0[1], centers[tris[j]][0]-site0[0])
			return ai < aj
		})
		ring := make(orb.Ring, 0, len(tris)+1)
		for _, ti := range tris {
			ring = append(ring, centers[ti])
		}
		ring = append(ring, ring[0])
		rings[site] = ring
	}
	return rings
}

// PolygonArea returns the absolute area of a closed ring via the shoelace
// formula.
func PolygonArea(ring orb.Ring) float64 {
	if len(ring) < 4 {
		return 0
	}
	sum := 0.0
	for i := 0; i < len(ring)-1; i++ {
		sum += ring[i][0]*ring[i+1][1] - ring[i+1][0]*ring[i][1]
	}
	return math.Abs(sum) / 2
}
