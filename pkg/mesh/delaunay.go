package mesh

import (
	"math"

	"github.com/paulmach/orb"
)

// Triangle is a Delaunay triangle as three indices into the point slice
// passed to Triangulate.
type Triangle struct {
	A, B, C int
}

type edge struct {
	A, B int
}

func (e edge) normalized() edge {
	if e.A > e.B {
		return edge{e.B, e.A}
	}
	return e
}

// Triangulate computes the Delaunay triangulation of points via the
// Bowyer-Watson incremental algorithm. The four anchor
// points from Extent.AnchorPoints should already be appended to points
// by the caller so they participate in triangulation; Triangulate itself
// adds its own (much larger) bounding super-triangle internally and
// strips it from the result.
func Triangulate(points []orb.Point) []Triangle {
	n := len(points)
	if n < 3 {
		return nil
	}

	minX, minY := points[0][0], points[0][1]
	maxX, maxY := points[0][0], points[0][1]
	for _, p := range points {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	dx, dy := maxX-minX, maxY-minY
	deltaMax := math.Max(dx, dy)
	if deltaMax <= 0 {
		deltaMax = 1
	}
	midX, midY := (minX+maxX)/2, (minY+maxY)/2

	// Super-triangle vertices, appended after the real points.
	super := []orb.Point{
		{midX - 20*deltaMax, midY - deltaMax},
		{midX, midY + 20*deltaMax},
		{midX + 20*deltaMax, midY - deltaMax},
	}
	allPoints := make([]orb.Point, n+3)
	copy(allPoints, points)
	allPoints[n] = super[0]
	allPoints[n+1] = super[1]
	allPoints[n+2] = super[2]

	triangles := []Triangle{{n, n + 1, n + 2}}

	for i := 0; i < n; i++ {
		p := allPoints[i]

		var bad []int
		for ti, t := range triangles {
			if inCircumcircle(allPoints[t.A], allPoints[t.B], allPoints[t.C], p) {
				bad = append(bad, ti)
			}
		}
		if len(bad) == 0 {
			continue
		}

		badSet := make(map[int]bool, len(bad))
		for _, ti := range bad {
			badSet[ti] = true
		}

		edgeCount := make(map[edge]int)
		for _, ti := range bad {
			t := triangles[ti]
			for _, e := range triangleEdges(t) {
				edgeCount[e.normalized()]++
			}
		}

		var boundary []edge
		for e, count := range edgeCount {
			if count == 1 {
				boundary = append(boundary, e)
			}
		}

		kept := triangles[:0:0]
		for ti, t := range triangles {
			if !badSet[ti] {
				kept = append(kept, t)
			}
		}
		triangles = kept

		for _, e := range boundary {
			triangles = append(triangles, Triangle{e.A, e.B, i})
		}
	}

	out := make([]Triangle, 0, len(triangles))
	for _, t := range triangles {
		if t.A >= n || t.B >= n || t.C >= n {
			continue
		}
		out = append(out, t)
	}
	return out
}

func triangleEdges(t Triangle) [3]edge {
	return [3]edge{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

// inCircumcircle reports whether p lies strictly inside the circumcircle
// of triangle (a,b,c), using the standard determinant predicate. a,b,c
// must be in counter-clockwise order; if they aren't, the sign of the
// determinant flips, so we detect orientation and compensate.
func inCircumcircle(a, b, c, p orb.Point) bool {
	ax, ay := a[0]-p[0], a[1]-p[1]
	bx, by := b[0]-p[0], b[1]-p[1]
	cx, cy := c[0]-p[0], c[1]-p[1]

	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)

	if orient2D(a, b, c) > 0 {
		return det > 0
	}
	return det < 0
}

// orient2D returns twice the signed area of triangle (a,b,c): positive
// when counter-clockwise, negative when clockwise, zero when collinear
// (the degenerate-geometry case).
func orient2D(a, b, c orb.Point) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}
