package mesh

import "github.com/paulmach/orb"

// ClipToExtent clips a (possibly unbounded-looking) Voronoi ring to the
// extent rectangle via Sutherland-Hodgman, so a cell that crosses the
// boundary remains a single simple polygon. orb has no
// general polygon-boolean package, so this is a small hand-rolled
// implementation of a well-known, textbook algorithm rather than a
// stand-in for a missing library concern.
func ClipToExtent(ring orb.Ring, extent Extent) orb.Ring {
	if len(ring) == 0 {
		return nil
	}
	poly := ring[:len(ring)-1] // drop the closing duplicate vertex; re-close at the end

	poly = clipEdge(poly, func(p orb.Point) bool { return p[0] >= extent.MinX },
		func(a, b orb.Point) orb.Point { return intersectVertical(a, b, extent.MinX) })
	poly = clipEdge(poly, func(p orb.Point) bool { return p[0] <= extent.MaxX },
		func(a, b orb.Point) orb.Point { return intersectVertical(a, b, extent.MaxX) })
	poly = clipEdge(poly, func(p orb.Point) bool { return p[1] >= extent.MinY },
		func(a, b orb.Point) orb.Point { return intersectHorizontal(a, b, extent.MinY) })
	poly = clipEdge(poly, func(p orb.Point) bool { return p[1] <= extent.MaxY },
		func(a, b orb.Point) orb.Point { return intersectHorizontal(a, b, extent.MaxY) })

	if len(poly) < 3 {
		return nil
	}
	return append(append(orb.Ring{}, poly...), poly[0])
}

func clipEdge(poly []orb.Point, inside func(orb.Point) bool, intersect func(a, b orb.Point) orb.Point) []orb.Point {
	if len(poly) == 0 {
		return nil
	}
	var out []orb.Point
	prev := poly[len(poly)-1]
	prevIn := inside(prev)
	for _, cur := range poly {
		curIn := inside(cur)
		if curIn {
			if !prevIn {
				out = append(out, intersect(prev, cur))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, intersect(prev, cur))
		}
		prev, prevIn = cur, curIn
	}
	return out
}

func intersectVertical(a, b orb.Point, x float64) orb.Point {
	t := (x - a[0]) / (b[0] - a[0])
	return orb.Point{x, a[1] + t*(b[1]-a[1])}
}

func intersectHorizontal(a, b orb.Point, y float64) orb.Point {
	t := (y - a[1]) / (b[1] - a[1])
	return orb.Point{a[0] + t*(b[0]-a[0]), y}
}
