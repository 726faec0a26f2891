// Package mesh builds the cell graph: point sampling, Delaunay
// triangulation, Voronoi tessellation clipped to an extent, and the
// neighbor-graph computation.
package mesh

import "github.com/paulmach/orb"

// Extent is the rectangular map bounds cells are clipped to.
type Extent struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the extent's horizontal span.
func (e Extent) Width() float64 { return e.MaxX - e.MinX }

// Height returns the extent's vertical span.
func (e Extent) Height() float64 { return e.MaxY - e.MinY }

// Contains reports whether p lies within the extent (inclusive).
func (e Extent) Contains(p orb.Point) bool {
	return p[0] >= e.MinX && p[0] <= e.MaxX && p[1] >= e.MinY && p[1] <= e.MaxY
}

// Clamp moves p to the nearest point still inside the extent.
func (e Extent) Clamp(p orb.Point) orb.Point {
	x, y := p[0], p[1]
	if x < e.MinX {
		x = e.MinX
	} else if x > e.MaxX {
		x = e.MaxX
	}
	if y < e.MinY {
		y = e.MinY
	} else if y > e.MaxY {
		y = e.MaxY
	}
	return orb.Point{x, y}
}

// AnchorPoints returns the four "infinity" points placed outside the
// extent so that triangulation near the boundary is well-formed:
// (-W,-H), (-W,2H), (2W,2H), (2W,-H) relative to the extent's
// origin.
func (e Extent) AnchorPoints() [4]orb.Point {
	w, h := e.Width(), e.Height()
	return [4]orb.Point{
		{e.MinX - w, e.MinY - h},
		{e.MinX - w, e.MinY + 2*h},
		{e.MinX + 2*w, e.MinY + 2*h},
		{e.MinX + 2*w, e.MinY - h},
	}
}
