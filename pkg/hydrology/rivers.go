package hydrology

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/worldforge/atlas/pkg/worldmodel"
)

// fibonacciWidths seeds the first few segment-width progression steps.
var fibonacciWidths = []float64{1, 1, 2, 3, 5, 8, 13}

// RenderRivers builds each river's cell-site polyline with meander
// offsets and per-vertex flux, plus one width and one discharge per river,
// discarding rivers shorter than 3 cells.
func RenderRivers(w *worldmodel.World, p Params) {
	kept := w.Rivers[:0]
	for _, r := range w.Rivers {
		if len(r.Cells) < 3 {
			continue
		}
		r.Polyline, r.VertexFlux = buildPolyline(w, r.Cells, p.Meandering)
		r.Length = polylineLength(r.Polyline)
		r.Discharge = dischargeAt(w, r.Cells[len(r.Cells)-1])
		r.Width = riverWidth(r, p)
		kept = append(kept, r)
	}
	w.Rivers = kept
}

// buildPolyline walks the river's cell chain, inserting one
// perpendicular meander point between consecutive sites. The offset
// magnitude decays with distance along the river.
func buildPolyline(w *worldmodel.World, cells []int32, meandering float64) ([]orb.Point, []float64) {
	if len(cells) < 2 {
		return nil, nil
	}
	var line []orb.Point
	var flux []float64
	line = append(line, w.Sites[cells[0]])
	flux = append(flux, w.ConfluenceFlux[cells[0]])

	for i := 0; i+1 < len(cells); i++ {
		a, b := w.Sites[cells[i]], w.Sites[cells[i+1]]
		dx, dy := b[0]-a[0], b[1]-a[1]
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		nx, ny := -dy/length, dx/length // perpendicular unit vector

		decay := math.Pow(0.7, float64(i))
		offset := meandering * length * decay

		mid := orb.Point{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
		bend := orb.Point{mid[0] + nx*offset, mid[1] + ny*offset}
		line = append(line, bend)
		flux = append(flux, flux[len(flux)-1])

		line = append(line, b)
		flux = append(flux, flux[len(flux)-1])
	}
	return line, flux
}

func polylineLength(line []orb.Point) float64 {
	total := 0.0
	for i := 0; i+1 < len(line); i++ {
		total += math.Hypot(line[i+1][0]-line[i][0], line[i+1][1]-line[i][1])
	}
	return total
}

// riverWidth derives channel width from discharge with a Fibonacci-like
// progression over the first few segments.
func riverWidth(r worldmodel.River, p Params) float64 {
	base := math.Pow(math.Max(r.Discharge, 0), 0.9) / p.WidthK
	step := len(r.Cells)
	if step < len(fibonacciWidths) {
		base += fibonacciWidths[step]
	} else {
		base += fibonacciWidths[len(fibonacciWidths)-1]
	}
	return base
}

func dischargeAt(w *worldmodel.World, cell int32) float64 {
	if w.ConfluenceFlux[cell] > 0 {
		return w.ConfluenceFlux[cell]
	}
	return float64(w.Precipitation[cell])
}
