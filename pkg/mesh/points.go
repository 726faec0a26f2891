package mesh

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/worldforge/atlas/pkg/worldrand"
)

// JitteredGridSites samples a blue-noise-like point set: a regular grid
// sized from the requested density (cells per unit area), each point
// jittered within its grid cell and clamped inside the extent. Generator
// points are always inside the extent; AnchorPoints supplies the four
// points that sit outside it for triangulation.
func JitteredGridSites(rng *worldrand.Stream, extent Extent, density float64) []orb.Point {
	if density <= 0 {
		density = 1
	}
	cellSize := math.Sqrt(1.0 / density)
	cols := int(math.Ceil(extent.Width() / cellSize))
	rows := int(math.Ceil(extent.Height() / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	points := make([]orb.Point, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			baseX := extent.MinX + (float64(col)+0.5)*cellSize
			baseY := extent.MinY + (float64(row)+0.5)*cellSize
			jitterX := rng.NextInRange(-0.4, 0.4) * cellSize
			jitterY := rng.NextInRange(-0.4, 0.4) * cellSize
			points = append(points, extent.Clamp(orb.Point{baseX + jitterX, baseY + jitterY}))
		}
	}
	return points
}

// SitesForCount samples approximately n points within the extent by
// deriving a density from the target count.
func SitesForCount(rng *worldrand.Stream, extent Extent, n int) []orb.Point {
	area := extent.Width() * extent.Height()
	if area <= 0 || n <= 0 {
		return nil
	}
	density := float64(n) / area
	return JitteredGridSites(rng, extent, density)
}

// dedupeCoincident perturbs any point that coincides (within eps) with an
// earlier one, retrying the perturbation until it clears every prior
// point.
func dedupeCoincident(rng *worldrand.Stream, points []orb.Point, eps float64) []orb.Point {
	for i := 1; i < len(points); i++ {
		for j := 0; j < i; j++ {
			dx := points[i][0] - points[j][0]
			dy := points[i][1] - points[j][1]
			if math.Abs(dx) < eps && math.Abs(dy) < eps {
				points[i] = orb.Point{
					points[i][0] + rng.NextInRange(eps, eps*4),
					points[i][1] + rng.NextInRange(eps, eps*4),
				}
				j = -1
			}
		}
	}
	return points
}
