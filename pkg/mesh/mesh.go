package mesh

import (
	"github.com/paulmach/orb"
	"github.com/worldforge/atlas/pkg/worldmodel"
	"github.com/worldforge/atlas/pkg/worldrand"
)

// epsilon is the shared tolerance for coincident-site perturbation,
// boundary-box padding, and degenerate-polygon detection.
const epsilon = 1e-6

// Build runs the full mesh stage: sample points, triangulate, derive
// Voronoi cells, clip to the extent, drop degenerate cells and heal
// neighbor adjacency, then compute the symmetric neighbor graph. Returns
// a *worldmodel.World with Sites/Polygons/Area/neighbor CSR populated;
// every later-stage attribute column is zero-valued.
func Build(rng *worldrand.Stream, extent Extent, cellCount int) *worldmodel.World {
	sites := SitesForCount(rng, extent, cellCount)
	sites = dedupeCoincident(rng, sites, epsilon)

	anchors := extent.AnchorPoints()
	allPoints := make([]orb.Point, 0, len(sites)+4)
	allPoints = append(allPoints, sites...)
	allPoints = append(allPoints, anchors[:]...)

	triangles := Triangulate(allPoints)
	rings := CellPolygons(allPoints, triangles, len(sites))

	clipped := make([]orb.Ring, len(sites))
	for i, r := range rings {
		if len(r) == 0 {
			continue
		}
		clipped[i] = ClipToExtent(r, extent)
	}

	// Drop degenerate (zero-area) cells.
	keptSites := make([]orb.Point, 0, len(sites))
	keptRings := make([]orb.Ring, 0, len(sites))
	for i := range sites {
		if len(clipped[i]) < 4 || PolygonArea(clipped[i]) <= epsilon {
			continue
		}
		keptSites = append(keptSites, sites[i])
		keptRings = append(keptRings, clipped[i])
	}

	n := len(keptSites)
	w := worldmodel.NewWorld(n)
	polygons := make([]orb.Polygon, n)
	for i := 0; i < n; i++ {
		w.Sites[i] = keptSites[i]
		polygons[i] = orb.Polygon{keptRings[i]}
		w.Polygons[i] = polygons[i]
		w.Area[i] = PolygonArea(keptRings[i])
		w.Latitude[i] = latitudeFor(keptSites[i], extent)
	}

	adjacency := NeighborGraph(keptSites, keptRings, epsilon)
	worldmodel.SetNeighbors(w, adjacency)

	return w
}

// latitudeFor maps a site's y coordinate to a latitude in [-90, 90],
// 0 at the extent's vertical center (equator), +/-90 at the poles.
func latitudeFor(p orb.Point, extent Extent) float64 {
	if extent.Height() == 0 {
		return 0
	}
	frac := (p[1] - extent.MinY) / extent.Height() // 0 at south edge, 1 at north edge
	return (frac - 0.5) * 180
}
