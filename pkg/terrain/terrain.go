// Package terrain attaches elevation and the is_ocean flag to every cell
//, either by sampling a heightmap/ocean-mask raster or by
// procedural generation when no raster is supplied.
package terrain

import (
	"github.com/paulmach/orb"
	"github.com/worldforge/atlas/pkg/mesh"
	"github.com/worldforge/atlas/pkg/raster"
	"github.com/worldforge/atlas/pkg/worldmodel"
)

// nominalSeaLevel is the integer land/water threshold downstream
// algorithms use when is_ocean is derived from elevation rather than an
// explicit mask.
const nominalSeaLevel = 20

// AttachFromHeightmap samples grid at each cell's site (normalized into
// the extent) and scales it to the 0-100 elevation range using the
// configured raw sea-level/max values.
func AttachFromHeightmap(w *worldmodel.World, extent mesh.Extent, grid *raster.Grid, seaLevelRaw, maxRaw float64) {
	for i := 0; i < w.N; i++ {
		u, v := normalize(w.Sites[i], extent)
		raw := grid.Sample(u, v)
		w.Elevation[i] = int32(scaleElevation(raw, seaLevelRaw, maxRaw))
	}
}

// scaleElevation maps a raw [0,1] heightmap sample onto [0,100], with
// seaLevelRaw mapping to the nominal sea level (20) and maxRaw mapping to
// 100.
func scaleElevation(raw, seaLevelRaw, maxRaw float64) int {
	var scaled float64
	switch {
	case maxRaw <= seaLevelRaw:
		scaled = nominalSeaLevel
	case raw >= seaLevelRaw:
		scaled = nominalSeaLevel + (raw-seaLevelRaw)/(maxRaw-seaLevelRaw)*(100-nominalSeaLevel)
	case seaLevelRaw > 0:
		scaled = nominalSeaLevel * (raw / seaLevelRaw)
	default:
		scaled = 0
	}
	return worldmodel.ClampInt(int(worldmodel.RoundTo(scaled, 0)), 0, 100)
}

// AttachOceanFromMask sets is_ocean per cell by sampling a boolean ocean
// mask raster.
func AttachOceanFromMask(w *worldmodel.World, extent mesh.Extent, mask *raster.Mask) {
	for i := 0; i < w.N; i++ {
		u, v := normalize(w.Sites[i], extent)
		w.IsOcean[i] = mask.Sample(u, v)
	}
}

// AttachOceanFromThreshold sets is_ocean by thresholding elevation when
// no mask is supplied. is_ocean always takes
// precedence over elevation in downstream algorithms once set; this is
// simply how it gets its initial value.
func AttachOceanFromThreshold(w *worldmodel.World, threshold int) {
	for i := 0; i < w.N; i++ {
		w.IsOcean[i] = int(w.Elevation[i]) < threshold
	}
}

func normalize(p orb.Point, extent mesh.Extent) (u, v float64) {
	if extent.Width() == 0 || extent.Height() == 0 {
		return 0, 0
	}
	return (p[0] - extent.MinX) / extent.Width(), (p[1] - extent.MinY) / extent.Height()
}
