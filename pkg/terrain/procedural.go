package terrain

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/worldforge/atlas/pkg/mesh"
	"github.com/worldforge/atlas/pkg/worldmodel"
	"github.com/worldforge/atlas/pkg/worldrand"
)

// GreatCircle is a global uplift/subsidence feature: cells near its great
// circle on the unit sphere get elevated or depressed proportional to
// their angular distance to it, generalized from a fixed tile grid to
// arbitrary cell sites projected onto a sphere.
type GreatCircle struct {
	VectorX, VectorY, VectorZ float64
	Radius                    float64
	HeightModifier            float64
	Weight                    float64
}

// GenerateGreatCircles draws featureCount great circles from rng, each
// classified as a continental boundary, mountain range, or ocean trench
// by a fixed set of roll thresholds.
func GenerateGreatCircles(rng *worldrand.Stream, featureCount int) []GreatCircle {
	circles := make([]GreatCircle, featureCount)
	for i := range circles {
		theta := rng.Next() * 2 * math.Pi
		phi := math.Acos(rng.Next()*2 - 1)
		vx := math.Sin(phi) * math.Cos(theta)
		vy := math.Sin(phi) * math.Sin(theta)
		vz := math.Cos(phi)

		roll := rng.Next()
		var heightModifier float64
		switch {
		case roll < 0.3:
			heightModifier = rng.Next()*1000 - 500
		case roll < 0.7:
			heightModifier = rng.Next()*2000 + 500
		default:
			heightModifier = rng.Next()*-600 - 200
		}

		circles[i] = GreatCircle{
			VectorX:        vx,
			VectorY:        vy,
			VectorZ:        vz,
			Radius:         rng.Next()*8 + 4,
			HeightModifier: heightModifier,
			Weight:         rng.Next()*0.7 + 0.3,
		}
	}
	return circles
}

// AttachProcedural fills Elevation and IsOcean from the great-circle
// field plus multi-octave opensimplex noise, for worlds with no supplied
// heightmap. noiseSeed should be drawn from the same rng
// stream as the great circles to keep the pipeline's single-stream
// determinism invariant.
func AttachProcedural(w *worldmodel.World, extent mesh.Extent, circles []GreatCircle, noiseSeed int64) {
	noise := opensimplex.New(noiseSeed)
	for i := 0; i < w.N; i++ {
		lon := ((w.Sites[i][0]-extent.MinX)/extent.Width() - 0.5) * 2 * math.Pi
		lat := w.Latitude[i] * math.Pi / 180

		px := math.Cos(lat) * math.Cos(lon)
		py := math.Cos(lat) * math.Sin(lon)
		pz := math.Sin(lat)

		raw := 0.0
		for _, c := range circles {
			dot := px*c.VectorX + py*c.VectorY + pz*c.VectorZ
			dot = worldmodel.Clamp(dot, -1, 1)
			distance := math.Abs(math.Asin(dot))
			if distance < c.Radius {
				raw += c.Weight * (1.0 - distance/c.Radius) * c.HeightModifier
			}
		}
		raw += terrainNoise(noise, w.Sites[i][0], w.Sites[i][1])

		w.Elevation[i] = int32(scaleProceduralElevation(raw))
		w.IsOcean[i] = int(w.Elevation[i]) < nominalSeaLevel
	}
}

// noise2D is the subset of opensimplex.New's return value this package
// relies on, kept local so a version bump to the noise library can't
// silently break this file on a renamed interface.
type noise2D interface {
	Eval2(x, y float64) float64
}

// terrainNoise sums four octaves of opensimplex noise into an actual
// gradient noise field.
func terrainNoise(noise noise2D, x, y float64) float64 {
	total := 0.0
	for octave := 0; octave < 4; octave++ {
		frequency := math.Pow(2, float64(octave)) / 64.0
		amplitude := 200.0 / math.Pow(2, float64(octave))
		total += noise.Eval2(x*frequency*0.1, y*frequency*0.1) * amplitude
	}
	return total
}

// scaleProceduralElevation maps the raw -500..3000 elevation range onto
// the 0-100 scale, with 0 at the low end and 100 at the high end;
// nominalSeaLevel (20) lands near the historical sea-level point.
func scaleProceduralElevation(raw float64) int {
	clamped := worldmodel.Clamp(raw, -500, 3000)
	scaled := (clamped + 500) / 3500 * 100
	return worldmodel.ClampInt(int(worldmodel.RoundTo(scaled, 0)), 0, 100)
}
