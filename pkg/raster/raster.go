// Package raster decodes heightmap/ocean-mask images and samples them at
// arbitrary normalized coordinates. This is the concrete stand-in for the
// external raster-sampling collaborator; pkg/terrain reads heights and
// ocean flags through the Grid and Mask types below.
package raster

import (
	"image"
	"io"
	"math"

	// Registers additional image codecs (bmp, tiff) alongside the
	// stdlib's png/jpeg/gif, following the corpus's habit (TinkerRogue,
	// EvoSim, lords-of-conquest) of pulling in golang.org/x/image for
	// raster decoding rather than hand-rolling format parsers.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Grid is a decoded single-band raster: Values[y*Width+x] in [0, 1].
type Grid struct {
	Width, Height int
	Values        []float64
}

// Decode reads any registered image format and converts it to a
// normalized single-band Grid using perceptual luminance.
func Decode(r io.Reader) (*Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	values := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			red, green, blue, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			lum := 0.2126*float64(red) + 0.7152*float64(green) + 0.0722*float64(blue)
			values[y*w+x] = lum / 65535.0
		}
	}
	return &Grid{Width: w, Height: h, Values: values}, nil
}

// Sample bilinearly samples the grid at normalized coordinates u,v in
// [0,1]x[0,1] (u=0 left edge, v=0 top row).
func (g *Grid) Sample(u, v float64) float64 {
	if g.Width == 0 || g.Height == 0 {
		return 0
	}
	u = math.Min(math.Max(u, 0), 1)
	v = math.Min(math.Max(v, 0), 1)

	fx := u * float64(g.Width-1)
	fy := v * float64(g.Height-1)
	x0, y0 := int(fx), int(fy)
	x1, y1 := min(x0+1, g.Width-1), min(y0+1, g.Height-1)
	tx, ty := fx-float64(x0), fy-float64(y0)

	top := g.at(x0, y0)*(1-tx) + g.at(x1, y0)*tx
	bottom := g.at(x0, y1)*(1-tx) + g.at(x1, y1)*tx
	return top*(1-ty) + bottom*ty
}

func (g *Grid) at(x, y int) float64 {
	return g.Values[y*g.Width+x]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Mask is a boolean raster (true = ocean) thresholded from a decoded Grid.
type Mask struct {
	Width, Height int
	Ocean         []bool
}

// NewMask thresholds a Grid into a boolean ocean mask: values below
// threshold are ocean.
func NewMask(g *Grid, threshold float64) *Mask {
	ocean := make([]bool, len(g.Values))
	for i, v := range g.Values {
		ocean[i] = v < threshold
	}
	return &Mask{Width: g.Width, Height: g.Height, Ocean: ocean}
}

// Sample nearest-samples the mask at normalized coordinates u,v.
func (m *Mask) Sample(u, v float64) bool {
	if m.Width == 0 || m.Height == 0 {
		return false
	}
	x := int(math.Min(math.Max(u, 0), 1) * float64(m.Width-1))
	y := int(math.Min(math.Max(v, 0), 1) * float64(m.Height-1))
	return m.Ocean[y*m.Width+x]
}
