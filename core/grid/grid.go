// Package grid builds the pixel image the sky model is stamped onto:
// a regularly-sampled direction grid with degenerate Stokes and
// frequency axes and a linear world-coordinate system anchored at the
// model center.
package grid

import (
	"ringsky/core/skymodel"
	"ringsky/core/units"
	"ringsky/internal/errors"
)

// SpectralIncrementHz is the fixed spectral bandwidth attached to the
// image's frequency axis.
const SpectralIncrementHz = 7.5e9

// BrightnessUnit is the per-pixel brightness unit of the stamped image.
const BrightnessUnit = "Jy/pixel"

// ImageGrid is a zero-initialized pixel grid plus its coordinate system.
// Pixels are stored row-major: index = y*Shape[0] + x. The direction
// increment follows the standard sky convention: negative along right
// ascension, positive along declination.
type ImageGrid struct {
	Shape               [2]int
	CellSizeArcsec      float64
	RefDir              skymodel.Direction
	RefPixel            [2]int
	FreqHz              float64
	SpectralIncrementHz float64
	Pixels              []float64
}

// New allocates a zeroed image grid with the reference pixel at the
// geometric center (integer floor of shape/2).
func New(shape [2]int, cellSizeArcsec float64, center skymodel.Direction, freqHz float64) (*ImageGrid, error) {
	if shape[0] <= 0 || shape[1] <= 0 {
		return nil, errors.Configf("image shape must be positive, got %dx%d", shape[0], shape[1])
	}
	if cellSizeArcsec <= 0 {
		return nil, errors.Configf("cell size must be positive, got %g arcsec", cellSizeArcsec)
	}
	return &ImageGrid{
		Shape:               shape,
		CellSizeArcsec:      cellSizeArcsec,
		RefDir:              center,
		RefPixel:            [2]int{shape[0] / 2, shape[1] / 2},
		FreqHz:              freqHz,
		SpectralIncrementHz: SpectralIncrementHz,
		Pixels:              make([]float64, shape[0]*shape[1]),
	}, nil
}

// CellRad returns the pixel scale in radians.
func (g *ImageGrid) CellRad() float64 {
	return units.ArcsecToRad(g.CellSizeArcsec)
}

// At returns the brightness of pixel (x, y).
func (g *ImageGrid) At(x, y int) float64 {
	return g.Pixels[y*g.Shape[0]+x]
}

// Add accumulates brightness into pixel (x, y).
func (g *ImageGrid) Add(x, y int, v float64) {
	g.Pixels[y*g.Shape[0]+x] += v
}

// InBounds reports whether (x, y) lies on the grid.
func (g *ImageGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Shape[0] && y >= 0 && y < g.Shape[1]
}

// WorldToPixel maps a direction to fractional pixel coordinates through
// the linear coordinate system: world = ref + (pixel - refpixel) * increment.
func (g *ImageGrid) WorldToPixel(d skymodel.Direction) (float64, float64) {
	cell := g.CellRad()
	px := float64(g.RefPixel[0]) + (d.RA.Radians()-g.RefDir.RA.Radians())/(-cell)
	py := float64(g.RefPixel[1]) + (d.Dec.Radians()-g.RefDir.Dec.Radians())/cell
	return px, py
}

// PixelToWorld maps fractional pixel coordinates back to a direction.
func (g *ImageGrid) PixelToWorld(px, py float64) skymodel.Direction {
	cell := g.CellRad()
	return skymodel.Direction{
		RA:  units.Angle(g.RefDir.RA.Radians() + (px-float64(g.RefPixel[0]))*(-cell)),
		Dec: units.Angle(g.RefDir.Dec.Radians() + (py-float64(g.RefPixel[1]))*cell),
	}
}

// TotalFlux returns the summed brightness of all pixels (Jy, since the
// unit is flux per pixel).
func (g *ImageGrid) TotalFlux() float64 {
	var sum float64
	for _, v := range g.Pixels {
		sum += v
	}
	return sum
}
