// Package fits exports a stamped image grid as a FITS file.
package fits

import (
	"os"

	"github.com/astrogo/fitsio"

	"ringsky/core/grid"
	"ringsky/internal/errors"
)

// Write serializes the grid to path as a single-HDU FITS image with the
// two direction axes plus degenerate Stokes and frequency axes. Pixel
// data is 64-bit floating point; the coordinate cards mirror the grid's
// linear world-coordinate system (FITS reference pixels are 1-based).
func Write(g *grid.ImageGrid, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.IO("creating FITS file", err)
	}
	defer out.Close()

	f, err := fitsio.Create(out)
	if err != nil {
		return errors.IO("opening FITS stream", err)
	}
	defer f.Close()

	img := fitsio.NewImage(-64, []int{g.Shape[0], g.Shape[1], 1, 1})
	defer img.Close()

	cell := g.CellRad()
	cards := []fitsio.Card{
		{Name: "BUNIT", Value: grid.BrightnessUnit, Comment: "brightness unit"},
		{Name: "BTYPE", Value: "Intensity"},
		{Name: "CTYPE1", Value: "RA", Comment: "right ascension, linear axis"},
		{Name: "CRVAL1", Value: g.RefDir.RA.Radians(), Comment: "[rad] reference RA"},
		{Name: "CRPIX1", Value: float64(g.RefPixel[0] + 1)},
		{Name: "CDELT1", Value: -cell, Comment: "[rad] pixel increment"},
		{Name: "CUNIT1", Value: "rad"},
		{Name: "CTYPE2", Value: "DEC", Comment: "declination, linear axis"},
		{Name: "CRVAL2", Value: g.RefDir.Dec.Radians(), Comment: "[rad] reference Dec"},
		{Name: "CRPIX2", Value: float64(g.RefPixel[1] + 1)},
		{Name: "CDELT2", Value: cell, Comment: "[rad] pixel increment"},
		{Name: "CUNIT2", Value: "rad"},
		{Name: "CTYPE3", Value: "STOKES"},
		{Name: "CRVAL3", Value: 1.0},
		{Name: "CRPIX3", Value: 1.0},
		{Name: "CDELT3", Value: 1.0},
		{Name: "CTYPE4", Value: "FREQ"},
		{Name: "CRVAL4", Value: g.FreqHz, Comment: "[Hz] reference frequency"},
		{Name: "CRPIX4", Value: 1.0},
		{Name: "CDELT4", Value: g.SpectralIncrementHz, Comment: "[Hz] channel width"},
		{Name: "CUNIT4", Value: "Hz"},
		{Name: "RADESYS", Value: "FK5"},
		{Name: "EQUINOX", Value: 2000.0},
		{Name: "ORIGIN", Value: "ringsky"},
	}
	if err := img.Header().Append(cards...); err != nil {
		return errors.Internal("building FITS header", err)
	}

	if err := img.Write(&g.Pixels); err != nil {
		return errors.IO("writing FITS pixels", err)
	}
	if err := f.Write(img); err != nil {
		return errors.IO("writing FITS HDU", err)
	}
	return nil
}
