package grid

import (
	"math"

	"ringsky/core/skymodel"
)

// Stamp rasterizes every component of the model onto the grid,
// accumulating signed flux. There is no separate subtraction mode:
// negative-flux disks subtract because flux is signed.
func (g *ImageGrid) Stamp(model *skymodel.SkyModel) {
	for _, c := range model.Components {
		g.stampDisk(c)
	}
}

// stampDisk deposits a uniform disk. Pixels whose centers fall inside
// the disk radius share the component flux equally, which conserves the
// component's total flux exactly for a disk fully on the grid. Coverage
// is counted before bounds-clipping, so a disk straddling the grid edge
// is truncated: the off-grid share of its flux is dropped, not smeared
// over the visible part. A disk too small to cover any pixel center
// collapses onto the pixel nearest its own center.
func (g *ImageGrid) stampDisk(c skymodel.DiskComponent) {
	cx, cy := g.WorldToPixel(c.Center)
	rPix := (c.DiameterArcsec / 2.0) / g.CellSizeArcsec

	x0 := int(math.Floor(cx - rPix))
	x1 := int(math.Ceil(cx + rPix))
	y0 := int(math.Floor(cy - rPix))
	y1 := int(math.Ceil(cy + rPix))

	total := 0
	var covered [][2]int
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy > rPix*rPix {
				continue
			}
			total++
			if g.InBounds(x, y) {
				covered = append(covered, [2]int{x, y})
			}
		}
	}

	if total == 0 {
		x := int(math.Round(cx))
		y := int(math.Round(cy))
		if g.InBounds(x, y) {
			g.Add(x, y, c.FluxJy)
		}
		return
	}

	perPixel := c.FluxJy / float64(total)
	for _, p := range covered {
		g.Add(p[0], p[1], perPixel)
	}
}
