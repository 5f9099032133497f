// Package skymodel assembles disk components into an ordered sky model.
package skymodel

import (
	"fmt"

	"ringsky/core/units"
)

// FrameJ2000 is the reference frame for all directions in this model.
const FrameJ2000 = "J2000"

// Direction is a sky position: right ascension and declination in the
// J2000 frame.
type Direction struct {
	RA  units.Angle
	Dec units.Angle
}

// String renders the direction the way component lists expect it:
// frame, sexagesimal RA, sexagesimal Dec.
func (d Direction) String() string {
	return fmt.Sprintf("%s %s %s", FrameJ2000, units.FormatRA(d.RA), units.FormatDec(d.Dec))
}

// DiskComponent is a uniformly-bright circular sky-model element.
// Flux is signed: negative disks act as subtractive terms.
type DiskComponent struct {
	Center         Direction
	DiameterArcsec float64
	FluxJy         float64
	FreqHz         float64
	PositionAngle  float64
}

// SkyModel is an ordered sequence of disk components: the central disk
// first, then an outer/inner pair per ring. Order matters only for
// readable logs; stamping is additive and commutative.
type SkyModel struct {
	Components []DiskComponent
}

// Len returns the number of components in the model.
func (m *SkyModel) Len() int {
	return len(m.Components)
}

// add appends a disk component to the model.
func (m *SkyModel) add(center Direction, diameterArcsec, fluxJy, freqHz float64) {
	m.Components = append(m.Components, DiskComponent{
		Center:         center,
		DiameterArcsec: diameterArcsec,
		FluxJy:         fluxJy,
		FreqHz:         freqHz,
		PositionAngle:  0,
	})
}
