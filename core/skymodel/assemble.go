package skymodel

import (
	"ringsky/core/geometry"
)

// Assemble builds the ordered component list for the ring sky model:
// one central disk, then for each ring an outer disk with positive flux
// followed by an inner disk with the matching negative flux. Every
// component shares the center direction, frequency, and position angle 0.
//
// obs may be nil; otherwise it is notified once per ring.
func Assemble(center Direction, centralDiameter, centralFlux float64, rings []geometry.RingResult, freqHz float64, obs Observer) *SkyModel {
	if obs == nil {
		obs = NopObserver{}
	}

	model := &SkyModel{Components: make([]DiskComponent, 0, 1+2*len(rings))}
	model.add(center, centralDiameter, centralFlux, freqHz)

	for _, r := range rings {
		model.add(center, 2.0*r.Rout, r.FluxOuter, freqHz)
		model.add(center, 2.0*r.Rin, -r.FluxInner, freqHz)
		obs.RingComputed(r)
	}

	return model
}
