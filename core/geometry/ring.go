// Package geometry computes concentric ring radii and flux-normalized
// disk pairs for the annulus sky model.
//
// Each ring is modeled as a signed disk subtraction: an outer disk of
// positive flux minus an inner disk carrying the flux it would have if
// it shared the outer disk's uniform surface brightness. The net flux of
// the pair is then exactly the intended ring flux, independent of radius.
package geometry

import (
	"math"

	"ringsky/internal/errors"
)

// FluxMode selects how ring flux is specified.
type FluxMode int

const (
	// ModeTotalFlux distributes a fixed total flux (Jy) over the annulus
	ModeTotalFlux FluxMode = iota

	// ModeSurfaceBrightness applies a uniform surface brightness (Jy/arcsec^2)
	ModeSurfaceBrightness
)

// FluxSpec is the resolved flux specification for ring components.
// Exactly one of the two modes applies per run.
type FluxSpec struct {
	Mode  FluxMode
	Value float64
}

// TotalFlux builds a total-flux-per-ring specification (Jy).
func TotalFlux(jy float64) FluxSpec {
	return FluxSpec{Mode: ModeTotalFlux, Value: jy}
}

// SurfaceBrightness builds a uniform surface-brightness specification
// (Jy/arcsec^2).
func SurfaceBrightness(jyPerArcsec2 float64) FluxSpec {
	return FluxSpec{Mode: ModeSurfaceBrightness, Value: jyPerArcsec2}
}

// RingResult holds the geometry and signed flux accounting for one ring.
// All lengths are arcseconds, areas arcsec^2, fluxes Jy.
type RingResult struct {
	Index             int
	Rin               float64
	Rout              float64
	AreaInner         float64
	AreaOuter         float64
	AnnulusArea       float64
	SurfaceBrightness float64
	FluxOuter         float64
	FluxInner         float64
}

// NetFlux returns the flux the ring contributes to the sky: the outer
// disk minus the inner disk.
func (r RingResult) NetFlux() float64 {
	return r.FluxOuter - r.FluxInner
}

// ComputeRing computes radii, areas, and the signed disk fluxes for ring
// j (0-indexed). centralDiameter, thickness, and spacing are arcseconds;
// thickness and spacing apply uniformly to every ring.
//
// Under ModeTotalFlux a vanishing annulus area cannot be normalized and
// the run is rejected: a zero-area ring carrying finite flux would put
// NaN into the model. Under ModeSurfaceBrightness a zero area is legal
// and yields a zero-flux ring.
func ComputeRing(j int, centralDiameter, thickness, spacing float64, spec FluxSpec) (RingResult, error) {
	rc := centralDiameter / 2.0
	rin := rc + float64(j)*(thickness+spacing)
	rout := rin + thickness

	aout := math.Pi * rout * rout
	ain := math.Pi * rin * rin
	aring := aout - ain

	r := RingResult{
		Index:       j,
		Rin:         rin,
		Rout:        rout,
		AreaInner:   ain,
		AreaOuter:   aout,
		AnnulusArea: aring,
	}

	var intensity float64
	switch spec.Mode {
	case ModeSurfaceBrightness:
		intensity = spec.Value
	default:
		if aring <= 0 {
			return RingResult{}, errors.DegenerateRing(j, thickness)
		}
		intensity = spec.Value / aring
	}

	r.SurfaceBrightness = intensity
	r.FluxOuter = intensity * aout
	r.FluxInner = intensity * ain
	return r, nil
}

// ComputeRings computes all n rings in ascending index order.
func ComputeRings(n int, centralDiameter, thickness, spacing float64, spec FluxSpec) ([]RingResult, error) {
	rings := make([]RingResult, 0, n)
	for j := 0; j < n; j++ {
		r, err := ComputeRing(j, centralDiameter, thickness, spacing, spec)
		if err != nil {
			return nil, err
		}
		rings = append(rings, r)
	}
	return rings, nil
}
