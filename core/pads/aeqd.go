package pads

import (
	"math"
)

// earthRadius is the mean Earth radius in meters used by the spherical
// azimuthal equidistant projection. Pad offsets are a few kilometers at
// most, where the spherical form is accurate to well under a marker's
// width.
const earthRadius = 6371008.8

// AEQD is an azimuthal equidistant projection centered on an origin
// latitude/longitude (degrees).
type AEQD struct {
	lat0 float64 // radians
	lon0 float64 // radians
}

// NewAEQD builds a projection centered on (lat0, lon0) in degrees.
func NewAEQD(lat0, lon0 float64) *AEQD {
	return &AEQD{
		lat0: lat0 * math.Pi / 180.0,
		lon0: lon0 * math.Pi / 180.0,
	}
}

// Inverse converts local projected offsets (meters east, meters north)
// to geographic longitude and latitude in degrees.
func (p *AEQD) Inverse(x, y float64) (lon, lat float64) {
	rho := math.Hypot(x, y)
	if rho == 0 {
		return p.lon0 * 180.0 / math.Pi, p.lat0 * 180.0 / math.Pi
	}

	c := rho / earthRadius
	sinC, cosC := math.Sin(c), math.Cos(c)
	sinLat0, cosLat0 := math.Sin(p.lat0), math.Cos(p.lat0)

	latRad := math.Asin(cosC*sinLat0 + y*sinC*cosLat0/rho)
	lonRad := p.lon0 + math.Atan2(x*sinC, rho*cosLat0*cosC-y*sinLat0*sinC)

	return lonRad * 180.0 / math.Pi, latRad * 180.0 / math.Pi
}
