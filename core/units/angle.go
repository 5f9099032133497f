// Package units provides angle and quantity parsing for sky coordinates.
// This package replaces ad-hoc quantity handling with explicit parse
// contracts: every input string is converted exactly once, at the edge.
package units

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"ringsky/internal/errors"
)

// Angle is an angle in radians.
type Angle float64

// Radians returns the angle in radians.
func (a Angle) Radians() float64 { return float64(a) }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 { return float64(a) * 180.0 / math.Pi }

// Arcsec returns the angle in arcseconds.
func (a Angle) Arcsec() float64 { return a.Degrees() * 3600.0 }

// Role identifies which coordinate an angle string represents.
// It selects the error message, not the accepted syntax: like the
// quantity systems used in radio astronomy pipelines, any well-formed
// angle expression is accepted for either axis.
type Role string

const (
	// RoleRA is the right ascension role
	RoleRA Role = "RA"

	// RoleDec is the declination role
	RoleDec Role = "Dec"
)

// ArcsecToRad converts arcseconds to radians.
func ArcsecToRad(arcsec float64) float64 {
	return arcsec / 3600.0 * math.Pi / 180.0
}

// FromArcsec builds an Angle from arcseconds.
func FromArcsec(arcsec float64) Angle {
	return Angle(ArcsecToRad(arcsec))
}

var (
	hmsRe = regexp.MustCompile(`^([+-]?)(\d+)h(\d+)m(\d+(?:\.\d+)?)s?$`)
	dmsRe = regexp.MustCompile(`^([+-]?)(\d+)d(\d+)m(\d+(?:\.\d+)?)s?$`)
)

// ParseAngle converts an angle expression to radians. Accepted forms are
// sexagesimal hour angles ("12h00m00.00s"), sexagesimal degree angles
// ("-23d00m00.00"), and decimal values with an explicit angular unit
// ("1.5deg", "0.0009arcsec"). Bare numbers are rejected: an angle with
// no unit is ambiguous.
func ParseAngle(value string, role Role) (Angle, error) {
	if m := hmsRe.FindStringSubmatch(value); m != nil {
		return sexagesimal(m, 15.0, role, value)
	}
	if m := dmsRe.FindStringSubmatch(value); m != nil {
		return sexagesimal(m, 1.0, role, value)
	}
	if v, unit, err := SplitQuantity(value); err == nil {
		if scale, ok := angularScale[unit]; ok {
			return Angle(v.InexactFloat64() * scale), nil
		}
		return 0, errors.InvalidAngle(string(role), value, fmt.Errorf("unknown angular unit %q", unit))
	}
	return 0, errors.InvalidAngle(string(role), value, fmt.Errorf("not a sexagesimal or decimal angle expression"))
}

// Validate checks that value parses as an angle and returns it unchanged.
// Downstream consumers re-convert as needed.
func Validate(value string, role Role) (string, error) {
	if _, err := ParseAngle(value, role); err != nil {
		return "", err
	}
	return value, nil
}

// angularScale maps a unit suffix to radians per unit.
var angularScale = map[string]float64{
	"rad":    1.0,
	"deg":    math.Pi / 180.0,
	"arcmin": math.Pi / 180.0 / 60.0,
	"arcsec": math.Pi / 180.0 / 3600.0,
	"mas":    math.Pi / 180.0 / 3600.0 / 1000.0,
}

func sexagesimal(m []string, degPerUnit float64, role Role, value string) (Angle, error) {
	whole, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, errors.InvalidAngle(string(role), value, err)
	}
	minutes, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, errors.InvalidAngle(string(role), value, err)
	}
	seconds, err := strconv.ParseFloat(m[4], 64)
	if err != nil {
		return 0, errors.InvalidAngle(string(role), value, err)
	}
	if minutes >= 60 || seconds >= 60.0 {
		return 0, errors.InvalidAngle(string(role), value, fmt.Errorf("minutes and seconds must be below 60"))
	}

	deg := (float64(whole) + float64(minutes)/60.0 + seconds/3600.0) * degPerUnit
	if m[1] == "-" {
		deg = -deg
	}
	return Angle(deg * math.Pi / 180.0), nil
}

// FormatRA renders an angle as a sexagesimal hour string ("12h00m00.00s").
func FormatRA(a Angle) string {
	hours := math.Mod(a.Degrees()/15.0, 24.0)
	if hours < 0 {
		hours += 24.0
	}
	h := int(hours)
	rem := (hours - float64(h)) * 60.0
	m := int(rem)
	s := (rem - float64(m)) * 60.0
	return fmt.Sprintf("%02dh%02dm%05.2fs", h, m, s)
}

// FormatDec renders an angle as a sexagesimal degree string ("-23d00m00.00").
func FormatDec(a Angle) string {
	deg := a.Degrees()
	sign := "+"
	if deg < 0 {
		sign = "-"
		deg = -deg
	}
	d := int(deg)
	rem := (deg - float64(d)) * 60.0
	m := int(rem)
	s := (rem - float64(m)) * 60.0
	return fmt.Sprintf("%s%02dd%02dm%05.2f", sign, d, m, s)
}
