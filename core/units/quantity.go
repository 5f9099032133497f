package units

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"ringsky/internal/errors"
)

var quantityRe = regexp.MustCompile(`^([+-]?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?)\s*([A-Za-z]+)$`)

// SplitQuantity splits a value+unit expression such as "343.5GHz" or
// "0.0009arcsec" into its exact numeric part and unit suffix.
func SplitQuantity(s string) (decimal.Decimal, string, error) {
	m := quantityRe.FindStringSubmatch(s)
	if m == nil {
		return decimal.Zero, "", fmt.Errorf("malformed quantity %q", s)
	}
	v, err := decimal.NewFromString(m[1])
	if err != nil {
		return decimal.Zero, "", err
	}
	return v, m[2], nil
}

// frequencyExponent maps a frequency unit suffix to its decimal exponent
// relative to Hz.
var frequencyExponent = map[string]int32{
	"Hz":  0,
	"kHz": 3,
	"MHz": 6,
	"GHz": 9,
	"THz": 12,
}

// ParseFrequency converts a frequency expression ("343.5GHz") to Hz.
func ParseFrequency(s string) (float64, error) {
	v, unit, err := SplitQuantity(s)
	if err != nil {
		return 0, errors.Parsing(fmt.Sprintf("invalid frequency %q", s), err)
	}
	exp, ok := frequencyExponent[unit]
	if !ok {
		return 0, errors.Parsing(fmt.Sprintf("invalid frequency %q", s), fmt.Errorf("unknown frequency unit %q", unit))
	}
	hz := v.Mul(decimal.New(1, exp))
	if hz.Sign() <= 0 {
		return 0, errors.Configf("frequency must be positive, got %q", s)
	}
	return hz.InexactFloat64(), nil
}

// FormatFrequency renders a frequency in Hz using the largest unit that
// keeps the value at or above one.
func FormatFrequency(hz float64) string {
	switch {
	case hz >= 1e12:
		return fmt.Sprintf("%gTHz", hz/1e12)
	case hz >= 1e9:
		return fmt.Sprintf("%gGHz", hz/1e9)
	case hz >= 1e6:
		return fmt.Sprintf("%gMHz", hz/1e6)
	case hz >= 1e3:
		return fmt.Sprintf("%gkHz", hz/1e3)
	default:
		return fmt.Sprintf("%gHz", hz)
	}
}
