package units

import (
	"math"
	"testing"

	"ringsky/internal/errors"
)

func TestParseAngle_Sexagesimal(t *testing.T) {
	cases := []struct {
		value   string
		role    Role
		wantRad float64
	}{
		{"12h00m00.00s", RoleRA, math.Pi},
		{"00h00m00.00s", RoleRA, 0},
		{"06h00m00s", RoleRA, math.Pi / 2},
		{"-23d00m00.00", RoleDec, -23.0 * math.Pi / 180.0},
		{"+23d00m00.00", RoleDec, 23.0 * math.Pi / 180.0},
		{"-23d30m00.00", RoleDec, -23.5 * math.Pi / 180.0},
		{"00d00m36.00", RoleDec, 0.01 * math.Pi / 180.0},
		{"-23d00m00.00s", RoleDec, -23.0 * math.Pi / 180.0},
	}

	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			a, err := ParseAngle(tc.value, tc.role)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(a.Radians()-tc.wantRad) > 1e-12 {
				t.Errorf("ParseAngle(%q) = %.15g rad, want %.15g", tc.value, a.Radians(), tc.wantRad)
			}
		})
	}
}

func TestParseAngle_DecimalWithUnit(t *testing.T) {
	cases := []struct {
		value   string
		wantRad float64
	}{
		{"1rad", 1.0},
		{"0.5rad", 0.5},
		{"180deg", math.Pi},
		{"-45deg", -math.Pi / 4},
		{"60arcmin", math.Pi / 180.0},
		{"3600arcsec", math.Pi / 180.0},
		{"0.0009arcsec", 0.0009 / 3600.0 * math.Pi / 180.0},
		{"1000mas", 1.0 / 3600.0 * math.Pi / 180.0},
	}

	for _, tc := range cases {
		a, err := ParseAngle(tc.value, RoleDec)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.value, err)
		}
		if math.Abs(a.Radians()-tc.wantRad) > 1e-15*math.Max(1, math.Abs(tc.wantRad)) {
			t.Errorf("ParseAngle(%q) = %.15g rad, want %.15g", tc.value, a.Radians(), tc.wantRad)
		}
	}
}

func TestParseAngle_Invalid(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"12h00m00.00q",
		"12:00:00",
		"1.5",      // bare number, no unit
		"23d60m00", // minutes out of range
		"23d00m61", // seconds out of range
		"1.5parsec",
	}

	for _, value := range cases {
		_, err := ParseAngle(value, RoleRA)
		if err == nil {
			t.Errorf("ParseAngle(%q) succeeded, want error", value)
			continue
		}
		if !errors.IsType(err, errors.TypeInvalidAngle) {
			t.Errorf("ParseAngle(%q) error type = %v, want %s", value, err, errors.TypeInvalidAngle)
		}
	}
}

func TestValidate_ReturnsValueUnchanged(t *testing.T) {
	got, err := Validate("-23d00m00.00", RoleDec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "-23d00m00.00" {
		t.Errorf("Validate returned %q, want input unchanged", got)
	}

	if _, err := Validate("garbage", RoleDec); err == nil {
		t.Error("Validate accepted garbage")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	ra, err := ParseAngle("12h34m56.78s", RoleRA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := ParseAngle(FormatRA(ra), RoleRA)
	if err != nil {
		t.Fatalf("formatted RA %q failed to parse: %v", FormatRA(ra), err)
	}
	if math.Abs(back.Radians()-ra.Radians()) > 1e-6 {
		t.Errorf("RA round trip drifted: %.9g -> %.9g", ra.Radians(), back.Radians())
	}

	dec, err := ParseAngle("-23d30m15.50", RoleDec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err = ParseAngle(FormatDec(dec), RoleDec)
	if err != nil {
		t.Fatalf("formatted Dec %q failed to parse: %v", FormatDec(dec), err)
	}
	if math.Abs(back.Radians()-dec.Radians()) > 1e-6 {
		t.Errorf("Dec round trip drifted: %.9g -> %.9g", dec.Radians(), back.Radians())
	}
}

func TestAngleConversions(t *testing.T) {
	a := FromArcsec(3600.0)
	if math.Abs(a.Degrees()-1.0) > 1e-12 {
		t.Errorf("3600 arcsec = %g deg, want 1", a.Degrees())
	}
	if math.Abs(a.Arcsec()-3600.0) > 1e-9 {
		t.Errorf("Arcsec() = %g, want 3600", a.Arcsec())
	}
}
