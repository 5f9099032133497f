package geometry

import (
	"math"
	"testing"

	"ringsky/internal/errors"
)

// relTol is the relative tolerance for flux accounting checks.
const relTol = 1e-9

func relClose(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= relTol*scale
}

func TestComputeRing_FluxInvariance(t *testing.T) {
	// Net flux must equal the requested total flux regardless of ring
	// index, i.e. regardless of the absolute radii.
	cases := []struct {
		name      string
		diameter  float64
		thickness float64
		spacing   float64
		flux      float64
	}{
		{"nominal", 0.0045, 0.0045, 0.0090, 2.7e-4},
		{"wide rings", 1.0, 0.5, 0.1, 1.0},
		{"tight spacing", 0.01, 0.002, 0.0, 3.3e-5},
		{"large flux", 0.1, 0.05, 0.02, 125.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for j := 0; j < 10; j++ {
				r, err := ComputeRing(j, tc.diameter, tc.thickness, tc.spacing, TotalFlux(tc.flux))
				if err != nil {
					t.Fatalf("ring %d: unexpected error: %v", j, err)
				}
				if !relClose(r.NetFlux(), tc.flux) {
					t.Errorf("ring %d: net flux = %.12e, want %.12e", j, r.NetFlux(), tc.flux)
				}
			}
		})
	}
}

func TestComputeRing_SurfaceBrightnessConsistency(t *testing.T) {
	const intensity = 5.66
	for j := 0; j < 8; j++ {
		r, err := ComputeRing(j, 0.0045, 0.0045, 0.0090, SurfaceBrightness(intensity))
		if err != nil {
			t.Fatalf("ring %d: unexpected error: %v", j, err)
		}
		got := r.NetFlux() / r.AnnulusArea
		if !relClose(got, intensity) {
			t.Errorf("ring %d: net flux / area = %.12e, want %.12e", j, got, intensity)
		}
		if !relClose(r.SurfaceBrightness, intensity) {
			t.Errorf("ring %d: surface brightness = %g, want %g", j, r.SurfaceBrightness, intensity)
		}
	}
}

func TestComputeRings_MonotonicRadii(t *testing.T) {
	const n = 6
	rings, err := ComputeRings(n, 0.0045, 0.0045, 0.0090, TotalFlux(2.7e-4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rings) != n {
		t.Fatalf("got %d rings, want %d", len(rings), n)
	}
	for i, r := range rings {
		if r.Rin >= r.Rout {
			t.Errorf("ring %d: Rin=%g >= Rout=%g", i, r.Rin, r.Rout)
		}
		if i > 0 {
			prev := rings[i-1]
			if prev.Rout > r.Rin {
				t.Errorf("rings %d and %d overlap: Rout=%g > Rin=%g", i-1, i, prev.Rout, r.Rin)
			}
			gap := r.Rin - prev.Rout
			if !relClose(gap, 0.0090) {
				t.Errorf("gap between rings %d and %d = %g, want 0.0090", i-1, i, gap)
			}
		}
	}
}

func TestComputeRing_DegenerateTotalFluxRejected(t *testing.T) {
	_, err := ComputeRing(0, 0.0045, 0, 0.0090, TotalFlux(2.7e-4))
	if err == nil {
		t.Fatal("expected degenerate ring error for zero thickness under total flux, got nil")
	}
	if !errors.IsType(err, errors.TypeDegenerateRing) {
		t.Errorf("error type = %v, want %s", err, errors.TypeDegenerateRing)
	}
}

func TestComputeRing_DegenerateSurfaceBrightnessAllowed(t *testing.T) {
	// Under surface-brightness mode a zero-area annulus is legal and
	// must yield a zero-flux ring, not an error.
	r, err := ComputeRing(0, 0.0045, 0, 0.0090, SurfaceBrightness(1.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.NetFlux() != 0 {
		t.Errorf("net flux = %g, want 0", r.NetFlux())
	}
	if r.FluxOuter != r.FluxInner {
		t.Errorf("FluxOuter=%g != FluxInner=%g for zero-thickness ring", r.FluxOuter, r.FluxInner)
	}
}

func TestComputeRing_NoNaN(t *testing.T) {
	r, err := ComputeRing(3, 0.0045, 0.0045, 0.0090, TotalFlux(2.7e-4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for name, v := range map[string]float64{
		"Rin": r.Rin, "Rout": r.Rout, "AnnulusArea": r.AnnulusArea,
		"FluxOuter": r.FluxOuter, "FluxInner": r.FluxInner,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s = %g, want finite", name, v)
		}
	}
}

func TestComputeRing_ReferenceScenario(t *testing.T) {
	// central_diameter=0.0045", thickness=0.0045", spacing=0.009",
	// ring_flux=2.7e-4 Jy, first ring.
	r, err := ComputeRing(0, 0.0045, 0.0045, 0.0090, TotalFlux(2.7e-4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !relClose(r.Rin, 0.00225) {
		t.Errorf("Rin = %g, want 0.00225", r.Rin)
	}
	if !relClose(r.Rout, 0.00675) {
		t.Errorf("Rout = %g, want 0.00675", r.Rout)
	}

	wantArea := math.Pi * (0.00675*0.00675 - 0.00225*0.00225)
	if !relClose(r.AnnulusArea, wantArea) {
		t.Errorf("annulus area = %g, want %g", r.AnnulusArea, wantArea)
	}
	if math.Abs(r.AnnulusArea-1.2723e-4) > 1e-7 {
		t.Errorf("annulus area = %.4e, want ~1.2723e-4", r.AnnulusArea)
	}

	if math.Abs(r.SurfaceBrightness-2.122) > 0.01 {
		t.Errorf("surface brightness = %.3f, want ~2.122", r.SurfaceBrightness)
	}
	if !relClose(r.FluxOuter, 3.0375e-4) {
		t.Errorf("Fout = %.6e, want 3.0375e-4", r.FluxOuter)
	}
	if !relClose(r.FluxInner, 3.375e-5) {
		t.Errorf("Finn = %.6e, want 3.375e-5", r.FluxInner)
	}
	if !relClose(r.NetFlux(), 2.7e-4) {
		t.Errorf("net flux = %.12e, want 2.7e-4", r.NetFlux())
	}
}

func TestComputeRings_PropagatesError(t *testing.T) {
	_, err := ComputeRings(3, 0.0045, 0, 0, TotalFlux(1.0))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
