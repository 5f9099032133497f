// Package config provides configuration management for ring sky-model runs.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"ringsky/core/geometry"
	"ringsky/core/units"
	"ringsky/internal/errors"
	"ringsky/internal/logging"
)

// Config is the full run configuration. All lengths are arcseconds,
// fluxes Jy, surface brightness Jy/arcsec^2. Optional fields are
// pointers so that "unset" and "zero" stay distinct; the documented
// precedence is resolved once, through RingFluxSpec and CentralFluxJy,
// never ad hoc.
type Config struct {
	// RACenter is the right ascension of the model center (angle string)
	RACenter string `json:"ra_center" hcl:"ra_center,optional"`

	// DecCenter is the declination of the model center (angle string)
	DecCenter string `json:"dec_center" hcl:"dec_center,optional"`

	// Freq is the reference frequency (e.g. "343.5GHz")
	Freq string `json:"freq" hcl:"freq,optional"`

	// NRings is the number of concentric rings around the central disk
	NRings int `json:"n_rings" hcl:"n_rings,optional"`

	// CentralDiameter is the diameter of the central compact disk
	CentralDiameter float64 `json:"central_diameter" hcl:"central_diameter,optional"`

	// RingThickness is the radial width of each ring
	RingThickness float64 `json:"ring_thickness" hcl:"ring_thickness,optional"`

	// RingSpacing is the edge-to-edge gap between consecutive rings
	RingSpacing float64 `json:"ring_spacing" hcl:"ring_spacing,optional"`

	// Flux is the default total flux (Jy) used when central_flux or
	// ring_flux is unset
	Flux float64 `json:"flux" hcl:"flux,optional"`

	// CentralFlux overrides Flux for the central disk
	CentralFlux *float64 `json:"central_flux,omitempty" hcl:"central_flux,optional"`

	// RingFlux overrides Flux for ring components
	RingFlux *float64 `json:"ring_flux,omitempty" hcl:"ring_flux,optional"`

	// RingSurfaceBrightness switches rings to uniform surface-brightness
	// mode and takes precedence over RingFlux
	RingSurfaceBrightness *float64 `json:"ring_surface_brightness,omitempty" hcl:"ring_surface_brightness,optional"`

	// ImShape is the image width and height in pixels
	ImShape []int `json:"im_shape" hcl:"im_shape,optional"`

	// CellSize is the pixel scale in arcsec/pixel
	CellSize float64 `json:"cell_size" hcl:"cell_size,optional"`

	// OutputBase is the base name for output artifacts
	OutputBase string `json:"output_base" hcl:"output_base,optional"`

	// Logging contains logging configuration
	Logging *logging.Config `json:"logging,omitempty" hcl:"logging,block"`
}

// Default returns the canonical run configuration.
func Default() *Config {
	return &Config{
		RACenter:        "12h00m00.00s",
		DecCenter:       "-23d00m00.00",
		Freq:            "343.5GHz",
		NRings:          3,
		CentralDiameter: 0.0045,
		RingThickness:   0.0045,
		RingSpacing:     0.0090,
		Flux:            2.7e-4,
		ImShape:         []int{160, 160},
		CellSize:        0.0009,
		OutputBase:      "ringModel",
	}
}

// Load reads a configuration file, layered over defaults. Files ending
// in .json are decoded as JSON (the pipeline hand-off format); anything
// else is parsed as HCL.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IO("reading config", err)
	}

	cfg := Default()
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.Parsing(fmt.Sprintf("decoding %s", path), err)
		}
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("parsing %s", path), diags)
	}
	if diags := gohcl.DecodeBody(file.Body, nil, cfg); diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("decoding %s", path), diags)
	}
	return cfg, nil
}

// Validate checks the configuration once, at load time. The angle
// strings must convert cleanly, the frequency must parse, and the
// geometry and grid parameters must be usable. Ring thickness and
// spacing of zero are allowed here: whether a zero-area annulus is an
// error depends on the flux mode and is decided by the geometry engine.
func (c *Config) Validate() error {
	if _, err := units.Validate(c.RACenter, units.RoleRA); err != nil {
		return err
	}
	if _, err := units.Validate(c.DecCenter, units.RoleDec); err != nil {
		return err
	}
	if _, err := units.ParseFrequency(c.Freq); err != nil {
		return err
	}
	if c.NRings < 0 {
		return errors.Configf("n_rings must be non-negative, got %d", c.NRings)
	}
	if c.CentralDiameter <= 0 {
		return errors.Configf("central_diameter must be positive, got %g", c.CentralDiameter)
	}
	if c.RingThickness < 0 {
		return errors.Configf("ring_thickness must not be negative, got %g", c.RingThickness)
	}
	if c.RingSpacing < 0 {
		return errors.Configf("ring_spacing must not be negative, got %g", c.RingSpacing)
	}
	if len(c.ImShape) != 2 || c.ImShape[0] <= 0 || c.ImShape[1] <= 0 {
		return errors.Configf("im_shape must be two positive integers, got %v", c.ImShape)
	}
	if c.CellSize <= 0 {
		return errors.Configf("cell_size must be positive, got %g", c.CellSize)
	}
	if c.OutputBase == "" {
		return errors.Config("output_base must not be empty")
	}
	return nil
}

// RingFluxSpec resolves the flux specification for ring components:
// ring_surface_brightness over ring_flux over the global flux default.
func (c *Config) RingFluxSpec() geometry.FluxSpec {
	if c.RingSurfaceBrightness != nil {
		return geometry.SurfaceBrightness(*c.RingSurfaceBrightness)
	}
	if c.RingFlux != nil {
		return geometry.TotalFlux(*c.RingFlux)
	}
	return geometry.TotalFlux(c.Flux)
}

// CentralFluxJy resolves the central disk flux: central_flux over the
// global flux default. The central disk is always a total-flux quantity.
func (c *Config) CentralFluxJy() float64 {
	if c.CentralFlux != nil {
		return *c.CentralFlux
	}
	return c.Flux
}

// HasFluxConflict reports whether both ring_flux and
// ring_surface_brightness were set explicitly. Surface brightness wins;
// callers may want to warn.
func (c *Config) HasFluxConflict() bool {
	return c.RingFlux != nil && c.RingSurfaceBrightness != nil
}

// LoggingConfig returns the logging section, or defaults when absent.
func (c *Config) LoggingConfig() logging.Config {
	if c.Logging != nil {
		return *c.Logging
	}
	return logging.DefaultConfig()
}
