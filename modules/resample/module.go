// Package resample provides the imaging and spectral resampling steps.
package resample

import (
	"fmt"

	"github.com/tapastro/calsuffix/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package. It
// registers both the imaging and the spectroscopic resampling classes.
type Module struct{}

// ResampleStep drizzles imaging data onto a common output grid. Its
// products carry the "i2d" suffix.
type ResampleStep struct {
	PixfracIsSet bool
	Pixfrac      float64
}

// Name implements registry.Step.
func (s *ResampleStep) Name() string { return "ResampleStep" }

// Suffix implements registry.Step.
func (s *ResampleStep) Suffix() (string, bool) { return "i2d", true }

// Configure implements registry.Step.
func (s *ResampleStep) Configure(params map[string]cty.Value) error {
	return configureResample(params, &s.Pixfrac, &s.PixfracIsSet)
}

// ResampleSpecStep resamples spectroscopic data. Its products carry the
// "s2d" suffix.
type ResampleSpecStep struct {
	PixfracIsSet bool
	Pixfrac      float64
}

// Name implements registry.Step.
func (s *ResampleSpecStep) Name() string { return "ResampleSpecStep" }

// Suffix implements registry.Step.
func (s *ResampleSpecStep) Suffix() (string, bool) { return "s2d", true }

// Configure implements registry.Step.
func (s *ResampleSpecStep) Configure(params map[string]cty.Value) error {
	return configureResample(params, &s.Pixfrac, &s.PixfracIsSet)
}

// configureResample handles the parameter set shared by both resampling
// classes.
func configureResample(params map[string]cty.Value, pixfrac *float64, isSet *bool) error {
	for name, val := range params {
		switch name {
		case "pixfrac":
			if val.Type() != cty.Number {
				return fmt.Errorf("parameter %q must be a number", name)
			}
			f, _ := val.AsBigFloat().Float64()
			*pixfrac = f
			*isSet = true
		default:
			return fmt.Errorf("unknown parameter %q", name)
		}
	}
	return nil
}

// Register registers the step classes with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterStep("ResampleStep", &registry.RegisteredStep{
		New: func() (registry.Step, error) { return &ResampleStep{Pixfrac: 1.0}, nil },
	})
	r.RegisterStep("ResampleSpecStep", &registry.RegisteredStep{
		New: func() (registry.Step, error) { return &ResampleSpecStep{Pixfrac: 1.0}, nil },
	})
}
