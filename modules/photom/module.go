// Package photom provides the photometric-calibration step.
package photom

import (
	"fmt"

	"github.com/tapastro/calsuffix/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// PhotomStep applies flux calibration. Its source-catalog products carry the
// "phot" suffix.
type PhotomStep struct {
	InverseFlux bool
}

// Name implements registry.Step.
func (s *PhotomStep) Name() string { return "PhotomStep" }

// Suffix implements registry.Step.
func (s *PhotomStep) Suffix() (string, bool) { return "phot", true }

// Configure implements registry.Step.
func (s *PhotomStep) Configure(params map[string]cty.Value) error {
	for name, val := range params {
		switch name {
		case "inverse":
			if val.Type() != cty.Bool {
				return fmt.Errorf("parameter %q must be a bool", name)
			}
			s.InverseFlux = val.True()
		default:
			return fmt.Errorf("unknown parameter %q", name)
		}
	}
	return nil
}

// Register registers the step classes with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterStep("PhotomStep", &registry.RegisteredStep{
		New: func() (registry.Step, error) { return &PhotomStep{}, nil },
	})
}
