// Package darkcurrent provides the dark-current subtraction step.
package darkcurrent

import (
	"fmt"

	"github.com/tapastro/calsuffix/internal/registry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// DarkCurrentStep subtracts the dark-current reference data from ramp data.
// Its products carry the "dark" suffix.
type DarkCurrentStep struct {
	DarkOutput         string
	AverageDarkCurrent float64
}

// Name implements registry.Step.
func (s *DarkCurrentStep) Name() string { return "DarkCurrentStep" }

// Suffix implements registry.Step.
func (s *DarkCurrentStep) Suffix() (string, bool) { return "dark", true }

// Configure implements registry.Step.
func (s *DarkCurrentStep) Configure(params map[string]cty.Value) error {
	for name, val := range params {
		switch name {
		case "dark_output":
			if err := gocty.FromCtyValue(val, &s.DarkOutput); err != nil {
				return fmt.Errorf("parameter %q: %w", name, err)
			}
		case "average_dark_current":
			if err := gocty.FromCtyValue(val, &s.AverageDarkCurrent); err != nil {
				return fmt.Errorf("parameter %q: %w", name, err)
			}
		default:
			return fmt.Errorf("unknown parameter %q", name)
		}
	}
	return nil
}

// Register registers the step classes with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterStep("DarkCurrentStep", &registry.RegisteredStep{
		New: func() (registry.Step, error) { return &DarkCurrentStep{}, nil },
	})
}
