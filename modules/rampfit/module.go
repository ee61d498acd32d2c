// Package rampfit provides the ramp-fitting step: it fits a slope to each
// pixel's up-the-ramp samples and produces countrate products.
package rampfit

import (
	"fmt"

	"github.com/tapastro/calsuffix/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// RampFitStep fits slopes to ramp data. Its products carry the "rate"
// suffix.
type RampFitStep struct {
	MaximumCores string
	SaveOpt      bool
}

// Name implements registry.Step.
func (s *RampFitStep) Name() string { return "RampFitStep" }

// Suffix implements registry.Step.
func (s *RampFitStep) Suffix() (string, bool) { return "rate", true }

// Configure implements registry.Step.
func (s *RampFitStep) Configure(params map[string]cty.Value) error {
	for name, val := range params {
		switch name {
		case "maximum_cores":
			if val.Type() != cty.String {
				return fmt.Errorf("parameter %q must be a string", name)
			}
			s.MaximumCores = val.AsString()
		case "save_opt":
			if val.Type() != cty.Bool {
				return fmt.Errorf("parameter %q must be a bool", name)
			}
			s.SaveOpt = val.True()
		default:
			return fmt.Errorf("unknown parameter %q", name)
		}
	}
	return nil
}

// Register registers the step classes with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterStep("RampFitStep", &registry.RegisteredStep{
		New: func() (registry.Step, error) {
			return &RampFitStep{MaximumCores: "none"}, nil
		},
	})
}
