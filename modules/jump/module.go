// Package jump provides the jump-detection step.
package jump

import (
	"fmt"

	"github.com/tapastro/calsuffix/internal/registry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// JumpStep flags cosmic-ray hits in ramp data. It only annotates the input
// product, so it declares no suffix.
type JumpStep struct {
	RejectionThreshold float64
}

// Name implements registry.Step.
func (s *JumpStep) Name() string { return "JumpStep" }

// Suffix implements registry.Step.
func (s *JumpStep) Suffix() (string, bool) { return "", false }

// Configure implements registry.Step.
func (s *JumpStep) Configure(params map[string]cty.Value) error {
	for name, val := range params {
		switch name {
		case "rejection_threshold":
			if err := gocty.FromCtyValue(val, &s.RejectionThreshold); err != nil {
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
	r.RegisterStep("JumpStep", &registry.RegisteredStep{
		New: func() (registry.Step, error) {
			return &JumpStep{RejectionThreshold: 4.0}, nil
		},
	})
}
