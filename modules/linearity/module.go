// Package linearity provides the classic linearity-correction step.
package linearity

import (
	"fmt"

	"github.com/tapastro/calsuffix/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// LinearityStep applies the per-pixel linearity correction. It writes no
// standalone product, so it declares no suffix.
type LinearityStep struct{}

// Name implements registry.Step.
func (s *LinearityStep) Name() string { return "LinearityStep" }

// Suffix implements registry.Step.
func (s *LinearityStep) Suffix() (string, bool) { return "", false }

// Configure implements registry.Step. The step takes no parameters.
func (s *LinearityStep) Configure(params map[string]cty.Value) error {
	for name := range params {
		return fmt.Errorf("unknown parameter %q", name)
	}
	return nil
}

// Register registers the step classes with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterStep("LinearityStep", &registry.RegisteredStep{
		New: func() (registry.Step, error) { return &LinearityStep{}, nil },
	})
}
