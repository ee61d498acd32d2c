package testutil

import (
	"errors"

	"github.com/tapastro/calsuffix/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// SimpleStep is a minimal registry.Step implementation for tests. The zero
// value is a step with no name and no suffix.
type SimpleStep struct {
	StepName   string
	StepSuffix string
	Params     map[string]cty.Value
}

// Name implements registry.Step.
func (s *SimpleStep) Name() string { return s.StepName }

// Suffix implements registry.Step.
func (s *SimpleStep) Suffix() (string, bool) {
	if s.StepSuffix == "" {
		return "", false
	}
	return s.StepSuffix, true
}

// Configure implements registry.Step by accepting any parameters verbatim.
func (s *SimpleStep) Configure(params map[string]cty.Value) error {
	s.Params = params
	return nil
}

// SimpleModule is a test helper for easily creating a mock module that
// registers a single step class.
type SimpleModule struct {
	Class string
	Step  *registry.RegisteredStep
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	if m.Class != "" && m.Step != nil {
		r.RegisterStep(m.Class, m.Step)
	}
}

// RegisterSimple registers a class whose instances report the given name and
// suffix.
func RegisterSimple(r *registry.Registry, class, name, suffix string) {
	r.RegisterStep(class, &registry.RegisteredStep{
		New: func() (registry.Step, error) {
			return &SimpleStep{StepName: name, StepSuffix: suffix}, nil
		},
	})
}

// RegisterFailing registers a class whose zero-argument construction always
// fails. Useful for exercising the warn-and-skip path.
func RegisterFailing(r *registry.Registry, class string) {
	r.RegisterStep(class, &registry.RegisteredStep{
		New: func() (registry.Step, error) {
			return nil, errors.New("refusing to instantiate")
		},
	})
}

// RegisterNameless registers a class that constructs fine but reports an
// empty name. Discovery skips such instances silently.
func RegisterNameless(r *registry.Registry, class string) {
	r.RegisterStep(class, &registry.RegisteredStep{
		New: func() (registry.Step, error) {
			return &SimpleStep{}, nil
		},
	})
}
