package registry

import (
	"fmt"
	"log/slog"
)

// RegisteredStep holds the compiled Go parts of a step class.
type RegisteredStep struct {
	// Class is the name the constructor was registered under. It is filled
	// in by RegisterStep.
	Class string

	// New constructs a fresh instance with no arguments. Construction may
	// fail; discovery treats that as a per-class, non-fatal condition.
	New func() (Step, error)
}

// RegisterStep registers a Go constructor for a step class.
func (r *Registry) RegisterStep(class string, handler *RegisteredStep) {
	if _, exists := r.steps[class]; exists {
		panic(fmt.Sprintf("step class '%s' already registered", class))
	}
	slog.Debug("Registering step class.", "class", class)
	handler.Class = class
	r.steps[class] = handler
}
