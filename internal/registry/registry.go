package registry

import (
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// Step is the capability contract every discoverable processing step
// satisfies. Name reports the step's declared name; an empty string means
// the name could not be determined. Suffix reports the step's default
// output-filename suffix, with ok=false when the step declares none.
type Step interface {
	Name() string
	Suffix() (string, bool)
	Configure(params map[string]cty.Value) error
}

// Module is the interface that all step modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the registered step constructors for a single
// application instance.
type Registry struct {
	steps map[string]*RegisteredStep
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		steps: make(map[string]*RegisteredStep),
	}
}

// Step returns the constructor registered under the given class name.
func (r *Registry) Step(class string) (*RegisteredStep, bool) {
	s, ok := r.steps[class]
	return s, ok
}

// Classes returns the sorted class names of all registered steps.
func (r *Registry) Classes() []string {
	classes := make([]string, 0, len(r.steps))
	for class := range r.steps {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	return classes
}
