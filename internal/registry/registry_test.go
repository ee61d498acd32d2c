package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

type stubStep struct{ name string }

func (s *stubStep) Name() string { return s.name }

func (s *stubStep) Suffix() (string, bool) { return "", false }

func (s *stubStep) Configure(map[string]cty.Value) error { return nil }

func TestRegisterStep(t *testing.T) {
	r := New()
	r.RegisterStep("FooStep", &RegisteredStep{
		New: func() (Step, error) { return &stubStep{name: "FooStep"}, nil },
	})

	got, ok := r.Step("FooStep")
	require.True(t, ok)
	assert.Equal(t, "FooStep", got.Class)

	_, ok = r.Step("BarStep")
	assert.False(t, ok)
}

func TestRegisterStepDuplicatePanics(t *testing.T) {
	r := New()
	reg := &RegisteredStep{New: func() (Step, error) { return &stubStep{}, nil }}
	r.RegisterStep("FooStep", reg)

	assert.Panics(t, func() {
		r.RegisterStep("FooStep", reg)
	})
}

func TestClassesSorted(t *testing.T) {
	r := New()
	for _, class := range []string{"ZStep", "AStep", "MStep"} {
		r.RegisterStep(class, &RegisteredStep{New: func() (Step, error) { return &stubStep{}, nil }})
	}
	assert.Equal(t, []string{"AStep", "MStep", "ZStep"}, r.Classes())
}
