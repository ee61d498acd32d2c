package app_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapastro/calsuffix/internal/app"
	"github.com/tapastro/calsuffix/internal/registry"
	"github.com/tapastro/calsuffix/internal/testutil"
)

// moduleFunc adapts a plain function to the registry.Module interface.
type moduleFunc func(r *registry.Registry)

func (f moduleFunc) Register(r *registry.Registry) { f(r) }

func TestNewConfig(t *testing.T) {
	t.Run("requires a package path for discovery", func(t *testing.T) {
		_, err := app.NewConfig(app.Config{})
		require.Error(t, err)
	})

	t.Run("known and remove modes need no paths", func(t *testing.T) {
		_, err := app.NewConfig(app.Config{ShowKnown: true})
		require.NoError(t, err)

		_, err = app.NewConfig(app.Config{RemoveName: "jw00001_rate"})
		require.NoError(t, err)
	})
}

func TestAppRunDiscovery(t *testing.T) {
	tmp := testutil.WriteTree(t, map[string]string{
		"steps/foo/manifest.hcl": `
step "foo" {
  class = "FooStep"
}
`,
		"steps/broken/manifest.hcl": `step "broken" {`,
		"pipeline/rate.cfg": `
class = "RateStep"
name  = "Rate"
`,
	})

	cfg, err := app.NewConfig(app.Config{
		PackagePath: filepath.Join(tmp, "steps"),
		ConfigPath:  filepath.Join(tmp, "pipeline"),
		LogLevel:    "debug",
		LogFormat:   "text",
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	testApp := app.NewApp(out, logs, cfg, moduleFunc(func(r *registry.Registry) {
		testutil.RegisterSimple(r, "FooStep", "FooStep", "")
		testutil.RegisterSimple(r, "RateStep", "Rate", "rate")
	}))

	require.NoError(t, testApp.Run(context.Background()))

	assert.Contains(t, out.String(), "Searching code base for calibration suffixes...")
	assert.Contains(t, out.String(), "Known list has")
	// "foostep" is discovered but not in the committed list, so it shows up
	// as drift.
	assert.Contains(t, out.String(), "foostep")
	// The broken manifest is reported, not fatal.
	assert.Contains(t, out.String(), "steps.broken.manifest")
	assert.Contains(t, logs.String(), "Cannot load module.")
}

func TestAppRunModes(t *testing.T) {
	t.Run("known mode prints the list", func(t *testing.T) {
		cfg, err := app.NewConfig(app.Config{ShowKnown: true, LogLevel: "warn", LogFormat: "text"})
		require.NoError(t, err)

		out := &bytes.Buffer{}
		testApp := app.NewApp(out, &testutil.SafeBuffer{}, cfg, moduleFunc(func(r *registry.Registry) {}))
		require.NoError(t, testApp.Run(context.Background()))

		assert.Contains(t, out.String(), "uncal\n")
	})

	t.Run("remove mode strips a known suffix", func(t *testing.T) {
		cfg, err := app.NewConfig(app.Config{RemoveName: "jw0042_cal", LogLevel: "warn", LogFormat: "text"})
		require.NoError(t, err)

		out := &bytes.Buffer{}
		testApp := app.NewApp(out, &testutil.SafeBuffer{}, cfg, moduleFunc(func(r *registry.Registry) {}))
		require.NoError(t, testApp.Run(context.Background()))

		assert.Equal(t, "jw0042\n", out.String())
	})
}
