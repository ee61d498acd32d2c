package manifest_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapastro/calsuffix/internal/manifest"
	"github.com/tapastro/calsuffix/internal/registry"
	"github.com/tapastro/calsuffix/internal/testutil"
)

const goodManifest = `
step "dark_current" {
  class = "DarkCurrentStep"

  parameter "dark_output" {
    type    = string
    default = ""
  }
}
`

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	testutil.RegisterSimple(reg, "DarkCurrentStep", "DarkCurrentStep", "dark")
	testutil.RegisterSimple(reg, "RampFitStep", "RampFitStep", "rate")
	return reg
}

func collectResults(t *testing.T, reg *registry.Registry, root string) []manifest.Result {
	t.Helper()
	ctx, _ := testutil.ContextWithLogs()
	var results []manifest.Result
	for res := range manifest.NewLoader(reg).LoadPackageModules(ctx, root) {
		results = append(results, res)
	}
	return results
}

func TestLoadPackageModules(t *testing.T) {
	t.Run("skips private files and tests directories", func(t *testing.T) {
		tmp := testutil.WriteTree(t, map[string]string{
			"steps/darkcurrent/manifest.hcl": goodManifest,
			"steps/_private.hcl":             goodManifest,
			"steps/tests/fixture.hcl":        goodManifest,
		})

		results := collectResults(t, newTestRegistry(t), filepath.Join(tmp, "steps"))

		require.Len(t, results, 1)
		require.NoError(t, results[0].Err)
		assert.Equal(t, "steps.darkcurrent.manifest", results[0].ID)
		require.Len(t, results[0].Module.Steps, 1)
		assert.Equal(t, "dark_current", results[0].Module.Steps[0].Def.Name)
		assert.Equal(t, "DarkCurrentStep", results[0].Module.Steps[0].Handler.Class)
	})

	t.Run("one bad manifest does not stop the others", func(t *testing.T) {
		tmp := testutil.WriteTree(t, map[string]string{
			"steps/a/manifest.hcl": `step "broken" {`,
			"steps/b/manifest.hcl": goodManifest,
		})

		reg := newTestRegistry(t)
		ctx, logs := testutil.ContextWithLogs()
		var ok, failed int
		for res := range manifest.NewLoader(reg).LoadPackageModules(ctx, filepath.Join(tmp, "steps")) {
			if res.Err != nil {
				failed++
				assert.Equal(t, "steps.a.manifest", res.ID)
			} else {
				ok++
				assert.Equal(t, "steps.b.manifest", res.ID)
			}
		}

		assert.Equal(t, 1, failed)
		assert.Equal(t, 1, ok)
		assert.Equal(t, 1, strings.Count(logs.String(), "Cannot load module."))
	})

	t.Run("unregistered class is a load failure", func(t *testing.T) {
		tmp := testutil.WriteTree(t, map[string]string{
			"steps/manifest.hcl": `
step "mystery" {
  class = "NoSuchStep"
}
`,
		})

		results := collectResults(t, newTestRegistry(t), filepath.Join(tmp, "steps"))

		require.Len(t, results, 1)
		require.Error(t, results[0].Err)
		assert.Contains(t, results[0].Err.Error(), "NoSuchStep")
	})

	t.Run("default not convertible to declared type is a load failure", func(t *testing.T) {
		tmp := testutil.WriteTree(t, map[string]string{
			"steps/manifest.hcl": `
step "dark_current" {
  class = "DarkCurrentStep"

  parameter "threshold" {
    type    = number
    default = ["not", "a", "number"]
  }
}
`,
		})

		results := collectResults(t, newTestRegistry(t), filepath.Join(tmp, "steps"))

		require.Len(t, results, 1)
		require.Error(t, results[0].Err)
		assert.Contains(t, results[0].Err.Error(), "threshold")
	})

	t.Run("typed parameters with valid defaults load", func(t *testing.T) {
		tmp := testutil.WriteTree(t, map[string]string{
			"steps/manifest.hcl": `
step "ramp_fit" {
  class = "RampFitStep"

  parameter "maximum_cores" {
    type    = string
    default = "none"
  }

  parameter "suppress_one_group" {
    type    = bool
    default = true
  }

  parameter "weighting_windows" {
    type    = list(number)
    default = [1, 2, 3]
  }
}
`,
		})

		results := collectResults(t, newTestRegistry(t), filepath.Join(tmp, "steps"))

		require.Len(t, results, 1)
		require.NoError(t, results[0].Err)
		require.Len(t, results[0].Module.Steps, 1)
		assert.Len(t, results[0].Module.Steps[0].Def.Parameters, 3)
	})
}
