package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapastro/calsuffix/internal/cli"
)

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, shouldExit, err := cli.Parse(nil, out)

		require.NoError(t, err)
		assert.False(t, shouldExit)
		assert.Equal(t, "modules", cfg.PackagePath)
		assert.Equal(t, "pipeline", cfg.ConfigPath)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("help exits cleanly", func(t *testing.T) {
		out := &bytes.Buffer{}
		_, shouldExit, err := cli.Parse([]string{"-h"}, out)

		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("invalid log format", func(t *testing.T) {
		out := &bytes.Buffer{}
		_, _, err := cli.Parse([]string{"-log-format", "xml"}, out)

		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("invalid log level", func(t *testing.T) {
		out := &bytes.Buffer{}
		_, _, err := cli.Parse([]string{"-log-level", "verbose"}, out)

		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("modes", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, _, err := cli.Parse([]string{"-known"}, out)
		require.NoError(t, err)
		assert.True(t, cfg.ShowKnown)

		cfg, _, err = cli.Parse([]string{"-remove", "jw00001_rate"}, out)
		require.NoError(t, err)
		assert.Equal(t, "jw00001_rate", cfg.RemoveName)
	})
}
