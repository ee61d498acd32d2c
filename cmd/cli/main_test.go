package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	err := run(out, out, args)

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	err := run(out, out, args)

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_Known(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	err := run(out, logs, []string{"-known"})

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Contains(t, lines, "uncal")
	require.Contains(t, lines, "rate")
	require.NotContains(t, lines, "functionwrapper")
}

func TestRun_Remove(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	err := run(out, logs, []string{"-remove", "jw00001_rate"})

	require.NoError(t, err)
	require.Equal(t, "jw00001\n", out.String())
}

func TestRun_DiscoveryAgainstRepoTree(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// Relative to this package's directory.
	err := run(out, logs, []string{
		"-package-path", "../../modules",
		"-config-path", "../../pipeline",
	})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Searching code base for calibration suffixes...")
	require.Contains(t, out.String(), "Known list has")
	require.NotContains(t, out.String(), "Skipped")
}
