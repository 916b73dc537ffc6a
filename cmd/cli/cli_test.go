// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chordbook/internal/config"
)

// setupEnv points the config and state directories at per-test temp dirs so
// command runs never touch the real user configuration.
func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
}

// execute runs the CLI with the given arguments and captures its output.
// Flag variables are sticky across Execute calls, so they are reset first.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	showAllVariants = false
	showWidth = 0

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestShowArgumentOrder(t *testing.T) {
	setupEnv(t)

	out, _, err := execute(t, "show", "C", "Am", "F", "G", "--width", "200")
	require.NoError(t, err)

	firstLine := strings.SplitN(out, "\n", 2)[0]
	assert.Regexp(t, `^C\s+Am\s+F\s+G\s*$`, firstLine)
}

func TestShowAllVariants(t *testing.T) {
	setupEnv(t)

	out, _, err := execute(t, "show", "--all", "C", "--width", "200")
	require.NoError(t, err)

	assert.Contains(t, out, "C (2)")
}

func TestShowUnknownChords(t *testing.T) {
	setupEnv(t)

	t.Run("all unknown fails", func(t *testing.T) {
		out, errOut, err := execute(t, "show", "Zz")

		assert.Error(t, err)
		assert.Contains(t, errOut, "Chord not found: Zz")
		assert.Empty(t, out)
	})

	t.Run("partial match still renders", func(t *testing.T) {
		out, errOut, err := execute(t, "show", "C", "Zz", "--width", "200")

		require.NoError(t, err)
		assert.Contains(t, errOut, "Chord not found: Zz")
		assert.Contains(t, out, "C")
	})
}

func TestConfigInit(t *testing.T) {
	setupEnv(t)

	_, _, err := execute(t, "config", "init")
	require.NoError(t, err)

	path, err := config.DefaultConfigPath()
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)

	t.Run("refuses to overwrite", func(t *testing.T) {
		_, _, err := execute(t, "config", "init")

		assert.ErrorContains(t, err, "already exists")
	})
}

func TestConfigSetWidth(t *testing.T) {
	setupEnv(t)

	out, _, err := execute(t, "config", "set-width", "120")
	require.NoError(t, err)
	assert.Contains(t, out, "120")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Width)

	t.Run("get-width reads it back", func(t *testing.T) {
		out, _, err := execute(t, "config", "get-width")

		require.NoError(t, err)
		assert.Contains(t, out, "120")
	})

	t.Run("rejects a non-numeric width", func(t *testing.T) {
		_, _, err := execute(t, "config", "set-width", "wide")

		assert.ErrorContains(t, err, "non-negative integer")
	})
}

func TestConfigPath(t *testing.T) {
	setupEnv(t)

	out, _, err := execute(t, "config", "path")
	require.NoError(t, err)

	assert.Contains(t, out, "chordbook")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "config.yaml"))
}
