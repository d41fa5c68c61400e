package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/availgen/availgen/internal/config"
)

// resetInitFlags clears the init flags and restores them after the test.
func resetInitFlags(t *testing.T) {
	t.Helper()
	origForce := initForce
	t.Cleanup(func() { initForce = origForce })
	initForce = false
}

func TestRunInitAt_CreatesConfigFile(t *testing.T) {
	resetInitFlags(t)

	configPath := filepath.Join(t.TempDir(), "availgen", "config.yaml")

	var buf bytes.Buffer
	require.NoError(t, runInitAt(&buf, configPath))
	assert.Contains(t, buf.String(), "Created "+configPath)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, config.SupportedVersion, cfg.Version)
	assert.Equal(t, config.DefaultCheckFunction, cfg.CheckFunction)
	assert.Len(t, cfg.Targets, 2)
	assert.Contains(t, cfg.Targets, "macos")
	assert.Contains(t, cfg.Targets, "ios")
}

func TestRunInitAt_RefusesToOverwrite(t *testing.T) {
	resetInitFlags(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("version: 1\n"), 0600))

	var buf bytes.Buffer
	require.NoError(t, runInitAt(&buf, configPath))
	assert.Contains(t, buf.String(), "already exists")
	assert.Contains(t, buf.String(), "--force")

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "version: 1\n", string(data), "existing file should be untouched")
}

func TestRunInitAt_ForceOverwrites(t *testing.T) {
	resetInitFlags(t)
	initForce = true

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("stale: true\n"), 0600))

	var buf bytes.Buffer
	require.NoError(t, runInitAt(&buf, configPath))
	assert.Contains(t, buf.String(), "Created "+configPath)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, config.SupportedVersion, cfg.Version)
}

func TestInitCommand_Metadata(t *testing.T) {
	assert.Equal(t, "init", initCmd.Use)
	require.NotNil(t, initCmd.Flags().Lookup("force"))
	assert.Equal(t, "f", initCmd.Flags().Lookup("force").Shorthand)
}
