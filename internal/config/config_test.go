package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/industrialist-calc/internal/calculator"
	"github.com/napolitain/industrialist-calc/internal/loader"
)

// isolate keeps the user's home config and .env out of the test
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "industrialist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
	assert.False(t, cfg.Logging.Debug())

	sel, err := cfg.Defaults.Selection(loader.Default())
	require.NoError(t, err)
	assert.Equal(t, calculator.DefaultSelection(), sel)
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
defaults:
  drill_head: steel
  acid: nitric
  oil: machineOil
  depth: 750
output:
  format: json
  color: false
logging:
  level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output.Format)
	assert.False(t, cfg.Output.Color)
	assert.True(t, cfg.Logging.Debug())

	sel, err := cfg.Defaults.Selection(loader.Default())
	require.NoError(t, err)
	assert.Equal(t, calculator.Selection{DrillHead: "steel", Acid: "nitric", Oil: "machineOil", Depth: 750}, sel)
}

func TestLoadConfigDiscoversFileInWorkingDir(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "output:\n  format: yaml\n")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "copper", cfg.Defaults.DrillHead)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "output:\n  format: json\n")
	t.Setenv("INDUSTRIALIST_OUTPUT_FORMAT", "text")
	t.Setenv("INDUSTRIALIST_DEFAULTS_DEPTH", "500")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, 500, cfg.Defaults.Depth)
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("INDUSTRIALIST_LOGGING_LEVEL=warn\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("INDUSTRIALIST_LOGGING_LEVEL") })

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "output:\n  format: xml\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.Output.Format")
	assert.Contains(t, err.Error(), "oneof")
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestDefaultsSelectionUnknownIDs(t *testing.T) {
	d := DefaultsConfig{DrillHead: "coper", Acid: "none", Oil: "machinOil", Depth: 200}

	_, err := d.Selection(loader.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown drill head "coper", did you mean "copper"?`)
	assert.Contains(t, err.Error(), `did you mean "machineOil"?`)
	assert.Contains(t, err.Error(), `unknown depth "200"`)
}
