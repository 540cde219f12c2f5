package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	require.Equal(t, zerolog.InfoLevel, cfg.level())
}

func TestLoadConfigTOMLOverrides(t *testing.T) {
	path := writeConfig(t, "fixedarray.toml", `
log_level = "debug"
output = "yaml"
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, outputYAML, cfg.Output)
	require.Equal(t, ",", cfg.Separator, "undefined keys keep their default")
	require.Equal(t, zerolog.DebugLevel, cfg.level())
}

func TestLoadConfigYAMLOverrides(t *testing.T) {
	path := writeConfig(t, "fixedarray.yaml", "separator: \";\"\n")
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, ";", cfg.Separator)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, outputText, cfg.Output)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorContains(t, err, "load config")

	_, err = loadConfig(writeConfig(t, "fixedarray.json", "{}"))
	require.ErrorContains(t, err, "unsupported extension")

	_, err = loadConfig(writeConfig(t, "bad.toml", `output = "xml"`))
	require.ErrorContains(t, err, "output must be")

	_, err = loadConfig(writeConfig(t, "bad.yml", "log_level: loud\n"))
	require.ErrorContains(t, err, "parse log_level")

	_, err = loadConfig(writeConfig(t, "bad.yaml", "separator: \"\"\n"))
	require.ErrorContains(t, err, "separator")
}

func TestParseList(t *testing.T) {
	a, err := parseList("1, 2,3", ",")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, a.Data())

	e, err := parseList("  ", ",")
	require.NoError(t, err)
	require.True(t, e.Empty())

	_, err = parseList("1,x", ",")
	require.ErrorContains(t, err, `parse element "x"`)
}
