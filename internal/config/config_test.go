// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears a variable for the test while keeping t.Setenv's restore.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("FBCTL_API_KEY", "abc123")
	unsetenv(t, "FBCTL_API_URL", "FBCTL_CACHE_DIR", "FBCTL_CACHE_TTL", "FBCTL_SEASON")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.APIKey)
	assert.Equal(t, "https://api.sportsdata.io/v3", cfg.BaseURL)
	assert.Equal(t, 12*time.Hour, cfg.CacheTTL)
	assert.NotEmpty(t, cfg.CacheDir)
	assert.Equal(t, time.Now().Year(), cfg.Season)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("FBCTL_API_KEY", "abc123")
	t.Setenv("FBCTL_API_URL", "http://localhost:9999/v3")
	t.Setenv("FBCTL_CACHE_DIR", "/tmp/fbctl-test")
	t.Setenv("FBCTL_CACHE_TTL", "1h")
	t.Setenv("FBCTL_SEASON", "2024")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/v3", cfg.BaseURL)
	assert.Equal(t, "/tmp/fbctl-test", cfg.CacheDir)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, 2024, cfg.Season)
}

func TestValidateMissingAPIKey(t *testing.T) {
	unsetenv(t, "FBCTL_API_KEY")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())
}

func TestLoadFileAndGetters(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fbctl.yaml")
	content := []byte("output: json\ncolors:\n  title: \"#ff0000\"\npadding: 2\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("XDG_CONFIG_HOME", dir)

	f, err := LoadFile()
	require.NoError(t, err)
	assert.Equal(t, path, f.Source)

	assert.Equal(t, "json", GetString("output", "text"))
	assert.Equal(t, "#ff0000", GetString("colors.title", "#f6be00"))
	assert.Equal(t, 2, GetInt("padding", 0))

	// Missing keys fall back to defaults.
	assert.Equal(t, "text", GetString("nope", "text"))
	assert.Equal(t, 7, GetInt("colors.missing", 7))
}

func TestLoadFileMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("APPDATA", "")
	t.Setenv("HOME", t.TempDir())

	_, err := LoadFile()
	assert.Error(t, err)
}
