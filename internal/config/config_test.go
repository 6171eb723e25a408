package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))

	assert.Equal(t, "random", cfg.Wipe.Algorithm)
	assert.Equal(t, 3, cfg.Wipe.Passes)
	assert.Equal(t, 0, cfg.Wipe.BufferSizeKB)
	assert.Equal(t, 100, cfg.Progress.InteractiveIntervalMs)
	assert.Equal(t, 500, cfg.Progress.MachineIntervalMs)
	assert.True(t, cfg.Security.RequireConfirmation)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := Default()
	cfg.Wipe.Algorithm = "gutmann"
	cfg.Wipe.BufferSizeKB = 2048
	cfg.Wipe.MaxSpeedMBps = 25.5
	cfg.Logging.Level = "debug"
	cfg.Reporting.Enabled = true

	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wipe: [not a map"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad algorithm", func(c *Config) { c.Wipe.Algorithm = "shred" }},
		{"custom zero passes", func(c *Config) { c.Wipe.Algorithm = "custom"; c.Wipe.Passes = 0 }},
		{"negative passes", func(c *Config) { c.Wipe.Passes = -1 }},
		{"too many passes", func(c *Config) { c.Wipe.Passes = 101 }},
		{"negative buffer", func(c *Config) { c.Wipe.BufferSizeKB = -1 }},
		{"huge buffer", func(c *Config) { c.Wipe.BufferSizeKB = 2 * 1024 * 1024 }},
		{"negative speed", func(c *Config) { c.Wipe.MaxSpeedMBps = -1 }},
		{"zero interactive interval", func(c *Config) { c.Progress.InteractiveIntervalMs = 0 }},
		{"zero machine interval", func(c *Config) { c.Progress.MachineIntervalMs = 0 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "trace" }},
		{"empty protected path", func(c *Config) { c.Security.ProtectedPaths = []string{""} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	cfg := Default()
	cfg.Wipe.Algorithm = "bogus"
	assert.Error(t, Save(cfg, filepath.Join(t.TempDir(), "config.yaml")))
}

func TestApplyProfile(t *testing.T) {
	cfg := Default()
	require.NoError(t, ApplyProfile(cfg, "quick"))
	assert.Equal(t, "zero", cfg.Wipe.Algorithm)
	assert.True(t, cfg.Wipe.FastMode)

	cfg = Default()
	require.NoError(t, ApplyProfile(cfg, "paranoid"))
	assert.Equal(t, "gutmann", cfg.Wipe.Algorithm)
	assert.False(t, cfg.Wipe.FastMode)

	cfg = Default()
	require.NoError(t, ApplyProfile(cfg, "gentle"))
	assert.Equal(t, "random", cfg.Wipe.Algorithm)
	assert.Equal(t, 50.0, cfg.Wipe.MaxSpeedMBps)

	assert.Error(t, ApplyProfile(Default(), "warp"))
}
