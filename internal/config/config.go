package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the full YAML configuration. Flags may override individual
// fields after loading.
type Config struct {
	Wipe struct {
		Algorithm    string  `yaml:"algorithm"`
		Passes       int     `yaml:"passes"`
		BufferSizeKB int     `yaml:"buffer_size_kb"` // 0 = auto-size
		FastMode     bool    `yaml:"fast_mode"`
		MaxSpeedMBps float64 `yaml:"max_speed_mbps"` // 0 = unthrottled
	} `yaml:"wipe"`

	Progress struct {
		InteractiveIntervalMs int `yaml:"interactive_interval_ms"`
		MachineIntervalMs     int `yaml:"machine_interval_ms"`
	} `yaml:"progress"`

	Logging struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"logging"`

	Reporting struct {
		Enabled   bool   `yaml:"enabled"`
		LocalPath string `yaml:"local_path"`
	} `yaml:"reporting"`

	Security struct {
		RequireConfirmation bool     `yaml:"require_confirmation"`
		ProtectedPaths      []string `yaml:"protected_paths"`
	} `yaml:"security"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}

	cfg.Wipe.Algorithm = "random"
	cfg.Wipe.Passes = 3
	cfg.Wipe.BufferSizeKB = 0
	cfg.Wipe.FastMode = false
	cfg.Wipe.MaxSpeedMBps = 0

	cfg.Progress.InteractiveIntervalMs = 100
	cfg.Progress.MachineIntervalMs = 500

	cfg.Logging.Level = "info"
	cfg.Logging.File = ""

	cfg.Reporting.Enabled = false
	cfg.Reporting.LocalPath = "./reports"

	cfg.Security.RequireConfirmation = true
	cfg.Security.ProtectedPaths = []string{"/", "/boot", "/etc"}

	return cfg
}

// Load reads a YAML config from path; a missing or empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func Validate(cfg *Config) error {
	validAlgorithms := map[string]bool{
		"zero": true, "random": true, "dod5220": true, "gutmann": true, "custom": true,
	}
	if !validAlgorithms[cfg.Wipe.Algorithm] {
		return fmt.Errorf("invalid wipe algorithm: %s", cfg.Wipe.Algorithm)
	}

	if cfg.Wipe.Algorithm == "custom" && cfg.Wipe.Passes < 1 {
		return fmt.Errorf("custom passes must be at least 1, got %d", cfg.Wipe.Passes)
	}
	if cfg.Wipe.Passes < 0 || cfg.Wipe.Passes > 100 {
		return fmt.Errorf("passes must be between 0 and 100, got %d", cfg.Wipe.Passes)
	}

	if cfg.Wipe.BufferSizeKB < 0 {
		return fmt.Errorf("buffer size cannot be negative, got %d", cfg.Wipe.BufferSizeKB)
	}
	if cfg.Wipe.BufferSizeKB > 1024*1024 {
		return fmt.Errorf("buffer size too large (max 1GB), got %dKB", cfg.Wipe.BufferSizeKB)
	}

	if cfg.Wipe.MaxSpeedMBps < 0 {
		return fmt.Errorf("max speed cannot be negative, got %f", cfg.Wipe.MaxSpeedMBps)
	}

	if cfg.Progress.InteractiveIntervalMs <= 0 {
		return fmt.Errorf("interactive progress interval must be positive, got %d", cfg.Progress.InteractiveIntervalMs)
	}
	if cfg.Progress.MachineIntervalMs <= 0 {
		return fmt.Errorf("machine progress interval must be positive, got %d", cfg.Progress.MachineIntervalMs)
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", cfg.Logging.Level)
	}

	for _, path := range cfg.Security.ProtectedPaths {
		if path == "" {
			return fmt.Errorf("empty protected path")
		}
	}

	return nil
}

// Save writes the configuration to path, creating directories as needed.
func Save(cfg *Config, path string) error {
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("cannot save invalid config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
