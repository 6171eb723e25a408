package config

import (
	"fmt"
)

// ApplyProfile overlays a named performance preset onto the configuration.
func ApplyProfile(cfg *Config, profile string) error {
	switch profile {
	case "quick":
		// Single zero pass, OS-buffered writes.
		cfg.Wipe.Algorithm = "zero"
		cfg.Wipe.FastMode = true
	case "standard":
		// DoD 5220.22-M, sync at pass boundaries.
		cfg.Wipe.Algorithm = "dod5220"
		cfg.Wipe.FastMode = true
	case "paranoid":
		// Full Gutmann schedule with per-write durability.
		cfg.Wipe.Algorithm = "gutmann"
		cfg.Wipe.FastMode = false
	case "gentle":
		// Throttled single random pass for shared machines.
		cfg.Wipe.Algorithm = "random"
		cfg.Wipe.FastMode = true
		cfg.Wipe.MaxSpeedMBps = 50
	default:
		return fmt.Errorf("unknown profile: %s", profile)
	}
	return nil
}
