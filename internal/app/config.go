package app

import (
	"os"
	"strconv"
	"strings"
)

// Theme modes accepted by LLFARM_THEME.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and source locations in log records
	Debug bool

	// Theme is one of ThemeSystem, ThemeLight or ThemeDark
	Theme string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug: false,
		Theme: ThemeSystem,
	}
}

// ConfigFromEnv creates a configuration from LLFARM_DEBUG and LLFARM_THEME.
// Unparseable values keep their defaults.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if debugStr := os.Getenv("LLFARM_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		}
	}

	switch mode := strings.ToLower(strings.TrimSpace(os.Getenv("LLFARM_THEME"))); mode {
	case ThemeLight, ThemeDark:
		cfg.Theme = mode
	}

	return cfg
}
