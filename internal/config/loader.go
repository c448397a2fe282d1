// Package config provides configuration management for fill.
//
// This file contains config loading functionality including:
// - XDG config path detection
// - TOML file parsing
// - Environment variable overrides
// - Validation
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	fillerrors "github.com/chazuruo/fill/internal/errors"
)

// ConfigEnv names an explicit config file path.
const ConfigEnv = "FILL_CONFIG"

// DetectConfigPath searches for a config file.
// Returns the first config file found, or empty string if none exists.
//
// Search order:
// 1. $FILL_CONFIG (returned even if it does not exist, so Load reports it)
// 2. $XDG_CONFIG_HOME/fill/config.toml
// 3. ~/.config/fill/config.toml
func DetectConfigPath() string {
	if path := os.Getenv(ConfigEnv); path != "" {
		return path
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configPath := filepath.Join(xdg, "fill", "config.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	configPath := filepath.Join(homeDir, ".config", "fill", "config.toml")
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	return ""
}

// Load loads a config from the specified path.
// If the file doesn't exist, returns an error.
// After loading, applies environment variable overrides and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &fillerrors.ConfigError{Path: path, Err: fmt.Errorf("config file not found")}
		}
		return nil, &fillerrors.ConfigError{Path: path, Err: fmt.Errorf("failed to read config file: %w", err)}
	}

	// Start with defaults
	cfg := DefaultConfig()

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &fillerrors.ConfigError{Path: path, Err: fmt.Errorf("failed to parse config file: %w", err)}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, &fillerrors.ConfigError{Path: path, Err: fmt.Errorf("%w: %s", fillerrors.ErrInvalid, err)}
	}

	return cfg, nil
}

// LoadWithDefaults attempts to load a config from the detected path.
// If no config file is found, returns a config with all default values
// plus environment overrides.
// If a config file is found but fails to load/validate, returns an error.
func LoadWithDefaults() (*Config, error) {
	configPath := DetectConfigPath()
	if configPath == "" {
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)

		if err := cfg.Validate(); err != nil {
			return nil, &fillerrors.ConfigError{Err: fmt.Errorf("%w: %s", fillerrors.ErrInvalid, err)}
		}
		return cfg, nil
	}

	return Load(configPath)
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables follow the pattern: FILL_<SECTION>_<FIELD>
//
// Examples:
// - FILL_PROMPT_STYLE overrides [prompt].style
// - FILL_CLIPBOARD_ENABLED overrides [clipboard].enabled
// - FILL_LOG_LEVEL overrides [log].level
//
// Boolean fields: use "true"/"false" strings
func applyEnvOverrides(c *Config) {
	applyString := func(key string, target *string) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			*target = val
		}
	}

	applyBool := func(key string, target *bool) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			switch strings.ToLower(val) {
			case "true", "1", "yes", "on":
				*target = true
			case "false", "0", "no", "off":
				*target = false
			}
		}
	}

	// Prompt section
	applyString("FILL_PROMPT_STYLE", &c.Prompt.Style)
	applyString("FILL_PROMPT_QUESTION", &c.Prompt.Question)
	applyBool("FILL_PROMPT_ACCESSIBLE", &c.Prompt.Accessible)

	// Clipboard section
	applyBool("FILL_CLIPBOARD_ENABLED", &c.Clipboard.Enabled)

	// Output section
	applyString("FILL_OUTPUT_DIAGNOSTICS", &c.Output.Diagnostics)
	applyString("FILL_OUTPUT_MAPPING", &c.Output.Mapping)
	applyBool("FILL_OUTPUT_COLOR", &c.Output.Color)

	// Log section
	applyString("FILL_LOG_LEVEL", &c.Log.Level)
	applyString("FILL_LOG_FORMAT", &c.Log.Format)
}
