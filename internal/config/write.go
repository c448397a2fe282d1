// Package config provides configuration management for fill.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	fillerrors "github.com/chazuruo/fill/internal/errors"
)

// Write writes the config to a file in TOML format.
func Write(path string, cfg *Config) error {
	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &fillerrors.ConfigError{Path: path, Err: fmt.Errorf("failed to create config directory: %w", err)}
	}

	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return &fillerrors.ConfigError{Path: path, Err: fmt.Errorf("failed to encode config: %w", err)}
	}

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return &fillerrors.ConfigError{Path: path, Err: fmt.Errorf("failed to write config file: %w", err)}
	}

	return nil
}
