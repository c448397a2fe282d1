// Package config provides configuration management for fill.
//
// The configuration is stored in TOML format and supports validation
// and default values for all fields.
package config

import (
	"fmt"
	"strings"
)

// Config is the top-level configuration struct for fill.
type Config struct {
	Prompt    PromptConfig    `toml:"prompt"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Output    OutputConfig    `toml:"output"`
	Log       LogConfig       `toml:"log"`
}

// PromptConfig contains settings for asking placeholder values.
type PromptConfig struct {
	// Style determines how values are asked for.
	// Valid values: "line", "form".
	// "form" falls back to "line" when stdin is not a terminal.
	Style string `toml:"style"`

	// Question is the question format; %s is replaced by the placeholder name.
	Question string `toml:"question"`

	// Accessible runs forms in huh's accessible (screen reader) mode.
	Accessible bool `toml:"accessible"`
}

// ClipboardConfig contains clipboard settings.
type ClipboardConfig struct {
	// Enabled controls whether the result is copied to the system clipboard.
	Enabled bool `toml:"enabled"`
}

// OutputConfig contains console output settings.
type OutputConfig struct {
	// Diagnostics is where status lines, the content echo and the value
	// mapping are written.
	// Valid values: "stdout", "stderr", "none".
	Diagnostics string `toml:"diagnostics"`

	// Mapping is the format of the value mapping dump.
	// Valid values: "line", "table".
	Mapping string `toml:"mapping"`

	// Color enables styled questions and status lines.
	Color bool `toml:"color"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	// Level is the minimum log level.
	// Valid values: "debug", "info", "warn", "error".
	Level string `toml:"level"`

	// Format is the log encoding.
	// Valid values: "console", "json".
	Format string `toml:"format"`
}

// DefaultConfig returns a Config with all default values set.
func DefaultConfig() *Config {
	return &Config{
		Prompt: PromptConfig{
			Style:    "line",
			Question: "What is the value for %s?",
		},
		Clipboard: ClipboardConfig{
			Enabled: true,
		},
		Output: OutputConfig{
			Diagnostics: "stdout",
			Mapping:     "line",
			Color:       false,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Validate checks the configuration for valid values.
// Returns a nil error if the config is valid, or an error describing the problem.
func (c *Config) Validate() error {
	// Validate Prompt section
	validStyles := map[string]bool{
		"line": true,
		"form": true,
	}
	if !validStyles[c.Prompt.Style] {
		return fmt.Errorf("prompt.style must be one of: line, form; got %q", c.Prompt.Style)
	}
	if n := strings.Count(c.Prompt.Question, "%s"); n != 1 || strings.Count(c.Prompt.Question, "%") != 1 {
		return fmt.Errorf("prompt.question must contain exactly one %%s and no other verbs; got %q", c.Prompt.Question)
	}

	// Validate Output section
	validDiagnostics := map[string]bool{
		"stdout": true,
		"stderr": true,
		"none":   true,
	}
	if !validDiagnostics[c.Output.Diagnostics] {
		return fmt.Errorf("output.diagnostics must be one of: stdout, stderr, none; got %q", c.Output.Diagnostics)
	}
	validMappings := map[string]bool{
		"line":  true,
		"table": true,
	}
	if !validMappings[c.Output.Mapping] {
		return fmt.Errorf("output.mapping must be one of: line, table; got %q", c.Output.Mapping)
	}

	// Validate Log section
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", c.Log.Level)
	}
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("log.format must be one of: console, json; got %q", c.Log.Format)
	}

	return nil
}
