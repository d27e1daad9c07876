// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"go.uber.org/zap/zapcore"
)

// BoardEnvVar names the environment variable that overrides the board path.
const BoardEnvVar = "PORTFOLIO_BOARD"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	BoardPath   string `json:"board_path,omitempty"`   // Students board document
	TemplateOut string `json:"template_out,omitempty"` // Where `template` writes the CSV
	ExportDir   string `json:"export_dir,omitempty"`   // Where `board export` writes profiles

	// Behavior
	Verbose  bool   `json:"verbose,omitempty"`   // Print detailed debug information
	LogLevel string `json:"log_level,omitempty"` // zap level name (debug, info, warn, error)
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BoardPath:   filepath.Join(".portfolio", "students.json"),
		TemplateOut: "student_portfolio_template.csv",
		ExportDir:   "exports",
		LogLevel:    "info",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.LogLevel != "" {
		if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("config error: invalid 'log_level' %q", c.LogLevel)
		}
	}

	if c.ExportDir != "" {
		if info, err := os.Stat(c.ExportDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: export_dir is not a directory: %s", c.ExportDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// Bool fields cannot distinguish unset from false, so CLI flags always win for them.
func (c *Config) MergeWithDefaults(defaults Config) (Config, error) {
	result := *c
	verbose := result.Verbose
	if err := mergo.Merge(&result, defaults); err != nil {
		return Config{}, fmt.Errorf("failed to merge config defaults: %w", err)
	}
	result.Verbose = verbose
	return result, nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(BoardEnvVar); v != "" {
		c.BoardPath = v
	}
}
