// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Input  string `json:"input,omitempty"`  // Path to a resume file (.txt, .html)
	InDir  string `json:"in_dir,omitempty"` // Directory of resume files for batch parsing
	Output string `json:"output,omitempty"` // Path to write JSON/text output to

	// Anonymization
	Preset string `json:"preset,omitempty"` // standard, conservative or aggressive
	Mode   string `json:"mode,omitempty"`   // hybrid or full

	// Behavior
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information
	Schema     string `json:"schema,omitempty"`      // Path to the candidate JSON schema
	Now        string `json:"now,omitempty"`         // Reference date (YYYY-MM-DD) for date validation
	MaxWorkers int    `json:"max_workers,omitempty"` // Parallelism for batch parsing
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Input != "" && c.InDir != "" {
		return fmt.Errorf("config error: 'input' and 'in_dir' are mutually exclusive")
	}

	if c.Preset != "" {
		switch c.Preset {
		case "standard", "conservative", "aggressive":
		default:
			return fmt.Errorf("config error: unknown preset %q (want standard, conservative or aggressive)", c.Preset)
		}
	}

	if c.Mode != "" {
		switch c.Mode {
		case "hybrid", "full":
		default:
			return fmt.Errorf("config error: unknown mode %q (want hybrid or full)", c.Mode)
		}
	}

	if c.MaxWorkers < 0 {
		return fmt.Errorf("config error: 'max_workers' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}

	if c.InDir != "" {
		if _, err := os.Stat(c.InDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: input directory not found: %s", c.InDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.InDir == "" {
		result.InDir = defaults.InDir
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Preset == "" {
		result.Preset = defaults.Preset
	}
	if result.Mode == "" {
		result.Mode = defaults.Mode
	}
	if result.Schema == "" {
		result.Schema = defaults.Schema
	}
	if result.Now == "" {
		result.Now = defaults.Now
	}

	// Int fields: use default if zero
	if result.MaxWorkers == 0 {
		result.MaxWorkers = defaults.MaxWorkers
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
