package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/vijay-prabhu/portalfit/internal/logging"
)

// DefaultPath is where config init writes and commands look by default
const DefaultPath = "~/.config/portalfit/config.toml"

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 'portalfit config init' to create): %w", expandedPath, err)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads path, falling back to defaults when the file does
// not exist. Any other failure is returned.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// ExpandPath expands ~ to the home directory
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	var err error

	c.Similarity.TeamPath, err = expandPath(c.Similarity.TeamPath)
	if err != nil {
		return err
	}

	c.Similarity.PlayerPath, err = expandPath(c.Similarity.PlayerPath)
	if err != nil {
		return err
	}

	c.Export.Dir, err = expandPath(c.Export.Dir)
	if err != nil {
		return err
	}

	return nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	// Scoring validation
	if c.Scoring.LookupMissScore < 0 || c.Scoring.LookupMissScore > 100 {
		errs = append(errs, fmt.Errorf("scoring.lookup_miss_score must be between 0 and 100, got %g", c.Scoring.LookupMissScore))
	}
	if c.Scoring.HighFitThreshold < 0 || c.Scoring.HighFitThreshold > 100 {
		errs = append(errs, fmt.Errorf("scoring.high_fit_threshold must be between 0 and 100, got %g", c.Scoring.HighFitThreshold))
	}

	// Filter validation
	if c.Filters.MinHeight > c.Filters.MaxHeight {
		errs = append(errs, errors.New("filters.min_height must not exceed filters.max_height"))
	}
	if c.Filters.MinUsage > c.Filters.MaxUsage {
		errs = append(errs, errors.New("filters.min_usage must not exceed filters.max_usage"))
	}

	// Export validation
	if c.Export.Dir == "" {
		errs = append(errs, errors.New("export.dir is required"))
	}

	// Logging validation
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		errs = append(errs, fmt.Errorf("logging.format must be 'console' or 'json', got '%s'", c.Logging.Format))
	}

	// MCP validation
	if c.MCP.Transport != "stdio" {
		errs = append(errs, fmt.Errorf("mcp.transport must be 'stdio', got '%s'", c.MCP.Transport))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// ExportPath returns where an export file with the given name is written
func (c *Config) ExportPath(name string) string {
	return filepath.Join(c.Export.Dir, name)
}
