package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Oracle backends.
const (
	OracleSQLite = "sqlite"
	OracleFile   = "file"
)

// CurrentVersion is written by Default.
const CurrentVersion = "1"

// Config represents the flat ledgerwatch configuration.
// Durations are Go duration strings ("5s", "1m30s").
type Config struct {
	Version             string `json:"version"`
	Tenant              string `json:"tenant"`
	Oracle              string `json:"oracle"`                // "sqlite" or "file"
	StatusFile          string `json:"status_file,omitempty"` // YAML snapshot when oracle is "file"
	DBPath              string `json:"db_path,omitempty"`     // empty means ~/.ledgerwatch/ledgerwatch.db
	HistoryCap          int    `json:"history_cap"`
	RecentWindow        int    `json:"recent_window"`
	OracleTimeout       string `json:"oracle_timeout,omitempty"` // empty or "0" means no deadline
	MaxConcurrentChecks int    `json:"max_concurrent_checks"`    // 0 means unbounded
	WatchInterval       string `json:"watch_interval"`
	LogLevel            string `json:"log_level,omitempty"`
	LogFormat           string `json:"log_format,omitempty"`
}

// Default returns the configuration written by `ledgerwatch init`.
func Default() *Config {
	return &Config{
		Version:             CurrentVersion,
		Tenant:              "default",
		Oracle:              OracleSQLite,
		HistoryCap:          1000,
		RecentWindow:        100,
		OracleTimeout:       "5s",
		MaxConcurrentChecks: 8,
		WatchInterval:       "30s",
		LogLevel:            "warn",
		LogFormat:           "text",
	}
}

// LoadConfig reads .ledgerwatch/config.json from the specified directory.
// Missing fields keep their Default values.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".ledgerwatch", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault reads the config in dir, falling back to Default when none exists.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, ".ledgerwatch")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create .ledgerwatch dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(cfgDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks field ranges and that duration strings parse.
func (c *Config) Validate() error {
	if c.Tenant == "" {
		return errors.New("tenant must not be empty")
	}
	switch c.Oracle {
	case OracleSQLite:
	case OracleFile:
		if c.StatusFile == "" {
			return errors.New("status_file is required when oracle is \"file\"")
		}
	default:
		return fmt.Errorf("unknown oracle %q (want sqlite or file)", c.Oracle)
	}
	if c.HistoryCap < 1 {
		return fmt.Errorf("history_cap must be at least 1 (got %d)", c.HistoryCap)
	}
	if c.RecentWindow < 0 {
		return fmt.Errorf("recent_window must not be negative (got %d)", c.RecentWindow)
	}
	if c.MaxConcurrentChecks < 0 {
		return fmt.Errorf("max_concurrent_checks must not be negative (got %d)", c.MaxConcurrentChecks)
	}
	if _, err := c.OracleTimeoutDuration(); err != nil {
		return err
	}
	if d, err := c.WatchIntervalDuration(); err != nil {
		return err
	} else if d <= 0 {
		return fmt.Errorf("watch_interval must be positive (got %s)", c.WatchInterval)
	}
	return nil
}

// OracleTimeoutDuration parses OracleTimeout. Empty means zero.
func (c *Config) OracleTimeoutDuration() (time.Duration, error) {
	return parseDuration("oracle_timeout", c.OracleTimeout)
}

// WatchIntervalDuration parses WatchInterval.
func (c *Config) WatchIntervalDuration() (time.Duration, error) {
	return parseDuration("watch_interval", c.WatchInterval)
}

// ResolveDBPath returns DBPath, or ~/.ledgerwatch/ledgerwatch.db when unset.
func (c *Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".ledgerwatch", "ledgerwatch.db"), nil
}

func parseDuration(field, s string) (time.Duration, error) {
	if s == "" || s == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative (got %s)", field, s)
	}
	return d, nil
}
