// Package config resolves CLI configuration from the environment and
// the user's config file.
//
// Resolution order (highest wins):
//  1. Environment variables (LEADNEST_API_URL, LEADNEST_STATE_DIR, LEADNEST_LOG_LEVEL)
//  2. ~/.leadnest/config.yaml
//
// A .env file in the working directory is loaded first so local
// development setups work without exporting variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Env variable names
const (
	EnvAPIURL   = "LEADNEST_API_URL"
	EnvStateDir = "LEADNEST_STATE_DIR"
	EnvLogLevel = "LEADNEST_LOG_LEVEL"
)

// Config holds the resolved CLI configuration
type Config struct {
	// APIBaseURL is the LeadNest backend base URL, e.g.
	// https://api.useleadnest.com/api. Required: there is no default,
	// a missing value is a loud misconfiguration.
	APIBaseURL string `yaml:"api_base_url"`

	// StateDir is where the CLI keeps its session token, logs, and
	// import records. Defaults to ~/.leadnest.
	StateDir string `yaml:"state_dir"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// Load resolves configuration from .env, the config file, and the
// environment. It does not validate; call Validate before first use.
func Load() (*Config, error) {
	// Best-effort: a missing .env is the normal case.
	_ = godotenv.Load()

	cfg := &Config{}

	stateDir, err := defaultStateDir()
	if err != nil {
		return nil, err
	}
	cfg.StateDir = stateDir

	if fileCfg, err := loadFile(filepath.Join(stateDir, "config.yaml")); err != nil {
		return nil, err
	} else if fileCfg != nil {
		merge(cfg, fileCfg)
	}

	applyEnv(cfg)

	cfg.APIBaseURL = NormalizeBaseURL(cfg.APIBaseURL)
	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API base URL is not configured: set %s or api_base_url in %s",
			EnvAPIURL, filepath.Join(c.StateDir, "config.yaml"))
	}
	return nil
}

// SessionTokenPath returns the path of the persisted session token.
func (c *Config) SessionTokenPath() string {
	return filepath.Join(c.StateDir, "session_token")
}

// LastEmailPath returns the path of the cached last-used email.
func (c *Config) LastEmailPath() string {
	return filepath.Join(c.StateDir, "last_email")
}

// ImportLedgerPath returns the path of the CSV import ledger.
func (c *Config) ImportLedgerPath() string {
	return filepath.Join(c.StateDir, "imports.json")
}

// NormalizeBaseURL strips trailing slashes so paths can be joined
// with a single separator.
func NormalizeBaseURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}

func defaultStateDir() (string, error) {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".leadnest"), nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

func merge(dst, src *Config) {
	if src.APIBaseURL != "" {
		dst.APIBaseURL = src.APIBaseURL
	}
	if src.StateDir != "" {
		dst.StateDir = src.StateDir
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvStateDir); v != "" {
		cfg.StateDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
