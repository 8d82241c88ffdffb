package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Paths contains filesystem configuration.
type Paths struct {
	// ResourceDir overrides where the backend and frontend are looked up;
	// empty derives it from the launcher executable's location.
	ResourceDir string `toml:"resource_dir"`
	SymlinkBase string `toml:"symlink_base"`
	SymlinkName string `toml:"symlink_name"`
}

// Backend contains process supervision timing.
type Backend struct {
	ReadyTimeoutSeconds int `toml:"ready_timeout_seconds"`
	ConnectTimeoutMS    int `toml:"connect_timeout_ms"`
	RetryIntervalMS     int `toml:"retry_interval_ms"`
}

// Logging contains launcher diagnostics configuration.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the root launcher configuration.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Backend Backend `toml:"backend"`
	Logging Logging `toml:"logging"`
}

// ReadyTimeout returns the readiness polling deadline.
func (c *Config) ReadyTimeout() time.Duration {
	return time.Duration(c.Backend.ReadyTimeoutSeconds) * time.Second
}

// ConnectTimeout returns the per-attempt TCP connect timeout.
func (c *Config) ConnectTimeout() time.Duration {
	return time.Duration(c.Backend.ConnectTimeoutMS) * time.Millisecond
}

// RetryInterval returns the sleep between readiness probes.
func (c *Config) RetryInterval() time.Duration {
	return time.Duration(c.Backend.RetryIntervalMS) * time.Millisecond
}

// ConfigPathEnv overrides the configuration file location.
const ConfigPathEnv = "CARTADESK_CONFIG"

// DefaultConfigPath returns the expanded default configuration location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/cartadesk/config.toml")
}

// Load reads the configuration from path, or from CARTADESK_CONFIG, or from
// the default location, falling back to defaults when no file exists. It
// returns the config, the resolved path, and whether a file was found.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
