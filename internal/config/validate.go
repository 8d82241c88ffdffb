package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Backend.ReadyTimeoutSeconds < 0 {
		return fmt.Errorf("backend.ready_timeout_seconds must not be negative (got %d)", c.Backend.ReadyTimeoutSeconds)
	}
	if c.Backend.ConnectTimeoutMS < 0 {
		return fmt.Errorf("backend.connect_timeout_ms must not be negative (got %d)", c.Backend.ConnectTimeoutMS)
	}
	if c.Backend.RetryIntervalMS < 0 {
		return fmt.Errorf("backend.retry_interval_ms must not be negative (got %d)", c.Backend.RetryIntervalMS)
	}

	if strings.Contains(c.Paths.SymlinkBase, " ") || strings.Contains(c.Paths.SymlinkName, " ") {
		// The whole point of the symlink is a space-free path.
		return fmt.Errorf("paths.symlink_base and paths.symlink_name must not contain spaces")
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	return nil
}
