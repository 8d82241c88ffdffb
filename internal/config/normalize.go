package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	var err error
	if c.Paths.ResourceDir != "" {
		if c.Paths.ResourceDir, err = expandPath(c.Paths.ResourceDir); err != nil {
			return fmt.Errorf("paths.resource_dir: %w", err)
		}
	}
	if strings.TrimSpace(c.Paths.SymlinkBase) == "" {
		c.Paths.SymlinkBase = defaultSymlinkBase
	}
	if strings.TrimSpace(c.Paths.SymlinkName) == "" {
		c.Paths.SymlinkName = defaultSymlinkName
	}

	if c.Backend.ReadyTimeoutSeconds == 0 {
		c.Backend.ReadyTimeoutSeconds = defaultReadyTimeoutSeconds
	}
	if c.Backend.ConnectTimeoutMS == 0 {
		c.Backend.ConnectTimeoutMS = defaultConnectTimeoutMS
	}
	if c.Backend.RetryIntervalMS == 0 {
		c.Backend.RetryIntervalMS = defaultRetryIntervalMS
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	return nil
}
