package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cartadesk/internal/config"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv(config.ConfigPathEnv, "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Paths.SymlinkBase != "/tmp" || cfg.Paths.SymlinkName != "carta-etc" {
		t.Fatalf("unexpected symlink defaults: %+v", cfg.Paths)
	}
	if cfg.ReadyTimeout() != 20*time.Second {
		t.Fatalf("unexpected ready timeout: %v", cfg.ReadyTimeout())
	}
	if cfg.ConnectTimeout() != 250*time.Millisecond {
		t.Fatalf("unexpected connect timeout: %v", cfg.ConnectTimeout())
	}
	if cfg.RetryInterval() != 100*time.Millisecond {
		t.Fatalf("unexpected retry interval: %v", cfg.RetryInterval())
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
[paths]
resource_dir = "/opt/carta"

[backend]
ready_timeout_seconds = 60

[logging]
level = "DEBUG"
format = "json"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected file at %q to be used, got %q %v", path, resolved, exists)
	}
	if cfg.Paths.ResourceDir != "/opt/carta" {
		t.Fatalf("unexpected resource dir: %q", cfg.Paths.ResourceDir)
	}
	if cfg.ReadyTimeout() != time.Minute {
		t.Fatalf("unexpected ready timeout: %v", cfg.ReadyTimeout())
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("expected normalized logging values: %+v", cfg.Logging)
	}
	// Untouched sections keep their defaults.
	if cfg.Backend.ConnectTimeoutMS != 250 {
		t.Fatalf("unexpected connect timeout: %d", cfg.Backend.ConnectTimeoutMS)
	}
}

func TestLoadEnvPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "env.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"json\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(config.ConfigPathEnv, path)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected env path %q, got %q %v", path, resolved, exists)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("unexpected format: %q", cfg.Logging.Format)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"bad_format.toml":  "[logging]\nformat = \"xml\"\n",
		"bad_timeout.toml": "[backend]\nready_timeout_seconds = -1\n",
		"bad_symlink.toml": "[paths]\nsymlink_name = \"carta etc\"\n",
	}
	for name, contents := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, _, _, err := config.Load(path); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestLoadTildeExpansion(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[paths]\nresource_dir = \"~/carta\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !strings.HasPrefix(cfg.Paths.ResourceDir, tempHome) {
		t.Fatalf("expected tilde expansion under %q, got %q", tempHome, cfg.Paths.ResourceDir)
	}
}
