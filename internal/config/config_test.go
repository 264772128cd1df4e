package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Report.Top != nil || cfg.Report.Format != nil || cfg.Report.Record != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[report]\ntop = 25\nformat = \"json\"\nrecord = true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Report.Top == nil || *cfg.Report.Top != 25 {
		t.Fatalf("expected top 25, got %v", cfg.Report.Top)
	}
	if cfg.Report.Format == nil || *cfg.Report.Format != "json" {
		t.Fatalf("expected json format, got %v", cfg.Report.Format)
	}
	if cfg.Report.Record == nil || !*cfg.Report.Record {
		t.Fatalf("expected record true, got %v", cfg.Report.Record)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[report]\ntopn = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil || !strings.Contains(err.Error(), "report.topn") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestTemplateIsValidTOML(t *testing.T) {
	var cfg FileConfig
	if _, err := toml.Decode(Template(10, "text"), &cfg); err != nil {
		t.Fatalf("template does not decode: %v", err)
	}
	if cfg.Report.Top != nil {
		t.Fatalf("expected all template values commented out")
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "urltop", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/tmp/data", "urltop", "history.db") {
		t.Fatalf("unexpected db path %q", got)
	}
}
