// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Report ReportConfig `toml:"report"`
}

// ReportConfig maps report-related settings. Nil fields were not set.
type ReportConfig struct {
	Top    *int    `toml:"top"`
	Format *string `toml:"format"`
	Record *bool   `toml:"record"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Template returns a commented config file with the given defaults.
func Template(top int, format string) string {
	return fmt.Sprintf(`# urltop configuration
# Uncomment a value to enable it. CLI flags override config values.

[report]
# top = %d                # Number of domains and paths to list
# format = %q         # Report format: text, json or yaml
# record = false          # Archive every report in the history database
`, top, format)
}
