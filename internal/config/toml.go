// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Storage   StorageConfig   `toml:"storage"`
	Dashboard DashboardConfig `toml:"dashboard"`
	History   HistoryConfig   `toml:"history"`
	Compare   CompareConfig   `toml:"compare"`
	Session   SessionConfig   `toml:"session"`
}

// StorageConfig maps persistence settings.
type StorageConfig struct {
	DB  *string `toml:"db"`
	Key *string `toml:"key"`
}

// DashboardConfig maps dashboard settings.
type DashboardConfig struct {
	Recent *int `toml:"recent"`
}

// HistoryConfig maps session history settings.
type HistoryConfig struct {
	PageSize *int `toml:"page-size"`
}

// CompareConfig maps NBA comparison settings.
type CompareConfig struct {
	Sort    *string `toml:"sort"`
	Order   *string `toml:"order"`
	DelayMs *int    `toml:"delay-ms"`
}

// SessionConfig maps defaults for new sessions.
type SessionConfig struct {
	Type *string `toml:"type"`
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
