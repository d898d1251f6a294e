package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DefaultFolder  string  `koanf:"default_folder"`  // folder to play when no files are given
	VolumeStep     float64 `koanf:"volume_step"`     // volume change per keypress (default: 0.05)
	SeekStep       int     `koanf:"seek_step"`       // seek seconds per keypress (default: 5)
	RestoreSession *bool   `koanf:"restore_session"` // resume last track and volume (default: true)
	Mpris          *bool   `koanf:"mpris"`           // expose MPRIS controls on D-Bus (default: true)
	Icons          string  `koanf:"icons"`           // "unicode" or "none"
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in default_folder
	if cfg.DefaultFolder != "" {
		cfg.DefaultFolder = expandPath(cfg.DefaultFolder)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/yakoplay/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "yakoplay", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetVolumeStep returns the volume step with defaults applied.
func (c *Config) GetVolumeStep() float64 {
	if c.VolumeStep <= 0 || c.VolumeStep > 0.5 {
		return 0.05
	}
	return c.VolumeStep
}

// GetSeekStep returns the seek step with defaults applied.
func (c *Config) GetSeekStep() time.Duration {
	if c.SeekStep <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.SeekStep) * time.Second
}

// ShouldRestoreSession returns true unless session restore is disabled.
func (c *Config) ShouldRestoreSession() bool {
	return c.RestoreSession == nil || *c.RestoreSession
}

// MprisEnabled returns true unless MPRIS integration is disabled.
func (c *Config) MprisEnabled() bool {
	return c.Mpris == nil || *c.Mpris
}
