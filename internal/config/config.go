package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the optional copyright.toml configuration. The license
// template and the extension allowlist are fixed and not configurable.
type Config struct {
	Ignore []string `toml:"ignore"`
}

// Read loads copyright.toml from the repo root. A missing file yields the
// default config with a nil error; a broken file yields the default config
// and the error so callers can warn and keep going.
func Read(dir string) (*Config, error) {
	defaultConfig := &Config{Ignore: []string{}}

	fileName := filepath.Join(dir, "copyright.toml")
	if _, err := os.Stat(fileName); errors.Is(err, os.ErrNotExist) {
		return defaultConfig, nil
	}
	file, err := os.ReadFile(fileName)
	if err != nil {
		return defaultConfig, err
	}
	config := defaultConfig
	if err := toml.Unmarshal(file, &config); err != nil {
		return defaultConfig, err
	}
	return config, nil
}
