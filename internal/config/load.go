package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
// The file is the -config path if given, otherwise the first of
// ./config.yaml and DefaultPath that exists.
func Load() (*Config, error) {
	path := ConfigPath()
	if path == "" {
		path = findConfigFile()
	}
	return loadLayers(path)
}

// loadLayers builds a config from the defaults, the file at path (skipped
// when path is empty) and the command-line overrides, in that order. Load
// and the config watcher share it so a reload sees exactly what startup saw.
func loadLayers(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
		cfg.path = path
	}

	applyFlags(cfg)
	return cfg, nil
}

// findConfigFile returns the first existing config candidate, or "".
func findConfigFile() string {
	for _, path := range []string{"./config.yaml", DefaultPath()} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// DefaultPath is where Save writes and the last place Load looks.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ConfigDir returns the per-user config directory for the viewer.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Hierarchy")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Hierarchy")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "hierarchy")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "hierarchy")
	}
}

// loadFromFile decodes the YAML at path over cfg. Keys the file omits keep
// their current values; mesh entries merge into the existing map and a
// lights list replaces the built-in one.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
