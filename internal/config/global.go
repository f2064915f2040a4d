package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "citekit"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// Environment variables that override file-configured values.
const (
	EnvLibraryRoot  = "CITEKIT_LIBRARY_ROOT"
	EnvDatabasePath = "CITEKIT_DATABASE_PATH"
	EnvPDFReader    = "CITEKIT_PDF_READER"
)

// configCache caches the loaded config.
var configCache *Config

// Path returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/citekit/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// Load loads the global configuration. Values from the environment
// override values from the file, so scripts can point a single
// invocation at a different library without touching the config.
// Returns an empty config (not an error) if the file doesn't exist.
func Load() (*Config, error) {
	if configCache != nil {
		return configCache, nil
	}

	cfg := &Config{}

	path := Path()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		case os.IsNotExist(err):
			// Fine: unconfigured is a valid state.
		default:
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if v := os.Getenv(EnvLibraryRoot); v != "" {
		cfg.LibraryRoot = v
	}
	if v := os.Getenv(EnvDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(EnvPDFReader); v != "" {
		cfg.PDFReader = v
	}

	cfg.LibraryRoot = ExpandPath(cfg.LibraryRoot)
	cfg.DatabasePath = ExpandPath(cfg.DatabasePath)

	configCache = cfg
	return cfg, nil
}

// Save writes the configuration to the global config file, creating
// the directory if needed, and refreshes the cache.
func (c *Config) Save() error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	configCache = c
	return nil
}

// ResetCache clears the cached config. Useful for testing.
func ResetCache() {
	configCache = nil
}
