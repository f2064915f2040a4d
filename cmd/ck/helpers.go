package main

import (
	"io"
	"os"

	"citekit/internal/config"
	"citekit/internal/library"
)

// mustLoadConfig loads the global config, exiting on failure.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// mustOpenLibrary opens the configured library database, exiting when
// no database is configured or it cannot be opened. Callers own the
// returned handle and must defer Close.
func mustOpenLibrary(cfg *config.Config) *library.Library {
	dbPath := cfg.DatabasePathOrDefault()
	if dbPath == "" {
		exitWithError(ExitConfigError,
			"no library configured (run 'ck config library-root /path/to/library' or set %s)",
			config.EnvLibraryRoot)
	}

	lib, err := library.Open(dbPath)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return lib
}

// readTextArg reads the text a scan-style command operates on: the
// named file, or stdin when the name is empty or "-".
func readTextArg(name string) (string, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(name)
	return string(data), err
}
