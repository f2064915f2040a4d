// Package config handles the citekit global configuration: where the
// Papers2 library lives, where its database file sits, and which PDF
// reader opens resolved attachments.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config is the global configuration stored in
// ~/.config/citekit/config.yml.
type Config struct {
	LibraryRoot  string `yaml:"library_root,omitempty"`  // Papers2 library folder; attachment paths are relative to it
	DatabasePath string `yaml:"database_path,omitempty"` // SQLite database file; defaults to the standard location under the root
	PDFReader    string `yaml:"pdf_reader,omitempty"`    // Reader preference: system, skim, zathura, etc.
}

// DefaultDatabaseFile is the database location Papers2 uses inside a
// library folder.
const DefaultDatabaseFile = "Library.papers2/Database.papersdb"

// ValidReaders lists the supported PDF reader values.
var ValidReaders = []string{"system", "skim", "preview", "zathura", "evince", "okular"}

// DatabasePathOrDefault returns the configured database path, falling
// back to the standard Papers2 location under the library root. Empty
// when neither is configured.
func (c *Config) DatabasePathOrDefault() string {
	if c.DatabasePath != "" {
		return c.DatabasePath
	}
	if c.LibraryRoot == "" {
		return ""
	}
	return filepath.Join(c.LibraryRoot, filepath.FromSlash(DefaultDatabaseFile))
}

// ValidateLibraryRoot checks that the library root exists and is a directory.
func ValidateLibraryRoot(path string) error {
	if path == "" {
		return nil // Empty is allowed (not yet configured)
	}

	expandedPath := ExpandPath(path)

	info, err := os.Stat(expandedPath)
	if err != nil {
		return fmt.Errorf("path does not exist: %s", expandedPath)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", expandedPath)
	}

	return nil
}

// ValidatePDFReader checks that the reader value is valid.
func ValidatePDFReader(reader string) error {
	if reader == "" {
		return nil // Empty defaults to "system"
	}

	for _, valid := range ValidReaders {
		if reader == valid {
			return nil
		}
	}

	return fmt.Errorf("invalid pdf_reader: %s (valid: %v)", reader, ValidReaders)
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
