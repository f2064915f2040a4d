package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDatabasePathOrDefault(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "explicit path wins",
			cfg:  Config{LibraryRoot: "/lib", DatabasePath: "/elsewhere/db.papersdb"},
			want: "/elsewhere/db.papersdb",
		},
		{
			name: "default under library root",
			cfg:  Config{LibraryRoot: "/lib"},
			want: filepath.Join("/lib", "Library.papers2", "Database.papersdb"),
		},
		{
			name: "nothing configured",
			cfg:  Config{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.DatabasePathOrDefault(); got != tt.want {
				t.Errorf("DatabasePathOrDefault() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateLibraryRoot(t *testing.T) {
	tmpDir := t.TempDir()

	// Empty is allowed (not yet configured)
	if err := ValidateLibraryRoot(""); err != nil {
		t.Errorf("ValidateLibraryRoot(\"\") = %v, want nil", err)
	}

	// Existing directory is valid
	if err := ValidateLibraryRoot(tmpDir); err != nil {
		t.Errorf("ValidateLibraryRoot(%q) = %v, want nil", tmpDir, err)
	}

	// Non-existent path is invalid
	if err := ValidateLibraryRoot(filepath.Join(tmpDir, "nope")); err == nil {
		t.Error("ValidateLibraryRoot() = nil for missing path, want error")
	}

	// A file is not a valid root
	file := filepath.Join(tmpDir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ValidateLibraryRoot(file); err == nil {
		t.Error("ValidateLibraryRoot() = nil for regular file, want error")
	}
}

func TestValidatePDFReader(t *testing.T) {
	valid := []string{"", "system", "skim", "preview", "zathura", "evince", "okular"}
	for _, reader := range valid {
		if err := ValidatePDFReader(reader); err != nil {
			t.Errorf("ValidatePDFReader(%q) = %v, want nil", reader, err)
		}
	}

	if err := ValidatePDFReader("acrobat"); err == nil {
		t.Error("ValidatePDFReader(\"acrobat\") = nil, want error")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	tests := []struct {
		path string
		want string
	}{
		{"~/Papers", filepath.Join(home, "Papers")},
		{"~", home},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.path); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
