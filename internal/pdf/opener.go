// Package pdf resolves library-relative attachment paths against the
// Papers2 library root, opens them in a viewer, and extracts DOIs
// from attachment contents for integrity checks.
package pdf

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Opener resolves attachment paths under a library root and opens
// them with the configured reader.
type Opener struct {
	libraryRoot string
	reader      string
}

// NewOpener creates an opener for the given library root and reader
// preference. An empty reader means the platform default.
func NewOpener(libraryRoot, reader string) *Opener {
	if reader == "" {
		reader = "system"
	}
	return &Opener{
		libraryRoot: libraryRoot,
		reader:      reader,
	}
}

// ResolvePath joins a library-relative attachment path with the
// library root and verifies the file exists. The store records paths
// relative to the library folder, so a misconfigured root shows up
// here as a missing file.
func (o *Opener) ResolvePath(relativePath string) (string, error) {
	if o.libraryRoot == "" {
		return "", fmt.Errorf("library_root not configured")
	}
	if relativePath == "" {
		return "", fmt.Errorf("no PDF path specified")
	}

	fullPath := filepath.Join(o.libraryRoot, relativePath)

	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("PDF not found: %s", fullPath)
		}
		return "", fmt.Errorf("checking PDF: %w", err)
	}

	return fullPath, nil
}

// Open opens a PDF file using the configured reader.
// The fullPath should be an absolute path to an existing PDF file.
func (o *Opener) Open(fullPath string) error {
	// Fail fast if file doesn't exist
	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("PDF file does not exist: %s", fullPath)
		}
		return fmt.Errorf("checking PDF file: %w", err)
	}

	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = o.darwinCommand(fullPath)
	case "linux":
		cmd = o.linuxCommand(fullPath)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}

// darwinCommand returns the command to open a PDF on macOS.
func (o *Opener) darwinCommand(path string) *exec.Cmd {
	switch o.reader {
	case "skim":
		return exec.Command("open", "-a", "Skim", path)
	case "preview":
		return exec.Command("open", "-a", "Preview", path)
	default: // "system"
		return exec.Command("open", path)
	}
}

// linuxCommand returns the command to open a PDF on Linux.
func (o *Opener) linuxCommand(path string) *exec.Cmd {
	switch o.reader {
	case "zathura":
		return exec.Command("zathura", path)
	case "evince":
		return exec.Command("evince", path)
	case "okular":
		return exec.Command("okular", path)
	default: // "system"
		return exec.Command("xdg-open", path)
	}
}
