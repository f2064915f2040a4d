// Package clipboard provides cross-platform clipboard access via shell
// commands, so a generated citekey can be pasted straight into a
// manuscript.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrClipboardUnavailable is returned when no clipboard command exists
// on this system.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// copyCommand returns the command that reads stdin into the system
// clipboard, or ErrClipboardUnavailable.
func copyCommand() (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("pbcopy"), nil
	case "linux":
		// Prefer xclip, fall back to xsel
		if _, err := exec.LookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard"), nil
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			return exec.Command("xsel", "--clipboard", "--input"), nil
		}
		return nil, ErrClipboardUnavailable
	default:
		return nil, ErrClipboardUnavailable
	}
}

// IsAvailable checks if clipboard functionality is available on this system.
func IsAvailable() bool {
	cmd, err := copyCommand()
	if err != nil {
		return false
	}
	_, err = exec.LookPath(cmd.Path)
	return err == nil
}

// Copy copies the given text to the system clipboard.
// Returns ErrClipboardUnavailable if clipboard access is not available.
func Copy(text string) error {
	cmd, err := copyCommand()
	if err != nil {
		return err
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
