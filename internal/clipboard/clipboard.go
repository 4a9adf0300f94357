// Package clipboard copies rendered documents to the system clipboard
// through platform tools (pbcopy, xclip/xsel/wl-copy, clip).
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Copy places text on the system clipboard.
func Copy(text string) error {
	switch runtime.GOOS {
	case "darwin":
		return pipeTo(text, "pbcopy")
	case "windows":
		return pipeTo(text, "cmd", "/c", "clip")
	case "linux":
		return copyLinux(text)
	default:
		return fmt.Errorf("clipboard not supported on %s", runtime.GOOS)
	}
}

// Available reports whether a clipboard utility can be found.
func Available() bool {
	switch runtime.GOOS {
	case "darwin":
		return commandExists("pbcopy")
	case "windows":
		return true
	case "linux":
		return commandExists("xclip") || commandExists("xsel") || commandExists("wl-copy")
	default:
		return false
	}
}

func copyLinux(text string) error {
	candidates := [][]string{
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
		{"wl-copy"},
	}

	var lastErr error
	for _, candidate := range candidates {
		if !commandExists(candidate[0]) {
			continue
		}
		if err := pipeTo(text, candidate[0], candidate[1:]...); err != nil {
			lastErr = fmt.Errorf("%s: %w", candidate[0], err)
			continue
		}
		return nil
	}
	if lastErr != nil {
		return fmt.Errorf("clipboard utilities failed: %w", lastErr)
	}
	return fmt.Errorf("no clipboard utility found (install xclip, xsel, or wl-clipboard)")
}

func pipeTo(text, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
