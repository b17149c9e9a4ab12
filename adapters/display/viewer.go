// Package display opens a saved figure in the platform image viewer.
package display

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Viewer implements ports.DisplayPort by handing the file to the OS opener.
type Viewer struct {
	goos   string
	getenv func(string) string
	start  func(ctx context.Context, name string, args ...string) error
}

// NewViewer creates a viewer for the current platform
func NewViewer() *Viewer {
	return &Viewer{goos: runtime.GOOS, getenv: os.Getenv, start: startDetached}
}

// Show opens path without waiting for the viewer to exit.
func (v *Viewer) Show(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("figure not found: %w", err)
	}

	name, args, err := v.command(path)
	if err != nil {
		return err
	}
	if err := v.start(ctx, name, args...); err != nil {
		return fmt.Errorf("launching %s: %w", name, err)
	}
	return nil
}

func (v *Viewer) command(path string) (string, []string, error) {
	switch v.goos {
	case "darwin":
		return "open", []string{path}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		if v.getenv("DISPLAY") == "" && v.getenv("WAYLAND_DISPLAY") == "" {
			return "", nil, fmt.Errorf("no display available")
		}
		return "xdg-open", []string{path}, nil
	default:
		return "", nil, fmt.Errorf("interactive display is not supported on %s", v.goos)
	}
}

// startDetached launches the viewer without tying it to ctx, so it stays open
// after the command returns.
func startDetached(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait() //nolint:errcheck
	return nil
}
