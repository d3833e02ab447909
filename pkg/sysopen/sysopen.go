// Package sysopen reveals filesystem entries in the platform file browser.
package sysopen

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

var (
	runtimeGOOS = runtime.GOOS

	startCommand = func(name string, arg ...string) error {
		cmd := exec.Command(name, arg...)
		if err := cmd.Start(); err != nil {
			return err
		}
		// Reap in the background; the browser outlives our interest in it.
		go func() {
			_ = cmd.Wait()
		}()
		return nil
	}
)

// Reveal opens the parent directory of path in the system file browser and
// returns without waiting for the browser.
func Reveal(path string) error {
	parent := filepath.Dir(path)
	name, err := browserCommand()
	if err != nil {
		return err
	}
	if err := startCommand(name, parent); err != nil {
		return fmt.Errorf("cannot open %s in file browser: %w", parent, err)
	}
	return nil
}

func browserCommand() (string, error) {
	switch runtimeGOOS {
	case "linux":
		return "xdg-open", nil
	case "darwin":
		return "open", nil
	case "windows":
		return "explorer", nil
	}
	return "", fmt.Errorf("no known file browser for %s", runtimeGOOS)
}
