package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir returns the per-user configuration directory for app.
func ConfigDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".config", app)
}

// ExpandHome replaces a leading ~ or any $HOME with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") && !strings.Contains(path, "$HOME") {
		return path
	}
	home, _ := os.UserHomeDir()
	if strings.HasPrefix(path, "~/") || path == "~" {
		path = home + strings.TrimPrefix(path, "~")
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
