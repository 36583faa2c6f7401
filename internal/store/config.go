package store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const appDirName = "shiftclip"

// ConfigDir is where config.yaml lives.
func ConfigDir() string {
	// Test/advanced override (keeps unit tests from touching the user's config).
	if v := strings.TrimSpace(os.Getenv("SHIFTCLIP_CONFIG_DIR")); v != "" {
		return v
	}
	return filepath.Join(xdg.ConfigHome, appDirName)
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DefaultDataDir holds the sqlite database or the JSON document file.
func DefaultDataDir() string {
	return filepath.Join(xdg.DataHome, appDirName)
}
