package store

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

func TestConfigDir_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SHIFTCLIP_CONFIG_DIR", dir)

	if got := ConfigDir(); got != dir {
		t.Fatalf("expected %q; got %q", dir, got)
	}
	if got, want := ConfigPath(), filepath.Join(dir, "config.yaml"); got != want {
		t.Fatalf("expected %q; got %q", want, got)
	}
}

func TestConfigDir_DefaultsToXDG(t *testing.T) {
	// Registered first so it runs after the env vars are restored.
	t.Cleanup(xdg.Reload)
	t.Setenv("SHIFTCLIP_CONFIG_DIR", "")
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, "data"))
	xdg.Reload()

	if got, want := ConfigDir(), filepath.Join(home, "shiftclip"); got != want {
		t.Fatalf("expected %q; got %q", want, got)
	}
	if got, want := DefaultDataDir(), filepath.Join(home, "data", "shiftclip"); got != want {
		t.Fatalf("expected %q; got %q", want, got)
	}
}
