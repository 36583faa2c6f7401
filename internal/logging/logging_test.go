package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

func useTempState(t *testing.T) string {
	t.Helper()
	t.Cleanup(xdg.Reload)
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
	return dir
}

func TestSetup_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := useTempState(t)

			path, closer := Setup(tt.verbosity, nil)
			defer closer.Close()

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("Setup(%d) set level to %v, want %v", tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}
			want := filepath.Join(dir, "shiftclip", "shiftclip.log")
			if path != want {
				t.Errorf("log path = %s, want %s", path, want)
			}
			if _, err := os.Stat(want); err != nil {
				t.Errorf("log file was not created: %v", err)
			}
		})
	}
}

func TestSetup_ConsoleAndComponent(t *testing.T) {
	useTempState(t)

	var buf bytes.Buffer
	path, closer := Setup(1, &buf)
	l := Get("session")
	l.Info().Msg("tree changed")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if !strings.Contains(buf.String(), "tree changed") {
		t.Fatalf("console missing message: %q", buf.String())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), `"component":"session"`) {
		t.Fatalf("log file missing component field: %s", b)
	}
}
