package store

import (
	"context"
	"testing"

	"shiftclip/internal/model"

	"github.com/rs/zerolog"
)

func TestUIState_SaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(NewMemoryKV(), zerolog.Nop())

	// Missing keys => defaults.
	st0 := s.LoadUIState(ctx, ThemeDark)
	if st0.Locked || st0.Theme != ThemeDark || len(st0.Selection) != 0 {
		t.Fatalf("expected defaults; got %#v", st0)
	}

	if err := s.SaveLocked(ctx, true); err != nil {
		t.Fatalf("SaveLocked: %v", err)
	}
	if err := s.SaveTheme(ctx, ThemeLight); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}
	if err := s.SaveSelection(ctx, model.Path{0, 2}); err != nil {
		t.Fatalf("SaveSelection: %v", err)
	}

	got := s.LoadUIState(ctx, ThemeDark)
	if !got.Locked || got.Theme != ThemeLight || !got.Selection.Equal(model.Path{0, 2}) {
		t.Fatalf("roundtrip mismatch: %#v", got)
	}
}

func TestUIState_InvalidValuesFallBack(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := NewMemoryKV()
	_ = kv.Put(ctx, LockedKey, []byte("maybe"))
	_ = kv.Put(ctx, ThemeKey, []byte("sepia"))
	_ = kv.Put(ctx, SelectionKey, []byte("1/x"))

	got := New(kv, zerolog.Nop()).LoadUIState(ctx, ThemeLight)
	if got.Locked {
		t.Fatalf("expected unlocked")
	}
	if got.Theme != ThemeLight {
		t.Fatalf("expected default theme; got %q", got.Theme)
	}
	if len(got.Selection) != 0 {
		t.Fatalf("expected empty selection; got %v", got.Selection)
	}
}
