package store

import (
	"context"
	"strconv"
	"strings"

	"shiftclip/internal/model"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// UIState is small, user-facing state restored on relaunch. It is best
// effort: missing or invalid values fall back to defaults.
type UIState struct {
	Locked bool
	Theme  Theme

	// Selection is the last selected path. Callers must validate it against
	// the loaded tree before using it.
	Selection model.Path
}

func (s *Store) LoadUIState(ctx context.Context, defaultTheme Theme) UIState {
	st := UIState{Theme: defaultTheme, Selection: model.Path{}}
	if st.Theme == "" {
		st.Theme = ThemeDark
	}

	if v, ok := s.getString(ctx, LockedKey); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			st.Locked = b
		}
	}
	if v, ok := s.getString(ctx, ThemeKey); ok {
		switch Theme(v) {
		case ThemeDark, ThemeLight:
			st.Theme = Theme(v)
		}
	}
	if v, ok := s.getString(ctx, SelectionKey); ok {
		if p, err := model.ParsePath(v); err == nil {
			st.Selection = p
		}
	}
	return st
}

func (s *Store) SaveLocked(ctx context.Context, locked bool) error {
	return s.kv.Put(ctx, LockedKey, []byte(strconv.FormatBool(locked)))
}

func (s *Store) SaveTheme(ctx context.Context, t Theme) error {
	return s.kv.Put(ctx, ThemeKey, []byte(string(t)))
}

func (s *Store) SaveSelection(ctx context.Context, p model.Path) error {
	return s.kv.Put(ctx, SelectionKey, []byte(p.String()))
}

func (s *Store) getString(ctx context.Context, key string) (string, bool) {
	b, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Debug().Err(err).Str("key", key).Msg("read ui state failed")
		return "", false
	}
	if !ok {
		return "", false
	}
	v := strings.TrimSpace(string(b))
	return v, v != ""
}
