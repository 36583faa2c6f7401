// Package tui is the interactive column browser. All tree state lives in the
// session; the model only holds what is on screen.
package tui

import (
	"context"
	"time"

	"shiftclip/internal/session"
	"shiftclip/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

type Options struct {
	Theme         store.Theme
	ToastDuration time.Duration
	// SearchLimit caps the results panel; 0 shows every match.
	SearchLimit int
	Log         zerolog.Logger
}

const defaultToastDuration = 5 * time.Second

func Run(ctx context.Context, sess *session.Session, opts Options) error {
	applyColorProfilePreference()
	m := newAppModel(ctx, sess, opts)
	applyTheme(m.theme)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
