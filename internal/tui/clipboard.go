package tui

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const clipboardTimeout = 2 * time.Second

// clipboardWriter is swapped out in tests.
type clipboardWriter func(ctx context.Context, s string) error

type clipboardDoneMsg struct {
	name string
	err  error
}

func copyCmd(write clipboardWriter, name, text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clipboardTimeout)
		defer cancel()
		return clipboardDoneMsg{name: name, err: write(ctx, text)}
	}
}

func copyToClipboard(ctx context.Context, s string) error {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	switch runtime.GOOS {
	case "darwin":
		return runClipboardCmd(ctx, "pbcopy", nil, s)
	case "windows":
		if err := runClipboardCmd(ctx, "cmd", []string{"/c", "clip"}, s); err == nil {
			return nil
		}
		return runClipboardCmd(ctx, "powershell", []string{"-NoProfile", "-Command", "Set-Clipboard"}, s)
	default:
		// Wayland first, then X11.
		if err := runClipboardCmd(ctx, "wl-copy", nil, s); err == nil {
			return nil
		}
		if err := runClipboardCmd(ctx, "xclip", []string{"-selection", "clipboard"}, s); err == nil {
			return nil
		}
		return runClipboardCmd(ctx, "xsel", []string{"--clipboard", "--input"}, s)
	}
}

func runClipboardCmd(ctx context.Context, name string, args []string, stdin string) error {
	if _, err := exec.LookPath(name); err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(stdin)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
