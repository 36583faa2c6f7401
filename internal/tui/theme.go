package tui

import (
	"os"
	"strings"

	"shiftclip/internal/model"
	"shiftclip/internal/store"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Faint text on light terminals is often illegible.
func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted      = ac("240", "243")
	colorSelectedBg = ac("#e9e9e9", "#262626")
	colorSelectedFg = ac("235", "255")
	colorActiveBg   = ac("#d7e3ff", "#303a55")
	colorSurfaceFg  = ac("235", "252")
	colorControlBg  = ac("252", "235")
	colorInputBg    = ac("254", "234")
	colorAccent     = ac("27", "62")
	colorBorder     = ac("250", "240")
	colorToastBg    = ac("#2e7d32", "#2e7d32")
	colorToastFg    = ac("255", "255")
	colorErrorBg    = ac("196", "160")
)

// folderColors maps the palette onto terminal colors. White folders render
// in the regular text color so they stay visible on light backgrounds.
var folderColors = map[model.Color]lipgloss.AdaptiveColor{
	model.ColorGreen:  ac("#2e7d32", "#7bd88f"),
	model.ColorYellow: ac("#b08800", "#e6c84f"),
	model.ColorViolet: ac("#6f42c1", "#b392f0"),
	model.ColorPink:   ac("#c2185b", "#f48fb1"),
	model.ColorOrange: ac("#d9480f", "#ffa657"),
	model.ColorWhite:  colorSurfaceFg,
}

func folderColor(c model.Color) lipgloss.AdaptiveColor {
	if col, ok := folderColors[c]; ok {
		return col
	}
	return colorSurfaceFg
}

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// applyColorProfilePreference sets the Lip Gloss color profile. Only NO_COLOR
// turns colors off; CLICOLOR is for plain command output.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// Trust TERM/COLORTERM when the detector under-reports.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	switch {
	case strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit"):
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	case strings.Contains(term, "256color"):
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// resolveTheme applies the SHIFTCLIP_TUI_THEME=light|dark override for the
// current run and falls back to dark.
func resolveTheme(t store.Theme) store.Theme {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SHIFTCLIP_TUI_THEME"))) {
	case "light":
		return store.ThemeLight
	case "dark":
		return store.ThemeDark
	}
	if t != store.ThemeLight {
		return store.ThemeDark
	}
	return t
}

// applyTheme pins Lip Gloss's background detection; some terminals report
// the wrong background and AdaptiveColor picks the wrong variant.
func applyTheme(t store.Theme) {
	lipgloss.SetHasDarkBackground(t != store.ThemeLight)
}

func toggleTheme(t store.Theme) store.Theme {
	if t == store.ThemeLight {
		return store.ThemeDark
	}
	return store.ThemeLight
}
