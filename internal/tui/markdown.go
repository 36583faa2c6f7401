package tui

import (
	"strconv"
	"strings"
	"sync"

	"shiftclip/internal/store"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

var (
	mdRendererMu sync.Mutex
	// Keyed by theme and wrap width. WithAutoStyle can block on terminal
	// queries, so renderers use a fixed style and are reused.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// renderMarkdown renders a clip body for the preview pane. Rendering errors
// fall back to the raw text.
func renderMarkdown(md string, width int, theme store.Theme) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	key := string(theme) + ":" + strconv.Itoa(width)
	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(markdownStyleConfig(theme)),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func markdownStyleConfig(theme store.Theme) ansi.StyleConfig {
	cfg := styles.DarkStyleConfig
	variant := func(c string, _ string) *string { return &c }
	if theme == store.ThemeLight {
		cfg = styles.LightStyleConfig
		variant = func(_ string, c string) *string { return &c }
	}

	zero := uint(0)
	cfg.Document.Margin = &zero

	fg := variant(colorSurfaceFg.Dark, colorSurfaceFg.Light)
	cfg.Text.Color = fg
	cfg.Heading.Color = fg
	cfg.H1.Color = fg
	cfg.H2.Color = fg
	cfg.H3.Color = fg
	cfg.Code.Color = fg
	cfg.CodeBlock.Color = fg
	cfg.Link.Color = variant(colorAccent.Dark, colorAccent.Light)
	cfg.Strong.Color = nil
	cfg.Emph.Color = nil
	return cfg
}
