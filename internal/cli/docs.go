package cli

import (
	"fmt"
	"io"
	"strings"

	"shiftclip/internal/docs"
	"shiftclip/internal/store"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

type docsTopics struct {
	Topics []string `json:"topics" yaml:"topics"`
}

func (d docsTopics) WriteText(w io.Writer) error {
	_, err := fmt.Fprintln(w, strings.Join(d.Topics, "\n"))
	return err
}

type docsPage struct {
	Topic    string `json:"topic" yaml:"topic"`
	Markdown string `json:"markdown" yaml:"markdown"`

	theme store.Theme
}

// WriteText renders the page for a terminal; raw markdown is the fallback.
func (d docsPage) WriteText(w io.Writer) error {
	style := "dark"
	if d.theme == store.ThemeLight {
		style = "light"
	}
	out, err := glamour.Render(d.Markdown, style)
	if err != nil {
		out = d.Markdown
	}
	_, err = fmt.Fprint(w, out)
	return err
}

func newDocsCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, docsTopics{Topics: docs.Topics()})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `shiftclip docs` to list topics)", topic))
			}
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			return writeOut(cmd, app, docsPage{Topic: strings.ToLower(strings.TrimSpace(topic)), Markdown: body, theme: app.cfg.Theme})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown")
	return cmd
}
