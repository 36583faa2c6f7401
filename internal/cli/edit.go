package cli

import (
	"fmt"
	"strings"

	"shiftclip/internal/model"

	"github.com/spf13/cobra"
)

func newRenameCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <path> <name>",
		Short: "Rename a folder or clip",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePathArg(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			sess, closeFn, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeFn()

			res, err := sess.Rename(commandContext(cmd), p, args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			n, _ := sess.Resolve(p)
			return writeOut(cmd, app, mutation{Changed: res.Changed, Path: p, Node: n})
		},
	}
	return cmd
}

func newEditCmd(app *App) *cobra.Command {
	var name, body string

	cmd := &cobra.Command{
		Use:   "edit <path>",
		Short: "Edit a clip's name and text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePathArg(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			sess, closeFn, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeFn()

			n, ok := sess.Resolve(p)
			if !ok || !n.IsClip() {
				return writeErr(cmd, errNotFound("clip", p))
			}
			if !cmd.Flags().Changed("name") {
				name = n.Name
			}
			if !cmd.Flags().Changed("body") {
				body = n.Description
			}
			res, err := sess.EditClip(commandContext(cmd), p, name, body)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, mutation{Changed: res.Changed, Path: p, Node: n})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New name (default: unchanged)")
	cmd.Flags().StringVar(&body, "body", "", "New text (default: unchanged)")
	return cmd
}

func newColorCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color <path> <color>",
		Short: "Set a folder color (green|yellow|violet|pink|orange|white)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePathArg(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			c, ok := model.ParseColor(args[1])
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown color: %s (expected %s)", args[1], paletteList()))
			}
			sess, closeFn, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeFn()

			res, err := sess.SetColor(commandContext(cmd), p, c)
			if err != nil {
				return writeErr(cmd, err)
			}
			n, _ := sess.Resolve(p)
			return writeOut(cmd, app, mutation{Changed: res.Changed, Path: p, Node: n})
		},
	}
	return cmd
}

func paletteList() string {
	names := make([]string, 0, len(model.Palette))
	for _, c := range model.Palette {
		names = append(names, string(c))
	}
	return strings.Join(names, "|")
}
