package cli

import (
	"strings"

	"shiftclip/internal/model"

	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create folders and clips",
	}
	cmd.AddCommand(newAddFolderCmd(app))
	cmd.AddCommand(newAddClipCmd(app))
	return cmd
}

func newAddFolderCmd(app *App) *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "folder <name>",
		Short: "Create a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, app, in, model.NewFolder(args[0]))
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "Path whose open folder receives the item (default: last selection)")
	return cmd
}

func newAddClipCmd(app *App) *cobra.Command {
	var in, body string

	cmd := &cobra.Command{
		Use:   "clip <name>",
		Short: "Create a clip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, app, in, model.NewClip(args[0], body))
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "Path whose open folder receives the item (default: last selection)")
	cmd.Flags().StringVar(&body, "body", "", "Clip text")
	return cmd
}

func runAdd(cmd *cobra.Command, app *App, in string, n *model.Node) error {
	sess, closeFn, err := openSession(cmd, app)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer closeFn()

	parent := sess.Selection()
	if cmd.Flags().Changed("in") {
		if parent, err = parsePathArg(in); err != nil {
			return writeErr(cmd, err)
		}
	}
	n.Name = strings.TrimSpace(n.Name)
	n.Description = strings.TrimSpace(n.Description)

	res, err := sess.InsertAt(commandContext(cmd), parent, n)
	if err != nil {
		return writeErr(cmd, err)
	}
	return writeOut(cmd, app, mutation{Changed: res.Changed, Path: res.Path, Node: n})
}
