package cli

import (
	"shiftclip/internal/model"
	"shiftclip/internal/mutate"
	"shiftclip/internal/nav"

	"github.com/spf13/cobra"
)

func newLsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "List the items new clips would go into at path (default: root)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := model.Path{}
			if len(args) == 1 {
				var err error
				if p, err = parsePathArg(args[0]); err != nil {
					return writeErr(cmd, err)
				}
			}
			sess, closeFn, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeFn()

			children, at := mutate.Level(sess.Tree(), p)
			return writeOut(cmd, app, newListing(children, at))
		},
	}
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <path>",
		Short: "Show one folder or clip",
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
			if !ok {
				return writeErr(cmd, errNotFound("node", p))
			}
			return writeOut(cmd, app, nodeView{
				Path:        p,
				Breadcrumbs: nav.Breadcrumbs(sess.Tree(), p),
				Node:        n,
			})
		},
	}
	return cmd
}
