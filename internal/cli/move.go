package cli

import (
	"github.com/spf13/cobra"
)

func newRmCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <path>",
		Short: "Delete a folder (with everything in it) or a clip",
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

			res, err := sess.Remove(commandContext(cmd), p)
			if err != nil {
				return writeErr(cmd, err)
			}
			saveSelection(cmd, app, sess, res.Changed)
			return writeOut(cmd, app, mutation{Changed: res.Changed, Path: p})
		},
	}
	return cmd
}

func newMvCmd(app *App) *cobra.Command {
	var level bool

	cmd := &cobra.Command{
		Use:   "mv <src> <dst>",
		Short: "Move a node into the folder at dst (or, with --level, to the end of the sequence at dst)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parsePathArg(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			dst, err := parsePathArg(args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			sess, closeFn, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeFn()

			ctx := commandContext(cmd)
			if level {
				res, err := sess.MoveToLevel(ctx, src, dst)
				if err != nil {
					return writeErr(cmd, err)
				}
				saveSelection(cmd, app, sess, res.Changed)
				return writeOut(cmd, app, mutation{Changed: res.Changed, Path: res.Path, Locked: sess.Locked()})
			}
			res, err := sess.Move(ctx, src, dst)
			if err != nil {
				return writeErr(cmd, err)
			}
			saveSelection(cmd, app, sess, res.Changed)
			return writeOut(cmd, app, mutation{Changed: res.Changed, Path: res.Path, Locked: sess.Locked()})
		},
	}
	cmd.Flags().BoolVar(&level, "level", false, "Treat dst as a level (\"/\" for the root) instead of a folder")
	return cmd
}
