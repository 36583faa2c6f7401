package cli

import (
	"fmt"

	"shiftclip/internal/store"

	"github.com/spf13/cobra"
)

func newBackendCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backend",
		Short: "Storage backend commands",
	}
	cmd.AddCommand(newBackendCopyCmd(app))
	return cmd
}

func newBackendCopyCmd(app *App) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy every stored key from the current backend into another one in the same data dir",
		RunE: func(cmd *cobra.Command, args []string) error {
			dst, err := store.ParseBackend(to)
			if err != nil {
				return writeErr(cmd, err)
			}
			src := app.cfg.Backend
			if dst == src {
				return writeErr(cmd, fmt.Errorf("source and destination backend are both %s", src))
			}
			if dst == store.BackendMemory || src == store.BackendMemory {
				return writeErr(cmd, fmt.Errorf("memory backend cannot be copied to or from"))
			}

			ctx := commandContext(cmd)
			from, err := store.OpenKV(ctx, app.cfg.DataDir, src)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer from.Close()
			into, err := store.OpenKV(ctx, app.cfg.DataDir, dst)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer into.Close()

			n, err := store.CopyKV(ctx, into, from)
			if err != nil {
				return writeErr(cmd, err)
			}
			app.log.Info().Str("from", string(src)).Str("to", string(dst)).Int("keys", n).Msg("backend copied")
			return writeOut(cmd, app, copyOut{From: src, To: dst, Dir: app.cfg.DataDir, Keys: n})
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "Destination backend (sqlite|file)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
