package cli

import (
	"strings"

	"shiftclip/internal/search"

	"github.com/spf13/cobra"
)

func newSearchCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find folders and clips by name or clip text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeFn, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeFn()

			q := strings.Join(args, " ")
			all := sess.Search(q)
			out := searchOut{Query: q, Total: len(all), Results: []entry{}}
			for _, m := range search.Top(all, limit) {
				out.Results = append(out.Results, entryFor(m.Node, m.Path))
			}
			return writeOut(cmd, app, out)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum results (0: all)")
	return cmd
}
