package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLockCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock [on|off]",
		Short: "Show or set the lock that disables moving items",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var want *bool
			if len(args) == 1 {
				v, err := parseOnOff(args[0])
				if err != nil {
					return writeErr(cmd, err)
				}
				want = &v
			}
			sess, closeFn, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeFn()

			if want != nil {
				if err := sess.SetLocked(commandContext(cmd), *want); err != nil {
					return writeErr(cmd, err)
				}
			}
			return writeOut(cmd, app, lockOut{Locked: sess.Locked()})
		},
	}
	return cmd
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected on|off, got %q", s)
	}
}
