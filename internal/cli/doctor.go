package cli

import (
	"fmt"
	"io"

	"shiftclip/internal/store"

	"github.com/spf13/cobra"
)

type doctorOut struct {
	store.DoctorReport `yaml:",inline"`

	Errors bool `json:"has_errors" yaml:"has_errors"`
}

func (d doctorOut) WriteText(w io.Writer) error {
	s := d.Stats
	if _, err := fmt.Fprintf(w, "%s store %s: %d nodes (%d folders, %d clips), depth %d\n",
		d.Backend, d.Dir, s.Nodes, s.Folders, s.Clips, s.MaxDepth); err != nil {
		return err
	}
	if len(d.Issues) == 0 {
		_, err := fmt.Fprintln(w, "no issues")
		return err
	}
	for _, it := range d.Issues {
		at := it.Key
		if it.Path != "" {
			at += " " + it.Path
		}
		if _, err := fmt.Fprintf(w, "%-5s %-16s %s: %s\n", it.Level, it.Code, at, it.Message); err != nil {
			return err
		}
	}
	return nil
}

func newDoctorCmd(app *App) *cobra.Command {
	var fail bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the stored document and UI state for problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeFn, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeFn()

			report := sess.Store().Doctor(commandContext(cmd))
			if err := writeOut(cmd, app, doctorOut{DoctorReport: report, Errors: report.HasErrors()}); err != nil {
				return err
			}
			if fail && report.HasErrors() {
				return store.ErrDoctorIssuesFound
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fail, "fail", false, "Exit with non-zero status if errors are found")
	return cmd
}
