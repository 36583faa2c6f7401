package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"shiftclip/internal/config"
	"shiftclip/internal/format"
	"shiftclip/internal/logging"
	"shiftclip/internal/model"
	"shiftclip/internal/session"
	"shiftclip/internal/store"
	"shiftclip/internal/tui"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type App struct {
	ConfigFile string
	Dir        string
	Backend    string
	Format     string
	PrettyJSON bool
	Verbose    int

	cfg       config.Config
	log       zerolog.Logger
	logCloser io.Closer
}

func NewRootCmd() *cobra.Command {
	app := &App{}
	v := config.New()

	cmd := &cobra.Command{
		Use:          "shiftclip",
		Short:        "Folders of text snippets, browsed column by column",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  shiftclip

  # Scriptable commands
  shiftclip add folder Replies
  shiftclip add clip Thanks --in 0 --body "Thank you!"
  shiftclip ls 0

  # Direct node lookup (shortcut for: shiftclip show 0/1)
  shiftclip 0/1
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := config.BindFlags(v, cmd.Root().PersistentFlags()); err != nil {
			return writeErr(cmd, err)
		}
		cfg, err := config.Load(v, app.ConfigFile)
		if err != nil {
			return writeErr(cmd, err)
		}
		app.cfg = cfg

		// The TUI owns the terminal; it only logs to the file.
		var console io.Writer = cmd.ErrOrStderr()
		if cmd == cmd.Root() {
			console = nil
		}
		_, app.logCloser = logging.Setup(cfg.Verbosity, console)
		app.log = logging.Get("cli")
		app.log.Debug().Str("command", cmd.CommandPath()).Strs("args", args).Str("config", cfg.File).Msg("run")
		return nil
	}

	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.logCloser != nil {
			_ = app.logCloser.Close()
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.ConfigFile, "config", envOr("SHIFTCLIP_CONFIG", ""), "Config file (default: <config dir>/config.yaml)")
	cmd.PersistentFlags().StringVar(&app.Dir, "dir", "", "Data directory (default: $XDG_DATA_HOME/shiftclip)")
	cmd.PersistentFlags().StringVar(&app.Backend, "backend", "", "Storage backend (sqlite|file|memory)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", "", "Output format (auto|json|yaml|text)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().CountVarP(&app.Verbose, "verbose", "v", "Increase log verbosity (-v info, -vv debug, -vvv trace)")

	cmd.AddCommand(newLsCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newRenameCmd(app))
	cmd.AddCommand(newEditCmd(app))
	cmd.AddCommand(newColorCmd(app))
	cmd.AddCommand(newRmCmd(app))
	cmd.AddCommand(newMvCmd(app))
	cmd.AddCommand(newSearchCmd(app))
	cmd.AddCommand(newLockCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newBackendCmd(app))
	cmd.AddCommand(newDoctorCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	sess, closeFn, err := openSession(cmd, app)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer closeFn()

	ctx := commandContext(cmd)
	ui := sess.Store().LoadUIState(ctx, app.cfg.Theme)
	runErr := tui.Run(ctx, sess, tui.Options{
		Theme:         ui.Theme,
		ToastDuration: time.Duration(app.cfg.ToastSeconds) * time.Second,
		SearchLimit:   app.cfg.SearchLimit,
		Log:           logging.Get("tui"),
	})
	if err := sess.Flush(ctx); err != nil {
		app.log.Warn().Err(err).Msg("save selection failed")
	}
	return runErr
}

// openSession opens the configured backend and loads the document. The
// returned func closes the backend.
func openSession(cmd *cobra.Command, app *App) (*session.Session, func(), error) {
	ctx := commandContext(cmd)
	st, err := store.Open(ctx, app.cfg.DataDir, app.cfg.Backend, logging.Get("store"))
	if err != nil {
		return nil, func() {}, err
	}
	sess := session.Open(ctx, st, logging.Get("session"))
	return sess, func() {
		if err := st.Close(); err != nil {
			app.log.Warn().Err(err).Msg("close store failed")
		}
	}, nil
}

// saveSelection writes back the selection a mutation shifted, so the next
// launch does not reopen a node that slid into the old index.
func saveSelection(cmd *cobra.Command, app *App, sess *session.Session, changed bool) {
	if !changed {
		return
	}
	if err := sess.Flush(commandContext(cmd)); err != nil {
		app.log.Warn().Err(err).Msg("save selection failed")
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func parsePathArg(s string) (model.Path, error) {
	p, err := model.ParsePath(s)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	return p, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	f := app.cfg.Format
	if f == "" {
		f = format.Auto
	}
	return format.Write(cmd.OutOrStdout(), envelope{Data: v}, f, app.cfg.Pretty)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
