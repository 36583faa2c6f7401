package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"shiftclip/internal/format"
	"shiftclip/internal/model"
	"shiftclip/internal/store"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type transferOut struct {
	File  string `json:"file" yaml:"file"`
	Nodes int    `json:"nodes" yaml:"nodes"`
}

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write the whole document as JSON (or YAML for .yaml/.yml files)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeFn, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeFn()

			tree := sess.Tree()
			if len(args) == 0 {
				return format.WriteJSON(cmd.OutOrStdout(), nonNilTree(tree), true)
			}
			b, err := encodeDocument(args[0], tree)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := os.WriteFile(args[0], b, 0o644); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, transferOut{File: args[0], Nodes: tree.CountNodes()})
		},
	}
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Append a JSON or YAML document to the root (or replace everything with --replace)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			tree, err := decodeDocument(args[0], b)
			if err != nil {
				return writeErr(cmd, err)
			}
			sess, closeFn, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeFn()

			ctx := commandContext(cmd)
			backup := ""
			if replace {
				backup, err = sess.Store().Backup(ctx, time.Now())
				if err != nil && !errors.Is(err, store.ErrNoDataDir) {
					return writeErr(cmd, err)
				}
			}
			res, err := sess.Import(ctx, tree, replace)
			if err != nil {
				return writeErr(cmd, err)
			}
			saveSelection(cmd, app, sess, res.Changed && replace)
			return writeOut(cmd, app, mutation{Changed: res.Changed, Path: model.Path{}, Backup: backup})
		},
	}
	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the document instead of appending")
	return cmd
}

func isYAMLFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func encodeDocument(name string, t model.Tree) ([]byte, error) {
	if !isYAMLFile(name) {
		return store.EncodeTree(t)
	}
	var buf bytes.Buffer
	if err := format.WriteYAML(&buf, nonNilTree(t)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeDocument(name string, b []byte) (model.Tree, error) {
	if !isYAMLFile(name) {
		t, err := store.DecodeTree(b)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		return t, nil
	}
	var t model.Tree
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	t.Normalize()
	return t, nil
}

func nonNilTree(t model.Tree) model.Tree {
	if t == nil {
		return model.Tree{}
	}
	return t
}
