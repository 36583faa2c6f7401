// Package session is the explicit store object: it owns the tree and the
// selection, persists the whole tree after every change and tells the
// presentation layer to redraw.
package session

import (
	"context"
	"strings"

	"shiftclip/internal/model"
	"shiftclip/internal/mutate"
	"shiftclip/internal/nav"
	"shiftclip/internal/search"
	"shiftclip/internal/store"

	"github.com/rs/zerolog"
)

type Session struct {
	db     *store.DB
	st     *store.Store
	log    zerolog.Logger
	locked bool

	// OnChange runs after every mutation that changed the tree.
	OnChange func()
}

// Open loads the document and the persisted lock flag and selection. A
// restored selection is cut back to its longest resolvable prefix.
func Open(ctx context.Context, st *store.Store, log zerolog.Logger) *Session {
	s := &Session{st: st, log: log}
	s.db = st.Load(ctx)
	ui := st.LoadUIState(ctx, store.ThemeDark)
	s.locked = ui.Locked
	s.db.Selection = clampSelection(s.db.Tree, ui.Selection)
	log.Debug().
		Int("nodes", s.db.Tree.CountNodes()).
		Bool("locked", s.locked).
		Str("selection", s.db.Selection.String()).
		Msg("session opened")
	return s
}

func (s *Session) Store() *store.Store { return s.st }

func (s *Session) Tree() model.Tree { return s.db.Tree }

func (s *Session) Selection() model.Path { return s.db.Selection.Clone() }

func (s *Session) Locked() bool { return s.locked }

// Reload re-reads the document, for when another process changed it.
func (s *Session) Reload(ctx context.Context) {
	sel := s.db.Selection
	s.db = s.st.Load(ctx)
	s.db.Selection = clampSelection(s.db.Tree, sel)
	s.changed()
}

// Flush persists the selection so the next launch reopens the same column.
func (s *Session) Flush(ctx context.Context) error {
	return s.st.SaveSelection(ctx, s.db.Selection)
}

func (s *Session) SetLocked(ctx context.Context, locked bool) error {
	s.locked = locked
	if err := s.st.SaveLocked(ctx, locked); err != nil {
		s.log.Error().Err(err).Bool("locked", locked).Msg("persist lock failed")
		return err
	}
	return nil
}

func (s *Session) CreateFolder(ctx context.Context, name string) (mutate.Result, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return mutate.Result{}, mutate.ValidationError{Field: "name"}
	}
	return s.commit(ctx, "create_folder", mutate.Insert(s.db, s.db.Selection, model.NewFolder(name)))
}

func (s *Session) CreateClip(ctx context.Context, name, description string) (mutate.Result, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return mutate.Result{}, mutate.ValidationError{Field: "name"}
	}
	n := model.NewClip(name, strings.TrimSpace(description))
	return s.commit(ctx, "create_clip", mutate.Insert(s.db, s.db.Selection, n))
}

// InsertAt adds n into ChildrenAt(parent) without touching the selection.
func (s *Session) InsertAt(ctx context.Context, parent model.Path, n *model.Node) (mutate.Result, error) {
	if n == nil || strings.TrimSpace(n.Name) == "" {
		return mutate.Result{}, mutate.ValidationError{Field: "name"}
	}
	return s.commit(ctx, "insert", mutate.Insert(s.db, parent, n))
}

func (s *Session) Rename(ctx context.Context, p model.Path, name string) (mutate.Result, error) {
	res, err := mutate.Rename(s.db, p, name)
	if err != nil {
		return res, err
	}
	return s.commit(ctx, "rename", res)
}

func (s *Session) EditClip(ctx context.Context, p model.Path, name, description string) (mutate.Result, error) {
	res, err := mutate.EditClip(s.db, p, name, description)
	if err != nil {
		return res, err
	}
	return s.commit(ctx, "edit_clip", res)
}

func (s *Session) SetColor(ctx context.Context, p model.Path, c model.Color) (mutate.Result, error) {
	return s.commit(ctx, "set_color", mutate.SetColor(s.db, p, c))
}

func (s *Session) Remove(ctx context.Context, p model.Path) (mutate.Result, error) {
	return s.commit(ctx, "remove", mutate.Remove(s.db, p))
}

// Move is a no-op while the session is locked.
func (s *Session) Move(ctx context.Context, src, dst model.Path) (mutate.Result, error) {
	if s.locked {
		s.log.Debug().Str("src", src.String()).Msg("move ignored: locked")
		return mutate.Result{}, nil
	}
	return s.commit(ctx, "move", mutate.Move(s.db, src, dst))
}

// MoveToLevel is a no-op while the session is locked.
func (s *Session) MoveToLevel(ctx context.Context, src, level model.Path) (mutate.Result, error) {
	if s.locked {
		s.log.Debug().Str("src", src.String()).Msg("move ignored: locked")
		return mutate.Result{}, nil
	}
	return s.commit(ctx, "move_to_level", mutate.MoveToLevel(s.db, src, level))
}

// Drop completes a drag: payload carries the source path, target is a folder
// path (intoFolder) or a level path.
func (s *Session) Drop(ctx context.Context, payload string, target model.Path, intoFolder bool) (mutate.Result, error) {
	if s.locked {
		return mutate.Result{}, nil
	}
	src, err := model.DecodeDragPayload(payload)
	if err != nil {
		return mutate.Result{}, err
	}
	if intoFolder {
		return s.Move(ctx, src, target)
	}
	return s.MoveToLevel(ctx, src, target)
}

// Import appends t to the root, or replaces the document when replace is set.
func (s *Session) Import(ctx context.Context, t model.Tree, replace bool) (mutate.Result, error) {
	t.Normalize()
	if replace {
		s.db.Tree = t
		s.db.Selection = model.Path{}
		return s.commit(ctx, "import", mutate.Result{Changed: true, Path: model.Path{}})
	}
	if len(t) == 0 {
		return mutate.Result{}, nil
	}
	s.db.Tree = append(s.db.Tree, t...)
	return s.commit(ctx, "import", mutate.Result{Changed: true, Path: model.Path{}})
}

func (s *Session) Select(p model.Path) {
	s.db.Selection = p.Clone()
}

func (s *Session) SelectAt(depth, index int) {
	s.db.Selection = nav.SelectAt(s.db.Selection, depth, index)
}

func (s *Session) Truncate(depth int) {
	s.db.Selection = nav.Truncate(s.db.Selection, depth)
}

func (s *Session) Resolve(p model.Path) (*model.Node, bool) {
	return mutate.Resolve(s.db.Tree, p)
}

func (s *Session) ChildrenAt(p model.Path) []*model.Node {
	return mutate.ChildrenAt(s.db.Tree, p)
}

func (s *Session) Count() int {
	return mutate.Count(s.db.Tree, s.db.Selection)
}

func (s *Session) Search(query string) []search.Match {
	return search.Search(s.db.Tree, query)
}

func (s *Session) Breadcrumbs() []nav.Crumb {
	return nav.Breadcrumbs(s.db.Tree, s.db.Selection)
}

func (s *Session) Columns() nav.View {
	return nav.Columns(s.db.Tree, s.db.Selection)
}

func (s *Session) ActiveDepth() int {
	return nav.ActiveDepth(s.db.Tree, s.db.Selection)
}

// commit persists after a changing mutation. A failed save leaves memory
// ahead of storage; the error is returned and the redraw still happens.
func (s *Session) commit(ctx context.Context, op string, res mutate.Result) (mutate.Result, error) {
	if !res.Changed {
		s.log.Debug().Str("op", op).Msg("no change")
		return res, nil
	}
	err := s.st.Save(ctx, s.db)
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Msg("persist failed")
	} else {
		s.log.Info().Str("op", op).Str("path", res.Path.String()).Msg("tree changed")
	}
	s.changed()
	return res, err
}

func (s *Session) changed() {
	if s.OnChange != nil {
		s.OnChange()
	}
}

func clampSelection(t model.Tree, p model.Path) model.Path {
	out := model.Path{}
	for i := range p {
		if _, ok := mutate.Resolve(t, p[:i+1]); !ok {
			break
		}
		out = append(out, p[i])
	}
	return out
}
