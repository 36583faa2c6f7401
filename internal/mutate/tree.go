package mutate

import (
	"strings"

	"shiftclip/internal/model"
	"shiftclip/internal/store"
)

// Result reports whether a mutation changed the tree. Path is the address of
// the affected node after the mutation, when there is one.
type Result struct {
	Changed bool
	Path    model.Path
}

// Resolve walks t following p. The empty path is absent: the root is a
// sequence, not a node.
func Resolve(t model.Tree, p model.Path) (*model.Node, bool) {
	if len(p) == 0 {
		return nil, false
	}
	xs := []*model.Node(t)
	var n *model.Node
	for i, idx := range p {
		if idx < 0 || idx >= len(xs) {
			return nil, false
		}
		n = xs[idx]
		if n == nil {
			return nil, false
		}
		if i == len(p)-1 {
			break
		}
		switch n.Type {
		case model.KindFolder:
			xs = n.Children
		case model.KindClip:
			return nil, false
		default:
			return nil, false
		}
	}
	return n, n != nil
}

// ChildrenAt returns the sequence new items go into when p is selected: the
// children of the folder at p, or the sequence of the deepest folder on the
// way when p ends at a clip or stops resolving.
func ChildrenAt(t model.Tree, p model.Path) []*model.Node {
	root := []*model.Node(t)
	seq, _ := childrenRef(&root, p)
	return *seq
}

// Level is ChildrenAt plus the path of the folder owning the sequence (empty
// for the root), so callers can address the returned children.
func Level(t model.Tree, p model.Path) ([]*model.Node, model.Path) {
	root := []*model.Node(t)
	seq, at := childrenRef(&root, p)
	return *seq, at
}

// Count is len(ChildrenAt(t, p)).
func Count(t model.Tree, p model.Path) int {
	return len(ChildrenAt(t, p))
}

func rootRef(db *store.DB) *[]*model.Node {
	return (*[]*model.Node)(&db.Tree)
}

// childrenRef returns a pointer to the sequence ChildrenAt would return and
// the path of the folder owning it (empty for the root).
func childrenRef(root *[]*model.Node, p model.Path) (*[]*model.Node, model.Path) {
	cur := root
	at := model.Path{}
	for i, idx := range p {
		xs := *cur
		if idx < 0 || idx >= len(xs) || xs[idx] == nil {
			return cur, at
		}
		n := xs[idx]
		switch n.Type {
		case model.KindFolder:
			cur = &n.Children
			at = p[:i+1].Clone()
		case model.KindClip:
			return cur, at
		default:
			return cur, at
		}
	}
	return cur, at
}

// levelRef returns the sequence addressed by p itself: the root for the empty
// path, otherwise the children of the folder at p.
func levelRef(db *store.DB, p model.Path) (*[]*model.Node, bool) {
	if len(p) == 0 {
		return rootRef(db), true
	}
	n, ok := Resolve(db.Tree, p)
	if !ok || !n.IsFolder() {
		return nil, false
	}
	return &n.Children, true
}

// Insert appends n to ChildrenAt(parent) and returns its new path.
func Insert(db *store.DB, parent model.Path, n *model.Node) Result {
	if db == nil || n == nil {
		return Result{}
	}
	seq, at := childrenRef(rootRef(db), parent)
	*seq = append(*seq, n)
	return Result{Changed: true, Path: at.Append(len(*seq) - 1)}
}

func Rename(db *store.DB, p model.Path, name string) (Result, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Result{}, ValidationError{Field: "name"}
	}
	if db == nil {
		return Result{}, nil
	}
	n, ok := Resolve(db.Tree, p)
	if !ok {
		return Result{}, nil
	}
	if n.Name == name {
		return Result{Path: p.Clone()}, nil
	}
	n.Name = name
	return Result{Changed: true, Path: p.Clone()}, nil
}

// EditClip sets the name and body of the clip at p.
func EditClip(db *store.DB, p model.Path, name, description string) (Result, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" {
		return Result{}, ValidationError{Field: "name"}
	}
	if db == nil {
		return Result{}, nil
	}
	n, ok := Resolve(db.Tree, p)
	if !ok || !n.IsClip() {
		return Result{}, nil
	}
	if n.Name == name && n.Description == description {
		return Result{Path: p.Clone()}, nil
	}
	n.Name = name
	n.Description = description
	return Result{Changed: true, Path: p.Clone()}, nil
}

// SetColor is a no-op unless p addresses a folder.
func SetColor(db *store.DB, p model.Path, c model.Color) Result {
	if db == nil {
		return Result{}
	}
	n, ok := Resolve(db.Tree, p)
	if !ok || !n.IsFolder() || n.Color == c {
		return Result{}
	}
	n.Color = c
	return Result{Changed: true, Path: p.Clone()}
}

// Remove deletes the node at p. A selection inside the removed subtree is
// truncated to p's parent.
func Remove(db *store.DB, p model.Path) Result {
	if db == nil || len(p) == 0 {
		return Result{}
	}
	seq, ok := levelRef(db, p.Parent())
	if !ok {
		return Result{}
	}
	idx := p.Last()
	if idx < 0 || idx >= len(*seq) {
		return Result{}
	}
	*seq = removeAt(*seq, idx)
	if sel, ok := AdjustAfterRemoval(p, db.Selection); ok {
		db.Selection = sel
	} else {
		db.Selection = p.Parent()
	}
	return Result{Changed: true, Path: p.Parent()}
}

// Move makes the node at src the last child of the folder at dst and keeps
// that folder open in the selection.
func Move(db *store.DB, src, dst model.Path) Result {
	if db == nil || len(src) == 0 {
		return Result{}
	}
	if len(src) <= len(dst) && dst.HasPrefix(src) {
		return Result{}
	}
	target, ok := Resolve(db.Tree, dst)
	if !ok || !target.IsFolder() {
		return Result{}
	}
	seq, ok := levelRef(db, src.Parent())
	if !ok {
		return Result{}
	}
	idx := src.Last()
	if idx < 0 || idx >= len(*seq) {
		return Result{}
	}
	n := (*seq)[idx]
	*seq = removeAt(*seq, idx)
	target.Children = append(target.Children, n)

	sel, ok := AdjustAfterRemoval(src, dst)
	if !ok {
		sel = dst.Clone()
	}
	db.Selection = sel
	return Result{Changed: true, Path: sel.Append(len(target.Children) - 1)}
}

// MoveToLevel appends the node at src to the sequence at level (the root for
// the empty path). The selection is left as is.
func MoveToLevel(db *store.DB, src, level model.Path) Result {
	if db == nil || len(src) == 0 {
		return Result{}
	}
	if len(level) >= len(src) && level.HasPrefix(src) {
		return Result{}
	}
	seq, ok := levelRef(db, src.Parent())
	if !ok {
		return Result{}
	}
	idx := src.Last()
	if idx < 0 || idx >= len(*seq) {
		return Result{}
	}
	dest, ok := levelRef(db, level)
	if !ok {
		return Result{}
	}
	n := (*seq)[idx]
	*seq = removeAt(*seq, idx)
	*dest = append(*dest, n)

	at, ok := AdjustAfterRemoval(src, level)
	if !ok {
		at = level.Clone()
	}
	moved := at.Append(len(*dest) - 1)

	// The selection follows the moved subtree; anything else shifts past the gap.
	if sel, ok := AdjustAfterRemoval(src, db.Selection); ok {
		db.Selection = sel
	} else {
		db.Selection = append(moved.Clone(), db.Selection[len(src):]...)
	}
	return Result{Changed: true, Path: moved}
}

// AdjustAfterRemoval recomputes a held path p after the node at removed left
// its sequence. ok is false when p pointed into the removed subtree.
func AdjustAfterRemoval(removed, p model.Path) (model.Path, bool) {
	if len(removed) == 0 {
		return p.Clone(), true
	}
	if p.HasPrefix(removed) {
		return nil, false
	}
	out := p.Clone()
	d := len(removed) - 1
	if len(out) > d && out.HasPrefix(removed.Parent()) && out[d] > removed[d] {
		out[d]--
	}
	return out, true
}

func removeAt(xs []*model.Node, i int) []*model.Node {
	out := make([]*model.Node, 0, len(xs)-1)
	out = append(out, xs[:i]...)
	return append(out, xs[i+1:]...)
}
