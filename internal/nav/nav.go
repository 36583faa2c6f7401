// Package nav derives what the column browser shows from the tree and the
// current selection. Everything here is a pure function of its inputs.
package nav

import (
	"fmt"

	"shiftclip/internal/model"
	"shiftclip/internal/mutate"
)

const (
	HomeLabel = "Home"

	// CrumbMaxRunes is the breadcrumb label length before truncation.
	CrumbMaxRunes = 10
	crumbEllipsis = "..."
)

type Crumb struct {
	Label string     `json:"label"`
	Path  model.Path `json:"path"`
}

type Column struct {
	Depth int           `json:"depth"`
	Items []*model.Node `json:"items"`
	// Path opens this column: empty for the root, otherwise the folder path.
	Path model.Path `json:"path"`
	// Selected is the selected row at this depth, or -1.
	Selected int  `json:"selected"`
	Active   bool `json:"active"`
}

// View is everything the browser renders for one selection.
type View struct {
	Columns     []Column    `json:"columns"`
	Preview     *model.Node `json:"preview,omitempty"`
	PreviewPath model.Path  `json:"preview_path,omitempty"`
	ActiveDepth int         `json:"active_depth"`
}

// ActiveDepth counts the leading indices of sel that resolve to folders.
func ActiveDepth(t model.Tree, sel model.Path) int {
	xs := []*model.Node(t)
	depth := 0
	for _, idx := range sel {
		if idx < 0 || idx >= len(xs) || xs[idx] == nil {
			return depth
		}
		n := xs[idx]
		switch n.Type {
		case model.KindFolder:
			depth++
			xs = n.Children
		case model.KindClip:
			return depth
		default:
			return depth
		}
	}
	return depth
}

// Breadcrumbs starts at Home and adds one crumb per open folder in sel. The
// trail ends at the first prefix that does not resolve to a folder, so a
// selected clip or a dangling index adds nothing.
func Breadcrumbs(t model.Tree, sel model.Path) []Crumb {
	out := []Crumb{{Label: HomeLabel, Path: model.Path{}}}
	for i := 1; i <= len(sel); i++ {
		prefix := sel[:i].Clone()
		n, ok := mutate.Resolve(t, prefix)
		if !ok || !n.IsFolder() {
			break
		}
		out = append(out, Crumb{Label: TruncateLabel(n.Name, CrumbMaxRunes), Path: prefix})
	}
	return out
}

// TruncateLabel cuts s to max runes and appends an ellipsis when it was longer.
func TruncateLabel(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	return string(r[:max]) + crumbEllipsis
}

// Columns returns the root column followed by one column per open folder in
// sel. A clip in sel ends the walk and becomes the preview.
func Columns(t model.Tree, sel model.Path) View {
	active := ActiveDepth(t, sel)
	v := View{ActiveDepth: active}

	xs := []*model.Node(t)
	at := model.Path{}
	for depth := 0; ; depth++ {
		col := Column{Depth: depth, Items: xs, Path: at.Clone(), Selected: -1, Active: depth == active}
		if depth < len(sel) {
			col.Selected = sel[depth]
		}
		v.Columns = append(v.Columns, col)

		if depth >= len(sel) {
			break
		}
		idx := sel[depth]
		if idx < 0 || idx >= len(xs) || xs[idx] == nil {
			break
		}
		n := xs[idx]
		stop := false
		switch n.Type {
		case model.KindFolder:
			at = at.Append(idx)
			xs = n.Children
		case model.KindClip:
			v.Preview = n
			v.PreviewPath = at.Append(idx)
			stop = true
		default:
			stop = true
		}
		if stop {
			break
		}
	}
	return v
}

// SelectAt is a row click at depth: keep the selection above it and pick index.
func SelectAt(sel model.Path, depth, index int) model.Path {
	if depth < 0 {
		depth = 0
	}
	if depth > len(sel) {
		depth = len(sel)
	}
	return sel[:depth].Clone().Append(index)
}

// Truncate is a click on the empty part of the column at depth.
func Truncate(sel model.Path, depth int) model.Path {
	if depth < 0 {
		depth = 0
	}
	if depth > len(sel) {
		depth = len(sel)
	}
	return sel[:depth].Clone()
}

// ItemCount is the number of items in the last rendered column.
func ItemCount(t model.Tree, sel model.Path) int {
	return mutate.Count(t, sel)
}

func ItemCountLabel(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}
