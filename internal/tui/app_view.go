package tui

import (
	"fmt"
	"strings"

	"shiftclip/internal/model"
	"shiftclip/internal/nav"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	columnWidth     = 26
	previewMinWidth = 30
	previewEmpty    = "Select a snippet"
)

func (m appModel) View() string {
	w, h := m.width, m.height
	if w <= 0 || h <= 0 {
		return ""
	}
	bodyH := h - 2
	if bodyH < 1 {
		bodyH = 1
	}

	body := m.renderBrowser(w, bodyH)
	if modal := m.renderModal(); modal != "" {
		body = overlayCenter(w, bodyH, modal)
	}

	return strings.Join([]string{
		fitLine(m.renderHeader(), w),
		normalizePane(body, w, bodyH),
		fitLine(m.renderFooter(w), w),
	}, "\n")
}

func (m appModel) renderHeader() string {
	crumbs := m.sess.Breadcrumbs()
	sep := styleMuted().Render(" › ")
	parts := make([]string, 0, len(crumbs))
	for i, c := range crumbs {
		st := styleMuted()
		if i == len(crumbs)-1 {
			st = lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
		}
		parts = append(parts, st.Render(c.Label))
	}
	return " " + strings.Join(parts, sep)
}

func (m appModel) renderFooter(w int) string {
	left := " " + nav.ItemCountLabel(m.sess.Count())
	if m.sess.Locked() {
		left += "  " + lipgloss.NewStyle().Bold(true).Render("locked")
	} else {
		left += "  " + styleMuted().Render("unlocked")
	}
	if m.drag != "" {
		left += "  " + lipgloss.NewStyle().Foreground(colorAccent).Render("cut: "+m.dragName)
	}

	right := styleMuted().Render("a folder  c clip  e edit  d delete  x cut  / search  q quit ")
	if m.toast != "" {
		bg := colorToastBg
		if m.toastErr {
			bg = colorErrorBg
		}
		right = lipgloss.NewStyle().Padding(0, 1).Foreground(colorToastFg).Background(bg).Render(m.toast)
	}

	gap := w - xansi.StringWidth(left) - xansi.StringWidth(right)
	if gap < 1 {
		if m.toast == "" {
			return left
		}
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderBrowser lays out the rightmost columns that fit next to the preview.
func (m appModel) renderBrowser(w, h int) string {
	v := m.sess.Columns()
	cursorDepth := len(m.sess.Selection()) - 1

	maxCols := (w - previewMinWidth) / columnWidth
	if maxCols < 1 {
		maxCols = 1
	}
	cols := v.Columns
	if len(cols) > maxCols {
		cols = cols[len(cols)-maxCols:]
	}

	panes := make([]string, 0, len(cols)+1)
	for _, col := range cols {
		panes = append(panes, renderColumn(col, col.Depth == cursorDepth, columnWidth-1, h))
		panes = append(panes, renderDivider(h))
	}
	pw := w - len(cols)*columnWidth
	if pw < 1 {
		pw = 1
	}
	panes = append(panes, normalizePane(m.renderPreview(v, pw), pw, h))
	return lipgloss.JoinHorizontal(lipgloss.Top, panes...)
}

func renderColumn(col nav.Column, focused bool, w, h int) string {
	if len(col.Items) == 0 {
		return normalizePane(" "+styleMuted().Render("empty"), w, h)
	}

	// Keep the selected row on screen.
	offset := 0
	if col.Selected >= h {
		offset = col.Selected - h + 1
	}

	lines := make([]string, 0, h)
	for i := offset; i < len(col.Items) && len(lines) < h; i++ {
		lines = append(lines, renderRow(col.Items[i], i == col.Selected, focused, w))
	}
	return normalizePane(strings.Join(lines, "\n"), w, h)
}

func renderRow(n *model.Node, selected, focused bool, w int) string {
	icon := "•"
	label := n.Name
	st := lipgloss.NewStyle().Foreground(colorSurfaceFg)
	if n.IsFolder() {
		icon = lipgloss.NewStyle().Foreground(folderColor(n.EffectiveColor())).Render("▸")
		label = fmt.Sprintf("%s (%d)", n.Name, len(n.Children))
	}
	text := fitLine(" "+icon+" "+label, w)
	if !selected {
		return st.Render(text)
	}
	st = st.Background(colorSelectedBg).Foreground(colorSelectedFg)
	if focused {
		st = st.Background(colorActiveBg).Bold(true)
	}
	return st.Render(text)
}

func renderDivider(h int) string {
	line := lipgloss.NewStyle().Foreground(colorBorder).Render("│")
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func (m appModel) renderPreview(v nav.View, w int) string {
	if v.Preview == nil {
		return " " + styleMuted().Render(previewEmpty)
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Render(" " + v.Preview.Name)
	body := renderMarkdown(v.Preview.Description, w-2, m.theme)
	if body == "" {
		body = " " + styleMuted().Render("(empty)")
	}
	hint := " " + styleMuted().Render("enter: copy   e: edit")
	return strings.Join([]string{title, "", body, "", hint}, "\n")
}

func (m appModel) renderModal() string {
	switch m.modal {
	case modalFolderForm, modalClipForm:
		return m.renderForm()
	case modalConfirmDelete:
		name := m.pendingDelete.String()
		if n, ok := m.sess.Resolve(m.pendingDelete); ok {
			name = n.Name
			if n.IsFolder() && len(n.Children) > 0 {
				name += fmt.Sprintf(" and its %s", nav.ItemCountLabel(len(n.Children)))
			}
		}
		return renderConfirmModal(m.width, "Delete", "Delete "+name+"?", "Delete", "Cancel", m.confirmFocus)
	case modalSearch:
		return m.renderSearch()
	}
	return ""
}

func (m appModel) renderForm() string {
	title := "New folder"
	switch {
	case m.modal == modalFolderForm && m.editing != nil:
		title = "Rename folder"
	case m.modal == modalClipForm && m.editing != nil:
		title = "Edit clip"
	case m.modal == modalClipForm:
		title = "New clip"
	}

	bodyW := modalBodyWidth(m.width)
	lines := []string{
		renderFieldLabel("Name", m.focus == focusName),
		renderInputLine(bodyW, m.nameIn.View()),
	}
	help := "enter: save   esc: cancel"
	if m.modal == modalClipForm {
		lines = append(lines, "", renderFieldLabel("Text", m.focus == focusBody), m.bodyIn.View())
		help = "tab: next field   ctrl+s: save   esc: cancel"
	}
	if m.formErr != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(colorErrorBg).Render(m.formErr))
	}
	lines = append(lines, "", styleMuted().Width(bodyW).Render(help))
	return renderModalBox(m.width, title, strings.Join(lines, "\n"))
}

func (m appModel) renderSearch() string {
	bodyW := modalBodyWidth(m.width)
	lines := []string{renderInputLine(bodyW, m.searchIn.View()), ""}
	if len(m.searchResults) == 0 {
		msg := "Type to search clip text"
		if strings.TrimSpace(m.searchIn.Value()) != "" {
			msg = "No matches"
		}
		lines = append(lines, styleMuted().Render(msg))
	}
	for i, r := range m.searchResults {
		row := fitLine(fmt.Sprintf(" %s  %s", r.Node.Name, styleMuted().Render(firstLine(r.Node.Description))), bodyW)
		if i == m.searchCursor {
			row = lipgloss.NewStyle().Background(colorSelectedBg).Foreground(colorSelectedFg).Bold(true).Render(row)
		}
		lines = append(lines, row)
	}
	lines = append(lines, "", styleMuted().Render("↑/↓: choose   enter: go to   esc: close"))
	return renderModalBox(m.width, "Search", strings.Join(lines, "\n"))
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
