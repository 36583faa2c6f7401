package tui

import (
	"errors"
	"fmt"
	"time"

	"shiftclip/internal/model"
	"shiftclip/internal/mutate"
	"shiftclip/internal/search"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeInputs()
		return m, nil

	case toastDoneMsg:
		// Only the latest toast clears itself.
		if msg.seq == m.toastSeq {
			m.toast = ""
			m.toastErr = false
		}
		return m, nil

	case clipboardDoneMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("clipboard write failed")
			return m, m.flashErr("Copy failed: " + msg.err.Error())
		}
		m.log.Debug().Str("clip", msg.name).Msg("copied")
		return m, m.flash("Message copied")

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.modal {
		case modalFolderForm, modalClipForm:
			return m.updateForm(msg)
		case modalConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modalSearch:
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.modal == modalClipForm && m.focus == focusBody {
		var cmd tea.Cmd
		m.bodyIn, cmd = m.bodyIn.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "down", "j":
		m.moveCursor(1)
	case "up", "k":
		m.moveCursor(-1)
	case "right", "l", "enter":
		return m, m.open()
	case "left", "h", "backspace":
		if sel := m.sess.Selection(); len(sel) > 0 {
			m.sess.Truncate(len(sel) - 1)
		}
	case "esc":
		if m.drag != "" {
			m.drag, m.dragName = "", ""
			return m, m.flash("Cut cancelled")
		}
	case "a":
		return m, m.openForm(model.KindFolder, nil)
	case "c":
		return m, m.openForm(model.KindClip, nil)
	case "e":
		n, p, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.openForm(n.Type, p)
	case "d":
		if _, p, ok := m.selected(); ok {
			m.pendingDelete = p
			m.confirmFocus = confirmFocusCancel
			m.modal = modalConfirmDelete
		}
	case "1", "2", "3", "4", "5", "6":
		return m, m.setColor(int(msg.Runes[0] - '1'))
	case "x":
		return m, m.cut()
	case "p":
		return m, m.drop(true)
	case "P":
		return m, m.drop(false)
	case "L":
		return m, m.toggleLock()
	case "t":
		return m, m.switchTheme()
	case "/":
		m.modal = modalSearch
		m.searchIn.SetValue("")
		m.searchResults = nil
		m.searchCursor = 0
		return m, m.searchIn.Focus()
	case "r":
		m.sess.Reload(m.ctx)
		m.drag, m.dragName = "", ""
		return m, m.flash("Reloaded")
	}
	return m, nil
}

// moveCursor steps within the column that holds the selected row. With no
// selection the first root row is picked.
func (m *appModel) moveCursor(delta int) {
	sel := m.sess.Selection()
	if len(sel) == 0 {
		if len(m.sess.Tree()) > 0 {
			m.sess.SelectAt(0, 0)
		}
		return
	}
	n := len(m.sess.ChildrenAt(sel.Parent()))
	if n == 0 {
		return
	}
	idx := sel.Last() + delta
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	m.sess.SelectAt(len(sel)-1, idx)
}

// open steps into a folder or copies a clip.
func (m *appModel) open() tea.Cmd {
	n, p, ok := m.selected()
	if !ok {
		if len(m.sess.Tree()) > 0 {
			m.sess.SelectAt(0, 0)
		}
		return nil
	}
	if n.IsFolder() {
		if len(n.Children) > 0 {
			m.sess.Select(p.Append(0))
		}
		return nil
	}
	return copyCmd(m.clip, n.Name, n.Description)
}

func (m *appModel) setColor(i int) tea.Cmd {
	if i < 0 || i >= len(model.Palette) {
		return nil
	}
	n, p, ok := m.selected()
	if !ok || !n.IsFolder() {
		return m.flashErr("Colors apply to folders")
	}
	if _, err := m.sess.SetColor(m.ctx, p, model.Palette[i]); err != nil {
		return m.flashErr("Save failed: " + err.Error())
	}
	return nil
}

func (m *appModel) cut() tea.Cmd {
	if m.sess.Locked() {
		return m.flashErr("Locked")
	}
	n, p, ok := m.selected()
	if !ok {
		return nil
	}
	m.drag = model.EncodeDragPayload(p)
	m.dragName = n.Name
	return m.flash(fmt.Sprintf("Cut %s: p drops into a folder, P drops here", n.Name))
}

// drop completes a cut. intoFolder targets the folder under the cursor;
// otherwise the node lands at the end of the cursor's column.
func (m *appModel) drop(intoFolder bool) tea.Cmd {
	if m.drag == "" {
		return m.flashErr("Nothing to drop")
	}
	if m.sess.Locked() {
		return m.flashErr("Locked")
	}
	sel := m.sess.Selection()
	target := sel
	if !intoFolder {
		target = model.Path{}
		if len(sel) > 0 {
			target = sel.Parent()
		}
	}

	res, err := m.sess.Drop(m.ctx, m.drag, target, intoFolder)
	if err != nil && !res.Changed {
		m.drag, m.dragName = "", ""
		return m.flashErr(err.Error())
	}
	if !res.Changed {
		return m.flashErr("Can't move there")
	}
	name := m.dragName
	m.drag, m.dragName = "", ""
	if !intoFolder {
		m.sess.Select(res.Path)
	}
	if err != nil {
		return m.flashErr("Save failed: " + err.Error())
	}
	return m.flash("Moved " + name)
}

func (m *appModel) toggleLock() tea.Cmd {
	locked := !m.sess.Locked()
	err := m.sess.SetLocked(m.ctx, locked)
	if locked {
		m.drag, m.dragName = "", ""
	}
	if err != nil {
		return m.flashErr("Save failed: " + err.Error())
	}
	if locked {
		return m.flash("Locked")
	}
	return m.flash("Unlocked")
}

func (m *appModel) switchTheme() tea.Cmd {
	m.theme = toggleTheme(m.theme)
	applyTheme(m.theme)
	if err := m.sess.Store().SaveTheme(m.ctx, m.theme); err != nil {
		m.log.Warn().Err(err).Msg("save theme failed")
	}
	return nil
}

func (m *appModel) openForm(kind model.Kind, editing model.Path) tea.Cmd {
	m.formKind = kind
	m.editing = editing
	m.formErr = ""
	m.focus = focusName
	m.nameIn.SetValue("")
	m.bodyIn.SetValue("")
	m.nameIn.Placeholder = "Name"
	m.bodyIn.Placeholder = "Text to copy"
	if editing != nil {
		if n, ok := m.sess.Resolve(editing); ok {
			m.nameIn.SetValue(n.Name)
			m.bodyIn.SetValue(n.Description)
		}
	}
	m.nameIn.CursorEnd()
	m.bodyIn.Blur()

	m.modal = modalFolderForm
	if kind == model.KindClip {
		m.modal = modalClipForm
	}
	m.resizeInputs()
	return m.nameIn.Focus()
}

func (m *appModel) closeModal() {
	m.modal = modalNone
	m.nameIn.Blur()
	m.bodyIn.Blur()
	m.searchIn.Blur()
	m.editing = nil
	m.pendingDelete = nil
	m.formErr = ""
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "ctrl+s":
		return m.submitForm()
	case "tab", "shift+tab":
		if m.modal == modalClipForm {
			return m, m.switchFocus()
		}
		return m, nil
	case "enter":
		if m.modal == modalFolderForm {
			return m.submitForm()
		}
		if m.focus == focusName {
			return m, m.switchFocus()
		}
	}

	var cmd tea.Cmd
	if m.focus == focusBody {
		m.bodyIn, cmd = m.bodyIn.Update(msg)
	} else {
		m.nameIn, cmd = m.nameIn.Update(msg)
	}
	return m, cmd
}

func (m *appModel) switchFocus() tea.Cmd {
	if m.focus == focusName {
		m.focus = focusBody
		m.nameIn.Blur()
		return m.bodyIn.Focus()
	}
	m.focus = focusName
	m.bodyIn.Blur()
	return m.nameIn.Focus()
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	name := m.nameIn.Value()
	body := m.bodyIn.Value()

	var err error
	switch {
	case m.formKind == model.KindFolder && m.editing == nil:
		_, err = m.sess.CreateFolder(m.ctx, name)
	case m.formKind == model.KindFolder:
		_, err = m.sess.Rename(m.ctx, m.editing, name)
	case m.editing == nil:
		_, err = m.sess.CreateClip(m.ctx, name, body)
	default:
		_, err = m.sess.EditClip(m.ctx, m.editing, name, body)
	}

	var verr mutate.ValidationError
	if errors.As(err, &verr) {
		m.formErr = capitalize(verr.Error())
		return m, nil
	}
	m.closeModal()
	if err != nil {
		return m, m.flashErr("Save failed: " + err.Error())
	}
	return m, nil
}

func (m appModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n", "q":
		m.closeModal()
		return m, nil
	case "tab", "shift+tab", "left", "right", "h", "l":
		m.confirmFocus = m.confirmFocus.toggle()
		return m, nil
	case "y":
		return m.confirmDelete()
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return m.confirmDelete()
		}
		m.closeModal()
	}
	return m, nil
}

func (m appModel) confirmDelete() (tea.Model, tea.Cmd) {
	p := m.pendingDelete
	name := ""
	if n, ok := m.sess.Resolve(p); ok {
		name = n.Name
	}
	m.closeModal()
	// Held payload paths go stale once siblings shift.
	m.drag, m.dragName = "", ""

	res, err := m.sess.Remove(m.ctx, p)
	if err != nil {
		return m, m.flashErr("Save failed: " + err.Error())
	}
	if !res.Changed {
		return m, nil
	}
	return m, m.flash("Deleted " + name)
}

func (m appModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "down", "ctrl+n":
		if m.searchCursor < len(m.searchResults)-1 {
			m.searchCursor++
		}
		return m, nil
	case "up", "ctrl+p":
		if m.searchCursor > 0 {
			m.searchCursor--
		}
		return m, nil
	case "enter":
		if m.searchCursor < len(m.searchResults) {
			m.sess.Select(m.searchResults[m.searchCursor].Path)
		}
		m.closeModal()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchIn, cmd = m.searchIn.Update(msg)
	m.searchResults = search.Top(m.sess.Search(m.searchIn.Value()), m.opts.SearchLimit)
	if m.searchCursor >= len(m.searchResults) {
		m.searchCursor = 0
	}
	return m, cmd
}

func (m *appModel) flash(text string) tea.Cmd {
	return m.setToast(text, false)
}

func (m *appModel) flashErr(text string) tea.Cmd {
	return m.setToast(text, true)
}

func (m *appModel) setToast(text string, isErr bool) tea.Cmd {
	m.toast = text
	m.toastErr = isErr
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(m.opts.ToastDuration, func(time.Time) tea.Msg { return toastDoneMsg{seq: seq} })
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
