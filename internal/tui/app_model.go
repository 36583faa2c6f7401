package tui

import (
	"context"

	"shiftclip/internal/model"
	"shiftclip/internal/search"
	"shiftclip/internal/session"
	"shiftclip/internal/store"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

type appModel struct {
	ctx  context.Context
	sess *session.Session
	log  zerolog.Logger
	opts Options

	theme store.Theme
	clip  clipboardWriter

	width  int
	height int

	modal modalKind

	// Create/edit form. editing is nil when creating.
	formKind model.Kind
	editing  model.Path
	nameIn   textinput.Model
	bodyIn   textarea.Model
	focus    formFocus
	formErr  string

	pendingDelete model.Path
	confirmFocus  confirmModalFocus

	searchIn      textinput.Model
	searchResults []search.Match
	searchCursor  int

	// drag holds an encoded payload between cut and drop.
	drag     string
	dragName string

	toast    string
	toastErr bool
	toastSeq int
}

func newAppModel(ctx context.Context, sess *session.Session, opts Options) appModel {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = defaultToastDuration
	}

	nameIn := textinput.New()
	nameIn.Prompt = ""
	nameIn.CharLimit = 200

	bodyIn := textarea.New()
	bodyIn.ShowLineNumbers = false
	bodyIn.Prompt = ""
	bodyIn.CharLimit = 0
	bodyIn.SetHeight(6)

	searchIn := textinput.New()
	searchIn.Prompt = "/ "
	searchIn.Placeholder = "search clips"

	return appModel{
		ctx:      ctx,
		sess:     sess,
		log:      opts.Log,
		opts:     opts,
		theme:    resolveTheme(opts.Theme),
		clip:     copyToClipboard,
		width:    80,
		height:   24,
		nameIn:   nameIn,
		bodyIn:   bodyIn,
		searchIn: searchIn,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

// selected is the node under the cursor, if any.
func (m appModel) selected() (*model.Node, model.Path, bool) {
	p := m.sess.Selection()
	n, ok := m.sess.Resolve(p)
	return n, p, ok
}

func (m *appModel) resizeInputs() {
	w := modalBodyWidth(m.width) - 2
	m.nameIn.Width = w
	m.searchIn.Width = w
	m.bodyIn.SetWidth(modalBodyWidth(m.width))
}
