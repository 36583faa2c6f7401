package tui

type modalKind int

const (
	modalNone modalKind = iota
	modalFolderForm
	modalClipForm
	modalConfirmDelete
	modalSearch
)

type toastDoneMsg struct{ seq int }

type formFocus int

const (
	focusName formFocus = iota
	focusBody
)
