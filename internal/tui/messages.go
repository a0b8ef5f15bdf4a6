package tui

// resultMsg carries the rendered outcome of one API call.
type resultMsg struct {
	body     string
	copyText string
	err      error
}

type copiedMsg struct {
	err error
}
