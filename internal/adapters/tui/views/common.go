package views

import "fmt"

// minBodyHeight keeps the list and detail panes usable in tiny terminals
const minBodyHeight = 5

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// SwitchToExplorerMsg returns to the explorer
type SwitchToExplorerMsg struct{}

// copiedMsg reports the outcome of a clipboard copy
type copiedMsg struct {
	id  string
	err error
}

// ViewState holds the terminal size and the status line shared by the views
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// Sized reports whether a window size has been applied yet
func (s *ViewState) Sized() bool {
	return s.Width > 0
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// BodyHeight returns the rows left for the panes once chrome lines are drawn
func (s *ViewState) BodyHeight(chrome int) int {
	return max(s.Height-chrome, minBodyHeight)
}

// SetMessage sets the status line
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// SetError shows err on the status line
func (s *ViewState) SetError(err error) {
	s.SetMessage(err.Error(), true)
}

// ClearMessage clears the status line
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// applyCopied turns a clipboard result into a status line
func (s *ViewState) applyCopied(msg copiedMsg) {
	if msg.err != nil {
		s.SetMessage(fmt.Sprintf("clipboard: %v", msg.err), true)
		return
	}
	s.SetMessage("Copied "+msg.id, false)
}
