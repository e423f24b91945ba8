package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/jobportal-tui/internal/model"
)

// StatusKeyCmd turns the accept, reject and pending keys into a request to
// change app's status. A key for the status app already has only reports
// that on the status bar. Other keys return nil.
func StatusKeyCmd(app model.Application, msg tea.KeyMsg) tea.Cmd {
	var status model.ApplicationStatus
	switch {
	case key.Matches(msg, Keys.Accept):
		status = model.StatusAccepted
	case key.Matches(msg, Keys.Reject):
		status = model.StatusRejected
	case key.Matches(msg, Keys.Pending):
		status = model.StatusPending
	default:
		return nil
	}
	if status == app.Status {
		text := fmt.Sprintf("Application #%d is already %s", app.ApplicationID, status)
		return func() tea.Msg { return StatusMsg{Text: text} }
	}
	req := ConfirmStatusMsg{ApplicationID: app.ApplicationID, Status: status}
	return func() tea.Msg { return req }
}
