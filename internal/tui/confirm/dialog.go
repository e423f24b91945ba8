package confirm

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/jobportal-tui/internal/ui"
)

// ResultMsg reports the answer once the dialog closes.
type ResultMsg struct {
	Confirmed bool
	Action    string
	Data      any
}

const ActionUpdateStatus = "update-status"

type Model struct {
	Title    string
	Message  string
	Action   string
	Data     any
	active   bool
	selected bool // true = confirm selected
}

func New(title, message, action string, data any) Model {
	return Model{
		Title:   title,
		Message: message,
		Action:  action,
		Data:    data,
		active:  true,
	}
}

// StatusChange asks before moving an application to a new status. The
// request travels back in ResultMsg.Data.
func StatusChange(req ui.ConfirmStatusMsg) Model {
	return New(
		"Update application status",
		fmt.Sprintf("Mark application #%d as %s?", req.ApplicationID, req.Status),
		ActionUpdateStatus,
		req,
	)
}

func (m Model) IsActive() bool { return m.active }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) answer(yes bool) (Model, tea.Cmd) {
	m.active = false
	res := ResultMsg{Confirmed: yes, Action: m.Action, Data: m.Data}
	return m, func() tea.Msg { return res }
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch km.String() {
	case "y", "Y":
		return m.answer(true)
	case "n", "N":
		return m.answer(false)
	case "enter":
		return m.answer(m.selected)
	case "tab", "left", "right", "h", "l":
		m.selected = !m.selected
	default:
		if key.Matches(km, ui.Keys.Back) {
			return m.answer(false)
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.active {
		return ""
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorWarning).
		Padding(1, 2).
		Width(50)

	title := lipgloss.NewStyle().Bold(true).
		Foreground(ui.ColorWarning).
		Render(m.Title)

	message := m.Message
	if req, ok := m.Data.(ui.ConfirmStatusMsg); ok {
		message += "\n\n" + ui.ApplicationStatusStyle(req.Status).Render(string(req.Status))
	}

	yesStyle := lipgloss.NewStyle().Padding(0, 1)
	noStyle := lipgloss.NewStyle().Padding(0, 1)
	if m.selected {
		yesStyle = yesStyle.Bold(true).Background(ui.ColorSuccess).Foreground(lipgloss.Color("#F9FAFB"))
		noStyle = noStyle.Foreground(ui.ColorMuted)
	} else {
		yesStyle = yesStyle.Foreground(ui.ColorMuted)
		noStyle = noStyle.Bold(true).Background(ui.ColorFailure).Foreground(lipgloss.Color("#F9FAFB"))
	}

	content := fmt.Sprintf("%s\n\n%s\n\n%s  %s\n\ny/n to confirm, esc to cancel",
		title, message,
		yesStyle.Render("Yes"), noStyle.Render("No"))

	return style.Render(content)
}
