package confirm

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altinukshini/jobportal-tui/internal/model"
	"github.com/altinukshini/jobportal-tui/internal/ui"
)

func press(m Model, k tea.KeyMsg) (Model, *ResultMsg) {
	m, cmd := m.Update(k)
	if cmd == nil {
		return m, nil
	}
	res := cmd().(ResultMsg)
	return m, &res
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStatusChangeAnswers(t *testing.T) {
	req := ui.ConfirmStatusMsg{ApplicationID: 5, Status: model.StatusAccepted}

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want bool
	}{
		{"yes", []tea.KeyMsg{runes("y")}, true},
		{"no", []tea.KeyMsg{runes("n")}, false},
		{"esc", []tea.KeyMsg{{Type: tea.KeyEsc}}, false},
		{"enter defaults to no", []tea.KeyMsg{{Type: tea.KeyEnter}}, false},
		{"tab then enter", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyEnter}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := StatusChange(req)
			require.True(t, m.IsActive())

			var res *ResultMsg
			for _, k := range tt.keys {
				m, res = press(m, k)
			}
			require.NotNil(t, res)
			assert.Equal(t, tt.want, res.Confirmed)
			assert.Equal(t, ActionUpdateStatus, res.Action)
			assert.Equal(t, req, res.Data)
			assert.False(t, m.IsActive())
			assert.Empty(t, m.View())
		})
	}
}

func TestInactiveDialogIgnoresKeys(t *testing.T) {
	m := StatusChange(ui.ConfirmStatusMsg{ApplicationID: 5, Status: model.StatusRejected})
	m, _ = press(m, runes("n"))

	_, res := press(m, runes("y"))
	assert.Nil(t, res)
}

func TestViewShowsRequest(t *testing.T) {
	m := StatusChange(ui.ConfirmStatusMsg{ApplicationID: 5, Status: model.StatusRejected})
	view := m.View()
	assert.Contains(t, view, "Mark application #5 as REJECTED?")
	assert.Contains(t, view, "Update application status")
}
