package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altinukshini/jobportal-tui/internal/model"
)

func TestStatusKeyCmd(t *testing.T) {
	app := model.Application{ApplicationID: 3, Status: model.StatusPending}
	press := func(k string) tea.KeyMsg {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}

	tests := []struct {
		key  string
		want tea.Msg
	}{
		{"a", ConfirmStatusMsg{ApplicationID: 3, Status: model.StatusAccepted}},
		{"x", ConfirmStatusMsg{ApplicationID: 3, Status: model.StatusRejected}},
		{"p", StatusMsg{Text: "Application #3 is already PENDING"}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cmd := StatusKeyCmd(app, press(tt.key))
			require.NotNil(t, cmd)
			assert.Equal(t, tt.want, cmd())
		})
	}

	assert.Nil(t, StatusKeyCmd(app, press("z")))
}
