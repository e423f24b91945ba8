package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/jobportal-tui/internal/search"
	"github.com/altinukshini/jobportal-tui/internal/ui"
)

// StatusLine is what the bottom bar shows.
type StatusLine struct {
	Text   string
	Hints  string
	// Search is the session indicator; Idle hides it.
	Search search.Status
}

func RenderStatusBar(line StatusLine, width int) string {
	muted := lipgloss.NewStyle().Foreground(ui.ColorMuted)

	left := "  "
	if line.Search != search.Idle {
		left += ui.SessionIcon(line.Search) + " " + muted.Render("search: "+line.Search.String()) + "  "
	}
	left += muted.Render(line.Text)

	help := muted.Render(line.Hints + " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(lipgloss.Color("#111827")).
		Width(width).
		Render(left + padding + help)
}
