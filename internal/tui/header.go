package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/jobportal-tui/internal/ui"
)

// RenderHeader draws the top line: the app and backend on the left, the
// list tabs on the right with the active one highlighted.
func RenderHeader(host string, tabs []string, active int, width int) string {
	left := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("#F9FAFB")).
		Render(fmt.Sprintf(" jobportal-tui | %s", host))

	rendered := make([]string, len(tabs))
	for i, tab := range tabs {
		label := fmt.Sprintf("%d:%s", i+1, tab)
		if i == active {
			rendered[i] = ui.StyleTitle.Render(label)
		} else {
			rendered[i] = ui.StyleMuted.Render(label)
		}
	}
	right := strings.Join(rendered, "  ") + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(lipgloss.Color("#1F2937")).
		Width(width).
		Render(left + padding + right)
}
