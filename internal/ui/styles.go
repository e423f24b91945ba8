package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/jobportal-tui/internal/model"
	"github.com/altinukshini/jobportal-tui/internal/search"
)

var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorFailure   = lipgloss.Color("#EF4444")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorInfo      = lipgloss.Color("#3B82F6")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorBorder    = lipgloss.Color("#374151")
	ColorHighlight = lipgloss.Color("#1F2937")

	StylePane = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	StylePaneFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F9FAFB")).
			Background(ColorPrimary).
			Padding(0, 1)

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleFailure = lipgloss.NewStyle().Foreground(ColorFailure)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)

	StyleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F9FAFB")).
			Background(ColorHighlight)

	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
)

// ApplicationStatusStyle colors an application status badge. APPROVED is
// an older spelling of ACCEPTED.
func ApplicationStatusStyle(status model.ApplicationStatus) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#F9FAFB"))
	switch status {
	case model.StatusPending:
		return base.Background(ColorWarning)
	case model.StatusAccepted, model.StatusApproved:
		return base.Background(ColorSuccess)
	case model.StatusRejected:
		return base.Background(ColorFailure)
	default:
		return base.Background(ColorMuted)
	}
}

// SessionIcon summarizes the search session state for the status bar.
func SessionIcon(status search.Status) string {
	switch status {
	case search.Debouncing:
		return StyleMuted.Render("o")
	case search.Fetching:
		return StyleInfo.Render("*")
	case search.Ready:
		return StyleSuccess.Render("V")
	case search.Error:
		return StyleFailure.Render("X")
	default:
		return StyleMuted.Render("-")
	}
}
