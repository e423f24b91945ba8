// Package detailview shows a single job listing or application opened from
// the global search or a record list.
package detailview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/jobportal-tui/internal/model"
	"github.com/altinukshini/jobportal-tui/internal/search"
	"github.com/altinukshini/jobportal-tui/internal/ui"
)

type Model struct {
	route       search.Route
	listing     *model.JobListing
	application *model.Application
	err         error
	loading     bool
	viewport    viewport.Model
	width       int
	height      int
	ready       bool
}

func New() Model {
	return Model{}
}

// Open switches to the record behind route and marks it loading. The
// caller fetches it.
func (m *Model) Open(route search.Route) {
	m.route = route
	m.listing = nil
	m.application = nil
	m.err = nil
	m.loading = true
	m.refresh()
}

// Reload keeps what is on screen and marks it loading again.
func (m *Model) Reload() {
	m.loading = true
}

func (m Model) Route() search.Route {
	return m.route
}

func (m Model) Application() *model.Application {
	return m.application
}

func (m Model) JobListing() *model.JobListing {
	return m.listing
}

func (m Model) Loading() bool {
	return m.loading
}

func (m Model) Err() error {
	return m.err
}

func (m *Model) refresh() {
	if m.ready {
		m.viewport.SetContent(m.render())
		m.viewport.GotoTop()
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerH := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerH)
			m.ready = true
			m.viewport.SetContent(m.render())
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerH
		}

	case ui.JobListingLoadedMsg:
		if m.route.Kind != model.KindJobListing || msg.ID != m.route.ID {
			return m, nil
		}
		m.loading = false
		m.listing, m.err = msg.Listing, msg.Err
		m.refresh()
		return m, nil

	case ui.ApplicationLoadedMsg:
		if m.route.Kind != model.KindApplication || msg.ID != m.route.ID {
			return m, nil
		}
		m.loading = false
		m.application, m.err = msg.Application, msg.Err
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.application == nil || m.loading {
			break
		}
		if cmd := ui.StatusKeyCmd(*m.application, msg); cmd != nil {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.route.Path == "" {
		return "\n  Press / to search job listings and applications"
	}

	var title string
	switch m.route.Kind {
	case model.KindJobListing:
		title = fmt.Sprintf(" Job listing #%d", m.route.ID)
	case model.KindApplication:
		title = fmt.Sprintf(" Application #%d", m.route.ID)
	}
	if m.route.FromSearch {
		title += "  " + ui.StyleMuted.Render("(opened from search)")
	}

	hints := "  j/k:scroll  esc:back"
	if m.application != nil {
		hints = "  a:accept  x:reject  p:pending" + hints
	}
	header := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("#F9FAFB")).
		Render(title) + ui.StyleMuted.Render(hints)

	if !m.ready {
		return header + "\n" + m.render()
	}
	return header + "\n" + m.viewport.View()
}

func (m Model) render() string {
	switch {
	case m.loading:
		return "\n  " + ui.StyleMuted.Render("Loading...")
	case m.err != nil:
		return "\n  " + ui.StyleFailure.Render("Error: "+m.err.Error())
	case m.listing != nil:
		return renderListing(*m.listing)
	case m.application != nil:
		return renderApplication(*m.application)
	}
	return ""
}

var (
	bold  = lipgloss.NewStyle().Bold(true)
	label = lipgloss.NewStyle().Foreground(ui.ColorMuted).Width(16)
	value = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9FAFB"))
)

func row(l, v string) string {
	return "  " + label.Render(l) + value.Render(v) + "\n"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func renderListing(j model.JobListing) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + bold.Render(orDash(j.Title)) + "\n\n")

	b.WriteString(row("Job ID", fmt.Sprintf("%d", j.JobID)))
	b.WriteString(row("Category", orDash(j.CategoryName())))
	b.WriteString(row("Location", orDash(j.Location)))
	if j.Salary != 0 {
		b.WriteString(row("Salary", search.FormatSalary(j.Salary)))
	} else {
		b.WriteString(row("Salary", "-"))
	}
	b.WriteString("\n")

	b.WriteString("  " + bold.Render("Description") + "\n\n")
	for _, line := range strings.Split(orDash(j.Description), "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

func renderApplication(a model.Application) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + bold.Render(fmt.Sprintf("Application #%d", a.ApplicationID)) + "\n\n")

	status := string(a.Status)
	if status == "" {
		status = "UNKNOWN"
	}
	b.WriteString("  " + label.Render("Status") + ui.ApplicationStatusStyle(a.Status).Render(status) + "\n")
	b.WriteString("\n")

	b.WriteString("  " + bold.Render("Applicant") + "\n\n")
	b.WriteString(row("Username", orDash(a.ApplicantName())))
	b.WriteString(row("Email", orDash(a.ApplicantEmail())))
	if a.User != nil && a.User.Role != "" {
		b.WriteString(row("Role", a.User.Role))
	}
	b.WriteString("\n")

	b.WriteString("  " + bold.Render("Job") + "\n\n")
	if a.Job == nil {
		b.WriteString("  " + ui.StyleMuted.Render("No job attached") + "\n")
		return b.String()
	}
	b.WriteString(row("Job ID", fmt.Sprintf("%d", a.Job.JobID)))
	b.WriteString(row("Title", orDash(a.Job.Title)))
	b.WriteString(row("Category", orDash(a.Job.CategoryName())))
	b.WriteString(row("Location", orDash(a.Job.Location)))
	return b.String()
}
