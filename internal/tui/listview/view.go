// Package listview pages through applications or job listings one backend
// page at a time.
package listview

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/altinukshini/jobportal-tui/internal/model"
	"github.com/altinukshini/jobportal-tui/internal/search"
	"github.com/altinukshini/jobportal-tui/internal/ui"
)

// NeedPageMsg asks the app to load another backend page. Page is zero-based.
type NeedPageMsg struct {
	Kind model.Kind
	Page int
}

// --- Delegate ---

type recordDelegate struct{}

func (d recordDelegate) Height() int                             { return 2 }
func (d recordDelegate) Spacing() int                            { return 0 }
func (d recordDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d recordDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ri, ok := item.(recordItem)
	if !ok {
		return
	}
	width := m.Width()

	badge := ""
	if ri.badge != "" {
		badge = ui.ApplicationStatusStyle(model.ApplicationStatus(ri.badge)).Render(ri.badge)
	}
	text := ri.id + " " + ri.title
	if ri.sub != "" {
		text += "  " + ri.sub
	}
	text = runewidth.Truncate(text, width-3-lipgloss.Width(badge), "…")
	gap := width - 2 - runewidth.StringWidth(text) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	line1 := " " + text + strings.Repeat(" ", gap) + badge
	line2 := "    " + ui.StyleMuted.Render(runewidth.Truncate(ri.detail, width-4, "…"))

	if index == m.Index() {
		hl := lipgloss.NewStyle().Background(ui.ColorHighlight).Width(width)
		line1 = hl.Render(line1)
		line2 = hl.Render(line2)
	}

	fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// --- Item ---

type recordItem struct {
	item   model.Item
	id     string
	title  string
	sub    string
	badge  string
	detail string
	filter []string
}

func newRecordItem(item model.Item) recordItem {
	ri := recordItem{item: item, id: "#" + strconv.FormatInt(item.ItemID(), 10)}
	item.Accept(&ri)
	return ri
}

// FilterValue covers the columns the admin tables filter on.
func (r recordItem) FilterValue() string {
	return strconv.FormatInt(r.item.ItemID(), 10) + " " + strings.Join(r.filter, " ")
}

func (r *recordItem) VisitApplication(a model.Application) {
	r.title = orNA(a.JobTitle())
	r.sub = orNA(a.ApplicantName())
	r.badge = string(a.Status)
	if r.badge == "" {
		r.badge = "UNKNOWN"
	}
	r.detail = a.ApplicantEmail()
	r.filter = []string{r.title, r.sub, r.badge}
}

func (r *recordItem) VisitJobListing(j model.JobListing) {
	r.title = j.Title
	if r.title == "" {
		r.title = "Untitled"
	}
	r.sub = j.CategoryName()
	var parts []string
	if j.Location != "" {
		parts = append(parts, j.Location)
	}
	if j.Salary != 0 {
		parts = append(parts, search.FormatSalary(j.Salary))
	}
	r.detail = strings.Join(parts, " · ")
	r.filter = []string{j.Title, j.Description, j.Location, strconv.FormatFloat(j.Salary, 'f', -1, 64), j.CategoryName()}
}

func (r *recordItem) VisitGeneric(g model.Generic) {
	r.title = string(g.Kind())
	r.filter = []string{r.title}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// --- Model ---

type Model struct {
	kind       model.Kind
	list       list.Model
	page       int
	totalPages int
	total      int64
	loaded     bool
	loading    bool
	err        error
	width      int
	height     int
}

func New(kind model.Kind) Model {
	m := Model{kind: kind}

	l := list.New(nil, recordDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowFilter(true)
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName(strings.TrimSuffix(m.noun(), "s"), m.noun())
	l.KeyMap.Filter = ui.Keys.Filter
	l.KeyMap.CursorUp = ui.Keys.Up
	l.KeyMap.CursorDown = ui.Keys.Down
	// left/right page through the backend; pgup/pgdown scroll this page.
	l.KeyMap.NextPage = ui.Keys.PageDown
	l.KeyMap.PrevPage = ui.Keys.PageUp
	l.DisableQuitKeybindings()

	m.list = l
	return m
}

func (m Model) Kind() model.Kind {
	return m.kind
}

// Title names the list for the header.
func (m Model) Title() string {
	if m.kind == model.KindJobListing {
		return "Job listings"
	}
	return "Applications"
}

func (m Model) noun() string {
	return strings.ToLower(m.Title())
}

// Page is the zero-based backend page on screen.
func (m Model) Page() int {
	return m.page
}

func (m Model) TotalPages() int {
	return m.totalPages
}

func (m Model) Loaded() bool {
	return m.loaded
}

func (m Model) Loading() bool {
	return m.loading
}

func (m Model) Err() error {
	return m.err
}

func (m Model) HasNext() bool {
	return m.page+1 < m.totalPages
}

func (m Model) HasPrev() bool {
	return m.page > 0
}

// StartLoading marks a request for this list as in flight.
func (m *Model) StartLoading() {
	m.loading = true
}

func (m Model) Selected() model.Item {
	if item, ok := m.list.SelectedItem().(recordItem); ok {
		return item.item
	}
	return nil
}

func (m Model) IsFiltering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) HasActiveFilter() bool {
	return m.list.FilterState() != list.Unfiltered
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height)
}

// PageStatus summarizes paging for the status bar.
func (m Model) PageStatus() string {
	if m.totalPages == 0 {
		return "No " + m.noun()
	}
	return fmt.Sprintf("Page %d/%d  |  %d %s  |  <-/->: page", m.page+1, m.totalPages, m.total, m.noun())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.PageLoadedMsg:
		if msg.Kind != m.kind {
			return m, nil
		}
		m.loading = false
		m.loaded = true
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.page = msg.Page
		m.totalPages = msg.TotalPages
		m.total = msg.Total
		items := make([]list.Item, len(msg.Items))
		for i, it := range msg.Items {
			items[i] = newRecordItem(it)
		}
		cmd := m.list.SetItems(items)
		m.list.Select(0)
		return m, cmd

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.IsFiltering() {
			break
		}
		switch {
		case key.Matches(msg, ui.Keys.Enter):
			if route, ok := search.RouteTo(m.Selected()); ok {
				return m, func() tea.Msg { return ui.NavigateMsg{Route: route} }
			}
			return m, nil
		case key.Matches(msg, ui.Keys.NextPage):
			return m, m.turnPage(m.page + 1)
		case key.Matches(msg, ui.Keys.PrevPage):
			return m, m.turnPage(m.page - 1)
		}

		if app, ok := m.Selected().(model.Application); ok {
			if cmd := ui.StatusKeyCmd(app, msg); cmd != nil {
				return m, cmd
			}
		}

		// Down on the last row moves on to the next page.
		if key.Matches(msg, ui.Keys.Down) && !m.HasActiveFilter() {
			if n := len(m.list.Items()); n > 0 && m.list.Index() >= n-1 {
				if cmd := m.turnPage(m.page + 1); cmd != nil {
					return m, cmd
				}
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// turnPage asks for page if it exists and nothing is in flight.
func (m *Model) turnPage(page int) tea.Cmd {
	if m.loading || page < 0 || page >= m.totalPages || page == m.page {
		return nil
	}
	m.loading = true
	kind := m.kind
	return func() tea.Msg { return NeedPageMsg{Kind: kind, Page: page} }
}

func (m Model) View() string {
	switch {
	case !m.loaded && m.loading:
		return "\n  " + ui.StyleWarning.Render("Loading "+m.noun()+"...")
	case !m.loaded:
		return "\n  " + ui.StyleMuted.Render("Press r to load "+m.noun())
	case m.err != nil && len(m.list.Items()) == 0:
		return "\n  " + ui.StyleFailure.Render("Error: "+m.err.Error()) +
			"\n\n  " + ui.StyleMuted.Render("Press r to retry")
	case len(m.list.Items()) == 0:
		return "\n  " + ui.StyleMuted.Render("No "+m.noun()+" found")
	}
	return m.list.View()
}
