package searchview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"

	"github.com/altinukshini/jobportal-tui/internal/logging"
	"github.com/altinukshini/jobportal-tui/internal/model"
	"github.com/altinukshini/jobportal-tui/internal/search"
	"github.com/altinukshini/jobportal-tui/internal/ui"
)

type Options struct {
	// Debounce defaults to search.DebounceDelay.
	Debounce time.Duration
	Timeout  time.Duration
	Logger   logrus.FieldLogger
}

// Model is the search bar: the query input plus the results panel that
// drops down under it.
type Model struct {
	input      textinput.Model
	spinner    spinner.Model
	session    search.Session
	visibility search.Visibility

	sections []search.Section
	items    []model.Item
	cursor   int

	focused  bool
	spinning bool
	originY  int
	width    int
	height   int
}

func New(searcher search.Searcher, opts Options) Model {
	if opts.Debounce <= 0 {
		opts.Debounce = search.DebounceDelay
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	ti := textinput.New()
	ti.Placeholder = "Search applications, jobs..."
	ti.Prompt = "/ "
	ti.CharLimit = 256
	ti.Cursor.SetMode(cursor.CursorStatic)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ui.ColorPrimary)

	return Model{
		input:   ti,
		spinner: sp,
		session: search.NewSession(searcher, opts.Debounce, opts.Timeout, opts.Logger),
		width:   80,
		height:  24,
	}
}

// Focus gives the input the keyboard and opens the results surface.
func (m *Model) Focus() {
	m.focused = true
	m.input.Focus()
	m.visibility.Open()
}

func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

func (m Model) Focused() bool {
	return m.focused
}

// Visible reports whether the results panel is drawn.
func (m Model) Visible() bool {
	return m.visibility.Visible(m.session)
}

// Close hides the panel, drops the query and any results, and releases
// focus.
func (m *Model) Close() {
	m.visibility.Close(&m.session)
	m.input.SetValue("")
	m.refresh()
	m.Blur()
}

func (m Model) Session() search.Session {
	return m.session
}

// SetOrigin sets the screen row the input is drawn on.
func (m *Model) SetOrigin(y int) {
	m.originY = y
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - lipgloss.Width(m.input.Prompt) - 2
}

// Selected returns the highlighted result, if any.
func (m Model) Selected() model.Item {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return m.items[m.cursor]
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case search.DebounceMsg, search.ResultsMsg:
		cmds = append(cmds, m.session.Update(msg))
		m.refresh()

	case spinner.TickMsg:
		if !m.session.Loading() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if msg.Y == m.originY {
			m.Focus()
			return m, nil
		}
		if idx, ok := m.rowAt(msg.Y); ok {
			m.cursor = idx
			return m, m.selectCurrent()
		}

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch {
		case key.Matches(msg, ui.SearchKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, ui.SearchKeys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, ui.SearchKeys.Enter):
			return m, m.selectCurrent()
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		if after := m.input.Value(); after != before {
			if strings.TrimSpace(after) != "" {
				m.visibility.Open()
			}
			cmds = append(cmds, m.session.SetQuery(after))
			m.visibility.Enforce(&m.session)
			m.refresh()
		}
	}

	if m.session.Loading() && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) refresh() {
	m.sections = search.Present(m.session.Results())
	m.items = nil
	for _, sec := range m.sections {
		for _, row := range sec.Rows {
			m.items = append(m.items, row.Item)
		}
	}
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selectCurrent() tea.Cmd {
	item := m.Selected()
	if item == nil {
		return nil
	}
	route, ok := search.Select(item, &m.visibility, &m.session)
	m.input.SetValue("")
	m.refresh()
	m.Blur()
	if !ok {
		return nil
	}
	return func() tea.Msg { return ui.NavigateMsg{Route: route} }
}

// Hit reports whether the screen cell (x, y) lies on the search bar or its
// open panel.
func (m Model) Hit(x, y int) bool {
	if x < 0 || x >= m.width {
		return false
	}
	if y == m.originY {
		return true
	}
	if !m.Visible() {
		return false
	}
	return y > m.originY && y <= m.originY+m.panelHeight()
}

// panel layout

const panelChrome = 2 // top and bottom border

func (m Model) maxPanelLines() int {
	n := m.height - m.originY - 1 - panelChrome - 1
	if n < 3 {
		n = 3
	}
	return n
}

func (m Model) panelHeight() int {
	lines, _ := m.panelLines()
	return len(lines) + panelChrome
}

// panelLines returns the visible content lines and, per line, the index of
// the result it belongs to or -1.
func (m Model) panelLines() ([]string, []int) {
	lines, owners := m.renderPanel()
	limit := m.maxPanelLines()
	if len(lines) <= limit {
		return lines, owners
	}

	last := 0
	for i, o := range owners {
		if o == m.cursor {
			last = i
		}
	}
	offset := last - limit + 1
	if offset < 0 {
		offset = 0
	}
	return lines[offset : offset+limit], owners[offset : offset+limit]
}

func (m Model) rowAt(y int) (int, bool) {
	if !m.Visible() {
		return 0, false
	}
	_, owners := m.panelLines()
	i := y - m.originY - 1 - 1
	if i < 0 || i >= len(owners) || owners[i] < 0 {
		return 0, false
	}
	return owners[i], true
}

func (m Model) innerWidth() int {
	w := m.width - panelChrome - 2
	if w < 10 {
		w = 10
	}
	return w
}

func (m Model) renderPanel() ([]string, []int) {
	w := m.innerWidth()
	var lines []string
	var owners []int
	add := func(owner int, s string) {
		lines = append(lines, s)
		owners = append(owners, owner)
	}

	add(-1, ui.StyleTitle.Render("Search Results"))
	add(-1, ui.StyleMuted.Render(runewidth.Truncate(
		fmt.Sprintf("Showing results for: \"%s\"", m.session.Query()), w, "…")))

	if m.session.Loading() {
		add(-1, "")
		add(-1, m.spinner.View()+" Searching database...")
		return lines, owners
	}

	idx := 0
	for _, sec := range m.sections {
		add(-1, "")
		add(-1, lipgloss.NewStyle().Bold(true).Render(sec.Title))
		if sec.Placeholder != "" {
			add(-1, ui.StyleMuted.Italic(true).Render("  "+sec.Placeholder))
			continue
		}
		for _, row := range sec.Rows {
			prefix := "  "
			if idx == m.cursor {
				prefix = "> "
			}
			line := prefix
			if row.Badge != "" {
				badge := ui.ApplicationStatusStyle(model.ApplicationStatus(row.Badge)).Render(row.Badge)
				line += runewidth.Truncate(row.Title, w-3-lipgloss.Width(badge), "…") + " " + badge
			} else {
				line += runewidth.Truncate(row.Title, w-2, "…")
			}
			if idx == m.cursor {
				line = ui.StyleSelected.Render(line)
			}
			add(idx, line)
			for _, l := range row.Lines {
				add(idx, "    "+ui.StyleMuted.Render(runewidth.Truncate(l, w-4, "…")))
			}
			idx++
		}
	}
	return lines, owners
}

// View renders the input line.
func (m Model) View() string {
	style := lipgloss.NewStyle().Width(m.width)
	if m.focused {
		return style.Render(m.input.View())
	}
	if m.input.Value() == "" {
		return style.Render(ui.StyleMuted.Render("/ Search applications, jobs..."))
	}
	return style.Render(m.input.View())
}

// PanelView renders the results panel, or "" when it is hidden.
func (m Model) PanelView() string {
	if !m.Visible() {
		return ""
	}
	lines, _ := m.panelLines()
	return ui.StylePaneFocused.
		Width(m.width - panelChrome).
		Render(strings.Join(lines, "\n"))
}
