package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/altinukshini/jobportal-tui/internal/api"
	"github.com/altinukshini/jobportal-tui/internal/config"
	"github.com/altinukshini/jobportal-tui/internal/model"
	"github.com/altinukshini/jobportal-tui/internal/search"
	"github.com/altinukshini/jobportal-tui/internal/tui/confirm"
	"github.com/altinukshini/jobportal-tui/internal/tui/detailview"
	"github.com/altinukshini/jobportal-tui/internal/tui/listview"
	"github.com/altinukshini/jobportal-tui/internal/tui/searchview"
	"github.com/altinukshini/jobportal-tui/internal/ui"
)

// Backend is what the app needs from the job portal API.
type Backend interface {
	search.Searcher
	GetJobListing(ctx context.Context, id int64) (*model.JobListing, error)
	GetApplication(ctx context.Context, id int64) (*model.Application, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status model.ApplicationStatus) (*model.Application, error)
	ListApplications(ctx context.Context, req api.PageRequest) (*model.Page[model.Application], error)
	ListJobListings(ctx context.Context, req api.PageRequest) (*model.Page[model.JobListing], error)
}

// Screen rows: header, search bar, content, status bar.
const (
	searchRow = 1
	chromeH   = 3
)

type App struct {
	cfg     config.Config
	backend Backend
	log     logrus.FieldLogger

	searchView    searchview.Model
	detailView    detailview.Model
	confirmDialog confirm.Model

	applications listview.Model
	jobListings  listview.Model
	listKind     model.Kind
	// The status bar is waiting on a page load to report paging.
	awaitingPage bool

	// Routes visited before the current one, for esc.
	history []search.Route

	width    int
	height   int
	status   string
	showHelp bool
}

func NewApp(cfg config.Config, backend Backend, log logrus.FieldLogger) App {
	sv := searchview.New(backend, searchview.Options{
		Timeout: cfg.RequestTimeout,
		Logger:  log,
	})
	sv.SetOrigin(searchRow)
	return App{
		cfg:          cfg,
		backend:      backend,
		log:          log,
		searchView:   sv,
		detailView:   detailview.New(),
		applications: listview.New(model.KindApplication),
		jobListings:  listview.New(model.KindJobListing),
		listKind:     model.KindApplication,
		status:       "Ready",
	}
}

// withSearch swaps the search bar, for tests that need a shorter debounce.
func (a App) withSearch(sv searchview.Model) App {
	sv.SetOrigin(searchRow)
	a.searchView = sv
	return a
}

// Init loads the first page of applications.
func (a App) Init() tea.Cmd {
	return func() tea.Msg {
		return listview.NeedPageMsg{Kind: model.KindApplication, Page: 0}
	}
}

func (a App) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), a.cfg.RequestTimeout)
}

func (a App) fetchRoute(route search.Route) tea.Cmd {
	switch route.Kind {
	case model.KindJobListing:
		return func() tea.Msg {
			ctx, cancel := a.requestContext()
			defer cancel()
			listing, err := a.backend.GetJobListing(ctx, route.ID)
			return ui.JobListingLoadedMsg{ID: route.ID, Listing: listing, Err: err}
		}
	case model.KindApplication:
		return func() tea.Msg {
			ctx, cancel := a.requestContext()
			defer cancel()
			app, err := a.backend.GetApplication(ctx, route.ID)
			return ui.ApplicationLoadedMsg{ID: route.ID, Application: app, Err: err}
		}
	}
	return nil
}

func (a App) fetchPage(kind model.Kind, page int) tea.Cmd {
	req := api.PageRequest{Page: page, Size: a.cfg.PageSize}
	return func() tea.Msg {
		ctx, cancel := a.requestContext()
		defer cancel()
		if kind == model.KindJobListing {
			p, err := a.backend.ListJobListings(ctx, req)
			return pageLoaded(kind, page, p, err)
		}
		p, err := a.backend.ListApplications(ctx, req)
		return pageLoaded(kind, page, p, err)
	}
}

func pageLoaded[T model.Item](kind model.Kind, page int, p *model.Page[T], err error) ui.PageLoadedMsg {
	if err != nil {
		return ui.PageLoadedMsg{Kind: kind, Page: page, Err: err}
	}
	return ui.PageLoadedMsg{
		Kind:       kind,
		Page:       page,
		Items:      model.Items(*p),
		TotalPages: p.TotalPages,
		Total:      p.TotalElements,
	}
}

func (a App) doUpdateStatus(req ui.ConfirmStatusMsg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.requestContext()
		defer cancel()
		_, err := a.backend.UpdateApplicationStatus(ctx, req.ApplicationID, req.Status)
		if err != nil {
			return ui.ActionResultMsg{Action: "update status", Err: err}
		}
		return ui.ActionResultMsg{Action: fmt.Sprintf("Application #%d marked %s", req.ApplicationID, req.Status), Success: true}
	}
}

func (a *App) listFor(kind model.Kind) *listview.Model {
	if kind == model.KindJobListing {
		return &a.jobListings
	}
	return &a.applications
}

func (a *App) currentList() *listview.Model {
	return a.listFor(a.listKind)
}

// onList reports whether the content pane shows a record list rather than
// a single record.
func (a App) onList() bool {
	return a.detailView.Route().Path == ""
}

func (a *App) loadPage(kind model.Kind, page int) tea.Cmd {
	l := a.listFor(kind)
	l.StartLoading()
	a.awaitingPage = true
	a.status = fmt.Sprintf("Loading %s page %d...", strings.ToLower(l.Title()), page+1)
	return a.fetchPage(kind, page)
}

func (a App) listStatus() string {
	if l := a.listFor(a.listKind); l.Loaded() {
		return l.PageStatus()
	}
	return "Ready"
}

// showList switches the content pane to the kind's list, loading its first
// page on first use.
func (a *App) showList(kind model.Kind) tea.Cmd {
	a.listKind = kind
	a.history = nil
	a.detailView = detailview.New()
	a.propagateSize()
	l := a.currentList()
	if !l.Loaded() && !l.Loading() {
		return a.loadPage(kind, 0)
	}
	a.status = a.listStatus()
	return nil
}

// open shows route in the detail view, remembering the current one.
func (a *App) open(route search.Route) tea.Cmd {
	if cur := a.detailView.Route(); cur.Path != "" {
		a.history = append(a.history, cur)
	}
	a.log.WithFields(logrus.Fields{"path": route.Path, "from_search": route.FromSearch}).Info("opening record")
	a.detailView.Open(route)
	a.status = "Loading " + route.Path + "..."
	return a.fetchRoute(route)
}

func (a *App) back() tea.Cmd {
	if len(a.history) == 0 {
		if a.onList() {
			return nil
		}
		a.detailView = detailview.New()
		a.propagateSize()
		a.status = a.listStatus()
		return nil
	}
	prev := a.history[len(a.history)-1]
	a.history = a.history[:len(a.history)-1]
	a.detailView.Open(prev)
	a.status = "Loading " + prev.Path + "..."
	return a.fetchRoute(prev)
}

func (a *App) closeSearch() {
	a.searchView.Close()
}

func (a *App) updateList(msg tea.Msg) tea.Cmd {
	l := a.currentList()
	var cmd tea.Cmd
	*l, cmd = l.Update(msg)
	return cmd
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.propagateSize()
		return &a, nil

	// Handle confirm dialog result (arrives AFTER dialog deactivates itself)
	case confirm.ResultMsg:
		if msg.Confirmed && msg.Action == confirm.ActionUpdateStatus {
			if req, ok := msg.Data.(ui.ConfirmStatusMsg); ok {
				a.status = fmt.Sprintf("Updating application #%d...", req.ApplicationID)
				cmds = append(cmds, a.doUpdateStatus(req))
			}
		}
		return &a, tea.Batch(cmds...)
	}

	// Handle confirmation dialog input (key events while dialog is showing)
	if a.confirmDialog.IsActive() {
		if km, ok := msg.(tea.KeyMsg); ok && km.Type == tea.KeyCtrlC {
			return &a, tea.Quit
		}
		if _, ok := msg.(tea.KeyMsg); ok {
			var cmd tea.Cmd
			a.confirmDialog, cmd = a.confirmDialog.Update(msg)
			return &a, cmd
		}
	}

	switch msg := msg.(type) {
	case search.DebounceMsg, search.ResultsMsg, spinner.TickMsg:
		var cmd tea.Cmd
		a.searchView, cmd = a.searchView.Update(msg)
		return &a, cmd

	case ui.NavigateMsg:
		return &a, a.open(msg.Route)

	case list.FilterMatchesMsg:
		return &a, a.updateList(msg)

	case listview.NeedPageMsg:
		return &a, a.loadPage(msg.Kind, msg.Page)

	case ui.PageLoadedMsg:
		var appsCmd, listingsCmd tea.Cmd
		a.applications, appsCmd = a.applications.Update(msg)
		a.jobListings, listingsCmd = a.jobListings.Update(msg)
		if msg.Err != nil {
			a.log.WithError(msg.Err).WithFields(logrus.Fields{"kind": msg.Kind, "page": msg.Page}).Warn("page fetch failed")
			a.status = "Error: " + msg.Err.Error()
		} else if a.awaitingPage && msg.Kind == a.listKind && a.onList() {
			a.status = a.listStatus()
		}
		a.awaitingPage = false
		return &a, tea.Batch(appsCmd, listingsCmd)

	case ui.JobListingLoadedMsg:
		a.detailView, _ = a.detailView.Update(msg)
		a.status = loadStatus(msg.Err)
		if msg.Err != nil {
			a.log.WithError(msg.Err).WithField("job_id", msg.ID).Warn("job listing fetch failed")
		}
		return &a, nil

	case ui.ApplicationLoadedMsg:
		a.detailView, _ = a.detailView.Update(msg)
		a.status = loadStatus(msg.Err)
		if msg.Err != nil {
			a.log.WithError(msg.Err).WithField("application_id", msg.ID).Warn("application fetch failed")
		}
		return &a, nil

	case ui.ConfirmStatusMsg:
		a.confirmDialog = confirm.StatusChange(msg)
		return &a, nil

	case ui.ActionResultMsg:
		if !msg.Success {
			a.status = fmt.Sprintf("Failed to %s: %v", msg.Action, msg.Err)
			a.log.WithError(msg.Err).Warn("application status update failed")
			return &a, nil
		}
		a.status = msg.Action
		if route := a.detailView.Route(); route.Path != "" {
			a.detailView.Reload()
			cmds = append(cmds, a.fetchRoute(route))
		}
		if a.applications.Loaded() {
			a.applications.StartLoading()
			cmds = append(cmds, a.fetchPage(model.KindApplication, a.applications.Page()))
		}
		return &a, tea.Batch(cmds...)

	case ui.StatusMsg:
		a.status = msg.Text
		return &a, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if !a.searchView.Hit(msg.X, msg.Y) {
				if a.searchView.Focused() || a.searchView.Visible() {
					a.closeSearch()
				}
				return &a, nil
			}
			var cmd tea.Cmd
			a.searchView, cmd = a.searchView.Update(msg)
			return &a, cmd
		}
		var cmd tea.Cmd
		a.detailView, cmd = a.detailView.Update(msg)
		return &a, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return &a, tea.Quit
		}
		if a.showHelp {
			a.showHelp = false
			return &a, nil
		}
		if (a.searchView.Focused() || a.searchView.Visible()) && key.Matches(msg, ui.SearchKeys.Close) {
			a.closeSearch()
			return &a, nil
		}
		if a.searchView.Focused() {
			var cmd tea.Cmd
			a.searchView, cmd = a.searchView.Update(msg)
			return &a, cmd
		}
		// Letters belong to the list filter while it is being typed.
		if a.onList() && a.currentList().IsFiltering() {
			return &a, a.updateList(msg)
		}
		if key.Matches(msg, ui.Keys.Back) {
			if a.onList() && a.currentList().HasActiveFilter() {
				return &a, a.updateList(msg)
			}
			return &a, a.back()
		}

		switch {
		case key.Matches(msg, ui.Keys.Quit):
			return &a, tea.Quit
		case key.Matches(msg, ui.Keys.Help):
			a.showHelp = true
			return &a, nil
		case key.Matches(msg, ui.Keys.Search):
			a.searchView.Focus()
			return &a, nil
		case key.Matches(msg, ui.Keys.Applications):
			return &a, a.showList(model.KindApplication)
		case key.Matches(msg, ui.Keys.JobListings):
			return &a, a.showList(model.KindJobListing)
		case key.Matches(msg, ui.Keys.Refresh):
			if route := a.detailView.Route(); route.Path != "" {
				a.detailView.Reload()
				a.status = "Reloading " + route.Path + "..."
				return &a, a.fetchRoute(route)
			}
			return &a, a.loadPage(a.listKind, a.currentList().Page())
		}

		if a.onList() {
			return &a, a.updateList(msg)
		}
		var cmd tea.Cmd
		a.detailView, cmd = a.detailView.Update(msg)
		cmds = append(cmds, cmd)
	}

	return &a, tea.Batch(cmds...)
}

func loadStatus(err error) string {
	if err != nil {
		return "Error: " + err.Error()
	}
	return "Loaded"
}

func (a App) contentHeight() int {
	// header(1) + search(1) + status(1) + pane border(2)
	h := a.height - chromeH - 2
	if h < 1 {
		h = 1
	}
	return h
}

func (a *App) propagateSize() {
	a.searchView.SetSize(a.width, a.height)
	inner := tea.WindowSizeMsg{Width: a.width - 4, Height: a.contentHeight()}
	a.detailView, _ = a.detailView.Update(inner)
	a.applications.SetSize(inner.Width, inner.Height)
	a.jobListings.SetSize(inner.Width, inner.Height)
}

// --- View ---

func (a App) View() string {
	tabs := []string{a.applications.Title(), a.jobListings.Title()}
	active := 0
	if a.listKind == model.KindJobListing {
		active = 1
	}
	header := RenderHeader(a.cfg.Host(), tabs, active, a.width)
	searchBar := a.searchView.View()

	body := a.detailView.View()
	if a.onList() {
		body = a.listFor(a.listKind).View()
	}
	pane := ui.StylePaneFocused
	if a.searchView.Focused() {
		pane = ui.StylePane
	}
	content := pane.Width(a.width - 2).Height(a.contentHeight()).Render(body)
	if a.showHelp {
		content = a.renderHelp()
	} else if a.confirmDialog.IsActive() {
		content = lipgloss.Place(a.width, a.contentHeight()+2, lipgloss.Center, lipgloss.Center, a.confirmDialog.View())
	}

	// The results panel drops down over the content.
	lines := strings.Split(content, "\n")
	if panel := a.searchView.PanelView(); panel != "" {
		for i, pl := range strings.Split(panel, "\n") {
			if i < len(lines) {
				lines[i] = pl
			} else {
				lines = append(lines, pl)
			}
		}
	}

	// Hard clamp: ensure content never overflows the terminal.
	if maxContentLines := a.height - chromeH; maxContentLines > 0 && len(lines) > maxContentLines {
		lines = lines[:maxContentLines]
	}
	content = strings.Join(lines, "\n")

	statusBar := RenderStatusBar(StatusLine{
		Text:   a.status,
		Hints:  a.contextHints(),
		Search: a.searchView.Session().Indicator(),
	}, a.width)
	return header + "\n" + searchBar + "\n" + content + "\n" + statusBar
}

func (a App) contextHints() string {
	switch {
	case a.showHelp:
		return "any key:close"
	case a.confirmDialog.IsActive():
		return "y/n:answer  tab:toggle  esc:cancel"
	case a.searchView.Focused():
		return "up/down:select  enter:open  esc:close"
	case a.detailView.Application() != nil:
		return "a:accept  x:reject  p:pending  r:reload  /:search  esc:back  ?:help"
	case a.detailView.Route().Path != "":
		return "r:reload  /:search  esc:back  ?:help"
	case a.listFor(a.listKind).IsFiltering():
		return "enter:apply  esc:cancel"
	case a.listKind == model.KindApplication:
		return "enter:open  a/x/p:status  <-/->:page  f:filter  2:jobs  /:search  ?:help"
	}
	return "enter:open  <-/->:page  f:filter  1:applications  /:search  ?:help"
}

func (a App) renderHelp() string {
	bold := lipgloss.NewStyle().Bold(true)
	key := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).Width(14)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("#D1D5DB"))

	row := func(k, d string) string {
		return "  " + key.Render(k) + desc.Render(d) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n" + bold.Render("  Search") + "\n\n")
	b.WriteString(row("/", "Focus the search bar"))
	b.WriteString(row("up / down", "Move between results (ctrl+p / ctrl+n)"))
	b.WriteString(row("enter", "Open the highlighted result"))
	b.WriteString(row("esc", "Close search and clear the query"))
	b.WriteString(row("click", "Open a result; click elsewhere to close"))

	b.WriteString("\n" + bold.Render("  Lists") + "\n\n")
	b.WriteString(row("1 / 2", "Applications / job listings"))
	b.WriteString(row("j / k", "Move between rows"))
	b.WriteString(row("<- / ->", "Previous / next page"))
	b.WriteString(row("pgup / pgdn", "Scroll within the page"))
	b.WriteString(row("f", "Filter this page"))
	b.WriteString(row("enter", "Open the highlighted record"))

	b.WriteString("\n" + bold.Render("  Records") + "\n\n")
	b.WriteString(row("j / k", "Scroll"))
	b.WriteString(row("r", "Reload"))
	b.WriteString(row("a", "Accept application"))
	b.WriteString(row("x", "Reject application"))
	b.WriteString(row("p", "Mark application pending"))
	b.WriteString(row("esc", "Back"))

	b.WriteString("\n" + bold.Render("  General") + "\n\n")
	b.WriteString(row("?", "Toggle help"))
	b.WriteString(row("q / ctrl+c", "Quit"))

	b.WriteString("\n" + lipgloss.NewStyle().Foreground(ui.ColorMuted).Render("  Press any key to close") + "\n")

	style := ui.StylePaneFocused.Width(a.width - 2).Height(a.contentHeight())
	return style.Render(b.String())
}
