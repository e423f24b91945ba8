// Package search holds the global search logic behind the top bar: the
// debounced query session, result presentation, surface visibility and
// selection routing. None of it draws anything.
package search

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/altinukshini/jobportal-tui/internal/model"
)

type Status int

const (
	Idle Status = iota
	Debouncing
	Fetching
	Ready
	Error
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Debouncing:
		return "debouncing"
	case Fetching:
		return "fetching"
	case Ready:
		return "ready"
	case Error:
		return "error"
	}
	return "unknown"
}

// Searcher is the backend transport.
type Searcher interface {
	GlobalSearch(ctx context.Context, query string) (model.ResultSet, error)
}

// Token identifies a dispatched request. Only a reply carrying the latest
// token may touch the session.
type Token uint64

// ResultsMsg carries a transport reply back into the loop.
type ResultsMsg struct {
	Token   Token
	Query   string
	Results model.ResultSet
	Err     error
}

// Session owns the query text, the request status and the latest accepted
// results.
type Session struct {
	searcher Searcher
	log      logrus.FieldLogger
	delay    time.Duration
	timeout  time.Duration

	debounce Debouncer
	query    string
	status   Status
	results  model.ResultSet
	latest   Token
	failed   bool
}

// NewSession builds an idle session. delay is the debounce interval and
// timeout bounds each transport call; zero means no bound.
func NewSession(searcher Searcher, delay, timeout time.Duration, log logrus.FieldLogger) Session {
	return Session{
		searcher: searcher,
		log:      log,
		delay:    delay,
		timeout:  timeout,
		debounce: NewDebouncer(),
		results:  model.ResultSet{},
	}
}

func (s Session) Query() string            { return s.query }
func (s Session) Status() Status           { return s.status }
func (s Session) Results() model.ResultSet { return s.results }

// Indicator is the status to show the user. A failed search leaves the
// session Ready with no results; it reads as Error until the next search.
func (s Session) Indicator() Status {
	if s.status == Ready && s.failed {
		return Error
	}
	return s.status
}

// Loading is true while a search is pending or in flight.
func (s Session) Loading() bool {
	return s.status == Debouncing || s.status == Fetching
}

// Empty reports whether there is neither query text nor any result.
func (s Session) Empty() bool {
	return s.query == "" && s.results.Empty()
}

// SetQuery records a keystroke. Blank text clears everything synchronously;
// anything else (re)arms the debounce timer.
func (s *Session) SetQuery(text string) tea.Cmd {
	s.query = text
	if strings.TrimSpace(text) == "" {
		s.debounce.Cancel()
		s.results = model.ResultSet{}
		s.status = Idle
		s.failed = false
		s.supersede()
		return nil
	}
	s.status = Debouncing
	return s.debounce.Arm(s.delay)
}

// Reset returns to Idle with no query and no results. Replies still in
// flight become stale.
func (s *Session) Reset() {
	s.debounce.Cancel()
	s.query = ""
	s.results = model.ResultSet{}
	s.status = Idle
	s.failed = false
	s.supersede()
}

// Update handles the session's own messages and returns the follow-up
// command, if any.
func (s *Session) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case DebounceMsg:
		if !s.debounce.Fire(msg) {
			return nil
		}
		return s.dispatch()
	case ResultsMsg:
		s.accept(msg)
	}
	return nil
}

func (s *Session) supersede() {
	s.latest++
}

func (s *Session) dispatch() tea.Cmd {
	q := strings.TrimSpace(s.query)
	if q == "" {
		s.status = Idle
		return nil
	}
	s.latest++
	token := s.latest
	s.status = Fetching
	s.log.WithFields(logrus.Fields{"query": q, "token": token}).Debug("search dispatched")

	searcher, timeout := s.searcher, s.timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		rs, err := searcher.GlobalSearch(ctx, q)
		return ResultsMsg{Token: token, Query: q, Results: rs, Err: err}
	}
}

func (s *Session) accept(msg ResultsMsg) {
	if msg.Token != s.latest {
		s.log.WithFields(logrus.Fields{
			"query":  msg.Query,
			"token":  msg.Token,
			"latest": s.latest,
		}).Debug("discarding stale search reply")
		return
	}

	// A newer keystroke may already be waiting on the timer.
	next := Ready
	if s.debounce.Pending() {
		next = Debouncing
	}

	// Failures surface as an empty result set; the log carries the cause.
	if msg.Err != nil {
		s.status = Error
		s.log.WithError(msg.Err).WithFields(logrus.Fields{
			"query":  msg.Query,
			"status": s.status,
		}).Warn("global search failed")
		s.results = model.ResultSet{}
		s.failed = true
		s.status = next
		return
	}
	if msg.Results == nil {
		msg.Results = model.ResultSet{}
	}
	s.results = msg.Results
	s.failed = false
	s.status = next
}
