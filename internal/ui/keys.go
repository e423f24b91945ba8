package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit         key.Binding
	Help         key.Binding
	Search       key.Binding
	Back         key.Binding
	Enter        key.Binding
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	NextPage     key.Binding
	PrevPage     key.Binding
	Filter       key.Binding
	Refresh      key.Binding
	Accept       key.Binding
	Reject       key.Binding
	Pending      key.Binding
	Applications key.Binding
	JobListings  key.Binding
}

var Keys = KeyMap{
	Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Enter:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "up")),
	Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "down")),
	PageUp:       key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown:     key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	NextPage:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("->", "next page")),
	PrevPage:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("<-", "prev page")),
	Filter:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
	Refresh:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Accept:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "accept")),
	Reject:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reject")),
	Pending:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "mark pending")),
	Applications: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "applications")),
	JobListings:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "job listings")),
}

// SearchKeys apply while the search input has focus, where letters belong
// to the query.
var SearchKeys = struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Close key.Binding
}{
	Up:    key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("up", "prev result")),
	Down:  key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("down", "next result")),
	Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open result")),
	Close: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close search")),
}
