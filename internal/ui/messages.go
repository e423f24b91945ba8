package ui

import (
	"github.com/altinukshini/jobportal-tui/internal/model"
	"github.com/altinukshini/jobportal-tui/internal/search"
)

// NavigateMsg asks the app to open the record behind a route.
type NavigateMsg struct {
	Route search.Route
}

type JobListingLoadedMsg struct {
	ID      int64
	Listing *model.JobListing
	Err     error
}

type ApplicationLoadedMsg struct {
	ID          int64
	Application *model.Application
	Err         error
}

// ConfirmStatusMsg asks for confirmation before changing an application's
// status.
type ConfirmStatusMsg struct {
	ApplicationID int64
	Status        model.ApplicationStatus
}

// Action result messages
type ActionResultMsg struct {
	Action  string
	Success bool
	Err     error
}

// PageLoadedMsg carries one page of a record list. Page is zero-based.
type PageLoadedMsg struct {
	Kind       model.Kind
	Page       int
	Items      []model.Item
	TotalPages int
	Total      int64
	Err        error
}

// StatusMsg replaces the status bar text.
type StatusMsg struct {
	Text string
}
