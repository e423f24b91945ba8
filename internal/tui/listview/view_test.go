package listview

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altinukshini/jobportal-tui/internal/model"
	"github.com/altinukshini/jobportal-tui/internal/ui"
)

func applications() []model.Item {
	return []model.Item{
		model.Application{
			ApplicationID: 6,
			Status:        model.StatusPending,
			Job:           &model.JobListing{Title: "Go Developer"},
			User:          &model.User{Username: "alice", Email: "alice@example.com"},
		},
		model.Application{ApplicationID: 7, Status: model.StatusRejected},
	}
}

func loaded(t *testing.T, kind model.Kind, page, totalPages int, items []model.Item) Model {
	t.Helper()
	m := New(kind)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m.StartLoading()
	m, _ = m.Update(ui.PageLoadedMsg{Kind: kind, Page: page, TotalPages: totalPages, Total: int64(totalPages * 2), Items: items})
	require.True(t, m.Loaded())
	require.False(t, m.Loading())
	return m
}

func press(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func TestPageLoadedFillsList(t *testing.T) {
	m := loaded(t, model.KindApplication, 0, 3, applications())

	require.NotNil(t, m.Selected())
	assert.Equal(t, int64(6), m.Selected().ItemID())

	view := m.View()
	assert.Contains(t, view, "#6 Go Developer")
	assert.Contains(t, view, "alice")
	assert.Contains(t, view, "PENDING")
	assert.Contains(t, view, "#7 N/A  N/A")
	assert.Equal(t, "Page 1/3  |  6 applications  |  <-/->: page", m.PageStatus())
}

func TestIgnoresOtherKinds(t *testing.T) {
	m := New(model.KindJobListing)
	m.StartLoading()
	m, _ = m.Update(ui.PageLoadedMsg{Kind: model.KindApplication, TotalPages: 1, Items: applications()})
	assert.False(t, m.Loaded())
	assert.True(t, m.Loading())
	assert.Contains(t, m.View(), "Loading job listings...")
}

func TestEnterOpensRecord(t *testing.T) {
	m := loaded(t, model.KindApplication, 0, 1, applications())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	nav, ok := cmd().(ui.NavigateMsg)
	require.True(t, ok)
	assert.Equal(t, "/application/6", nav.Route.Path)
	assert.False(t, nav.Route.FromSearch)
}

func TestPagingAsksForNeighbours(t *testing.T) {
	m := loaded(t, model.KindApplication, 0, 2, applications())
	assert.True(t, m.HasNext())
	assert.False(t, m.HasPrev())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Nil(t, cmd, "no page before the first")

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.NotNil(t, cmd)
	assert.Equal(t, NeedPageMsg{Kind: model.KindApplication, Page: 1}, cmd())
	assert.True(t, m.Loading())

	_, cmd = m.Update(press("l"))
	assert.Nil(t, cmd, "one request at a time")

	m, _ = m.Update(ui.PageLoadedMsg{Kind: model.KindApplication, Page: 1, TotalPages: 2, Items: applications()[1:]})
	assert.Equal(t, 1, m.Page())
	assert.False(t, m.HasNext())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd, "no page after the last")

	_, cmd = m.Update(press("h"))
	require.NotNil(t, cmd)
	assert.Equal(t, NeedPageMsg{Kind: model.KindApplication, Page: 0}, cmd())
}

func TestDownOnLastRowAdvances(t *testing.T) {
	m := loaded(t, model.KindApplication, 0, 2, applications())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, int64(7), m.Selected().ItemID())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.NotNil(t, cmd)
	assert.Equal(t, NeedPageMsg{Kind: model.KindApplication, Page: 1}, cmd())
}

func TestStatusKeysOnApplicationRows(t *testing.T) {
	m := loaded(t, model.KindApplication, 0, 1, applications())

	_, cmd := m.Update(press("a"))
	require.NotNil(t, cmd)
	assert.Equal(t, ui.ConfirmStatusMsg{ApplicationID: 6, Status: model.StatusAccepted}, cmd())

	_, cmd = m.Update(press("p"))
	require.NotNil(t, cmd)
	assert.Equal(t, ui.StatusMsg{Text: "Application #6 is already PENDING"}, cmd())
}

func TestJobListingRows(t *testing.T) {
	listings := []model.Item{
		model.JobListing{
			JobID:       3,
			Title:       "SRE",
			Location:    "Kigali",
			Salary:      900000,
			JobCategory: &model.JobCategory{CategoryName: "Engineering"},
		},
	}
	m := loaded(t, model.KindJobListing, 0, 1, listings)

	view := m.View()
	assert.Contains(t, view, "#3 SRE  Engineering")
	assert.Contains(t, view, "Kigali · 900,000 Rwf /month")
	assert.NotContains(t, view, "PENDING")
}

func TestFilterValueCoversColumns(t *testing.T) {
	ri := newRecordItem(applications()[0])
	for _, want := range []string{"6", "Go Developer", "alice", "PENDING"} {
		assert.True(t, strings.Contains(ri.FilterValue(), want), want)
	}

	ri = newRecordItem(model.JobListing{JobID: 3, Title: "SRE", Description: "on call", JobCategory: &model.JobCategory{CategoryName: "Ops"}})
	for _, want := range []string{"3", "SRE", "on call", "Ops"} {
		assert.True(t, strings.Contains(ri.FilterValue(), want), want)
	}
}

func TestFilterKeyStartsFiltering(t *testing.T) {
	m := loaded(t, model.KindApplication, 0, 1, applications())

	m, _ = m.Update(press("f"))
	assert.True(t, m.IsFiltering())

	// Letters belong to the filter while typing.
	_, cmd := m.Update(press("a"))
	if cmd != nil {
		_, isConfirm := cmd().(ui.ConfirmStatusMsg)
		assert.False(t, isConfirm)
	}
}

func TestLoadErrorView(t *testing.T) {
	m := New(model.KindApplication)
	assert.Contains(t, m.View(), "Press r to load applications")

	m.StartLoading()
	m, _ = m.Update(ui.PageLoadedMsg{Kind: model.KindApplication, Err: errors.New("forbidden")})
	assert.Equal(t, "forbidden", m.Err().Error())
	assert.Contains(t, m.View(), "Error: forbidden")
	assert.Contains(t, m.View(), "Press r to retry")
}

func TestEmptyPage(t *testing.T) {
	m := loaded(t, model.KindJobListing, 0, 0, nil)
	assert.Contains(t, m.View(), "No job listings found")
	assert.Equal(t, "No job listings", m.PageStatus())
}
