package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altinukshini/jobportal-tui/internal/model"
)

func TestPresentOrdersKinds(t *testing.T) {
	rs := model.ResultSet{
		"zebra":               {},
		model.KindApplication: {model.Application{ApplicationID: 1}},
		"company":             {},
		model.KindJobListing:  {model.JobListing{JobID: 1}},
	}

	var kinds []model.Kind
	for _, sec := range Present(rs) {
		kinds = append(kinds, sec.Kind)
	}
	assert.Equal(t, []model.Kind{model.KindJobListing, model.KindApplication, "company", "zebra"}, kinds)
}

func TestPresentEmptyKindKeepsSection(t *testing.T) {
	sections := Present(model.ResultSet{model.KindApplication: {}})
	require.Len(t, sections, 1)
	assert.Equal(t, "Application (0)", sections[0].Title)
	assert.Empty(t, sections[0].Rows)
	assert.Equal(t, "No application found matching your search", sections[0].Placeholder)
}

func TestPresentEmptyResultSet(t *testing.T) {
	assert.Empty(t, Present(model.ResultSet{}))
	assert.Empty(t, Present(nil))
}

func TestPresentJobListing(t *testing.T) {
	tests := []struct {
		name    string
		listing model.JobListing
		title   string
		lines   []string
	}{
		{
			name: "full",
			listing: model.JobListing{
				JobID:       7,
				Title:       "Go Developer",
				Salary:      250000,
				Location:    "Kigali",
				Description: "Build services",
				JobCategory: &model.JobCategory{CategoryName: "Engineering"},
			},
			title: "Go Developer",
			lines: []string{"250,000 Rwf /month", "Category: Engineering", "Location: Kigali", "Description: Build services"},
		},
		{
			name:    "fallbacks",
			listing: model.JobListing{JobID: 8},
			title:   "No title available",
			lines:   []string{"Category: Uncategorized", "Location: Remote", "Description: No description"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := Present(model.ResultSet{model.KindJobListing: {tt.listing}})
			require.Len(t, sections, 1)
			require.Len(t, sections[0].Rows, 1)
			row := sections[0].Rows[0]
			assert.Equal(t, tt.title, row.Title)
			assert.Equal(t, tt.lines, row.Lines)
			assert.Equal(t, tt.listing, row.Item)
		})
	}
}

func TestPresentApplication(t *testing.T) {
	full := model.Application{
		ApplicationID: 12,
		Status:        model.StatusPending,
		Job:           &model.JobListing{Title: "Go Developer"},
		User:          &model.User{Username: "alice", Email: "alice@example.com"},
	}
	sections := Present(model.ResultSet{model.KindApplication: {full, model.Application{ApplicationID: 13}}})
	require.Len(t, sections, 1)
	assert.Equal(t, "Application (2)", sections[0].Title)

	rows := sections[0].Rows
	require.Len(t, rows, 2)
	assert.Equal(t, "#12 - Go Developer", rows[0].Title)
	assert.Equal(t, "PENDING", rows[0].Badge)
	assert.Equal(t, []string{"alice", "alice@example.com"}, rows[0].Lines)

	assert.Equal(t, "#13 - No job title", rows[1].Title)
	assert.Equal(t, "UNKNOWN", rows[1].Badge)
	assert.Equal(t, []string{"Unknown user", "Unknown email"}, rows[1].Lines)
}

func TestPresentUnknownKind(t *testing.T) {
	item := model.Generic{Tag: "company", Fields: map[string]any{"name": "Acme", "id": float64(3), "city": "Kigali"}}
	sections := Present(model.ResultSet{"company": {item}})
	require.Len(t, sections, 1)

	row := sections[0].Rows[0]
	assert.Equal(t, "Company #3", row.Title)
	assert.Equal(t, []string{"city: Kigali", "id: 3", "name: Acme"}, row.Lines)
}

func TestFormatSalary(t *testing.T) {
	assert.Equal(t, "1,200,000 Rwf /month", FormatSalary(1200000))
	assert.Equal(t, "950 Rwf /month", FormatSalary(949.6))
}
