package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/altinukshini/jobportal-tui/internal/search"
)

func TestRenderStatusBar(t *testing.T) {
	tests := []struct {
		name    string
		line    StatusLine
		want    []string
		notWant []string
	}{
		{
			name:    "idle search is hidden",
			line:    StatusLine{Text: "Ready", Hints: "?:help"},
			want:    []string{"Ready", "?:help"},
			notWant: []string{"search:"},
		},
		{
			name: "fetching",
			line: StatusLine{Text: "Loaded", Search: search.Fetching},
			want: []string{"search: fetching", "Loaded"},
		},
		{
			name: "failed search",
			line: StatusLine{Text: "Loaded", Search: search.Error},
			want: []string{"X", "search: error"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderStatusBar(tt.line, 100)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, got, w)
			}
		})
	}
}

func TestRenderHeaderTabs(t *testing.T) {
	got := RenderHeader("localhost:8081", []string{"Applications", "Job listings"}, 1, 100)
	assert.Contains(t, got, "jobportal-tui | localhost:8081")
	assert.Contains(t, got, "1:Applications")
	assert.Contains(t, got, "2:Job listings")
}
