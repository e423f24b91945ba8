package search

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/altinukshini/jobportal-tui/internal/model"
)

// kindPriority fixes the display order of known kinds. Kinds not listed
// follow in lexical order.
var kindPriority = []model.Kind{model.KindJobListing, model.KindApplication}

// Section is one entity kind in the results panel.
type Section struct {
	Kind  model.Kind
	Title string
	Rows  []Row
	// Placeholder is set when the kind came back with no items.
	Placeholder string
}

// Row is the display form of a single result.
type Row struct {
	Item  model.Item
	Title string
	Badge string
	Lines []string
}

// Present turns a ResultSet into display sections.
func Present(rs model.ResultSet) []Section {
	sections := make([]Section, 0, len(rs))
	for _, kind := range orderKinds(rs) {
		items := rs[kind]
		sec := Section{
			Kind:  kind,
			Title: fmt.Sprintf("%s (%d)", capitalize(string(kind)), len(items)),
		}
		if len(items) == 0 {
			sec.Placeholder = fmt.Sprintf("No %s found matching your search", strings.ToLower(string(kind)))
		}
		for _, item := range items {
			b := rowBuilder{}
			item.Accept(&b)
			b.row.Item = item
			sec.Rows = append(sec.Rows, b.row)
		}
		sections = append(sections, sec)
	}
	return sections
}

func orderKinds(rs model.ResultSet) []model.Kind {
	var kinds []model.Kind
	known := make(map[model.Kind]bool, len(kindPriority))
	for _, k := range kindPriority {
		known[k] = true
		if _, ok := rs[k]; ok {
			kinds = append(kinds, k)
		}
	}
	var rest []model.Kind
	for k := range rs {
		if !known[k] {
			rest = append(rest, k)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(kinds, rest...)
}

var printer = message.NewPrinter(language.English)

// FormatSalary renders a monthly salary with grouped digits.
func FormatSalary(salary float64) string {
	return printer.Sprintf("%d Rwf /month", int64(math.Round(salary)))
}

type rowBuilder struct {
	row Row
}

func (b *rowBuilder) VisitJobListing(j model.JobListing) {
	b.row.Title = or(j.Title, "No title available")
	if j.Salary != 0 {
		b.row.Lines = append(b.row.Lines, FormatSalary(j.Salary))
	}
	b.row.Lines = append(b.row.Lines,
		"Category: "+or(j.CategoryName(), "Uncategorized"),
		"Location: "+or(j.Location, "Remote"),
		"Description: "+or(j.Description, "No description"),
	)
}

func (b *rowBuilder) VisitApplication(a model.Application) {
	b.row.Title = fmt.Sprintf("#%d - %s", a.ApplicationID, or(a.JobTitle(), "No job title"))
	b.row.Badge = or(string(a.Status), "UNKNOWN")
	b.row.Lines = []string{
		or(a.ApplicantName(), "Unknown user"),
		or(a.ApplicantEmail(), "Unknown email"),
	}
}

func (b *rowBuilder) VisitGeneric(g model.Generic) {
	keys := make([]string, 0, len(g.Fields))
	for k := range g.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.row.Title = capitalize(string(g.Tag))
	if id := g.ItemID(); id != 0 {
		b.row.Title = fmt.Sprintf("%s #%d", b.row.Title, id)
	}
	for _, k := range keys {
		b.row.Lines = append(b.row.Lines, fmt.Sprintf("%s: %v", k, g.Fields[k]))
	}
}

func or(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
