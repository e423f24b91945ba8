package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind tags the entity kind of a global search result.
type Kind string

const (
	KindJobListing  Kind = "joblisting"
	KindApplication Kind = "application"
)

// ItemVisitor is implemented by everything that treats result items per
// variant. A new variant adds a method here.
type ItemVisitor interface {
	VisitJobListing(JobListing)
	VisitApplication(Application)
	VisitGeneric(Generic)
}

// Item is a single search result. The set of variants is closed to this
// package.
type Item interface {
	Kind() Kind
	ItemID() int64
	Accept(ItemVisitor)
	sealed()
}

// Generic carries items of kinds the client has no dedicated type for.
type Generic struct {
	Tag    Kind
	Fields map[string]any
}

func (g Generic) Kind() Kind           { return g.Tag }
func (g Generic) Accept(v ItemVisitor) { v.VisitGeneric(g) }
func (g Generic) sealed()              {}

// ItemID looks for "id" or "<kind>Id" holding a number.
func (g Generic) ItemID() int64 {
	for _, key := range []string{"id", string(g.Tag) + "Id"} {
		if n, ok := g.Fields[key].(float64); ok {
			return int64(n)
		}
	}
	return 0
}

// ResultSet maps entity kinds to their items in backend order.
type ResultSet map[Kind][]Item

// Empty reports whether no kind is present at all. A kind with an empty
// sequence still counts as present.
func (rs ResultSet) Empty() bool {
	return len(rs) == 0
}

// Count returns the total number of items across kinds.
func (rs ResultSet) Count() int {
	n := 0
	for _, items := range rs {
		n += len(items)
	}
	return n
}

// DecodeResultSet turns a raw globalSearch response into a ResultSet.
// Kind keys are matched case-insensitively.
func DecodeResultSet(raw map[string]json.RawMessage) (ResultSet, error) {
	rs := make(ResultSet, len(raw))
	for key, body := range raw {
		kind := Kind(strings.ToLower(strings.TrimSpace(key)))
		items, err := decodeItems(kind, body)
		if err != nil {
			return nil, fmt.Errorf("decode %s results: %w", kind, err)
		}
		rs[kind] = append(rs[kind], items...)
	}
	return rs, nil
}

func decodeItems(kind Kind, body json.RawMessage) ([]Item, error) {
	items := []Item{}
	switch kind {
	case KindJobListing:
		var listings []JobListing
		if err := json.Unmarshal(body, &listings); err != nil {
			return nil, err
		}
		for _, l := range listings {
			items = append(items, l)
		}
	case KindApplication:
		var apps []Application
		if err := json.Unmarshal(body, &apps); err != nil {
			return nil, err
		}
		for _, a := range apps {
			items = append(items, a)
		}
	default:
		var objs []map[string]any
		if err := json.Unmarshal(body, &objs); err != nil {
			return nil, err
		}
		for _, o := range objs {
			items = append(items, Generic{Tag: kind, Fields: o})
		}
	}
	return items, nil
}
