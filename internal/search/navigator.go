package search

import (
	"fmt"

	"github.com/altinukshini/jobportal-tui/internal/model"
)

// Route is a navigation target produced by selecting a result.
type Route struct {
	Kind       model.Kind
	ID         int64
	Path       string
	FromSearch bool
}

var routes = map[model.Kind]string{
	model.KindJobListing:  "/joblisting/%d",
	model.KindApplication: "/application/%d",
}

// RouteTo resolves where item leads. Kinds with no route report false.
func RouteTo(item model.Item) (Route, bool) {
	if item == nil {
		return Route{}, false
	}
	pattern, ok := routes[item.Kind()]
	if !ok {
		return Route{}, false
	}
	id := item.ItemID()
	return Route{
		Kind: item.Kind(),
		ID:   id,
		Path: fmt.Sprintf(pattern, id),
	}, true
}

// Select closes the surface and resolves where the item leads. The surface
// is closed even when the item has no route.
func Select(item model.Item, v *Visibility, s *Session) (Route, bool) {
	v.Close(s)
	route, ok := RouteTo(item)
	if !ok {
		return Route{}, false
	}
	route.FromSearch = true
	return route, true
}
