package model

// Page is one page of a paginated listing as the backend returns it.
// Number is zero-based.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	Last          bool  `json:"last"`
}

// Items returns the page content as result items.
func Items[T Item](p Page[T]) []Item {
	items := make([]Item, len(p.Content))
	for i, v := range p.Content {
		items[i] = v
	}
	return items
}
