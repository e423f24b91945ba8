package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/altinukshini/jobportal-tui/internal/model"
)

const DefaultPageSize = 10

// PageRequest selects a page of a listing. Page is zero-based.
type PageRequest struct {
	Page int
	Size int
}

func (r PageRequest) Values() url.Values {
	v := url.Values{}
	page := r.Page
	if page < 0 {
		page = 0
	}
	v.Set("page", strconv.Itoa(page))
	if r.Size > 0 {
		v.Set("size", strconv.Itoa(r.Size))
	} else {
		v.Set("size", strconv.Itoa(DefaultPageSize))
	}
	return v
}

func (c *Client) ListApplications(ctx context.Context, req PageRequest) (*model.Page[model.Application], error) {
	var page model.Page[model.Application]
	if err := c.Get(ctx, "applications/pagination", req.Values(), &page); err != nil {
		return nil, fmt.Errorf("list applications page %d: %w", req.Page, err)
	}
	return &page, nil
}

func (c *Client) ListJobListings(ctx context.Context, req PageRequest) (*model.Page[model.JobListing], error) {
	var page model.Page[model.JobListing]
	if err := c.Get(ctx, "job-listings/paginated", req.Values(), &page); err != nil {
		return nil, fmt.Errorf("list job listings page %d: %w", req.Page, err)
	}
	return &page, nil
}
