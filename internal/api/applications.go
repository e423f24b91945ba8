package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/altinukshini/jobportal-tui/internal/model"
)

func (c *Client) GetApplication(ctx context.Context, id int64) (*model.Application, error) {
	var app model.Application
	if err := c.Get(ctx, fmt.Sprintf("applications/%d", id), nil, &app); err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("application %d not found", id)
		}
		return nil, fmt.Errorf("get application %d: %w", id, err)
	}
	return &app, nil
}

// UpdateApplicationStatus sends the new status as a query parameter with an
// empty body, the way the backend expects it.
func (c *Client) UpdateApplicationStatus(ctx context.Context, id int64, status model.ApplicationStatus) (*model.Application, error) {
	v := url.Values{}
	v.Set("status", string(status))

	var app model.Application
	if err := c.Put(ctx, fmt.Sprintf("applications/%d/status", id), v, nil, &app); err != nil {
		return nil, fmt.Errorf("update application %d status: %w", id, err)
	}
	return &app, nil
}
