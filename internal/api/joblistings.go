package api

import (
	"context"
	"fmt"

	"github.com/altinukshini/jobportal-tui/internal/model"
)

func (c *Client) GetJobListing(ctx context.Context, id int64) (*model.JobListing, error) {
	var listing model.JobListing
	if err := c.Get(ctx, fmt.Sprintf("job-listings/%d", id), nil, &listing); err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("job listing %d not found", id)
		}
		return nil, fmt.Errorf("get job listing %d: %w", id, err)
	}
	return &listing, nil
}
