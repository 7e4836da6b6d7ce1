// Package remote is the seam for a future central warehouse service. The
// Client mirrors the endpoints that service will expose but answers locally:
// reads return nothing, writes echo their input, and deletes block for a
// configured latency to keep caller timing realistic. Swapping in an HTTP
// implementation later only touches this package.
package remote

import (
	"context"
	"time"

	"github.com/nmthanh/backoffice-api/internal/domain/entity"
)

type Client struct {
	latency time.Duration
}

func NewClient(latency time.Duration) *Client {
	return &Client{latency: latency}
}

// ListItems stands in for GET /items. The remote side has no data yet, so
// callers always fall back to their local collection.
func (c *Client) ListItems(ctx context.Context) ([]entity.Item, error) {
	return nil, nil
}

// CreateItem stands in for POST /items and echoes the accepted record.
func (c *Client) CreateItem(ctx context.Context, item entity.Item) (entity.Item, error) {
	return item, nil
}

// UpdateItem stands in for PUT /items/:id and echoes the accepted record.
func (c *Client) UpdateItem(ctx context.Context, id string, item entity.Item) (entity.Item, error) {
	item.ID = id
	return item, nil
}

// DeleteItem stands in for DELETE /items/:id. It blocks for the configured
// latency, or until the caller gives up.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.wait(ctx)
}

// DeleteCategory stands in for DELETE /categories/:id with the same timing.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.wait(ctx)
}

func (c *Client) wait(ctx context.Context) error {
	if c.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(c.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
