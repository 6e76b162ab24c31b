package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/sellermate/negotiator/pkg/types"
)

type historyListResponse struct {
	History []domain.NegotiationHistory `json:"history"`
	Total   int                         `json:"total"`
}

// ListHistory returns the seller's decision records, newest first. Zero
// values for days and limit use the server defaults.
func (c *Client) ListHistory(ctx context.Context, days, limit int) ([]domain.NegotiationHistory, error) {
	q := url.Values{}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/v1/history"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp historyListResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.History, nil
}
