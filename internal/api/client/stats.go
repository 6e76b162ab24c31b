package client

import (
	"context"
	"fmt"

	domain "github.com/sellermate/negotiator/pkg/types"
)

// GetStats returns aggregated negotiation statistics over a trailing window.
// A non-positive days value uses the server default.
func (c *Client) GetStats(ctx context.Context, days int) (*domain.NegotiationStats, error) {
	path := "/api/v1/negotiation/stats"
	if days > 0 {
		path = fmt.Sprintf("%s?days=%d", path, days)
	}

	var stats domain.NegotiationStats
	if err := c.get(ctx, path, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
