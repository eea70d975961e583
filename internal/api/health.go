package api

import "context"

// Health pings the backend's health endpoint. Any 2xx means healthy;
// the body is not inspected.
func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/healthz", nil)
}
