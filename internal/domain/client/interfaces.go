package client

import "context"

// Repository provides persistence for clients. Get reports a miss through
// found=false rather than an error.
type Repository interface {
	Upsert(ctx context.Context, c *Client) error
	Get(ctx context.Context, document string) (Client, bool, error)
	List(ctx context.Context) ([]Client, error)
	Delete(ctx context.Context, document string) error
}
