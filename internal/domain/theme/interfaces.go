package theme

import "context"

// Repository provides persistence for themes.
type Repository interface {
	Upsert(ctx context.Context, t *Theme) error
	Get(ctx context.Context, id string) (*Theme, error)
	List(ctx context.Context) ([]Theme, error)
	Delete(ctx context.Context, id string) error
}
