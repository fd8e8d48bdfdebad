package attendance

import (
	"context"

	"github.com/rpggio/sala/internal/assist"
	"github.com/rpggio/sala/internal/domain/client"
	"github.com/rpggio/sala/internal/domain/theme"
)

// Repository provides persistence for attendance records.
type Repository interface {
	Upsert(ctx context.Context, rec *Record) error
	Get(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context) ([]Record, error)
}

// ClientDirectory resolves registered clients by document.
type ClientDirectory interface {
	Find(ctx context.Context, document string) (client.Client, bool, error)
}

// ThemeCatalog lists the taxonomy.
type ThemeCatalog interface {
	List(ctx context.Context) ([]theme.Theme, error)
}

// Assistant is the external lookup and generation capability.
type Assistant = assist.Assistant
