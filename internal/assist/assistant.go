// Package assist wraps the external generative service that looks up tax
// documents and drafts attendance guidance. Every call is best-effort:
// callers are expected to fall back to manual entry when it fails.
package assist

import (
	"context"
	"errors"

	"github.com/rpggio/sala/internal/domain/client"
)

// ErrUnavailable indicates the collaborator could not produce an answer.
var ErrUnavailable = errors.New("assistant unavailable")

// Entity is the result of a document lookup.
type Entity struct {
	Name    string              `json:"name"`
	IsValid bool                `json:"isValid"`
	Type    client.DocumentType `json:"type"`
}

// GuidanceInput names the context of an attendance.
type GuidanceInput struct {
	ThemeLabel string
	Subtheme   string
	EntityName string
}

// Guidance is generated free text for an attendance.
type Guidance struct {
	Description   string `json:"description"`
	EmailTemplate string `json:"emailTemplate"`
}

// Assistant is the pluggable collaborator capability.
type Assistant interface {
	LookupEntity(ctx context.Context, document string) (Entity, error)
	GenerateGuidance(ctx context.Context, in GuidanceInput) (Guidance, error)
}
