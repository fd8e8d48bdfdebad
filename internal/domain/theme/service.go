package theme

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/rpggio/sala/internal/repository"
)

// Service handles taxonomy operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new theme service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines theme creation inputs.
type CreateRequest struct {
	ID        string
	Label     string
	Subthemes []string
}

// Create stores a new theme, generating an id when none is given.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Theme, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = "theme_" + uuid.NewString()
	}
	return s.Save(ctx, Theme{ID: id, Label: req.Label, Subthemes: req.Subthemes})
}

// Save replaces the theme stored under t.ID with t.
func (s *Service) Save(ctx context.Context, t Theme) (*Theme, error) {
	t.ID = strings.TrimSpace(t.ID)
	t.Label = strings.TrimSpace(t.Label)
	if t.ID == "" || t.Label == "" {
		return nil, ErrInvalidInput
	}
	subthemes, err := normalizeSubthemes(t.Subthemes)
	if err != nil {
		return nil, err
	}
	t.Subthemes = subthemes

	if err := s.repo.Upsert(ctx, &t); err != nil {
		return nil, fmt.Errorf("saving theme: %w", err)
	}
	s.logger.Debug("theme saved", "id", t.ID, "subthemes", len(t.Subthemes))
	return &t, nil
}

// Get fetches a theme by id.
func (s *Service) Get(ctx context.Context, id string) (*Theme, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrThemeNotFound
		}
		return nil, fmt.Errorf("getting theme: %w", err)
	}
	return t, nil
}

// List returns every theme in store order.
func (s *Service) List(ctx context.Context) ([]Theme, error) {
	themes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing themes: %w", err)
	}
	return themes, nil
}

// Delete removes a theme. Attendance records that reference it are left
// untouched.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting theme: %w", err)
	}
	return nil
}

// AddSubtheme appends a subtheme to an existing theme.
func (s *Service) AddSubtheme(ctx context.Context, id, subtheme string) (*Theme, error) {
	subtheme = strings.TrimSpace(subtheme)
	if subtheme == "" {
		return nil, ErrInvalidInput
	}
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := t.Clone()
	updated.Subthemes = append(updated.Subthemes, subtheme)
	return s.Save(ctx, updated)
}

// RemoveSubtheme drops the subtheme at index.
func (s *Service) RemoveSubtheme(ctx context.Context, id string, index int) (*Theme, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(t.Subthemes) {
		return nil, ErrInvalidInput
	}
	updated := t.Clone()
	updated.Subthemes = append(updated.Subthemes[:index], updated.Subthemes[index+1:]...)
	return s.Save(ctx, updated)
}

// normalizeSubthemes trims entries, drops blanks and rejects case-insensitive
// duplicates.
func normalizeSubthemes(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, sub := range in {
		sub = strings.TrimSpace(sub)
		if sub == "" {
			continue
		}
		key := strings.ToLower(sub)
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSubtheme, sub)
		}
		seen[key] = struct{}{}
		out = append(out, sub)
	}
	return out, nil
}
