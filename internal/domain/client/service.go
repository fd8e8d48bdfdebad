package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
)

// Service handles client registry operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new client service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, logger: logger}
}

// Save creates or fully replaces the client stored under c.Document. The
// type defaults to CPF and cannot change once the client exists.
func (s *Service) Save(ctx context.Context, c Client) (*Client, error) {
	c.Document = strings.TrimSpace(c.Document)
	c.Name = strings.TrimSpace(c.Name)
	c.UF = strings.ToUpper(strings.TrimSpace(c.UF))
	if c.Type == "" {
		c.Type = TypeCPF
	}
	if err := ValidateSave(c); err != nil {
		return nil, err
	}

	existing, found, err := s.repo.Get(ctx, c.Document)
	if err != nil {
		return nil, fmt.Errorf("loading client: %w", err)
	}
	if found && existing.Type != c.Type {
		return nil, ErrTypeImmutable
	}

	if err := s.repo.Upsert(ctx, &c); err != nil {
		return nil, fmt.Errorf("saving client: %w", err)
	}
	s.logger.Debug("client saved", "document", c.Document, "created", !found)
	return &c, nil
}

// Get fetches a client by document.
func (s *Service) Get(ctx context.Context, document string) (*Client, error) {
	c, found, err := s.repo.Get(ctx, strings.TrimSpace(document))
	if err != nil {
		return nil, fmt.Errorf("getting client: %w", err)
	}
	if !found {
		return nil, ErrClientNotFound
	}
	return &c, nil
}

// Find is the lookup variant of Get: a miss is reported through the boolean.
func (s *Service) Find(ctx context.Context, document string) (Client, bool, error) {
	return s.repo.Get(ctx, strings.TrimSpace(document))
}

// List returns all clients ordered by name.
func (s *Service) List(ctx context.Context) ([]Client, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	sort.SliceStable(clients, func(i, j int) bool {
		return strings.ToLower(clients[i].Name) < strings.ToLower(clients[j].Name)
	})
	return clients, nil
}

// Delete removes a client. Attendance history for the document is kept.
func (s *Service) Delete(ctx context.Context, document string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(document)); err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}
	return nil
}
