package metrics

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rpggio/sala/internal/domain/attendance"
	"github.com/rpggio/sala/internal/domain/theme"
)

// AttendanceSource lists every stored attendance.
type AttendanceSource interface {
	List(ctx context.Context) ([]attendance.Record, error)
}

// ThemeSource lists every stored theme.
type ThemeSource interface {
	List(ctx context.Context) ([]theme.Theme, error)
}

// Service reads the collections and computes the dashboard. It keeps no
// state between calls.
type Service struct {
	attendances AttendanceSource
	themes      ThemeSource
	logger      *slog.Logger
	now         func() time.Time
}

// NewService creates a new metrics service.
func NewService(attendances AttendanceSource, themes ThemeSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		attendances: attendances,
		themes:      themes,
		logger:      logger,
		now:         time.Now,
	}
}

// WithClock returns a copy of the service using now as its time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	cp := *s
	cp.now = now
	return &cp
}

// Dashboard loads both collections and aggregates them. Any read error is
// reported as ErrAggregationFailure and no partial result is returned.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	var (
		records []attendance.Record
		themes  []theme.Theme
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.attendances.List(gctx)
		if err != nil {
			return fmt.Errorf("reading attendances: %w", err)
		}
		records = r
		return nil
	})
	g.Go(func() error {
		t, err := s.themes.List(gctx)
		if err != nil {
			return fmt.Errorf("reading themes: %w", err)
		}
		themes = t
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("dashboard aggregation failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrAggregationFailure, err)
	}

	d := Compute(records, themes, s.now())
	return &d, nil
}
