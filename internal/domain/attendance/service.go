package attendance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/rpggio/sala/internal/assist"
	"github.com/rpggio/sala/internal/domain/client"
	"github.com/rpggio/sala/internal/domain/theme"
	"github.com/rpggio/sala/internal/repository"
)

// Notices shown to the operator when a lookup or generation falls back.
const (
	NoticeDocumentNotFound = `Documento não encontrado. Cadastre-o na aba "Clientes" ou verifique a digitação.`
	NoticeLookupFailed     = "Erro ao buscar dados. Preencha o nome manualmente."
	NoticeGuidanceFailed   = "Não foi possível gerar a orientação automaticamente."

	// GuidancePlaceholder replaces generated text when generation fails.
	GuidancePlaceholder = "Erro ao buscar dados."
	// DefaultEntityName is used in guidance when the attendee has no name yet.
	DefaultEntityName = "Empreendedor"
)

// Service handles attendance intake and history.
type Service struct {
	records   Repository
	clients   ClientDirectory
	themes    ThemeCatalog
	assistant Assistant
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the time source used for drafts and defaults.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDSource overrides the candidate id generator.
func WithIDSource(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// NewService creates a new attendance service.
func NewService(
	records Repository,
	clients ClientDirectory,
	themes ThemeCatalog,
	assistant Assistant,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Service{
		records:   records,
		clients:   clients,
		themes:    themes,
		assistant: assistant,
		logger:    logger,
		now:       time.Now,
		newID:     RandomID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewDraft returns an empty record with a free id and the current date and
// time filled in.
func (s *Service) NewDraft(ctx context.Context) (Record, error) {
	id, err := s.allocateID(ctx)
	if err != nil {
		return Record{}, err
	}
	now := s.now()
	return Record{
		ID:        id,
		StartDate: now.Format(DateLayout),
		StartTime: now.Format(TimeLayout),
	}, nil
}

// Register stores an attendance. Submitting an existing id replaces that
// record entirely.
func (s *Service) Register(ctx context.Context, rec Record) (*Record, error) {
	rec.ID = strings.TrimSpace(rec.ID)
	rec.Document = strings.TrimSpace(rec.Document)
	rec.Theme = strings.TrimSpace(rec.Theme)
	if err := ValidateRegister(rec); err != nil {
		return nil, err
	}

	if rec.ID == "" {
		id, err := s.allocateID(ctx)
		if err != nil {
			return nil, err
		}
		rec.ID = id
	}
	now := s.now()
	if rec.StartDate == "" {
		rec.StartDate = now.Format(DateLayout)
	}
	if rec.StartTime == "" {
		rec.StartTime = now.Format(TimeLayout)
	}

	if err := s.records.Upsert(ctx, &rec); err != nil {
		return nil, fmt.Errorf("saving attendance: %w", err)
	}
	s.logger.Info("attendance registered", "id", rec.ID, "theme", rec.Theme)
	return &rec, nil
}

// Get fetches an attendance by id with its theme label resolved.
func (s *Service) Get(ctx context.Context, id string) (*HistoryEntry, error) {
	rec, err := s.records.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("getting attendance: %w", err)
	}
	entries, err := s.withLabels(ctx, []Record{*rec})
	if err != nil {
		return nil, err
	}
	return &entries[0], nil
}

// List returns attendances newest first, optionally restricted to a date
// range. Records with unparseable dates sort last and are dropped when a
// range is set.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]HistoryEntry, error) {
	all, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing attendances: %w", err)
	}

	filtered := all
	if !opts.From.IsZero() || !opts.To.IsZero() {
		from := truncateDay(opts.From)
		to := truncateDay(opts.To)
		filtered = make([]Record, 0, len(all))
		for _, rec := range all {
			d, ok := rec.Date()
			if !ok {
				continue
			}
			if !opts.From.IsZero() && d.Before(from) {
				continue
			}
			if !opts.To.IsZero() && d.After(to) {
				continue
			}
			filtered = append(filtered, rec)
		}
	}

	sortNewestFirst(filtered)
	return s.withLabels(ctx, filtered)
}

// withLabels pairs each record with the label of its theme, falling back to
// the raw id for themes deleted since.
func (s *Service) withLabels(ctx context.Context, records []Record) ([]HistoryEntry, error) {
	themes, err := s.themes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading themes: %w", err)
	}
	labels := theme.Labels(themes)

	out := make([]HistoryEntry, 0, len(records))
	for _, rec := range records {
		label, ok := labels[rec.Theme]
		if !ok {
			label = rec.Theme
		}
		out = append(out, HistoryEntry{Record: rec, ThemeLabel: label})
	}
	return out, nil
}

// LookupEntity resolves a document to a name, consulting the local client
// registry before the assistant. Registry and assistant failures never
// surface as errors.
func (s *Service) LookupEntity(ctx context.Context, document string) (EntityLookup, error) {
	document = strings.TrimSpace(document)
	if document == "" {
		return EntityLookup{}, ErrInvalidInput
	}

	local, found, err := s.clients.Find(ctx, document)
	if err != nil {
		s.logger.Warn("client registry lookup failed, falling back to manual entry", "document", document, "error", err)
		return EntityLookup{Document: document, Type: client.DetectType(document), Notice: NoticeLookupFailed}, nil
	}
	if found {
		return EntityLookup{
			Document: document,
			Name:     local.Name,
			Type:     local.Type,
			Found:    true,
			Source:   SourceLocal,
		}, nil
	}

	if s.assistant == nil {
		return EntityLookup{Document: document, Type: client.DetectType(document), Notice: NoticeDocumentNotFound}, nil
	}

	ent, err := s.assistant.LookupEntity(ctx, document)
	if err != nil {
		s.logger.Warn("entity lookup failed, falling back to manual entry", "document", document, "error", err)
		return EntityLookup{Document: document, Type: client.DetectType(document), Notice: NoticeLookupFailed}, nil
	}
	if !ent.IsValid || strings.TrimSpace(ent.Name) == "" {
		return EntityLookup{Document: document, Type: ent.Type, Notice: NoticeDocumentNotFound}, nil
	}
	return EntityLookup{
		Document: document,
		Name:     ent.Name,
		Type:     ent.Type,
		Found:    true,
		Source:   SourceAssistant,
	}, nil
}

// SuggestGuidance generates description and e-mail text for an attendance.
// On assistant failure the placeholder text is returned with Fallback set.
func (s *Service) SuggestGuidance(ctx context.Context, req GuidanceRequest) (GuidanceSuggestion, error) {
	if err := ValidateGuidance(req); err != nil {
		return GuidanceSuggestion{}, err
	}

	themes, err := s.themes.List(ctx)
	if err != nil {
		return GuidanceSuggestion{}, fmt.Errorf("loading themes: %w", err)
	}
	name := strings.TrimSpace(req.EntityName)
	if name == "" {
		name = DefaultEntityName
	}
	in := assist.GuidanceInput{
		ThemeLabel: theme.LabelFor(themes, req.ThemeID),
		Subtheme:   req.Subtheme,
		EntityName: name,
	}

	fallback := GuidanceSuggestion{
		Description:   GuidancePlaceholder,
		EmailTemplate: GuidancePlaceholder,
		Fallback:      true,
		Notice:        NoticeGuidanceFailed,
	}
	if s.assistant == nil {
		return fallback, nil
	}
	out, err := s.assistant.GenerateGuidance(ctx, in)
	if err != nil {
		s.logger.Warn("guidance generation failed, using placeholder", "theme", req.ThemeID, "error", err)
		return fallback, nil
	}
	return GuidanceSuggestion{Description: out.Description, EmailTemplate: out.EmailTemplate}, nil
}

// allocateID draws candidate ids until one is unused in the store.
func (s *Service) allocateID(ctx context.Context) (string, error) {
	for range maxIDAttempts {
		id := s.newID()
		_, err := s.records.Get(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking attendance id: %w", err)
		}
	}
	return "", ErrIDSpaceExhausted
}

func truncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sortNewestFirst(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		di, oki := records[i].Date()
		dj, okj := records[j].Date()
		if oki != okj {
			return oki
		}
		if oki && !di.Equal(dj) {
			return di.After(dj)
		}
		return records[i].StartTime > records[j].StartTime
	})
}
