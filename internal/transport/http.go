package transport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rpggio/sala/internal/domain/attendance"
	"github.com/rpggio/sala/internal/domain/client"
	"github.com/rpggio/sala/internal/domain/metrics"
	"github.com/rpggio/sala/internal/domain/theme"
)

// AttendanceService is the attendance intake and history API.
type AttendanceService interface {
	NewDraft(ctx context.Context) (attendance.Record, error)
	Register(ctx context.Context, rec attendance.Record) (*attendance.Record, error)
	Get(ctx context.Context, id string) (*attendance.HistoryEntry, error)
	List(ctx context.Context, opts attendance.ListOptions) ([]attendance.HistoryEntry, error)
	LookupEntity(ctx context.Context, document string) (attendance.EntityLookup, error)
	SuggestGuidance(ctx context.Context, req attendance.GuidanceRequest) (attendance.GuidanceSuggestion, error)
}

// ClientService is the client registry API.
type ClientService interface {
	Save(ctx context.Context, c client.Client) (*client.Client, error)
	Get(ctx context.Context, document string) (*client.Client, error)
	List(ctx context.Context) ([]client.Client, error)
	Delete(ctx context.Context, document string) error
}

// ThemeService is the taxonomy API.
type ThemeService interface {
	Create(ctx context.Context, req theme.CreateRequest) (*theme.Theme, error)
	Save(ctx context.Context, t theme.Theme) (*theme.Theme, error)
	Get(ctx context.Context, id string) (*theme.Theme, error)
	List(ctx context.Context) ([]theme.Theme, error)
	Delete(ctx context.Context, id string) error
	AddSubtheme(ctx context.Context, id, subtheme string) (*theme.Theme, error)
	RemoveSubtheme(ctx context.Context, id string, index int) (*theme.Theme, error)
}

// MetricsService computes the dashboard.
type MetricsService interface {
	Dashboard(ctx context.Context) (*metrics.Dashboard, error)
}

// Services groups the domain services exposed over HTTP and MCP.
type Services struct {
	Attendances AttendanceService
	Clients     ClientService
	Themes      ThemeService
	Metrics     MetricsService
}

// Server wires HTTP handlers.
type Server struct {
	svc    Services
	logger *slog.Logger
}

// NewServer creates an HTTP server router with middleware. mcpHandler, when
// non-nil, is mounted at /mcp.
func NewServer(svc Services, logger *slog.Logger, mcpHandler http.Handler) *chi.Mux {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	srv := &Server{svc: svc, logger: logger}

	r.Get("/health", srv.handleHealth)
	if mcpHandler != nil {
		r.Handle("/mcp", mcpHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/attendances", func(r chi.Router) {
			r.Get("/", srv.listAttendances)
			r.Post("/", srv.registerAttendance)
			r.Get("/draft", srv.newDraft)
			r.Get("/{id}", srv.getAttendance)
		})
		r.Get("/lookup/{document}", srv.lookupEntity)
		r.Post("/guidance", srv.suggestGuidance)

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", srv.listClients)
			r.Post("/", srv.createClient)
			r.Get("/{document}", srv.getClient)
			r.Put("/{document}", srv.saveClient)
			r.Delete("/{document}", srv.deleteClient)
		})

		r.Route("/themes", func(r chi.Router) {
			r.Get("/", srv.listThemes)
			r.Post("/", srv.createTheme)
			r.Get("/{id}", srv.getTheme)
			r.Put("/{id}", srv.saveTheme)
			r.Delete("/{id}", srv.deleteTheme)
			r.Post("/{id}/subthemes", srv.addSubtheme)
			r.Delete("/{id}/subthemes/{index}", srv.removeSubtheme)
		})

		r.Get("/dashboard", srv.dashboard)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !logger.Enabled(r.Context(), slog.LevelDebug) {
				next.ServeHTTP(w, r)
				return
			}
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
