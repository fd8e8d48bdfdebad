package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rpggio/sala/internal/assist"
	"github.com/rpggio/sala/internal/config"
	"github.com/rpggio/sala/internal/domain/attendance"
	"github.com/rpggio/sala/internal/domain/client"
	"github.com/rpggio/sala/internal/domain/metrics"
	"github.com/rpggio/sala/internal/domain/theme"
	"github.com/rpggio/sala/internal/sqlite"
	"github.com/rpggio/sala/internal/transport"
)

const stdioMode = config.TransportStdio

// app holds everything a surface needs after startup.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	db      *sqlite.DB
	svc     transport.Services
	closers []io.Closer
}

// bootstrap loads configuration, opens and initializes the store and wires
// the services. mode, when set, overrides the configured transport mode.
func bootstrap(ctx context.Context, mode string) (*app, error) {
	if configPath != "" {
		if err := os.Setenv("SALA_CONFIG_PATH", configPath); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	if mode != "" {
		cfg.Transport.Mode = mode
	}
	if dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	a := &app{cfg: cfg}

	// Logs go to stderr in stdio mode so stdout stays clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == stdioMode {
		logWriter = os.Stderr
	}
	if cfg.Log.Path != "" {
		fileWriter, file, err := newLogFileWriter(cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			a.closers = append(a.closers, file)
			logWriter = fileWriter
		}
	}
	a.logger = slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		a.Close()
		return nil, fmt.Errorf("prepare database path: %w", err)
	}
	db, err := sqlite.Open(ctx, cfg.DB.Path)
	if err != nil {
		a.logger.Error("failed to open database", "path", cfg.DB.Path, "error", err)
		a.Close()
		return nil, err
	}
	a.db = db
	if err := db.Init(ctx, theme.Defaults()); err != nil {
		a.logger.Error("failed to initialize database", "error", err)
		a.Close()
		return nil, err
	}

	a.svc = newServices(db, newAssistant(ctx, cfg, a.logger), a.logger)
	return a, nil
}

func newServices(db *sqlite.DB, assistant assist.Assistant, logger *slog.Logger) transport.Services {
	attendanceRepo := sqlite.NewAttendanceRepository(db)
	themeRepo := sqlite.NewThemeRepository(db)

	clients := client.NewService(sqlite.NewClientRepository(db), logger)
	themes := theme.NewService(themeRepo, logger)

	return transport.Services{
		Attendances: attendance.NewService(attendanceRepo, clients, themes, assistant, logger),
		Clients:     clients,
		Themes:      themes,
		Metrics:     metrics.NewService(attendanceRepo, themeRepo, logger),
	}
}

// newAssistant picks the Gemini collaborator when a key is configured and
// the canned one otherwise.
func newAssistant(ctx context.Context, cfg config.Config, logger *slog.Logger) assist.Assistant {
	if !cfg.UseGemini() {
		logger.Info("using static assistant", "provider", cfg.Assist.Provider)
		return assist.NewStatic(nil)
	}
	g, err := assist.NewGemini(ctx, cfg.Assist.APIKey, cfg.Assist.Model)
	if err != nil {
		logger.Warn("gemini unavailable, using static assistant", "error", err)
		return assist.NewStatic(nil)
	}
	return g
}

func (a *app) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
	for _, c := range a.closers {
		_ = c.Close()
	}
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
