// Package testserver assembles the full service stack over an in-memory
// store for end-to-end tests.
package testserver

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/sala/internal/assist"
	"github.com/rpggio/sala/internal/domain/attendance"
	"github.com/rpggio/sala/internal/domain/client"
	"github.com/rpggio/sala/internal/domain/metrics"
	"github.com/rpggio/sala/internal/domain/theme"
	"github.com/rpggio/sala/internal/mcp"
	"github.com/rpggio/sala/internal/sqlite"
	"github.com/rpggio/sala/internal/transport"
)

// Now is the fixed clock every fixture service uses.
var Now = time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC)

// KnownDocument resolves through the static assistant.
const (
	KnownDocument = "12345678900"
	KnownName     = "João da Silva"
)

type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Services transport.Services
	MCP      *sdkmcp.Server
}

// NewServices wires the domain services over a fresh in-memory store seeded
// with the default themes.
func NewServices(t *testing.T, assistant assist.Assistant) (transport.Services, *sqlite.DB) {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Init(ctx, theme.Defaults()))

	if assistant == nil {
		assistant = assist.NewStatic(map[string]string{KnownDocument: KnownName})
	}
	clock := func() time.Time { return Now }

	attendanceRepo := sqlite.NewAttendanceRepository(db)
	themeRepo := sqlite.NewThemeRepository(db)
	clients := client.NewService(sqlite.NewClientRepository(db), nil)
	themes := theme.NewService(themeRepo, nil)

	return transport.Services{
		Attendances: attendance.NewService(attendanceRepo, clients, themes, assistant, nil, attendance.WithClock(clock)),
		Clients:     clients,
		Themes:      themes,
		Metrics:     metrics.NewService(attendanceRepo, themeRepo, nil).WithClock(clock),
	}, db
}

// New starts the HTTP API with MCP mounted at /mcp.
func New(t *testing.T) *TestServer {
	t.Helper()

	svc, db := NewServices(t, nil)
	mcpServer := mcp.NewServer(mcp.Config{Services: svc})
	server := httptest.NewServer(transport.NewServer(svc, nil, mcp.NewHTTPHandler(mcpServer)))
	t.Cleanup(server.Close)

	return &TestServer{
		Server:   server,
		DB:       db,
		Services: svc,
		MCP:      mcpServer,
	}
}

// ConnectMCP opens an in-memory client session to server.
func ConnectMCP(t *testing.T, server *sdkmcp.Server) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	c := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := c.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = session.Close()
		_ = serverSession.Wait()
	})
	return session
}
