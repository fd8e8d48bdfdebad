package testserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/sala/internal/domain/attendance"
	"github.com/rpggio/sala/internal/domain/metrics"
	"github.com/rpggio/sala/internal/testserver"
)

type envelope[T any] struct {
	Data  T `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func getJSON[T any](t *testing.T, url string) T {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env envelope[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.Nil(t, env.Error)
	return env.Data
}

func TestEndToEnd_HTTPAndMCPShareStore(t *testing.T) {
	ts := testserver.New(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Register over HTTP.
	body, err := json.Marshal(attendance.Record{
		ID:        "12345",
		StartDate: "10/03/2025",
		StartTime: "10:30",
		Document:  testserver.KnownDocument,
		Name:      testserver.KnownName,
		Theme:     "mei",
		Subtheme:  "Boleto DAS",
	})
	require.NoError(t, err)
	resp, err := http.Post(ts.Server.URL+"/api/attendances", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Read it back over MCP on the same server.
	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "e2e-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, &sdkmcp.StreamableClientTransport{Endpoint: ts.Server.URL + "/mcp"}, nil)
	require.NoError(t, err)
	defer session.Close()

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "get_attendance",
		Arguments: map[string]any{"id": "12345"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)

	var out struct {
		Attendance attendance.Record `json:"attendance"`
	}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &out))
	require.Equal(t, "Boleto DAS", out.Attendance.Subtheme)

	// The dashboard over HTTP reflects both.
	dash := getJSON[metrics.Dashboard](t, ts.Server.URL+"/api/dashboard")
	require.Equal(t, 1, dash.Total)
	require.Equal(t, 1.0, dash.DailyAverage)
	require.Len(t, dash.Hourly, 11)
	require.Equal(t, 1, dash.Hourly[2].Count)
	require.Equal(t, "10", dash.Hourly[2].Hour)
}

func TestEndToEnd_Health(t *testing.T) {
	ts := testserver.New(t)

	resp, err := http.Get(ts.Server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestEndToEnd_StoreSeeded(t *testing.T) {
	ts := testserver.New(t)

	version, err := ts.DB.SchemaVersion(context.Background())
	require.NoError(t, err)
	require.Positive(t, version)

	themes := getJSON[[]struct {
		ID string `json:"id"`
	}](t, ts.Server.URL+"/api/themes")
	require.NotEmpty(t, themes)
	require.Equal(t, "mei", themes[0].ID)
}
