package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/sala/internal/domain/metrics"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equal(t, want, parseLogLevel(in), in)
	}
}

func TestEnsureDBDir(t *testing.T) {
	require.NoError(t, ensureDBDir(":memory:"))
	require.NoError(t, ensureDBDir("sala.db"))

	path := filepath.Join(t.TempDir(), "nested", "data", "sala.db")
	require.NoError(t, ensureDBDir(path))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestLogFileWriter_TrimsToTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sala.log")
	w, file, err := newLogFileWriter(path)
	require.NoError(t, err)
	defer file.Close()
	w.max, w.keep = 20, 10

	_, err = w.Write([]byte("0123456789"))
	require.NoError(t, err)
	_, err = w.Write([]byte("abcdefghijklm"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "defghijklm", string(data))

	_, err = w.Write([]byte("XY"))
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "defghijklmXY", string(data))
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, dbPath, logLevel = "", "", ""
	t.Cleanup(func() { configPath, dbPath, logLevel = "", "", "" })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDashboardCommand_EmptyStore(t *testing.T) {
	t.Setenv("SALA_ASSIST_PROVIDER", "static")
	t.Setenv("SALA_LOG_LEVEL", "error")
	dir := t.TempDir()

	out, err := runCLI(t, "dashboard", "--db", filepath.Join(dir, "data", "sala.db"))
	require.NoError(t, err)

	var d metrics.Dashboard
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	require.True(t, d.Empty)
	require.Zero(t, d.Total)

	_, err = os.Stat(filepath.Join(dir, "data", "sala.db"))
	require.NoError(t, err)
}

func TestDashboardCommand_ConfigFile(t *testing.T) {
	// bootstrap exports --config; registering it here restores the variable.
	t.Setenv("SALA_CONFIG_PATH", "")
	t.Setenv("SALA_LOG_LEVEL", "error")
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sala.yaml")
	yaml := "db:\n  path: " + filepath.Join(dir, "from-file.db") + "\nassist:\n  provider: static\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o644))

	out, err := runCLI(t, "dashboard", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, `"empty": true`)

	_, err = os.Stat(filepath.Join(dir, "from-file.db"))
	require.NoError(t, err)
}

func TestDashboardCommand_InvalidConfig(t *testing.T) {
	t.Setenv("SALA_ASSIST_PROVIDER", "carrier-pigeon")

	_, err := runCLI(t, "dashboard", "--db", filepath.Join(t.TempDir(), "sala.db"))
	require.ErrorContains(t, err, "invalid assist provider")
}
