package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	dbPath     string
	logLevel   string
)

// rootCmd runs the surface selected by SALA_TRANSPORT_MODE.
var rootCmd = &cobra.Command{
	Use:   "sala",
	Short: "Sala do Empreendedor attendance service",
	Long: `Records attendances at a Sala do Empreendedor service center and
computes dashboard metrics over them.

Without a subcommand the transport mode from the configuration decides
between the HTTP server and MCP over stdio.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := bootstrap(cmd.Context(), "")
		if err != nil {
			return err
		}
		defer a.Close()
		if a.cfg.Transport.Mode == stdioMode {
			return runStdio(cmd.Context(), a)
		}
		return runHTTP(cmd.Context(), a)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (or set SALA_CONFIG_PATH)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (overrides SALA_DB_PATH)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides SALA_LOG_LEVEL)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(dashboardCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
