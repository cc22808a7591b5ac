// Package cmd implements the f1data CLI using cobra.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const version = "0.1.0"
const logo = "🏁"

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "f1data",
	Short: logo + " f1data — F1 historical data MCP server",
	Long:  logo + " f1data — an MCP server exposing historical Formula 1 data from the OpenF1 API as tools",
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(callCmd)
}

// setupLogging routes slog to stderr; stdout belongs to the protocol.
func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
