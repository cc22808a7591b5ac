package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/AryaAkman/Open-F1-MCP-Server/internal/config"
	"github.com/AryaAkman/Open-F1-MCP-Server/internal/dependency"
)

var (
	serveListen string
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "Also serve the HTTP/WebSocket transports on this address")
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "Config file path (default ~/.f1data/config.yaml)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	setupLogging(cfg.Log.Level)

	container, err := dependency.New(cfg)
	if err != nil {
		return fmt.Errorf("wire services: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := serveListen
	if addr == "" {
		addr = cfg.Server.HTTPAddr
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// The host owns our lifetime: stdin EOF ends the process,
		// network transports included.
		defer stop()
		return container.Server().ServeStdio(ctx, os.Stdin, os.Stdout)
	})
	if addr != "" {
		g.Go(func() error {
			return container.Server().ListenAndServe(ctx, addr)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
