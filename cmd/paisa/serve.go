package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paisatrail/paisa-trail/internal/api"
	"github.com/paisatrail/paisa-trail/internal/engine"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP ingest API",
		Long: `Run the HTTP API the bridge app submits captured messages to.

Endpoints:
  POST /api/v1/messages        parse (and store) a single message
  POST /api/v1/messages/batch  ingest a batch, returns stats
  GET  /api/v1/transactions    stored transactions, newest first
  GET  /api/v1/categories      the ordered category keyword table
  GET  /api/health             liveness`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "listen address (default :8080)")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	addr := viper.GetString("server.addr")
	if addr == "" {
		addr = ":8080"
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	server := api.NewServer(engine.New(store), store)

	go func() {
		<-ctx.Done()
		slog.Info("Shutting down API server")
		if err := server.Shutdown(); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	slog.Info("Starting API server", "addr", addr)
	if err := server.Listen(addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
