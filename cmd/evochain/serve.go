package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/gyaneshwarpardhi/evochain/internal/api"
	"github.com/gyaneshwarpardhi/evochain/internal/config"
	"github.com/gyaneshwarpardhi/evochain/internal/engine"
	"github.com/gyaneshwarpardhi/evochain/internal/store"
)

func newServeCmd() *cobra.Command {
	var addr, cfgPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP resolution service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), addr, cfgPath)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address")
	cmd.Flags().StringVar(&cfgPath, "config", "configs/evochain.yaml", "path to YAML or TOML config")
	return cmd
}

func serve(ctx context.Context, addr, cfgPath string) error {
	// ── Load config ──────────────────────────────────────────────────────────
	loader, err := config.NewLoader(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := loader.Config()

	// ── Species store ─────────────────────────────────────────────────────────
	st, err := store.New(ctx, cfg.Store)
	if err != nil {
		return err
	}
	slog.Info("species store ready", "backend", cfg.Store.Backend)

	// ── Engine ────────────────────────────────────────────────────────────────
	poolCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eng := engine.New(poolCtx, cfg.Describer(), st, cfg.Engine)

	// ── Hot-reload watcher ────────────────────────────────────────────────────
	loader.OnChange(func(newCfg *config.Config) {
		eng.SwapDescriber(newCfg.Describer())
		slog.Info("lexicon hot-reloaded", "items", len(newCfg.Lexicon.Items))
	})
	stopWatch, err := loader.Watch()
	if err != nil {
		slog.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
	} else {
		defer stopWatch()
	}

	// ── HTTP server ───────────────────────────────────────────────────────────
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.New(eng, loader),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	select {
	case err := <-errc:
		eng.Shutdown()
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}
	slog.Info("shutting down…")

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutCancel()
	_ = srv.Shutdown(shutCtx)
	eng.Shutdown()
	cancel()
	slog.Info("goodbye")
	return nil
}
