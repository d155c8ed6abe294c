// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"doorworks/internal/config"
	"doorworks/internal/handlers"
	"doorworks/internal/metrics"
	"doorworks/internal/middleware"
	"doorworks/internal/pages"
	"doorworks/internal/router"
	"doorworks/web"
)

func serveCommand(getConfig func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve resolved content over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), getConfig())
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	m, err := metrics.New()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	site, err := newSiteService(cfg, m)
	if err != nil {
		return err
	}

	responses, closeCache, err := newResponseCache(cfg)
	if err != nil {
		return err
	}
	defer closeCache()
	if responses != nil {
		// Entries from a previous deploy may have been decoded with other projections.
		responses.InvalidateAll(ctx)
	}

	apiContent, err := newAPIService(cfg, m, responses)
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustProxyHeaders)
	defer limiter.Stop()

	api := handlers.NewAPI(apiContent, pages.NewBuilder(site, web.LegalFS, m))
	r := router.New(api, limiter, m.Handler())

	// Create the HTTP server with sensible timeouts. Content queries time out
	// on their own after 15 seconds.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-sigCtx.Done():
		slog.Info("shutdown signal received")
	}

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
