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

	"lawsite/internal/cache"
	"lawsite/internal/config"
	"lawsite/internal/database"
	"lawsite/internal/handlers"
	"lawsite/internal/middleware"
	"lawsite/internal/router"
	"lawsite/internal/session"
	"lawsite/internal/settings"
	"lawsite/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configFrom(cmd))
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr())

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
	}

	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		return fmt.Errorf("connect valkey: %w", err)
	}
	defer valkeyClient.Close()

	// Outside development, cookies are Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	userStore := store.NewUserStore(db)
	pageStore := store.NewPageContentStore(db)
	cacheLogStore := store.NewCacheLogStore(db)

	backend := newSettingsBackend(cfg, db)
	settingsCache := settings.New(backend)
	pageCache := cache.NewPageCache(valkeyClient, cfg.PageCacheTTL)
	bus := cache.NewInvalidationBus(valkeyClient)

	go func() {
		err := bus.Subscribe(ctx, func(inv cache.Invalidation) {
			if inv.Settings {
				settingsCache.Invalidate()
				return
			}
			pageCache.Invalidate(ctx, inv.Page)
		})
		if err != nil {
			slog.Error("invalidation subscriber stopped", "error", err)
		}
	}()

	// Warm the settings so the first visitor does not wait on the fetch.
	go func() {
		if _, err := settingsCache.Get(ctx); err != nil {
			slog.Warn("settings warm-up failed", "error", err)
		}
	}()

	loginLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Limit:      cfg.LoginRateLimit,
		Window:     cfg.LoginRateWindow,
		TrustProxy: cfg.TrustProxy,
	})
	defer loginLimiter.Stop()

	adminHandlers := handlers.NewAdmin(settingsCache, backend, pageStore, pageCache, bus, cacheLogStore)
	authHandlers := handlers.NewAuth(sessionStore, userStore)
	publicHandlers := handlers.NewPublic(settingsCache, pageStore, pageCache, cfg.SettingsWait)

	r := router.New(sessionStore, loginLimiter, secureCookies, adminHandlers, authHandlers, publicHandlers)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	slog.Info("shutdown signal received")

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	stats := settingsCache.Stats()
	slog.Info("server stopped gracefully",
		"settings_fetches", stats.Fetches,
		"settings_hits", stats.Hits,
		"settings_misses", stats.Misses,
		"settings_errors", stats.Errors,
	)
	return nil
}
