// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the public site server. It loads
// configuration, connects to services, sets up routing, and starts the
// HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"annecy/internal/cache"
	"annecy/internal/config"
	"annecy/internal/content"
	"annecy/internal/database"
	"annecy/internal/handlers"
	"annecy/internal/middleware"
	"annecy/internal/registry"
	"annecy/internal/router"
	"annecy/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	locales, err := cfg.Locales()
	if err != nil {
		slog.Error("invalid locale configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"default_locale", locales.Default(),
		"locales", locales.Supported(),
	)

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// The page cache is optional: without Valkey every request hits the
	// database.
	var pageCache *cache.PageCache
	if addr := cfg.ValkeyAddr(); addr != "" {
		var client *redis.Client
		client, err = cache.ConnectValkey(addr, cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("valkey unavailable, page cache disabled", "error", err)
		} else {
			defer client.Close()
			pageCache = cache.NewPageCache(client, cfg.PageCacheTTL)
		}
	}

	// Seed development data (no-op if data already exists). Cached pages
	// may predate the current data, so they are dropped.
	if cfg.IsDev() {
		ctx := context.Background()
		if err := database.Seed(ctx, db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
		pageCache.InvalidateAll(ctx)
	}

	svc := content.New(store.NewCatalog(db), locales, registry.Default())
	publicHandlers := handlers.NewPublic(svc, pageCache)

	limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
	defer limiter.Stop()

	r := router.New(publicHandlers, limiter)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
