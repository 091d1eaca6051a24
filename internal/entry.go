// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/mise/internal/api"
	"github.com/starford/mise/internal/kvstore"
	"github.com/starford/mise/internal/mcpserver"
	"github.com/starford/mise/internal/recipestore"
	"github.com/starford/mise/internal/sse"
	"github.com/starford/mise/internal/storage"
	"github.com/starford/mise/internal/watch"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger. In MCP mode stdout carries the
	// protocol, so logs go to stderr.
	logOut := os.Stdout
	if app.mcp {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("store_backend", cfg.Store.Backend),
		slog.String("store_path", cfg.Store.Path),
		slog.String("media_dir", cfg.Media.Dir),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Ensure data directories exist.
	if err := os.MkdirAll(cfg.Store.Dir(), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	if err := os.MkdirAll(cfg.Media.Dir, 0o755); err != nil {
		return fmt.Errorf("create media dir: %w", err)
	}

	// Open the persistence backend. fileKV stays nil for sqlite; the
	// watcher only makes sense for entries living as plain files.
	var kv kvstore.Provider
	var fileKV *kvstore.File
	switch cfg.Store.Backend {
	case StoreBackendSQLite:
		db, err := kvstore.OpenSQLite(cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("init sqlite store: %w", err)
		}
		kv = db
	default:
		f, err := kvstore.NewFile(cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("init file store: %w", err)
		}
		kv = f
		fileKV = f
	}
	defer kv.Close()

	adapter := storage.New(kv, logger)

	// SSE broker.
	broker := sse.NewBroker(2 * time.Second)
	defer broker.Close()

	store := recipestore.New(adapter,
		recipestore.WithLogger(logger),
		recipestore.WithNotify(broker.PublishRecipeEvent),
	)

	// Session load. First run seeds the sample collection.
	store.Load(ctx)
	logger.Info("Store loaded",
		slog.Int("recipes", len(store.Recipes())),
		slog.Int("categories", len(store.Categories())))

	if app.mcp {
		logger.Info("Starting MCP server on stdio")
		return mcpserver.New(store).ServeStdio()
	}

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints.
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api; the SSE stream lands at /api/events.
	r.Mount("/api", api.NewRouter(store, cfg.Media.Dir, broker))

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Watch the store files for external edits (file backend only).
	if fileKV != nil {
		g.Go(func() error {
			if err := watch.Watch(gCtx, store, fileKV, logger); err != nil {
				logger.Warn("watcher failed", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
