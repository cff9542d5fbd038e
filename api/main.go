package main

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

	"golang.org/x/time/rate"

	"github.com/rogerio-castellano/storefront-tracker/internal/config"
	"github.com/rogerio-castellano/storefront-tracker/internal/credstore"
	"github.com/rogerio-castellano/storefront-tracker/internal/db"
	api "github.com/rogerio-castellano/storefront-tracker/internal/http"
	"github.com/rogerio-castellano/storefront-tracker/internal/http/handlers"
	rl "github.com/rogerio-castellano/storefront-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/storefront-tracker/internal/logger"
	"github.com/rogerio-castellano/storefront-tracker/internal/repo"
	"github.com/rogerio-castellano/storefront-tracker/internal/session"
	"github.com/rogerio-castellano/storefront-tracker/internal/tracker"
)

// @title Storefront Tracker API
// @version 1.0
// @description Product catalog queries and the price tracker dashboard session.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	products, err := loadCatalog(ctx, cfg.Catalog)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	log.Info("catalog loaded", "source", cfg.Catalog.Source, "products", products.Len())

	store, err := credstore.Open(ctx, cfg.Credentials.StoreConfig())
	if err != nil {
		return fmt.Errorf("open credential store: %w", err)
	}
	defer store.Close()

	client := tracker.New(cfg.Analysis.BaseURL,
		tracker.WithTimeout(cfg.Analysis.Timeout),
		tracker.WithRateLimit(rate.Limit(cfg.Analysis.RateLimit), cfg.Analysis.RateBurst),
		tracker.WithLogger(log),
	)

	opts := []session.Option{
		session.WithLogger(log),
		session.WithAlertThreshold(cfg.Analysis.AlertThreshold),
	}
	if cfg.Analysis.VerifyOnRestore {
		opts = append(opts, session.WithRestorePolicy(session.VerifyOnRestore{Logger: log}))
	}
	sess := session.New(client, store, opts...)

	if err := sess.Restore(ctx); err != nil {
		log.Warn("could not restore dashboard session", "error", err)
	}

	go session.NewPoller(sess, cfg.Analysis.PollInterval, log).Run(ctx)

	var visitors *rl.Visitors
	if cfg.Server.RateLimit > 0 {
		visitors = rl.NewVisitors(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst)
		go visitors.RunCleanup(ctx, time.Minute, 5*time.Minute)
	}

	srv := handlers.NewServer(products, sess, log,
		handlers.WithDefaultCredentials(cfg.Analysis.Username, cfg.Analysis.Password))

	httpServer := &http.Server{
		Addr: cfg.Addr(),
		Handler: api.NewRouter(srv, api.RouterOptions{
			Logger:      log,
			CORSOrigins: cfg.Server.CORSOrigins,
			Visitors:    visitors,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	sess.Wait()

	log.Info("server stopped gracefully")
	return nil
}

// loadCatalog builds the in-memory catalog. A Postgres source is read once
// at startup; the catalog does not change while the process runs.
func loadCatalog(ctx context.Context, cfg config.CatalogConfig) (*repo.InMemoryProductRepository, error) {
	switch cfg.Source {
	case "file":
		return repo.LoadCatalogFile(cfg.Path)
	case "postgres":
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer database.Close()
		return repo.Snapshot(ctx, repo.NewPostgresProductRepository(database))
	}
	return repo.NewSeededProductRepository()
}
