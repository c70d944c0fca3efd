package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/teampulse/teampulse-backend/internal/adapter/ai"
	"github.com/teampulse/teampulse-backend/internal/adapter/postgres"
	moodentryrepo "github.com/teampulse/teampulse-backend/internal/adapter/postgres/moodentry"
	reportrepo "github.com/teampulse/teampulse-backend/internal/adapter/postgres/report"
	userrepo "github.com/teampulse/teampulse-backend/internal/adapter/postgres/user"
	"github.com/teampulse/teampulse-backend/internal/auth"
	"github.com/teampulse/teampulse-backend/internal/config"
	"github.com/teampulse/teampulse-backend/internal/service/analytics"
	"github.com/teampulse/teampulse-backend/internal/service/dashboard"
	"github.com/teampulse/teampulse-backend/internal/service/enrichment"
	"github.com/teampulse/teampulse-backend/internal/service/report"
	"github.com/teampulse/teampulse-backend/internal/service/user"
	"github.com/teampulse/teampulse-backend/internal/service/vibelog"
	"github.com/teampulse/teampulse-backend/internal/transport/middleware"
	"github.com/teampulse/teampulse-backend/internal/transport/rest"
	"github.com/teampulse/teampulse-backend/internal/worker"
)

const rateLimitCleanupInterval = 5 * time.Minute

// Run is the application entry point. It loads configuration, wires the
// dependency graph, and serves HTTP until the context is cancelled or a
// termination signal arrives.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("enrichment_enabled", cfg.AI.EnrichmentEnabled()),
	)

	// --- Infrastructure ---

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	entries := moodentryrepo.New(pool)
	users := userrepo.New(pool)
	reports := reportrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	aiClient := ai.New(cfg.AI)

	workers := worker.NewPool(cfg.Worker.Size, cfg.Worker.QueueSize, logger)

	// --- Services ---

	coordinator := enrichment.NewCoordinator(logger, aiClient, entries)

	vibelogSvc := vibelog.NewService(logger, entries, coordinator, workers)
	analyticsSvc := analytics.NewService(logger, entries, cfg.Analytics)
	dashboardSvc := dashboard.NewService(logger, entries, cfg.Analytics)
	reportSvc := report.NewService(logger, reports, entries, aiClient)
	userSvc := user.NewService(logger, users, txManager, jwtManager, cfg.Auth)

	// --- Transport ---

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	rateLimiter := middleware.NewRateLimiter(rateLimitCleanupInterval)
	defer rateLimiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Log:         logger,
		Auth:        rest.NewAuthHandler(userSvc, logger),
		Entries:     rest.NewEntryHandler(vibelogSvc, logger),
		Analytics:   rest.NewAnalyticsHandler(analyticsSvc, logger),
		Dashboard:   rest.NewDashboardHandler(dashboardSvc, logger),
		Reports:     rest.NewReportHandler(reportSvc, logger),
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
		JWT:         jwtManager,
		Registry:    registry,
		RateLimiter: rateLimiter,
		CORS:        cfg.CORS,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", slog.Any("error", err))
	}

	// Drain in-flight enrichment tasks before closing the pool.
	if err := workers.Shutdown(shutdownCtx); err != nil {
		logger.Error("worker pool shutdown", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}
