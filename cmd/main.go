package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fmt"

	httpadapter "pacewatch/internal/adapter/http"
	"pacewatch/internal/adapter/postgres"
	"pacewatch/internal/adapter/sink"
	"pacewatch/internal/adapter/usecase"
	"pacewatch/internal/config"
	"pacewatch/internal/core/anomaly"
	"pacewatch/internal/db"
	"pacewatch/internal/forwarder"
)

// main is the entry point of the pacewatch service. It loads configuration,
// optionally runs database migrations, initializes the database pool and
// repositories, then starts the HTTP server and the export forwarder job.
// On receiving a termination signal it gracefully shuts both down.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	metricRepo := postgres.NewMetricRepository(pool)
	signalRepo := postgres.NewSignalRepository(pool)
	exportRepo := postgres.NewExportRepository(pool)

	svc := usecase.NewMetricUseCase(metricRepo, signalRepo, exportRepo, anomaly.Config{
		OverspendTolerance:         cfg.Pacing.OverspendTolerance,
		UnderspendTolerance:        cfg.Pacing.UnderspendTolerance,
		SuspiciousCTRThreshold:     cfg.Pacing.SuspiciousCTRThreshold,
		SuspiciousCVRThreshold:     cfg.Pacing.SuspiciousCVRThreshold,
		DeliveryGapImpressionFloor: cfg.Pacing.DeliveryGapImpressionFloor,
		NoSpendGraceDays:           cfg.Pacing.NoSpendGraceDays,
	})

	sinkClient := sink.NewClient(cfg.Export.SinkURL, cfg.Export.SinkAPIKey, cfg.Export.RequestTimeout())
	job := forwarder.New(exportRepo, sinkClient, cfg.Export, logger)
	job.Start(ctx)
	defer job.Stop()

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
