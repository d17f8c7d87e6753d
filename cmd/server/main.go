package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/analyzer"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/config"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/database"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/handler"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/logger"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/repository"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/router"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/service"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/validator"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting GradeScan Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	requirementRepo := repository.NewRequirementRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	requirementService := service.NewRequirementService(requirementRepo, log)
	analyzerClient := analyzer.New(cfg, log)
	analysisService := service.NewAnalysisService(cfg, analyzerClient, requirementService, rdb, log)

	// ─── Load Graduation Requirement Table ─────────────────────────────
	// The table is read-only for the process lifetime; load it before
	// accepting traffic so every request sees the same rows.
	if err := requirementService.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to load graduation requirements")
	}

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Analysis:    handler.NewAnalysisHandler(analysisService),
		Requirement: handler.NewRequirementHandler(requirementService),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	diagnosticsWorker := worker.NewDiagnosticsWorker(pool, rdb, log)
	go diagnosticsWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the diagnostics worker and wait for its queue to drain.
	workerCancel()
	time.Sleep(2 * time.Second) // Allow workers to drain.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
