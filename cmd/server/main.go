package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wordbin/wordbin/internal/api"
	"github.com/wordbin/wordbin/internal/config"
	"github.com/wordbin/wordbin/internal/db"
	"github.com/wordbin/wordbin/internal/jobs"
	"github.com/wordbin/wordbin/internal/logger"
	"github.com/wordbin/wordbin/internal/repository/sqlite"
	"github.com/wordbin/wordbin/internal/services"
	"github.com/wordbin/wordbin/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Wordbin Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("import_worker_count=%d", cfg.ImportWorkerCount)
	log.Debug("import_queue_size=%d", cfg.ImportQueueSize)
	log.Debug("due_items_limit=%d", cfg.DueItemsLimit)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Initialize repositories
	userRepo := sqlite.NewUserRepository(database.DB)
	itemRepo := sqlite.NewItemRepository(database.DB)

	// Initialize services
	userService := services.NewUserService(userRepo)
	reviewService := services.NewReviewService(userRepo, itemRepo, time.Now)
	configService := services.NewConfigService(userRepo)
	distributionService := services.NewDistributionService(userRepo, itemRepo, time.Now)
	itemService := services.NewItemService(userRepo, itemRepo, time.Now)

	// Initialize worker pool for study-set imports
	importPool := worker.NewPool(cfg.ImportWorkerCount, cfg.ImportQueueSize)
	jobQueue := jobs.NewWorkerQueue(importPool, itemService)

	srv := &api.Server{
		UserService:         userService,
		ReviewService:       reviewService,
		ConfigService:       configService,
		DistributionService: distributionService,
		ItemService:         itemService,
		JobQueue:            jobQueue,
		DB:                  database.DB,
		DueItemsLimit:       cfg.DueItemsLimit,
	}

	ctx, cancel := context.WithCancel(context.Background())
	importPool.Start(ctx)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping worker pool")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	importPool.Stop()

	log.Info("===========================================")
	log.Info("Wordbin Server Stopped")
	log.Info("===========================================")
}
