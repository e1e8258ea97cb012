package main

import (
	"alcyxob/lesson-planner/internal/api"
	"alcyxob/lesson-planner/internal/config"
	"alcyxob/lesson-planner/internal/extractor"
	"alcyxob/lesson-planner/internal/generation"
	"alcyxob/lesson-planner/internal/logger"
	"alcyxob/lesson-planner/internal/repository/kv"
	"alcyxob/lesson-planner/internal/service"
	"alcyxob/lesson-planner/internal/storage"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
)

// @title Lesson Planner API
// @version 1.0
// @description Unit plans, lesson library, weekly planner, and AI-assisted curriculum generation.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("Starting Lesson Planner server", "address", cfg.Server.Address, "basePath", cfg.Server.BasePath)

	// --- Key-value store ---
	store, err := openStore(cfg, log)
	if err != nil {
		log.Fatal("Could not open key-value store", "driver", cfg.Store.Driver, "error", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := store.Close(ctx); err != nil {
			log.Error("Failed to close key-value store", "error", err)
		}
	}()
	if cfg.Store.KeyNamespace != "" {
		store = kv.WithNamespace(store, cfg.Store.KeyNamespace)
	}

	unitRepo := kv.NewUnitRepository(store)
	lessonRepo := kv.NewLessonRepository(store)
	scheduleRepo := kv.NewScheduleRepository(store)

	// --- Initialize Storage ---
	var fileStorage storage.FileStorage
	if cfg.S3.Enabled {
		fileStorage, err = storage.NewS3Storage(context.Background(), cfg.S3, log)
		if err != nil {
			log.Fatal("Failed to initialize S3 storage", "error", err)
		}
	} else {
		log.Info("Object storage disabled, uploaded documents will not be archived")
	}

	// --- Completion service ---
	if cfg.Completion.APIKey == "" {
		log.Warn("Completion API key is not set, generation endpoints will fail with a configuration error")
	}
	completer := generation.NewClient(cfg.Completion, log)

	// --- Initialize Services ---
	services := api.Services{
		Units:      service.NewUnitService(unitRepo, fileStorage, log),
		Lessons:    service.NewLessonService(lessonRepo),
		Planner:    service.NewPlannerService(scheduleRepo),
		Dashboard:  service.NewDashboardService(unitRepo, lessonRepo, scheduleRepo),
		Generation: service.NewGenerationService(completer, extractor.New(), unitRepo, fileStorage, cfg.Server.MaxUploadBytes, log),
	}

	// --- Initialize Gin Engine ---
	if cfg.Log.Mode != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(log, api.RouteOptions{
		BasePath:    cfg.Server.BasePath,
		JWTSecret:   cfg.Auth.JWTSecret,
		RequireAuth: cfg.Auth.Required,
	}, services)

	// --- Start HTTP Server ---
	var handler http.Handler = router
	if cfg.Server.MaxUploadBytes > 0 {
		// Bodies carry base64 documents, about 4/3 of the decoded size.
		handler = http.MaxBytesHandler(router, cfg.Server.MaxUploadBytes*4/3+64*1024)
	}
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// --- Graceful Shutdown ---
	go func() {
		log.Info("Server listening", "address", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("ListenAndServe error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Server exiting")
}
