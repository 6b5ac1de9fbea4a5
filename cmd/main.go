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

	"github.com/7kevin24/ZJU-SFL/config"
	"github.com/7kevin24/ZJU-SFL/db"
	"github.com/7kevin24/ZJU-SFL/handlers"
	"github.com/7kevin24/ZJU-SFL/league"
	"github.com/7kevin24/ZJU-SFL/repositories"
	api "github.com/7kevin24/ZJU-SFL/routes"
	"github.com/7kevin24/ZJU-SFL/services"
	"github.com/7kevin24/ZJU-SFL/storage"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort), slog.Bool("strict_roster", cfg.StrictRoster))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		}
	}()
	logger.Info("database connection established")

	hub := league.NewHub()
	go hub.Run()
	logger.Info("league event hub started")

	tableStore := repositories.NewPostgresTableStore(dbConn)

	authService := services.NewAuthService(cfg.AdminPasswordHash, []byte(cfg.JWTSecretKey))
	matchService := services.NewMatchService(tableStore, hub, cfg.StrictRoster)
	standingsService := services.NewStandingsService(tableStore)
	statsService := services.NewStatsService(tableStore)

	var exportService services.ExportService
	if cfg.ExportEnabled() {
		uploader, err := storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		exportService = services.NewExportService(tableStore, uploader)
		logger.Info("snapshot export enabled", slog.String("bucket", cfg.R2BucketName))
	} else {
		logger.Info("snapshot export disabled (R2 not configured)")
	}
	logger.Info("services initialized")

	authHandler := handlers.NewAuthHandler(authService)
	matchHandler := handlers.NewMatchHandler(matchService)
	standingsHandler := handlers.NewStandingsHandler(standingsService)
	statsHandler := handlers.NewStatsHandler(statsService)
	exportHandler := handlers.NewExportHandler(exportService)
	webSocketHandler := handlers.NewWebSocketHandler(hub)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		[]byte(cfg.JWTSecretKey),
		authHandler,
		matchHandler,
		standingsHandler,
		statsHandler,
		exportHandler,
		webSocketHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
}
