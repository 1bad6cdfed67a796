package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	"github.com/Camiloaranda07/Springboot-platzi/internal/api"
	"github.com/Camiloaranda07/Springboot-platzi/internal/catalog"
	"github.com/Camiloaranda07/Springboot-platzi/internal/clients"
	"github.com/Camiloaranda07/Springboot-platzi/internal/config"
	"github.com/Camiloaranda07/Springboot-platzi/internal/store"
)

func connectToDB(dbURL string, logger *slog.Logger) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	logger.Info("connected to PostgreSQL")
	return db, nil
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := config.Load()
	validate := validator.New()

	var movieStore store.MovieStore
	if cfg.DatabaseURL != "" {
		db, err := connectToDB(cfg.DatabaseURL, logger)
		if err != nil {
			logger.Error("failed to initialize database connection", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Error("failed to close database connection", slog.String("error", err.Error()))
			}
		}()

		movieStore, err = store.NewPostgresMovieStore(db, logger)
		if err != nil {
			logger.Error("failed to initialize movie store", slog.String("error", err.Error()))
			os.Exit(1)
		}
	} else {
		logger.Warn("DATABASE_URL not set, falling back to the in-memory movie store")
		movieStore = store.NewMemoryMovieStore()
	}

	catalogService := catalog.NewService(movieStore, logger)
	suggester := clients.NewAISuggestionClient(cfg.AIAPIURL, cfg.AIAPIKey, cfg.AIModel, logger)

	handler := api.NewMovieHandler(catalogService, suggester, logger, validate)
	router := api.NewRouter(handler)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", slog.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", slog.String("error", err.Error()))
	} else {
		logger.Info("HTTP server gracefully stopped")
	}
}
