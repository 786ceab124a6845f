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

	"github.com/gin-gonic/gin"

	"bookhub/database"
	"bookhub/internal/cache"
	"bookhub/internal/config"
	"bookhub/internal/http-api/handler"
	"bookhub/internal/http-api/middleware"
	"bookhub/internal/http-api/repository"
	"bookhub/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	// Redis is optional. Without it leaderboards hit the database directly.
	cacheClient, err := cache.New(cfg.RedisURL, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		logger.Warn("redis unavailable, leaderboard caching disabled", "error", err)
		cacheClient = nil
	}
	defer cacheClient.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	bookRepo := repository.NewBookRepo(db)
	progressRepo := repository.NewProgressRepository(db)
	listRepo := repository.NewListRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	recRepo := repository.NewRecommendationRepository(db)
	fragmentRepo := repository.NewFragmentRepository(db)

	// Services
	userService := service.NewUserService(userRepo, listRepo)
	progressService := service.NewProgressService(progressRepo, userRepo, bookRepo)
	listService := service.NewListService(listRepo, userRepo, bookRepo)
	ratingService := service.NewRatingService(ratingRepo, userRepo, bookRepo, logger)
	statsService := service.NewStatsService(statsRepo, userRepo, cacheClient, logger)
	recService := service.NewRecommendationService(recRepo, userRepo)
	fragmentService := service.NewFragmentService(fragmentRepo, userRepo, bookRepo)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	if cfg.AuthEnabled {
		api.Use(middleware.Auth(cfg.JWTSecret))
	}

	handler.NewUserHandler(userService).RegisterRoutes(api.Group("/users"))
	handler.NewProgressHandler(progressService).RegisterRoutes(api.Group("/progress"))
	handler.NewListHandler(listService).RegisterRoutes(api.Group("/lists"))
	handler.NewRatingHandler(ratingService).RegisterRoutes(api.Group("/ratings"))
	handler.NewStatsHandler(statsService).RegisterRoutes(api.Group("/stats"))
	handler.NewRecommendationHandler(recService).RegisterRoutes(api.Group("/recommendations"))
	handler.NewFragmentHandler(fragmentService).RegisterRoutes(api.Group("/fragments"))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Info("server stopped")
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
