package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"

	"estatehub/internal/config"
	"estatehub/internal/handler"
	"estatehub/internal/model"
	"estatehub/internal/repository"
	"estatehub/internal/service"
	"estatehub/internal/upstream"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging.Level)
	slog.SetDefault(logger)

	logger.Info("EstateHub property portal",
		"version", Version,
		"build_time", BuildTime,
		"git_commit", GitCommit,
	)

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Upstream listings API client
	api := upstream.NewClient(upstream.Config{
		BaseURL:         cfg.Upstream.BaseURL,
		APIKey:          cfg.Upstream.APIKey,
		APIHost:         cfg.Upstream.APIHost,
		Timeout:         cfg.Upstream.Timeout,
		AutoCompleteTTL: cfg.Upstream.AutoCompleteTTL,
	}, logger.With("component", "upstream"))
	defer api.Close()

	logger.Info("upstream listings API configured", "base_url", cfg.Upstream.BaseURL)

	// Optional search-log store
	var repo *repository.PostgresRepository
	if cfg.PostgreSQL.Enabled {
		repo, err = repository.NewPostgresRepository(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer repo.Close()
		logger.Info("connected to PostgreSQL search-log store")
	} else {
		logger.Info("search logging disabled - no database configured")
	}

	// Services
	searchService := service.NewSearchService(
		api,
		repo,
		cfg.Search.Path,
		cfg.Search.FeaturedLocation,
		logger.With("component", "search"),
	)

	// Handlers
	searchHandler := handler.NewSearchHandler(searchService, cfg.Search.DefaultHitsPerPage, cfg.Search.MaxHitsPerPage)
	feedbackHandler := handler.NewFeedbackHandler(searchService)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.Server.AllowedOrigins, ",")
	corsConfig.AllowMethods = strings.Split(cfg.Server.AllowedMethods, ",")
	corsConfig.AllowHeaders = strings.Split(cfg.Server.AllowedHeaders, ",")
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "estatehub",
			"version": Version,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		// UI constants the search frontend needs before first render
		apiV1.GET("/config", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"search_path":   cfg.Search.Path,
				"debounce_ms":   cfg.Search.Debounce.Milliseconds(),
				"hits_per_page": cfg.Search.DefaultHitsPerPage,
				"price_ceiling": model.PriceCeiling,
				"rooms_max":     model.RoomsMax,
				"baths_max":     model.BathsMax,
				"defaults":      model.DefaultFilters(),
			})
		})
		apiV1.GET("/properties", searchHandler.Search)
		apiV1.GET("/properties/:externalID", searchHandler.Detail)
		apiV1.GET("/featured", searchHandler.Featured)
		apiV1.GET("/auto-complete", searchHandler.AutoComplete)
		apiV1.POST("/search/submit", searchHandler.Submit)
		apiV1.POST("/feedback", feedbackHandler.Submit)
	}

	// Serve static files (frontend)
	// Implemented in embed.go (production) or static_dev.go (development)
	setupStaticFiles(router, logger)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}

	logger.Info("server stopped")
}

// newLogger builds the tint-backed slog logger used across the service
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
	}))
}
