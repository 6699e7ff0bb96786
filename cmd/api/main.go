package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/zootown/agency-ai-platform/internal/api/router"
	"github.com/zootown/agency-ai-platform/internal/booking"
	"github.com/zootown/agency-ai-platform/internal/chat"
	appconfig "github.com/zootown/agency-ai-platform/internal/config"
	"github.com/zootown/agency-ai-platform/internal/leads"
	"github.com/zootown/agency-ai-platform/internal/notify"
	"github.com/zootown/agency-ai-platform/internal/observability/metrics"
	"github.com/zootown/agency-ai-platform/internal/portfolio"
	"github.com/zootown/agency-ai-platform/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting agency-ai-platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()
	intakeMetrics := metrics.NewIntakeMetrics(nil)
	chatMetrics := chat.NewMetrics(nil)

	// Storage. Without DATABASE_URL the service keeps leads and chat logs
	// in memory, which is enough for local development.
	var pool *pgxpool.Pool
	var leadsRepo leads.Repository = leads.NewInMemoryRepository()
	var exchangeStore chat.ExchangeStore = chat.NewInMemoryExchangeStore()
	var portfolioHandler *portfolio.Handler
	if cfg.DatabaseURL != "" {
		var err error
		pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to create database pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			logger.Error("failed to reach database", "error", err)
			os.Exit(1)
		}
		leadsRepo = leads.NewPostgresRepository(pool)
		exchangeStore = chat.NewPostgresExchangeStore(pool)
		portfolioHandler = portfolio.NewHandler(portfolio.NewPostgresRepository(pool), logger)
		logger.Info("connected to postgres")
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory storage")
	}

	// Redis backs the transcript cache. Optional.
	var transcriptCache *chat.TranscriptCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer func() { _ = redisClient.Close() }()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, transcript cache disabled", "error", err)
		} else {
			transcriptCache = chat.NewTranscriptCache(redisClient)
			logger.Info("connected to redis", "addr", cfg.RedisAddr)
		}
	}

	// Notifications
	var notifier leads.Notifier
	if cfg.AutomationWebhookURL != "" {
		notifier = notify.NewWebhookNotifier(cfg.AutomationWebhookURL, intakeMetrics, logger)
		logger.Info("automation webhook enabled")
	}

	// Chat
	ollamaClient := chat.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel, cfg.OllamaTimeout, logger)
	chatService := chat.NewService(ollamaClient, ollamaClient.Model(), exchangeStore, transcriptCache, leadsRepo, notifier, chatMetrics, logger)

	// Booking
	catalog := booking.NewLinkCatalog(cfg.BookingPhoneURL, cfg.BookingVideoURL, cfg.BookingInPersonURL)

	// Setup router
	r := router.New(&router.Config{
		Logger:             logger,
		LeadsHandler:       leads.NewHandler(leadsRepo, notifier, intakeMetrics, logger),
		ChatHandler:        chat.NewHandler(chatService, logger),
		BookingHandler:     booking.NewHandler(catalog, logger),
		PortfolioHandler:   portfolioHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerSecond: cfg.RateLimitPerSecond,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second, // completion calls can be slow on CPU-only hosts
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}
