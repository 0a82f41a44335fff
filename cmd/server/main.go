package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/1ShivamPandey/apnafinance/internal/api"
	"github.com/1ShivamPandey/apnafinance/internal/cache"
	"github.com/1ShivamPandey/apnafinance/internal/config"
	"github.com/1ShivamPandey/apnafinance/internal/logging"
	"github.com/1ShivamPandey/apnafinance/internal/quote"
	"github.com/1ShivamPandey/apnafinance/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.NewLogger("error").Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.NewLogger(cfg.Log.Level)

	// External quote source, rate limited and bounded by a request timeout.
	quoteClient := quote.NewYahooClient(
		quote.WithBaseURL(cfg.Quote.BaseURL),
		quote.WithTimeout(cfg.Quote.Timeout),
		quote.WithRateLimit(cfg.Quote.RateLimit),
		quote.WithLogger(logger),
	)

	resultCache := cache.NewResultCache(cfg.Cache.MaxEntries, cfg.Cache.TTL)

	// Sweep expired cache entries in the background.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every 1m", func() {
		if removed := resultCache.Sweep(); removed > 0 {
			logger.Debug().Int("removed", removed).Msg("result cache sweep")
		}
	}); err != nil {
		logger.Fatal().Err(err).Msg("failed to schedule cache sweep")
	}
	scheduler.Start()

	// Create services
	systemService := service.NewSystemService(cfg.Quote.BaseURL)
	portfolioService := service.NewPortfolioService(
		quoteClient,
		resultCache,
		logger,
		cfg.Upload.FetchConcurrency,
	)

	// Create router
	router := api.NewRouter(systemService, portfolioService, logger, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	scheduler.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited")
}
