package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"droughtwatch/internal/config"
	"droughtwatch/internal/dataset"
	apphttp "droughtwatch/internal/http"
	applog "droughtwatch/internal/log"
	"droughtwatch/internal/mapimage"
	"droughtwatch/internal/notify"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}

	// The dataset is loaded exactly once; year selection afterwards never
	// touches the source again.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	result, err := dataset.Open(loadCtx, cfg)
	loadCancel()
	if err != nil {
		logger.Error("Dataset load failed",
			applog.FieldError, err,
			applog.FieldOrigin, cfg.DataSource)
		os.Exit(1)
	}
	loadedAt := time.Now()
	logger.Info("Dataset loaded",
		applog.FieldOrigin, string(result.Origin),
		"years", result.Dataset.Len(),
		"first_year", result.Dataset.FirstYear(),
		"last_year", result.Dataset.LastYear())

	var notifier apphttp.ExportNotifier
	if cfg.AMQPURL != "" {
		pub, err := notify.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Event publisher unavailable, continuing without it",
				applog.FieldError, err)
		} else {
			defer pub.Close()
			notifier = pub
			fallback := result.FallbackCause != nil
			if err := pub.PublishDatasetLoaded(context.Background(), string(result.Origin), result.Dataset.Len(), fallback); err != nil {
				logger.Warn("Dataset loaded event publish failed", applog.FieldError, err)
			}
		}
	}

	resolver := mapimage.NewResolver(cfg.ImageTimeout, cfg.ImageCacheSize, cfg.ImageCacheTTL)

	srv := apphttp.NewServer(apphttp.Options{
		Addr:             ":" + cfg.Port,
		Dataset:          result.Dataset,
		Origin:           result.Origin,
		LoadedAt:         loadedAt,
		Resolver:         resolver,
		Notifier:         notifier,
		DefaultLeftYear:  cfg.DefaultLeftYear,
		DefaultRightYear: cfg.DefaultRightYear,
		DefaultTheme:     cfg.DefaultTheme,
	})

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err)
		}
		cancel()
	}()

	logger.Info("Starting droughtwatch server",
		"port", cfg.Port,
		applog.FieldOrigin, string(result.Origin))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", applog.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
