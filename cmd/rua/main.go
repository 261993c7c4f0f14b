package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/amqp"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/config"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/content"
	apphttp "github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/http"
	applog "github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/log"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/services"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/store"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	// Setup structured logging
	logger := applog.New(applog.Config{Level: slog.LevelInfo, Component: applog.ComponentApp})
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	// Choose data backend (default: memory)
	var kv store.KV
	switch cfg.DataBackend {
	case "sqlite":
		db, err := store.NewSQLite(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite store", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer db.Close()
		kv = db
		logger.Info("Initialized SQLite backend", "path", cfg.SQLiteDBPath)
	default:
		kv = store.NewMemory()
		logger.Info("Initialized memory backend")
	}

	// AMQP is optional; without it achievements are returned to the
	// caller but not forwarded to the notifier.
	var publisher services.AchievementPublisher
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer amqpClient.Close()
		publisher = amqpClient
		logger.Info("AMQP publisher initialized", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	} else {
		logger.Info("AMQP disabled - no AMQP_URL provided")
	}

	finance := services.NewFinanceService(kv, publisher)
	profile := services.NewProfileService(kv)
	library := content.NewManager(kv)

	srv := apphttp.NewServer(":"+cfg.Port, finance, profile, library, cfg.SummaryCacheTTL, cfg.MaxVideoBytes)

	// Configure server timeouts and limits
	srv.ReadTimeout = 30 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting rua server", "port", cfg.Port, "backend", cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
