package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/amqp"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/config"
	applog "github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/log"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/sheets"
	gsheet "github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/sheets/google"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	// Setup structured logging
	logger := applog.New(applog.Config{Level: slog.LevelInfo, Component: applog.ComponentNotifier})
	applog.SetDefault(logger)

	logger.Info("Starting rua-notifier")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the notifier")
		os.Exit(1)
	}

	// Google Sheets achievement log is optional
	var writer sheets.AchievementWriter
	if cfg.GoogleSpreadsheetID != "" {
		client, err := gsheet.NewFromEnv(context.Background())
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", "error", err)
			os.Exit(1)
		}
		writer = client
		logger.Info("Google Sheets client initialized", "spreadsheet_id", cfg.GoogleSpreadsheetID)
	} else {
		logger.Info("Google Sheets disabled - no GOOGLE_SPREADSHEET_ID provided")
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notifier := worker.NewNotifier(amqpClient, writer)
	if err := notifier.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("Notifier stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Notifier stopped gracefully")
}
