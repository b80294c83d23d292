package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/core"
	"github.com/status-im/market-dashboard/logger"
)

func main() {
	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env file: %v", err)
	}

	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatal("Error creating logger:", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	zap.ReplaceGlobals(zapLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry, err := core.Setup(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to setup services", zap.Error(err))
	}

	if err := registry.StartAll(ctx); err != nil {
		zap.L().Fatal("Failed to start services", zap.Error(err))
	}

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	zap.L().Info("Received shutdown signal, stopping services", zap.String("signal", sig.String()))

	cancel()
	registry.StopAll()
}
