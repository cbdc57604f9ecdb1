package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/stdtour/stdtour/internal/config"
	"github.com/stdtour/stdtour/internal/logging"
	"github.com/stdtour/stdtour/internal/monitoring"
	"github.com/stdtour/stdtour/internal/providers"
	"github.com/stdtour/stdtour/internal/runner"
	"github.com/stdtour/stdtour/internal/service"
)

func main() {
	cfg := config.LoadOrDefault()

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	registry := service.NewRegistry()
	if err := providers.RegisterAll(registry, cfg.Tour); err != nil {
		logger.Fatal("failed to register providers", zap.Error(err))
	}
	logger.Info("providers registered", zap.Any("stats", registry.Stats()))

	program := runner.DefaultProgram
	if cfg.Tour.ProgramFile != "" {
		override, err := config.LoadProgram(cfg.Tour.ProgramFile)
		if err != nil {
			logger.Fatal("failed to load program override", zap.Error(err))
		}
		program = override.Demos
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := monitoring.NewMetrics()
	r := runner.New(registry, logger, metrics, cfg.Tour, os.Stdout)
	if err := r.Run(ctx, program); err != nil {
		logger.Fatal("tour failed", zap.Error(err))
	}

	logger.Info("tour metrics", zap.Any("summary", metrics.Summary()))
}
