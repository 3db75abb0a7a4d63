package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"rpchat/cmd/app"
	"rpchat/internal/config"
	handlers "rpchat/internal/handler"
	"rpchat/internal/logger"
	"rpchat/internal/server"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	zapLog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, zapLog); err != nil {
		zapLog.Error("application stopped with error", zap.Error(err))
		zapLog.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	db, services, err := app.App(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.CloseDB(); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}()

	handler := handlers.NewHandlers(services, db, cfg, log)
	router := server.NewRouter(handler, log)

	log.Info("starting rpchat",
		zap.Int("port", cfg.ServerPort),
		zap.String("database", cfg.DB.DbNAME),
		zap.Bool("avatars", cfg.MinIO.Enabled),
	)

	return server.New(cfg, router, log).Run(ctx)
}
