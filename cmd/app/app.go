package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"rpchat/internal/config"
	"rpchat/internal/database"
	"rpchat/internal/repository"
	"rpchat/internal/service"
	"rpchat/internal/storage"
)

func App(ctx context.Context, cfg *config.Config, log *zap.Logger) (*database.DB, *service.Service, error) {
	// connection DB
	db, err := database.ConnectDB(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	// connection MinIO, only when avatar uploads are turned on
	var store storage.Storage
	if cfg.MinIO.Enabled {
		minioClient, err := storage.NewMinIOClient(ctx, cfg.MinIO, log)
		if err != nil {
			_ = db.CloseDB()
			return nil, nil, fmt.Errorf("failed to initialize MinIO: %w", err)
		}
		store = minioClient
	} else {
		log.Info("avatar uploads disabled")
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, store, log)

	return db, services, nil
}
