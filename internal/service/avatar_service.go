package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"rpchat/internal/config"
	"rpchat/internal/models"
	"rpchat/internal/storage"
)

var allowedAvatarExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type AvatarService interface {
	Enabled() bool
	Upload(ctx context.Context, fileName string, file io.Reader, size int64) (*models.AvatarResponse, error)
}

type avatarService struct {
	storage storage.Storage
	cfg     *config.Config
}

func NewAvatarService(storage storage.Storage, cfg *config.Config) AvatarService {
	return &avatarService{storage: storage, cfg: cfg}
}

// Enabled reports whether an object store is configured.
func (a *avatarService) Enabled() bool {
	return a.storage != nil
}

func (a *avatarService) Upload(ctx context.Context, fileName string, file io.Reader, size int64) (*models.AvatarResponse, error) {
	if !a.Enabled() {
		return nil, models.NewUnavailableError("Avatar uploads are disabled")
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedAvatarExtensions[ext] {
		return nil, models.NewValidationError("Unsupported image type")
	}

	if size <= 0 {
		return nil, models.NewValidationError("Image is empty")
	}
	if size > a.cfg.MaxUploadSize {
		return nil, models.NewValidationError(fmt.Sprintf("Image exceeds %d bytes", a.cfg.MaxUploadSize))
	}

	url, err := a.storage.UploadAvatar(ctx, fileName, file, size)
	if err != nil {
		return nil, err
	}

	return &models.AvatarResponse{URL: url}, nil
}
