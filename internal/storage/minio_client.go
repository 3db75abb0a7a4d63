package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"rpchat/internal/config"
)

type Storage interface {
	UploadAvatar(ctx context.Context, fileName string, file io.Reader, size int64) (string, error)
}

type MinIOClient struct {
	client *minio.Client
	config config.MinIO
	log    *zap.Logger
}

var _ Storage = (*MinIOClient)(nil)

// NewMinIOClient connects to MinIO and makes sure the avatar bucket exists and
// is publicly readable, so the returned URLs can be used directly as <img> src.
func NewMinIOClient(ctx context.Context, cfg config.MinIO, log *zap.Logger) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	m := &MinIOClient{client: client, config: cfg, log: log}
	if err := m.ensureBucket(ctx); err != nil {
		return nil, err
	}

	log.Info("connected to MinIO",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.BucketName),
	)
	return m, nil
}

func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.config.BucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", m.config.BucketName, err)
	}
	if exists {
		return nil
	}

	err = m.client.MakeBucket(ctx, m.config.BucketName, minio.MakeBucketOptions{Region: m.config.Region})
	if err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", m.config.BucketName, err)
	}

	if err := m.client.SetBucketPolicy(ctx, m.config.BucketName, publicReadPolicy(m.config.BucketName)); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	m.log.Info("created bucket", zap.String("bucket", m.config.BucketName))
	return nil
}

func (m *MinIOClient) UploadAvatar(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	now := time.Now()
	ext := strings.ToLower(filepath.Ext(fileName))
	objectName := avatarObjectName(now, ext)

	_, err := m.client.PutObject(ctx, m.config.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentTypeFor(ext),
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar to MinIO: %w", err)
	}

	return objectURL(m.config, objectName), nil
}

func avatarObjectName(now time.Time, ext string) string {
	return fmt.Sprintf("avatars/%d/%02d/%s%s", now.Year(), now.Month(), uuid.New().String(), ext)
}

func contentTypeFor(ext string) string {
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return contentType
}

// objectURL prefers the configured public base URL, which is what browsers
// reach when MinIO sits behind a proxy.
func objectURL(cfg config.MinIO, objectName string) string {
	base := strings.TrimSuffix(cfg.PublicURL, "/")
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + cfg.Endpoint
	}
	return fmt.Sprintf("%s/%s/%s", base, cfg.BucketName, objectName)
}

func publicReadPolicy(bucket string) string {
	return fmt.Sprintf(`{
	"Version": "2012-10-17",
	"Statement": [{
		"Effect": "Allow",
		"Principal": {"AWS": ["*"]},
		"Action": ["s3:GetObject"],
		"Resource": ["arn:aws:s3:::%s/*"]
	}]
}`, bucket)
}
