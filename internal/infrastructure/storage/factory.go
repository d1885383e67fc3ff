package storage

import (
	"context"
	"fmt"

	"creovibe/internal/domain/repositories"
	appConfig "creovibe/internal/pkg/config"
)

// FromConfig builds the storage strategy selected by STORAGE_DRIVER.
func FromConfig(ctx context.Context, cfg appConfig.UploadConfig) (repositories.StorageStrategy, error) {
	switch cfg.Driver {
	case appConfig.StorageDriverLocal, "":
		return NewLocalStorage(cfg.UploadsDir)
	case appConfig.StorageDriverS3:
		return NewS3Storage(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3PublicURL)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
