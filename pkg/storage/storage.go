// Package storage writes uploaded objects to local disk, AWS S3 or Google
// Cloud Storage and returns their public URL.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"carhire/pkg/config"
)

var ErrInvalidKey = errors.New("invalid storage key")

type Storage interface {
	Upload(ctx context.Context, request *UploadRequest) (*UploadResponse, error)
	Delete(ctx context.Context, key string) error
	// Name is the provider identifier reported by the upload test endpoint.
	Name() string
}

type UploadRequest struct {
	Key          string
	Reader       io.Reader
	ContentType  string
	Size         int64
	Metadata     map[string]string
	CacheControl string
}

type UploadResponse struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
	ETag string `json:"etag,omitempty"`
}

// New builds the provider selected by STORAGE_PROVIDER.
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.StorageProvider {
	case config.StorageS3:
		return NewS3Storage(ctx, cfg.S3Region, cfg.S3Bucket, cfg.CloudFrontDomain)
	case config.StorageGCS:
		return NewGCSStorage(ctx, cfg.GCPProjectID, cfg.GCPBucket, cfg.GCPCredentialsFile, cfg.GCPCDNDomain)
	case config.StorageLocal, "":
		return NewLocalStorage(cfg.StorageLocalPath, cfg.StorageLocalURL)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.StorageProvider)
	}
}
