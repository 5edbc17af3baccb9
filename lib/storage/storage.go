// Package storage uploads design screens to the configured image CDN.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/designsync-api/config"
)

// ErrNotConfigured is returned when the selected backend is missing credentials
var ErrNotConfigured = errors.New("image storage is not configured")

// UploadInput describes one image to store
type UploadInput struct {
	Folder      string
	FileName    string
	ContentType string
	Data        []byte
}

// UploadResult is where an uploaded image ended up
type UploadResult struct {
	URL      string
	PublicID string
}

// ImageStore is an image CDN backend
type ImageStore interface {
	Name() string
	Upload(ctx context.Context, in UploadInput) (UploadResult, error)
	Delete(ctx context.Context, publicID string) error
	Ping(ctx context.Context) error
}

// Store is the process-wide image backend, set by Initialize
var Store ImageStore

// Initialize selects the image backend named by IMAGE_STORAGE
func Initialize(ctx context.Context, cfg config.Config) error {
	store, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	Store = store
	return nil
}

// New builds the backend named by cfg.ImageStorage
func New(ctx context.Context, cfg config.Config) (ImageStore, error) {
	switch cfg.ImageStorage {
	case "cloudinary":
		return NewCloudinaryStore(cfg.CloudinaryCloud, cfg.CloudinaryKey, cfg.CloudinarySecret, cfg.CloudinaryFolder)
	case "s3", "":
		return NewS3Store(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3PublicBaseURL)
	default:
		return nil, fmt.Errorf("unknown IMAGE_STORAGE %q", cfg.ImageStorage)
	}
}

// ObjectKey joins a folder and file name into a storage key
func ObjectKey(folder, fileName string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return fileName
	}
	return path.Join(folder, fileName)
}
