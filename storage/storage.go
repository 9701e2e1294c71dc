// Package storage keeps uploaded files on local disk or in an S3 bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"lms/config"
)

// Object describes a file to store.
type Object struct {
	Key         string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Store persists uploaded files and returns the URL they are served from.
type Store interface {
	Put(ctx context.Context, obj Object) (string, error)
}

// New builds the store selected by STORAGE_DRIVER.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageDriver {
	case "local", "":
		return NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL), nil
	case "s3":
		return NewS3Store(ctx, S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}

// ObjectKey builds a unique key under dir that keeps the original
// extension, e.g. "videos/20260101120000-<uuid>.mp4".
func ObjectKey(dir, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	name := time.Now().UTC().Format("20060102150405") + "-" + uuid.NewString() + ext
	return path.Join(dir, name)
}
