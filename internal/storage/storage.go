// Package storage holds uploaded CV files. Two backends exist: an
// S3-compatible object store (MinIO) and a directory under MEDIA_ROOT.
package storage

import (
	"context"
	"errors"
	"io"
	"time"

	"formsapi/internal/config"
)

// ErrNotConfigured is returned by constructors missing required settings.
var ErrNotConfigured = errors.New("storage not configured")

// ErrInvalidKey is returned for keys escaping the storage root.
var ErrInvalidKey = errors.New("invalid object key")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1 and the implementation
// will buffer/chunk as supported by the backend.
// ContentType and Metadata are optional.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the attachment store used by the intake and review services.
type Storage interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited URL that can be used to download the object without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// New picks MinIO when an endpoint is configured and the media directory otherwise.
func New(minioCfg config.MinIOConfig, media config.MediaConfig) (Storage, error) {
	if minioCfg.Enabled() {
		return NewMinIO(minioCfg)
	}
	return NewLocal(media.Root, media.URL)
}
