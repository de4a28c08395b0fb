package domain

import (
	"context"
	"io"
	"time"
)

// ObjectStore defines the object storage operations the gateway relies on.
// Implemented by S3 and any S3-compatible service (MinIO, LocalStack).
type ObjectStore interface {
	// UploadFile puts the body under the given key
	UploadFile(ctx context.Context, key string, body io.Reader, contentType string) error

	// ListFiles returns every object whose key starts with prefix, in store order
	ListFiles(ctx context.Context, prefix string) ([]File, error)

	// GetPresignedURL generates a temporary presigned URL for reading an object
	GetPresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error)
}
