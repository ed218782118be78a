package port

import (
	"context"
	"time"
)

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Size        int64
	ContentType string
}

// ObjectStorage stores file payloads in buckets.
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, path string, data []byte, contentType string) error
	// PublicURL returns the public link of an object. It does not check
	// that the object exists.
	PublicURL(bucket, path string) string
	PresignedPutURL(ctx context.Context, bucket, path string, expiry time.Duration) (string, error)
	PresignedGetURL(ctx context.Context, bucket, path string, expiry time.Duration) (string, error)
	// Stat returns nil, nil when the object does not exist.
	Stat(ctx context.Context, bucket, path string) (*ObjectInfo, error)
	Remove(ctx context.Context, bucket, path string) error
}
