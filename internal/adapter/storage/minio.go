// Package storage keeps file payloads in an S3 compatible object store.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"lark/internal/config/configs"
	"lark/internal/core/port"
)

// MinioStorage implements port.ObjectStorage with minio-go.
type MinioStorage struct {
	client    *minio.Client
	publicURL string
}

// NewMinioStorage creates the client. No request is made until the first
// operation.
func NewMinioStorage(cfg configs.Storage) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	base := cfg.PublicURL
	if base == "" {
		base = client.EndpointURL().String()
	}
	return &MinioStorage{client: client, publicURL: strings.TrimRight(base, "/")}, nil
}

// EnsureBuckets creates the buckets that do not exist yet.
func (s *MinioStorage) EnsureBuckets(ctx context.Context, logger *slog.Logger, buckets ...string) error {
	for _, bucket := range buckets {
		exists, err := s.client.BucketExists(ctx, bucket)
		if err != nil {
			return fmt.Errorf("check bucket %s: %w", bucket, err)
		}
		if exists {
			continue
		}
		if err = s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %s: %w", bucket, err)
		}
		logger.Info("bucket created", slog.String("bucket", bucket))
	}
	return nil
}

func (s *MinioStorage) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, bucket, path, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// PublicURL joins the public base, the bucket and the escaped object path.
func (s *MinioStorage) PublicURL(bucket, path string) string {
	return publicURL(s.publicURL, bucket, path)
}

func publicURL(base, bucket, path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return base + "/" + url.PathEscape(bucket) + "/" + strings.Join(segments, "/")
}

func (s *MinioStorage) PresignedPutURL(ctx context.Context, bucket, path string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedPutObject(ctx, bucket, path, expiry)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (s *MinioStorage) PresignedGetURL(ctx context.Context, bucket, path string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, bucket, path, expiry, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// Stat returns nil, nil when the object does not exist.
func (s *MinioStorage) Stat(ctx context.Context, bucket, path string) (*port.ObjectInfo, error) {
	info, err := s.client.StatObject(ctx, bucket, path, minio.StatObjectOptions{})
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &port.ObjectInfo{Size: info.Size, ContentType: info.ContentType}, nil
}

func (s *MinioStorage) Remove(ctx context.Context, bucket, path string) error {
	return s.client.RemoveObject(ctx, bucket, path, minio.RemoveObjectOptions{})
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchObject":
		return true
	}
	return false
}
