package storage

import (
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lark/internal/config/configs"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name, base, bucket, path, want string
	}{
		{"plain", "http://localhost:9000", "campaign-images", "c1/0_portada.jpg", "http://localhost:9000/campaign-images/c1/0_portada.jpg"},
		{"escaped", "https://cdn.lark.cl", "campaign-documents", "c1/diagnosis/0_informe médico.pdf", "https://cdn.lark.cl/campaign-documents/c1/diagnosis/0_informe%20m%C3%A9dico.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicURL(tt.base, tt.bucket, tt.path))
		})
	}
}

func TestNewMinioStorage_PublicBase(t *testing.T) {
	s, err := NewMinioStorage(configs.Storage{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/vault/x.pdf", s.PublicURL("vault", "x.pdf"))

	s, err = NewMinioStorage(configs.Storage{Endpoint: "localhost:9000", PublicURL: "https://files.lark.cl/"})
	require.NoError(t, err)
	assert.Equal(t, "https://files.lark.cl/vault/x.pdf", s.PublicURL("vault", "x.pdf"))
}

func TestIsNotFound(t *testing.T) {
	assert.False(t, isNotFound(nil))
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.False(t, isNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.False(t, isNotFound(errors.New("dial tcp: connection refused")))
}
