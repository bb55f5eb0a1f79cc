package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/boraedu/bora-hub-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStorage(t *testing.T, endpoint string) *S3Storage {
	storage, err := NewS3Storage(config.Storage{
		Endpoint:          endpoint,
		Region:            "us-east-1",
		Bucket:            "bora-hub",
		AccessKey:         "minio",
		SecretKey:         "minio123",
		UsePathStyle:      true,
		PresignExpiration: 10 * time.Minute,
	})
	require.NoError(t, err)
	return storage
}

func TestPresign(t *testing.T) {
	storage := testStorage(t, "http://localhost:9000")
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	storage.now = func() time.Time { return now }

	url, expiresAt, err := storage.PresignUpload(context.Background(), "tenant/anexos/a1/contrato.pdf", "application/pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/bora-hub/tenant/anexos/a1/contrato.pdf?"), url)
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=600")
	assert.Equal(t, now.Add(10*time.Minute), expiresAt)

	url, _, err = storage.PresignDownload(context.Background(), "tenant/relatorios/r1.md")
	require.NoError(t, err)
	assert.Contains(t, url, "/bora-hub/tenant/relatorios/r1.md?")

	_, _, err = storage.PresignDownload(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestUpload(t *testing.T) {
	var received string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		received = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	storage := testStorage(t, server.URL)
	err := storage.Upload(context.Background(), "tenant/relatorios/r1.md", "text/markdown", []byte("# Relatório"))
	require.NoError(t, err)
	assert.Equal(t, "/bora-hub/tenant/relatorios/r1.md", received)
}

func TestNew_Desabilitado(t *testing.T) {
	storage, err := New(&config.Config{})
	require.NoError(t, err)
	assert.False(t, storage.Enabled())

	_, _, err = storage.PresignUpload(context.Background(), "k", "text/plain")
	assert.ErrorIs(t, err, ErrDisabled)

	_, err = NewS3Storage(config.Storage{Bucket: "b"})
	assert.Error(t, err)
}
