package attaching

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/boraedu/bora-hub-api/infrastructure/repository/mocks"
	"github.com/boraedu/bora-hub-api/infrastructure/storage"
	storagemocks "github.com/boraedu/bora-hub-api/infrastructure/storage/mocks"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, 8, 1, 9, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*Service, *mocks.MockAttachmentRepository, *storagemocks.MockObjectStorage) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAttachmentRepository(ctrl)
	objects := storagemocks.NewMockObjectStorage(ctrl)

	service := NewService(repo, objects).(*Service)
	service.now = func() time.Time { return now }
	return service, repo, objects
}

func TestRequestUpload(t *testing.T) {
	ctx := context.Background()
	service, repo, objects := newService(t)

	objects.EXPECT().PresignUpload(ctx, gomock.Any(), "application/pdf").
		Return("https://storage/upload", now.Add(15*time.Minute), nil)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	presigned, err := service.RequestUpload(ctx, "tenant", 9, &domain.CreateAttachmentRequest{
		EntityType:  "chamado",
		EntityID:    "t1",
		FileName:    "../contrato final.pdf",
		ContentType: "application/pdf",
	})
	require.NoError(t, err)

	key := presigned.Attachment.StorageKey
	assert.True(t, strings.HasPrefix(key, "attachments/tenant/chamado/t1/"+presigned.Attachment.ID))
	assert.True(t, strings.HasSuffix(key, "-contrato_final.pdf"))
	assert.Equal(t, "https://storage/upload", presigned.UploadURL)
	assert.Equal(t, 9, *presigned.Attachment.UploadedBy)
}

func TestRequestUpload_StorageDesabilitado(t *testing.T) {
	ctx := context.Background()
	service, _, objects := newService(t)

	objects.EXPECT().PresignUpload(ctx, gomock.Any(), gomock.Any()).Return("", time.Time{}, storage.ErrDisabled)

	_, err := service.RequestUpload(ctx, "tenant", 9, &domain.CreateAttachmentRequest{
		EntityType: "venda", EntityID: "s1", FileName: "nf.xml", ContentType: "text/xml",
	})
	assert.ErrorIs(t, err, storage.ErrDisabled)
}

func TestDownload(t *testing.T) {
	ctx := context.Background()
	service, repo, objects := newService(t)

	repo.EXPECT().GetByID(ctx, "tenant", "a1").Return(&domain.Attachment{ID: "a1", StorageKey: "attachments/x"}, nil)
	objects.EXPECT().PresignDownload(ctx, "attachments/x").Return("https://storage/x", now, nil)

	download, err := service.Download(ctx, "tenant", "a1")
	require.NoError(t, err)
	assert.Equal(t, "https://storage/x", download.URL)
}

func TestDelete_NaoEncontrado(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newService(t)

	repo.EXPECT().GetByID(ctx, "tenant", "a1").Return(nil, domain.ErrNotFound)

	assert.ErrorIs(t, service.Delete(ctx, "tenant", "a1"), domain.ErrNotFound)
}
