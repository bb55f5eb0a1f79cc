package attaching

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/boraedu/bora-hub-api/infrastructure/repository"
	"github.com/boraedu/bora-hub-api/infrastructure/storage"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/pkg/log"
	"github.com/boraedu/bora-hub-api/pkg/utils"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

type Attaching interface {
	RequestUpload(ctx context.Context, tenantID string, uploadedBy int, req *domain.CreateAttachmentRequest) (*domain.PresignedAttachment, error)
	List(ctx context.Context, tenantID, entityType, entityID string) ([]*domain.Attachment, error)
	Download(ctx context.Context, tenantID, id string) (*domain.AttachmentDownload, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type Service struct {
	attachmentRepo repository.AttachmentRepository
	storage        storage.ObjectStorage
	now            func() time.Time
}

func NewService(attachmentRepo repository.AttachmentRepository, objectStorage storage.ObjectStorage) Attaching {
	return &Service{
		attachmentRepo: attachmentRepo,
		storage:        objectStorage,
		now:            time.Now,
	}
}

// objectKey separa os arquivos por tenant e entidade; o id evita colisão de nomes
func objectKey(tenantID, entityType, entityID, id, fileName string) string {
	name := strings.ReplaceAll(path.Base(strings.ReplaceAll(fileName, "\\", "/")), " ", "_")
	if name == "." || name == "/" {
		name = "arquivo"
	}
	return fmt.Sprintf("attachments/%s/%s/%s/%s-%s", tenantID, entityType, entityID, id, name)
}

// RequestUpload registra o anexo e devolve a URL assinada para o envio direto ao storage
func (s *Service) RequestUpload(ctx context.Context, tenantID string, uploadedBy int, req *domain.CreateAttachmentRequest) (*domain.PresignedAttachment, error) {
	id := utils.NewID()
	attachment := &domain.Attachment{
		ID:          id,
		TenantID:    tenantID,
		EntityType:  req.EntityType,
		EntityID:    req.EntityID,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		StorageKey:  objectKey(tenantID, req.EntityType, req.EntityID, id, req.FileName),
		CreatedAt:   s.now(),
	}
	if uploadedBy > 0 {
		attachment.UploadedBy = &uploadedBy
	}

	url, expiresAt, err := s.storage.PresignUpload(ctx, attachment.StorageKey, attachment.ContentType)
	if err != nil {
		return nil, errors.Wrap(err, "assinando URL de upload")
	}

	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		return nil, errors.Wrap(err, "registrando anexo")
	}

	return &domain.PresignedAttachment{
		Attachment: attachment,
		UploadURL:  url,
		ExpiresAt:  expiresAt,
	}, nil
}

func (s *Service) List(ctx context.Context, tenantID, entityType, entityID string) ([]*domain.Attachment, error) {
	return s.attachmentRepo.ListByEntity(ctx, tenantID, entityType, entityID)
}

func (s *Service) Download(ctx context.Context, tenantID, id string) (*domain.AttachmentDownload, error) {
	attachment, err := s.attachmentRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	url, expiresAt, err := s.storage.PresignDownload(ctx, attachment.StorageKey)
	if err != nil {
		return nil, errors.Wrap(err, "assinando URL de download")
	}

	return &domain.AttachmentDownload{URL: url, ExpiresAt: expiresAt}, nil
}

// Delete remove o registro; falha ao apagar o objeto só é registrada em log
func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	attachment, err := s.attachmentRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}

	if err := s.attachmentRepo.Delete(ctx, tenantID, id); err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, attachment.StorageKey); err != nil {
		log.ForContext(ctx).WithError(err).WithField("attachment_id", id).Warn("Falha ao remover objeto do anexo")
	}
	return nil
}
