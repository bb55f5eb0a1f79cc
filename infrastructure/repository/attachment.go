package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/boraedu/bora-hub-api/infrastructure/database/postgres"
	"github.com/boraedu/bora-hub-api/internal/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

const attachmentsTable = "attachments"

var attachmentColumns = []string{
	"id", "tenant_id", "entity_type", "entity_id", "file_name", "content_type", "storage_key", "uploaded_by",
	"created_at",
}

type AttachmentRepository interface {
	Create(ctx context.Context, attachment *domain.Attachment) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.Attachment, error)
	ListByEntity(ctx context.Context, tenantID, entityType, entityID string) ([]*domain.Attachment, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type attachmentRepository struct {
	db postgres.Queryer
}

func NewAttachmentRepository(db postgres.Queryer) AttachmentRepository {
	return &attachmentRepository{db: db}
}

func (r *attachmentRepository) Create(ctx context.Context, a *domain.Attachment) error {
	return execute(ctx, r.db, psql.
		Insert(attachmentsTable).
		Columns(attachmentColumns...).
		Values(a.ID, a.TenantID, a.EntityType, a.EntityID, a.FileName, a.ContentType, a.StorageKey, a.UploadedBy,
			a.CreatedAt), false)
}

func (r *attachmentRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Attachment, error) {
	return selectOne(ctx, r.db, psql.
		Select(attachmentColumns...).
		From(attachmentsTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), scanAttachment)
}

func (r *attachmentRepository) ListByEntity(ctx context.Context, tenantID, entityType, entityID string) ([]*domain.Attachment, error) {
	return selectAll(ctx, r.db, psql.
		Select(attachmentColumns...).
		From(attachmentsTable).
		Where(squirrel.Eq{"tenant_id": tenantID, "entity_type": entityType, "entity_id": entityID}).
		OrderBy("created_at DESC"), scanAttachment)
}

func (r *attachmentRepository) Delete(ctx context.Context, tenantID, id string) error {
	return execute(ctx, r.db, psql.
		Delete(attachmentsTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), true)
}

func scanAttachment(row rowScanner) (*domain.Attachment, error) {
	var a domain.Attachment
	err := row.Scan(
		&a.ID,
		&a.TenantID,
		&a.EntityType,
		&a.EntityID,
		&a.FileName,
		&a.ContentType,
		&a.StorageKey,
		&a.UploadedBy,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
