package domain

import "time"

type Attachment struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	EntityType  string    `json:"entity_type"`
	EntityID    string    `json:"entity_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	StorageKey  string    `json:"storage_key"`
	UploadedBy  *int      `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateAttachmentRequest struct {
	EntityType  string `json:"entity_type" validate:"required,oneof=chamado tarefa venda pdi patrocinio conteudo evento mentoria"`
	EntityID    string `json:"entity_id" validate:"required,max=80"`
	FileName    string `json:"file_name" validate:"required,max=255"`
	ContentType string `json:"content_type" validate:"required,max=120"`
}

// PresignedAttachment devolve o registro criado com a URL assinada de upload
type PresignedAttachment struct {
	Attachment *Attachment `json:"attachment"`
	UploadURL  string      `json:"upload_url"`
	ExpiresAt  time.Time   `json:"expires_at"`
}

type AttachmentDownload struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
