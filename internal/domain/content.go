package domain

import "time"

type PostStatus string

const (
	PostStatusIdea       PostStatus = "ideia"
	PostStatusScript     PostStatus = "roteiro"
	PostStatusProduction PostStatus = "producao"
	PostStatusApproval   PostStatus = "aprovacao"
	PostStatusScheduled  PostStatus = "agendado"
	PostStatusPublished  PostStatus = "publicado"
)

func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusIdea, PostStatusScript, PostStatusProduction, PostStatusApproval, PostStatusScheduled, PostStatusPublished:
		return true
	}
	return false
}

type ContentPost struct {
	ID            string     `json:"id"`
	TenantID      string     `json:"tenant_id"`
	Title         string     `json:"title"`
	Network       string     `json:"network"`
	Format        string     `json:"format"`
	Status        PostStatus `json:"status"`
	ScheduledAt   time.Time  `json:"scheduled_at"`
	PublishedAt   *time.Time `json:"published_at"`
	ResponsibleID *int       `json:"responsible_id"`
	Caption       string     `json:"caption"`
	Link          string     `json:"link"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// SetStatus altera o status; publicar registra a data de publicação
func (p *ContentPost) SetStatus(status PostStatus, now time.Time) {
	p.Status = status
	if status == PostStatusPublished {
		if p.PublishedAt == nil {
			p.PublishedAt = &now
		}
		return
	}
	p.PublishedAt = nil
}

type PostFilter struct {
	Period  Period
	Network string
	Status  PostStatus
}

type CreatePostRequest struct {
	Title         string `json:"title" validate:"required,max=200"`
	Network       string `json:"network" validate:"required,oneof=instagram tiktok youtube linkedin facebook blog newsletter"`
	Format        string `json:"format" validate:"required,max=30"`
	Status        string `json:"status" validate:"omitempty,oneof=ideia roteiro producao aprovacao agendado publicado"`
	ScheduledAt   string `json:"scheduled_at" validate:"required"`
	ResponsibleID *int   `json:"responsible_id"`
	Caption       string `json:"caption"`
	Link          string `json:"link" validate:"omitempty,url"`
}

type UpdatePostRequest struct {
	Title         *string `json:"title" validate:"omitempty,max=200"`
	Network       *string `json:"network" validate:"omitempty,oneof=instagram tiktok youtube linkedin facebook blog newsletter"`
	Format        *string `json:"format" validate:"omitempty,max=30"`
	Status        *string `json:"status" validate:"omitempty,oneof=ideia roteiro producao aprovacao agendado publicado"`
	ScheduledAt   *string `json:"scheduled_at"`
	ResponsibleID *int    `json:"responsible_id"`
	Caption       *string `json:"caption"`
	Link          *string `json:"link" validate:"omitempty,url"`
}
