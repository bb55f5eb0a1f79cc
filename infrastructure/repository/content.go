package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/boraedu/bora-hub-api/infrastructure/database/postgres"
	"github.com/boraedu/bora-hub-api/internal/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

const postsTable = "content_posts"

var postColumns = []string{
	"id", "tenant_id", "title", "network", "format", "status", "scheduled_at", "published_at",
	"responsible_id", "COALESCE(caption, '')", "COALESCE(link, '')", "created_at", "updated_at",
}

type ContentRepository interface {
	Create(ctx context.Context, post *domain.ContentPost) error
	Update(ctx context.Context, post *domain.ContentPost) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.ContentPost, error)
	List(ctx context.Context, tenantID string, filter domain.PostFilter) ([]*domain.ContentPost, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type contentRepository struct {
	db postgres.Queryer
}

func NewContentRepository(db postgres.Queryer) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(ctx context.Context, post *domain.ContentPost) error {
	return execute(ctx, r.db, psql.
		Insert(postsTable).
		Columns("id", "tenant_id", "title", "network", "format", "status", "scheduled_at", "published_at",
			"responsible_id", "caption", "link", "created_at", "updated_at").
		Values(post.ID, post.TenantID, post.Title, post.Network, post.Format, post.Status, post.ScheduledAt,
			post.PublishedAt, post.ResponsibleID, nullString(post.Caption), nullString(post.Link),
			post.CreatedAt, post.UpdatedAt), false)
}

func (r *contentRepository) Update(ctx context.Context, post *domain.ContentPost) error {
	return execute(ctx, r.db, psql.
		Update(postsTable).
		Set("title", post.Title).
		Set("network", post.Network).
		Set("format", post.Format).
		Set("status", post.Status).
		Set("scheduled_at", post.ScheduledAt).
		Set("published_at", post.PublishedAt).
		Set("responsible_id", post.ResponsibleID).
		Set("caption", nullString(post.Caption)).
		Set("link", nullString(post.Link)).
		Set("updated_at", post.UpdatedAt).
		Where(squirrel.Eq{"id": post.ID, "tenant_id": post.TenantID}), true)
}

func (r *contentRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.ContentPost, error) {
	return selectOne(ctx, r.db, psql.
		Select(postColumns...).
		From(postsTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), scanPost)
}

// List monta o calendário editorial ordenado pela data de agendamento
func (r *contentRepository) List(ctx context.Context, tenantID string, filter domain.PostFilter) ([]*domain.ContentPost, error) {
	builder := psql.
		Select(postColumns...).
		From(postsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("scheduled_at ASC")

	if filter.Network != "" {
		builder = builder.Where(squirrel.Eq{"network": filter.Network})
	}

	if filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"status": filter.Status})
	}

	return selectAll(ctx, r.db, applyPeriod(builder, "scheduled_at", filter.Period), scanPost)
}

func (r *contentRepository) Delete(ctx context.Context, tenantID, id string) error {
	return execute(ctx, r.db, psql.
		Delete(postsTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), true)
}

func scanPost(row rowScanner) (*domain.ContentPost, error) {
	var post domain.ContentPost
	err := row.Scan(
		&post.ID,
		&post.TenantID,
		&post.Title,
		&post.Network,
		&post.Format,
		&post.Status,
		&post.ScheduledAt,
		&post.PublishedAt,
		&post.ResponsibleID,
		&post.Caption,
		&post.Link,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}
