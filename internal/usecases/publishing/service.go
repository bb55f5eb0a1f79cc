package publishing

import (
	"context"
	"time"

	"github.com/boraedu/bora-hub-api/infrastructure/repository"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/pkg/utils"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

type Publishing interface {
	Create(ctx context.Context, tenantID string, req *domain.CreatePostRequest) (*domain.ContentPost, error)
	Update(ctx context.Context, tenantID, id string, req *domain.UpdatePostRequest) (*domain.ContentPost, error)
	Get(ctx context.Context, tenantID, id string) (*domain.ContentPost, error)
	List(ctx context.Context, tenantID string, filter domain.PostFilter) ([]*domain.ContentPost, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type Service struct {
	contentRepo repository.ContentRepository
	now         func() time.Time
}

func NewService(contentRepo repository.ContentRepository) Publishing {
	return &Service{
		contentRepo: contentRepo,
		now:         time.Now,
	}
}

func (s *Service) Create(ctx context.Context, tenantID string, req *domain.CreatePostRequest) (*domain.ContentPost, error) {
	scheduledAt, err := domain.ParseTimestamp(req.ScheduledAt)
	if err != nil {
		return nil, errors.Wrap(err, "data de agendamento")
	}

	status := domain.PostStatus(req.Status)
	if status == "" {
		status = domain.PostStatusIdea
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}

	now := s.now()
	post := &domain.ContentPost{
		ID:            utils.NewID(),
		TenantID:      tenantID,
		Title:         req.Title,
		Network:       req.Network,
		Format:        req.Format,
		ScheduledAt:   scheduledAt,
		ResponsibleID: req.ResponsibleID,
		Caption:       req.Caption,
		Link:          req.Link,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	post.SetStatus(status, now)

	if err := s.contentRepo.Create(ctx, post); err != nil {
		return nil, errors.Wrap(err, "criando post")
	}
	return post, nil
}

func (s *Service) Update(ctx context.Context, tenantID, id string, req *domain.UpdatePostRequest) (*domain.ContentPost, error) {
	post, err := s.contentRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	now := s.now()

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Network != nil {
		post.Network = *req.Network
	}
	if req.Format != nil {
		post.Format = *req.Format
	}
	if req.ScheduledAt != nil {
		if post.ScheduledAt, err = domain.ParseTimestamp(*req.ScheduledAt); err != nil {
			return nil, errors.Wrap(err, "data de agendamento")
		}
	}
	if req.ResponsibleID != nil {
		post.ResponsibleID = req.ResponsibleID
	}
	if req.Caption != nil {
		post.Caption = *req.Caption
	}
	if req.Link != nil {
		post.Link = *req.Link
	}
	if req.Status != nil {
		status := domain.PostStatus(*req.Status)
		if !status.Valid() {
			return nil, domain.ErrInvalidInput
		}
		post.SetStatus(status, now)
	}

	post.UpdatedAt = now
	if err := s.contentRepo.Update(ctx, post); err != nil {
		return nil, errors.Wrap(err, "atualizando post")
	}
	return post, nil
}

func (s *Service) Get(ctx context.Context, tenantID, id string) (*domain.ContentPost, error) {
	return s.contentRepo.GetByID(ctx, tenantID, id)
}

func (s *Service) List(ctx context.Context, tenantID string, filter domain.PostFilter) ([]*domain.ContentPost, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.ErrInvalidInput
	}
	return s.contentRepo.List(ctx, tenantID, filter)
}

func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	return s.contentRepo.Delete(ctx, tenantID, id)
}
