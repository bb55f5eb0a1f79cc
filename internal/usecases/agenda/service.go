package agenda

import (
	"context"
	"time"

	"github.com/boraedu/bora-hub-api/infrastructure/repository"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/pkg/utils"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

type Agenda interface {
	Create(ctx context.Context, tenantID string, createdBy int, req *domain.CreateEventRequest) (*domain.Event, error)
	Update(ctx context.Context, tenantID, id string, req *domain.UpdateEventRequest) (*domain.Event, error)
	Get(ctx context.Context, tenantID, id string) (*domain.Event, error)
	List(ctx context.Context, tenantID string, filter domain.EventFilter) ([]*domain.Event, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type Service struct {
	eventRepo repository.EventRepository
	now       func() time.Time
}

func NewService(eventRepo repository.EventRepository) Agenda {
	return &Service{
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

func (s *Service) Create(ctx context.Context, tenantID string, createdBy int, req *domain.CreateEventRequest) (*domain.Event, error) {
	startAt, err := domain.ParseTimestamp(req.StartAt)
	if err != nil {
		return nil, errors.Wrap(err, "início do evento")
	}
	endAt, err := domain.ParseTimestamp(req.EndAt)
	if err != nil {
		return nil, errors.Wrap(err, "fim do evento")
	}

	now := s.now()
	event := &domain.Event{
		ID:          utils.NewID(),
		TenantID:    tenantID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Location:    req.Location,
		StartAt:     startAt,
		EndAt:       endAt,
		AllDay:      req.AllDay,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if createdBy > 0 {
		event.CreatedBy = &createdBy
	}

	if err := event.Validate(); err != nil {
		return nil, errors.Wrap(err, "evento termina antes de começar")
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, errors.Wrap(err, "criando evento")
	}
	return event, nil
}

func (s *Service) Update(ctx context.Context, tenantID, id string, req *domain.UpdateEventRequest) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Type != nil {
		event.Type = *req.Type
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.AllDay != nil {
		event.AllDay = *req.AllDay
	}
	if req.StartAt != nil {
		if event.StartAt, err = domain.ParseTimestamp(*req.StartAt); err != nil {
			return nil, errors.Wrap(err, "início do evento")
		}
	}
	if req.EndAt != nil {
		if event.EndAt, err = domain.ParseTimestamp(*req.EndAt); err != nil {
			return nil, errors.Wrap(err, "fim do evento")
		}
	}

	if err := event.Validate(); err != nil {
		return nil, errors.Wrap(err, "evento termina antes de começar")
	}

	event.UpdatedAt = s.now()
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, errors.Wrap(err, "atualizando evento")
	}
	return event, nil
}

func (s *Service) Get(ctx context.Context, tenantID, id string) (*domain.Event, error) {
	return s.eventRepo.GetByID(ctx, tenantID, id)
}

// List devolve os eventos que interceptam o período do filtro
func (s *Service) List(ctx context.Context, tenantID string, filter domain.EventFilter) ([]*domain.Event, error) {
	return s.eventRepo.List(ctx, tenantID, filter)
}

func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	return s.eventRepo.Delete(ctx, tenantID, id)
}
