package tasking

import (
	"context"
	"time"

	"github.com/boraedu/bora-hub-api/infrastructure/repository"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/pkg/utils"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

type Tasking interface {
	Create(ctx context.Context, tenantID string, createdBy int, req *domain.CreateTaskRequest) (*domain.Task, error)
	Update(ctx context.Context, tenantID, id string, req *domain.UpdateTaskRequest) (*domain.Task, error)
	Get(ctx context.Context, tenantID, id string) (*domain.Task, error)
	List(ctx context.Context, tenantID string, filter domain.TaskFilter) ([]*domain.Task, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type Service struct {
	taskRepo repository.TaskRepository
	now      func() time.Time
}

func NewService(taskRepo repository.TaskRepository) Tasking {
	return &Service{
		taskRepo: taskRepo,
		now:      time.Now,
	}
}

func (s *Service) Create(ctx context.Context, tenantID string, createdBy int, req *domain.CreateTaskRequest) (*domain.Task, error) {
	dueDate, err := domain.ParseOptionalDate(req.DueDate)
	if err != nil {
		return nil, errors.Wrap(err, "data de entrega")
	}

	now := s.now()
	task := &domain.Task{
		ID:          utils.NewID(),
		TenantID:    tenantID,
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatusPending,
		Priority:    req.Priority,
		DueDate:     dueDate,
		AssigneeID:  req.AssigneeID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Priority == "" {
		task.Priority = string(domain.TicketPriorityMedium)
	}
	if createdBy > 0 {
		task.CreatedBy = &createdBy
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, errors.Wrap(err, "criando tarefa")
	}

	return task, nil
}

func (s *Service) Update(ctx context.Context, tenantID, id string, req *domain.UpdateTaskRequest) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	now := s.now()

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.AssigneeID != nil {
		task.AssigneeID = req.AssigneeID
	}
	if req.DueDate != nil {
		// string vazia remove o prazo
		task.DueDate, err = domain.ParseOptionalDate(req.DueDate)
		if err != nil {
			return nil, errors.Wrap(err, "data de entrega")
		}
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		if !status.Valid() {
			return nil, errors.Wrapf(domain.ErrInvalidInput, "status %q", *req.Status)
		}
		task.SetStatus(status, now)
	}

	task.UpdatedAt = now
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, errors.Wrap(err, "atualizando tarefa")
	}

	return task, nil
}

func (s *Service) Get(ctx context.Context, tenantID, id string) (*domain.Task, error) {
	return s.taskRepo.GetByID(ctx, tenantID, id)
}

func (s *Service) List(ctx context.Context, tenantID string, filter domain.TaskFilter) ([]*domain.Task, error) {
	return s.taskRepo.List(ctx, tenantID, filter)
}

func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	return s.taskRepo.Delete(ctx, tenantID, id)
}
