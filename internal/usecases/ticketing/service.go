package ticketing

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/boraedu/bora-hub-api/infrastructure/database/postgres"
	"github.com/boraedu/bora-hub-api/infrastructure/repository"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/pkg/log"
	"github.com/boraedu/bora-hub-api/pkg/utils"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

const (
	codePrefix       = "CH-"
	maxCodeAttempts  = 3
	taskTitlePattern = "[%s] %s"
)

type Ticketing interface {
	Create(ctx context.Context, tenantID string, requesterID int, req *domain.CreateTicketRequest) (*domain.Ticket, error)
	Update(ctx context.Context, tenantID, id string, req *domain.UpdateTicketRequest) (*domain.Ticket, error)
	Get(ctx context.Context, tenantID, id string) (*domain.Ticket, error)
	List(ctx context.Context, tenantID string, filter domain.TicketFilter) ([]*domain.Ticket, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type Service struct {
	ticketRepo repository.TicketRepository
	taskRepo   repository.TaskRepository
	transactor postgres.Transactor
	now        func() time.Time
	newCode    func(prefix string) (string, error)
}

func NewService(ticketRepo repository.TicketRepository, taskRepo repository.TaskRepository, transactor postgres.Transactor) Ticketing {
	return &Service{
		ticketRepo: ticketRepo,
		taskRepo:   taskRepo,
		transactor: transactor,
		now:        time.Now,
		newCode:    utils.GenerateCode,
	}
}

// Create abre o chamado com o prazo de SLA da prioridade e cria a tarefa vinculada na mesma transação
func (s *Service) Create(ctx context.Context, tenantID string, requesterID int, req *domain.CreateTicketRequest) (*domain.Ticket, error) {
	priority := domain.TicketPriority(req.Priority)
	if !priority.Valid() {
		return nil, errors.Wrapf(domain.ErrInvalidInput, "prioridade %q", req.Priority)
	}

	now := s.now()
	ticket := &domain.Ticket{
		ID:          utils.NewID(),
		TenantID:    tenantID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    priority,
		Status:      domain.TicketStatusOpen,
		SLADeadline: domain.SLADeadline(now, priority),
		AssigneeID:  req.AssigneeID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if requesterID > 0 {
		ticket.RequesterID = &requesterID
	}

	// o código é aleatório; uma colisão no tenant gera nova tentativa
	var err error
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		ticket.Code, err = s.newCode(codePrefix)
		if err != nil {
			return nil, err
		}

		task := linkedTask(ticket)
		ticket.TaskID = &task.ID

		err = s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
			if err := s.taskRepo.WithTx(tx).Create(ctx, task); err != nil {
				return errors.Wrap(err, "criando tarefa do chamado")
			}
			if err := s.ticketRepo.WithTx(tx).Create(ctx, ticket); err != nil {
				return errors.Wrap(err, "criando chamado")
			}
			return nil
		})
		if !errors.Is(err, domain.ErrConflict) {
			break
		}
		log.ForContext(ctx).Warnf("Código de chamado %s já utilizado, gerando outro", ticket.Code)
	}
	if err != nil {
		return nil, err
	}

	return ticket, nil
}

func linkedTask(ticket *domain.Ticket) *domain.Task {
	deadline := ticket.SLADeadline
	ticketID := ticket.ID
	return &domain.Task{
		ID:          utils.NewID(),
		TenantID:    ticket.TenantID,
		Title:       fmt.Sprintf(taskTitlePattern, ticket.Code, ticket.Title),
		Description: ticket.Description,
		Status:      domain.TaskStatusPending,
		Priority:    string(ticket.Priority),
		DueDate:     &deadline,
		AssigneeID:  ticket.AssigneeID,
		TicketID:    &ticketID,
		CreatedBy:   ticket.RequesterID,
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.CreatedAt,
	}
}

// Update aplica os campos informados, valida a transição de status e mantém a tarefa vinculada sincronizada
func (s *Service) Update(ctx context.Context, tenantID, id string, req *domain.UpdateTicketRequest) (*domain.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	previousStatus := ticket.Status

	if req.Title != nil {
		ticket.Title = *req.Title
	}
	if req.Description != nil {
		ticket.Description = *req.Description
	}
	if req.Category != nil {
		ticket.Category = *req.Category
	}
	if req.AssigneeID != nil {
		ticket.AssigneeID = req.AssigneeID
	}

	if req.Priority != nil {
		priority := domain.TicketPriority(*req.Priority)
		if !priority.Valid() {
			return nil, errors.Wrapf(domain.ErrInvalidInput, "prioridade %q", *req.Priority)
		}
		ticket.Priority = priority
		ticket.SLADeadline = domain.SLADeadline(ticket.CreatedAt, priority)
	}

	if req.Status != nil && domain.TicketStatus(*req.Status) != ticket.Status {
		next := domain.TicketStatus(*req.Status)
		if !ticket.Status.CanTransitionTo(next) {
			return nil, errors.Wrapf(domain.ErrInvalidStatusTransition, "%s para %s", ticket.Status, next)
		}
		ticket.Status = next

		switch {
		case next.IsFinished():
			if ticket.ResolvedAt == nil {
				ticket.ResolvedAt = &now
			}
		default:
			ticket.ResolvedAt = nil
		}
	}

	ticket.UpdatedAt = now

	err = s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.ticketRepo.WithTx(tx).Update(ctx, ticket); err != nil {
			return errors.Wrap(err, "atualizando chamado")
		}
		return s.syncTask(ctx, s.taskRepo.WithTx(tx), ticket, previousStatus, now)
	})
	if err != nil {
		return nil, err
	}

	ticket.Overdue = ticket.IsOverdue(now)
	return ticket, nil
}

// syncTask replica na tarefa vinculada o prazo, o responsável e a conclusão do chamado
func (s *Service) syncTask(ctx context.Context, tasks repository.TaskRepository, ticket *domain.Ticket, previous domain.TicketStatus, now time.Time) error {
	if ticket.TaskID == nil {
		return nil
	}

	task, err := tasks.GetByID(ctx, ticket.TenantID, *ticket.TaskID)
	if errors.Is(err, domain.ErrNotFound) {
		log.ForContext(ctx).Warnf("Tarefa %s do chamado %s não existe mais", *ticket.TaskID, ticket.Code)
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "buscando tarefa do chamado")
	}

	deadline := ticket.SLADeadline
	task.DueDate = &deadline
	task.AssigneeID = ticket.AssigneeID
	task.Priority = string(ticket.Priority)

	switch {
	case ticket.Status.IsFinished():
		task.SetStatus(domain.TaskStatusDone, now)
	case previous.IsFinished():
		task.SetStatus(domain.TaskStatusPending, now)
	}

	task.UpdatedAt = now
	if err := tasks.Update(ctx, task); err != nil {
		return errors.Wrap(err, "atualizando tarefa do chamado")
	}
	return nil
}

func (s *Service) Get(ctx context.Context, tenantID, id string) (*domain.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	ticket.Overdue = ticket.IsOverdue(s.now())
	return ticket, nil
}

func (s *Service) List(ctx context.Context, tenantID string, filter domain.TicketFilter) ([]*domain.Ticket, error) {
	if filter.Now.IsZero() {
		filter.Now = s.now()
	}

	tickets, err := s.ticketRepo.List(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	for _, ticket := range tickets {
		ticket.Overdue = ticket.IsOverdue(filter.Now)
	}
	return tickets, nil
}

// Delete remove o chamado e a tarefa vinculada
func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	return s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		tickets := s.ticketRepo.WithTx(tx)

		ticket, err := tickets.GetByID(ctx, tenantID, id)
		if err != nil {
			return err
		}

		if err := tickets.Delete(ctx, tenantID, id); err != nil {
			return errors.Wrap(err, "removendo chamado")
		}

		if ticket.TaskID == nil {
			return nil
		}

		err = s.taskRepo.WithTx(tx).Delete(ctx, tenantID, *ticket.TaskID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return errors.Wrap(err, "removendo tarefa do chamado")
		}
		return nil
	})
}
