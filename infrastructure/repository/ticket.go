package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/boraedu/bora-hub-api/infrastructure/database/postgres"
	"github.com/boraedu/bora-hub-api/internal/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

const ticketsTable = "tickets"

var ticketColumns = []string{
	"id", "tenant_id", "code", "title", "COALESCE(description, '')", "COALESCE(category, '')",
	"priority", "status", "sla_deadline", "requester_id", "assignee_id", "task_id", "resolved_at",
	"created_at", "updated_at",
}

type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.Ticket, error)
	List(ctx context.Context, tenantID string, filter domain.TicketFilter) ([]*domain.Ticket, error)
	ListByPeriod(ctx context.Context, tenantID string, period domain.Period) ([]*domain.Ticket, error)
	Delete(ctx context.Context, tenantID, id string) error
	WithTx(tx *sql.Tx) TicketRepository
}

type ticketRepository struct {
	db postgres.Queryer
}

func NewTicketRepository(db postgres.Queryer) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) WithTx(tx *sql.Tx) TicketRepository {
	return &ticketRepository{db: tx}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	query, args, err := psql.
		Insert(ticketsTable).
		Columns("id", "tenant_id", "code", "title", "description", "category", "priority", "status",
			"sla_deadline", "requester_id", "assignee_id", "task_id", "created_at", "updated_at").
		Values(ticket.ID, ticket.TenantID, ticket.Code, ticket.Title, nullString(ticket.Description),
			nullString(ticket.Category), ticket.Priority, ticket.Status, ticket.SLADeadline,
			ticket.RequesterID, ticket.AssigneeID, ticket.TaskID, ticket.CreatedAt, ticket.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return translateError(err)
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	query, args, err := psql.
		Update(ticketsTable).
		Set("title", ticket.Title).
		Set("description", nullString(ticket.Description)).
		Set("category", nullString(ticket.Category)).
		Set("priority", ticket.Priority).
		Set("status", ticket.Status).
		Set("sla_deadline", ticket.SLADeadline).
		Set("assignee_id", ticket.AssigneeID).
		Set("task_id", ticket.TaskID).
		Set("resolved_at", ticket.ResolvedAt).
		Set("updated_at", ticket.UpdatedAt).
		Where(squirrel.Eq{"id": ticket.ID, "tenant_id": ticket.TenantID}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}

	return checkAffected(result)
}

func (r *ticketRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Ticket, error) {
	query, args, err := psql.
		Select(ticketColumns...).
		From(ticketsTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	ticket, err := scanTicket(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}

	return ticket, nil
}

func (r *ticketRepository) List(ctx context.Context, tenantID string, filter domain.TicketFilter) ([]*domain.Ticket, error) {
	builder := psql.
		Select(ticketColumns...).
		From(ticketsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("sla_deadline ASC")

	if filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"status": filter.Status})
	}

	if filter.Priority != "" {
		builder = builder.Where(squirrel.Eq{"priority": filter.Priority})
	}

	if filter.AssigneeID != nil {
		builder = builder.Where(squirrel.Eq{"assignee_id": *filter.AssigneeID})
	}

	if filter.Overdue {
		builder = builder.
			Where(squirrel.NotEq{"status": []domain.TicketStatus{domain.TicketStatusResolved, domain.TicketStatusClosed}}).
			Where(squirrel.Lt{"sla_deadline": filter.Now})
	}

	return r.query(ctx, builder)
}

func (r *ticketRepository) ListByPeriod(ctx context.Context, tenantID string, period domain.Period) ([]*domain.Ticket, error) {
	builder := psql.
		Select(ticketColumns...).
		From(ticketsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("created_at ASC")

	return r.query(ctx, applyPeriod(builder, "created_at", period))
}

func (r *ticketRepository) query(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.Ticket, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]*domain.Ticket, 0)
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	return tickets, rows.Err()
}

func (r *ticketRepository) Delete(ctx context.Context, tenantID, id string) error {
	query, args, err := psql.
		Delete(ticketsTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}

	return checkAffected(result)
}

func scanTicket(row rowScanner) (*domain.Ticket, error) {
	var ticket domain.Ticket
	err := row.Scan(
		&ticket.ID,
		&ticket.TenantID,
		&ticket.Code,
		&ticket.Title,
		&ticket.Description,
		&ticket.Category,
		&ticket.Priority,
		&ticket.Status,
		&ticket.SLADeadline,
		&ticket.RequesterID,
		&ticket.AssigneeID,
		&ticket.TaskID,
		&ticket.ResolvedAt,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &ticket, nil
}
