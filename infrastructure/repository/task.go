package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/boraedu/bora-hub-api/infrastructure/database/postgres"
	"github.com/boraedu/bora-hub-api/internal/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

const tasksTable = "tasks"

var taskColumns = []string{
	"id", "tenant_id", "title", "COALESCE(description, '')", "status", "priority", "due_date",
	"assignee_id", "ticket_id", "completed_at", "created_by", "created_at", "updated_at",
}

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	Update(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.Task, error)
	List(ctx context.Context, tenantID string, filter domain.TaskFilter) ([]*domain.Task, error)
	Delete(ctx context.Context, tenantID, id string) error
	WithTx(tx *sql.Tx) TaskRepository
}

type taskRepository struct {
	db postgres.Queryer
}

func NewTaskRepository(db postgres.Queryer) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) WithTx(tx *sql.Tx) TaskRepository {
	return &taskRepository{db: tx}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	query, args, err := psql.
		Insert(tasksTable).
		Columns("id", "tenant_id", "title", "description", "status", "priority", "due_date",
			"assignee_id", "ticket_id", "completed_at", "created_by", "created_at", "updated_at").
		Values(task.ID, task.TenantID, task.Title, nullString(task.Description), task.Status, task.Priority,
			task.DueDate, task.AssigneeID, task.TicketID, task.CompletedAt, task.CreatedBy, task.CreatedAt, task.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return translateError(err)
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	query, args, err := psql.
		Update(tasksTable).
		Set("title", task.Title).
		Set("description", nullString(task.Description)).
		Set("status", task.Status).
		Set("priority", task.Priority).
		Set("due_date", task.DueDate).
		Set("assignee_id", task.AssigneeID).
		Set("completed_at", task.CompletedAt).
		Set("updated_at", task.UpdatedAt).
		Where(squirrel.Eq{"id": task.ID, "tenant_id": task.TenantID}).
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

func (r *taskRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From(tasksTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	task, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}

	return task, nil
}

func (r *taskRepository) List(ctx context.Context, tenantID string, filter domain.TaskFilter) ([]*domain.Task, error) {
	builder := psql.
		Select(taskColumns...).
		From(tasksTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("due_date ASC NULLS LAST", "created_at ASC")

	if filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"status": filter.Status})
	}

	if filter.AssigneeID != nil {
		builder = builder.Where(squirrel.Eq{"assignee_id": *filter.AssigneeID})
	}

	if filter.TicketID != "" {
		builder = builder.Where(squirrel.Eq{"ticket_id": filter.TicketID})
	}

	builder = applyPeriod(builder, "created_at", filter.Period)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (r *taskRepository) Delete(ctx context.Context, tenantID, id string) error {
	query, args, err := psql.
		Delete(tasksTable).
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

func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.TenantID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.DueDate,
		&task.AssigneeID,
		&task.TicketID,
		&task.CompletedAt,
		&task.CreatedBy,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &task, nil
}
