package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/boraedu/bora-hub-api/infrastructure/database/postgres"
	"github.com/boraedu/bora-hub-api/internal/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

const eventsTable = "events"

var eventColumns = []string{
	"id", "tenant_id", "title", "COALESCE(description, '')", "type", "COALESCE(location, '')", "start_at",
	"end_at", "all_day", "created_by", "created_at", "updated_at",
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	Update(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.Event, error)
	List(ctx context.Context, tenantID string, filter domain.EventFilter) ([]*domain.Event, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type eventRepository struct {
	db postgres.Queryer
}

func NewEventRepository(db postgres.Queryer) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	return execute(ctx, r.db, psql.
		Insert(eventsTable).
		Columns("id", "tenant_id", "title", "description", "type", "location", "start_at", "end_at", "all_day",
			"created_by", "created_at", "updated_at").
		Values(event.ID, event.TenantID, event.Title, nullString(event.Description), event.Type,
			nullString(event.Location), event.StartAt, event.EndAt, event.AllDay, event.CreatedBy,
			event.CreatedAt, event.UpdatedAt), false)
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	return execute(ctx, r.db, psql.
		Update(eventsTable).
		Set("title", event.Title).
		Set("description", nullString(event.Description)).
		Set("type", event.Type).
		Set("location", nullString(event.Location)).
		Set("start_at", event.StartAt).
		Set("end_at", event.EndAt).
		Set("all_day", event.AllDay).
		Set("updated_at", event.UpdatedAt).
		Where(squirrel.Eq{"id": event.ID, "tenant_id": event.TenantID}), true)
}

func (r *eventRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Event, error) {
	return selectOne(ctx, r.db, psql.
		Select(eventColumns...).
		From(eventsTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), scanEvent)
}

// List devolve os eventos que tocam o período, incluindo os que começaram antes dele
func (r *eventRepository) List(ctx context.Context, tenantID string, filter domain.EventFilter) ([]*domain.Event, error) {
	builder := psql.
		Select(eventColumns...).
		From(eventsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("start_at ASC")

	if filter.Type != "" {
		builder = builder.Where(squirrel.Eq{"type": filter.Type})
	}

	if !filter.Period.End.IsZero() {
		builder = builder.Where(squirrel.LtOrEq{"start_at": filter.Period.EndOfDay()})
	}
	if !filter.Period.Start.IsZero() {
		builder = builder.Where(squirrel.GtOrEq{"end_at": filter.Period.Start})
	}

	return selectAll(ctx, r.db, builder, scanEvent)
}

func (r *eventRepository) Delete(ctx context.Context, tenantID, id string) error {
	return execute(ctx, r.db, psql.
		Delete(eventsTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), true)
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var event domain.Event
	err := row.Scan(
		&event.ID,
		&event.TenantID,
		&event.Title,
		&event.Description,
		&event.Type,
		&event.Location,
		&event.StartAt,
		&event.EndAt,
		&event.AllDay,
		&event.CreatedBy,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}
