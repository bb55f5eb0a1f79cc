package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/boraedu/bora-hub-api/infrastructure/database/postgres"
	"github.com/boraedu/bora-hub-api/internal/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

const (
	cyclesTable     = "okr_cycles"
	objectivesTable = "okr_objectives"
	keyResultsTable = "okr_key_results"
)

var (
	cycleColumns     = []string{"id", "tenant_id", "name", "start_date", "end_date", "status", "created_at", "updated_at"}
	objectiveColumns = []string{"id", "tenant_id", "cycle_id", "title", "COALESCE(description, '')", "owner_id", "created_at", "updated_at"}
	keyResultColumns = []string{
		"kr.id", "kr.tenant_id", "kr.objective_id", "kr.title", "COALESCE(kr.unit, '')", "kr.start_value",
		"kr.current_value", "kr.target_value", "kr.created_at", "kr.updated_at",
	}
)

type OKRRepository interface {
	CreateCycle(ctx context.Context, cycle *domain.OKRCycle) error
	UpdateCycle(ctx context.Context, cycle *domain.OKRCycle) error
	GetCycle(ctx context.Context, tenantID, id string) (*domain.OKRCycle, error)
	ListCycles(ctx context.Context, tenantID string, period domain.Period) ([]*domain.OKRCycle, error)
	DeleteCycle(ctx context.Context, tenantID, id string) error

	CreateObjective(ctx context.Context, objective *domain.Objective) error
	UpdateObjective(ctx context.Context, objective *domain.Objective) error
	GetObjective(ctx context.Context, tenantID, id string) (*domain.Objective, error)
	ListObjectives(ctx context.Context, tenantID, cycleID string) ([]*domain.Objective, error)
	DeleteObjective(ctx context.Context, tenantID, id string) error
	DeleteObjectivesByCycle(ctx context.Context, tenantID, cycleID string) error

	CreateKeyResult(ctx context.Context, kr *domain.KeyResult) error
	UpdateKeyResult(ctx context.Context, kr *domain.KeyResult) error
	GetKeyResult(ctx context.Context, tenantID, id string) (*domain.KeyResult, error)
	ListKeyResultsByCycle(ctx context.Context, tenantID, cycleID string) ([]*domain.KeyResult, error)
	DeleteKeyResult(ctx context.Context, tenantID, id string) error
	DeleteKeyResultsByObjective(ctx context.Context, tenantID, objectiveID string) error
	DeleteKeyResultsByCycle(ctx context.Context, tenantID, cycleID string) error

	WithTx(tx *sql.Tx) OKRRepository
}

type okrRepository struct {
	db postgres.Queryer
}

func NewOKRRepository(db postgres.Queryer) OKRRepository {
	return &okrRepository{db: db}
}

func (r *okrRepository) WithTx(tx *sql.Tx) OKRRepository {
	return &okrRepository{db: tx}
}

func (r *okrRepository) CreateCycle(ctx context.Context, cycle *domain.OKRCycle) error {
	return execute(ctx, r.db, psql.
		Insert(cyclesTable).
		Columns(cycleColumns...).
		Values(cycle.ID, cycle.TenantID, cycle.Name, cycle.StartDate, cycle.EndDate, cycle.Status,
			cycle.CreatedAt, cycle.UpdatedAt), false)
}

func (r *okrRepository) UpdateCycle(ctx context.Context, cycle *domain.OKRCycle) error {
	return execute(ctx, r.db, psql.
		Update(cyclesTable).
		Set("name", cycle.Name).
		Set("start_date", cycle.StartDate).
		Set("end_date", cycle.EndDate).
		Set("status", cycle.Status).
		Set("updated_at", cycle.UpdatedAt).
		Where(squirrel.Eq{"id": cycle.ID, "tenant_id": cycle.TenantID}), true)
}

func (r *okrRepository) GetCycle(ctx context.Context, tenantID, id string) (*domain.OKRCycle, error) {
	query, args, err := psql.
		Select(cycleColumns...).
		From(cyclesTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	cycle, err := scanCycle(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}
	return cycle, nil
}

// ListCycles devolve os ciclos que se sobrepõem ao período; período vazio lista todos
func (r *okrRepository) ListCycles(ctx context.Context, tenantID string, period domain.Period) ([]*domain.OKRCycle, error) {
	builder := psql.
		Select(cycleColumns...).
		From(cyclesTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("start_date DESC")

	if !period.End.IsZero() {
		builder = builder.Where(squirrel.LtOrEq{"start_date": period.End})
	}
	if !period.Start.IsZero() {
		builder = builder.Where(squirrel.GtOrEq{"end_date": period.Start})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cycles := make([]*domain.OKRCycle, 0)
	for rows.Next() {
		cycle, err := scanCycle(rows)
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, cycle)
	}

	return cycles, rows.Err()
}

func (r *okrRepository) DeleteCycle(ctx context.Context, tenantID, id string) error {
	return execute(ctx, r.db, psql.
		Delete(cyclesTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), true)
}

func (r *okrRepository) CreateObjective(ctx context.Context, objective *domain.Objective) error {
	return execute(ctx, r.db, psql.
		Insert(objectivesTable).
		Columns("id", "tenant_id", "cycle_id", "title", "description", "owner_id", "created_at", "updated_at").
		Values(objective.ID, objective.TenantID, objective.CycleID, objective.Title, nullString(objective.Description),
			objective.OwnerID, objective.CreatedAt, objective.UpdatedAt), false)
}

func (r *okrRepository) UpdateObjective(ctx context.Context, objective *domain.Objective) error {
	return execute(ctx, r.db, psql.
		Update(objectivesTable).
		Set("title", objective.Title).
		Set("description", nullString(objective.Description)).
		Set("owner_id", objective.OwnerID).
		Set("updated_at", objective.UpdatedAt).
		Where(squirrel.Eq{"id": objective.ID, "tenant_id": objective.TenantID}), true)
}

func (r *okrRepository) GetObjective(ctx context.Context, tenantID, id string) (*domain.Objective, error) {
	query, args, err := psql.
		Select(objectiveColumns...).
		From(objectivesTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	objective, err := scanObjective(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}
	return objective, nil
}

func (r *okrRepository) ListObjectives(ctx context.Context, tenantID, cycleID string) ([]*domain.Objective, error) {
	query, args, err := psql.
		Select(objectiveColumns...).
		From(objectivesTable).
		Where(squirrel.Eq{"tenant_id": tenantID, "cycle_id": cycleID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	objectives := make([]*domain.Objective, 0)
	for rows.Next() {
		objective, err := scanObjective(rows)
		if err != nil {
			return nil, err
		}
		objectives = append(objectives, objective)
	}

	return objectives, rows.Err()
}

func (r *okrRepository) DeleteObjective(ctx context.Context, tenantID, id string) error {
	return execute(ctx, r.db, psql.
		Delete(objectivesTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), true)
}

func (r *okrRepository) DeleteObjectivesByCycle(ctx context.Context, tenantID, cycleID string) error {
	return execute(ctx, r.db, psql.
		Delete(objectivesTable).
		Where(squirrel.Eq{"cycle_id": cycleID, "tenant_id": tenantID}), false)
}

func (r *okrRepository) CreateKeyResult(ctx context.Context, kr *domain.KeyResult) error {
	return execute(ctx, r.db, psql.
		Insert(keyResultsTable).
		Columns("id", "tenant_id", "objective_id", "title", "unit", "start_value", "current_value", "target_value",
			"created_at", "updated_at").
		Values(kr.ID, kr.TenantID, kr.ObjectiveID, kr.Title, nullString(kr.Unit), kr.StartValue, kr.CurrentValue,
			kr.TargetValue, kr.CreatedAt, kr.UpdatedAt), false)
}

func (r *okrRepository) UpdateKeyResult(ctx context.Context, kr *domain.KeyResult) error {
	return execute(ctx, r.db, psql.
		Update(keyResultsTable).
		Set("title", kr.Title).
		Set("unit", nullString(kr.Unit)).
		Set("start_value", kr.StartValue).
		Set("current_value", kr.CurrentValue).
		Set("target_value", kr.TargetValue).
		Set("updated_at", kr.UpdatedAt).
		Where(squirrel.Eq{"id": kr.ID, "tenant_id": kr.TenantID}), true)
}

func (r *okrRepository) GetKeyResult(ctx context.Context, tenantID, id string) (*domain.KeyResult, error) {
	query, args, err := psql.
		Select(keyResultColumns...).
		From(keyResultsTable + " kr").
		Where(squirrel.Eq{"kr.id": id, "kr.tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	kr, err := scanKeyResult(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}
	return kr, nil
}

// ListKeyResultsByCycle carrega de uma vez os key results de todos os objetivos do ciclo
func (r *okrRepository) ListKeyResultsByCycle(ctx context.Context, tenantID, cycleID string) ([]*domain.KeyResult, error) {
	query, args, err := psql.
		Select(keyResultColumns...).
		From(keyResultsTable + " kr").
		Join(objectivesTable + " o ON o.id = kr.objective_id").
		Where(squirrel.Eq{"kr.tenant_id": tenantID, "o.cycle_id": cycleID}).
		OrderBy("kr.created_at ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]*domain.KeyResult, 0)
	for rows.Next() {
		kr, err := scanKeyResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, kr)
	}

	return results, rows.Err()
}

func (r *okrRepository) DeleteKeyResult(ctx context.Context, tenantID, id string) error {
	return execute(ctx, r.db, psql.
		Delete(keyResultsTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), true)
}

func (r *okrRepository) DeleteKeyResultsByObjective(ctx context.Context, tenantID, objectiveID string) error {
	return execute(ctx, r.db, psql.
		Delete(keyResultsTable).
		Where(squirrel.Eq{"objective_id": objectiveID, "tenant_id": tenantID}), false)
}

func (r *okrRepository) DeleteKeyResultsByCycle(ctx context.Context, tenantID, cycleID string) error {
	return execute(ctx, r.db, psql.
		Delete(keyResultsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where("objective_id IN (SELECT id FROM okr_objectives WHERE cycle_id = ?)", cycleID), false)
}

func scanCycle(row rowScanner) (*domain.OKRCycle, error) {
	var cycle domain.OKRCycle
	err := row.Scan(
		&cycle.ID,
		&cycle.TenantID,
		&cycle.Name,
		&cycle.StartDate,
		&cycle.EndDate,
		&cycle.Status,
		&cycle.CreatedAt,
		&cycle.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cycle, nil
}

func scanObjective(row rowScanner) (*domain.Objective, error) {
	var objective domain.Objective
	err := row.Scan(
		&objective.ID,
		&objective.TenantID,
		&objective.CycleID,
		&objective.Title,
		&objective.Description,
		&objective.OwnerID,
		&objective.CreatedAt,
		&objective.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &objective, nil
}

func scanKeyResult(row rowScanner) (*domain.KeyResult, error) {
	var kr domain.KeyResult
	err := row.Scan(
		&kr.ID,
		&kr.TenantID,
		&kr.ObjectiveID,
		&kr.Title,
		&kr.Unit,
		&kr.StartValue,
		&kr.CurrentValue,
		&kr.TargetValue,
		&kr.CreatedAt,
		&kr.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &kr, nil
}
