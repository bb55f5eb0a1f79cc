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
	pdisTable    = "pdis"
	aulasTable   = "pdi_aulas"
	acessosTable = "pdi_acessos"
)

var (
	pdiColumns = []string{
		"id", "tenant_id", "collaborator_id", "title", "COALESCE(objective, '')", "start_date", "end_date",
		"status", "created_at", "updated_at",
	}
	aulaColumns = []string{
		"id", "tenant_id", "pdi_id", "title", "COALESCE(url, '')", "completed", "completed_at", "created_at",
		"updated_at",
	}
	acessoColumns = []string{
		"id", "tenant_id", "pdi_id", "platform", "COALESCE(url, '')", "login", "password_encrypted",
		"created_at", "updated_at",
	}
)

type PDIRepository interface {
	Create(ctx context.Context, pdi *domain.PDI) error
	Update(ctx context.Context, pdi *domain.PDI) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.PDI, error)
	List(ctx context.Context, tenantID string, collaboratorID *int, status string) ([]*domain.PDI, error)
	Delete(ctx context.Context, tenantID, id string) error

	CreateAula(ctx context.Context, aula *domain.PDIAula) error
	UpdateAula(ctx context.Context, aula *domain.PDIAula) error
	GetAula(ctx context.Context, tenantID, id string) (*domain.PDIAula, error)
	ListAulas(ctx context.Context, tenantID, pdiID string) ([]*domain.PDIAula, error)
	DeleteAula(ctx context.Context, tenantID, id string) error

	CreateAcesso(ctx context.Context, acesso *domain.PDIAcesso) error
	GetAcesso(ctx context.Context, tenantID, id string) (*domain.PDIAcesso, error)
	ListAcessos(ctx context.Context, tenantID, pdiID string) ([]*domain.PDIAcesso, error)
	DeleteAcesso(ctx context.Context, tenantID, id string) error

	WithTx(tx *sql.Tx) PDIRepository
}

type pdiRepository struct {
	db postgres.Queryer
}

func NewPDIRepository(db postgres.Queryer) PDIRepository {
	return &pdiRepository{db: db}
}

func (r *pdiRepository) WithTx(tx *sql.Tx) PDIRepository {
	return &pdiRepository{db: tx}
}

func (r *pdiRepository) Create(ctx context.Context, pdi *domain.PDI) error {
	return execute(ctx, r.db, psql.
		Insert(pdisTable).
		Columns("id", "tenant_id", "collaborator_id", "title", "objective", "start_date", "end_date", "status",
			"created_at", "updated_at").
		Values(pdi.ID, pdi.TenantID, pdi.CollaboratorID, pdi.Title, nullString(pdi.Objective), pdi.StartDate,
			pdi.EndDate, pdi.Status, pdi.CreatedAt, pdi.UpdatedAt), false)
}

func (r *pdiRepository) Update(ctx context.Context, pdi *domain.PDI) error {
	return execute(ctx, r.db, psql.
		Update(pdisTable).
		Set("title", pdi.Title).
		Set("objective", nullString(pdi.Objective)).
		Set("start_date", pdi.StartDate).
		Set("end_date", pdi.EndDate).
		Set("status", pdi.Status).
		Set("updated_at", pdi.UpdatedAt).
		Where(squirrel.Eq{"id": pdi.ID, "tenant_id": pdi.TenantID}), true)
}

func (r *pdiRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.PDI, error) {
	return selectOne(ctx, r.db, psql.
		Select(pdiColumns...).
		From(pdisTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), scanPDI)
}

func (r *pdiRepository) List(ctx context.Context, tenantID string, collaboratorID *int, status string) ([]*domain.PDI, error) {
	builder := psql.
		Select(pdiColumns...).
		From(pdisTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("start_date DESC")

	if collaboratorID != nil {
		builder = builder.Where(squirrel.Eq{"collaborator_id": *collaboratorID})
	}

	if status != "" {
		builder = builder.Where(squirrel.Eq{"status": status})
	}

	return selectAll(ctx, r.db, builder, scanPDI)
}

// Delete remove o PDI; aulas e acessos caem junto pela chave estrangeira
func (r *pdiRepository) Delete(ctx context.Context, tenantID, id string) error {
	return execute(ctx, r.db, psql.
		Delete(pdisTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), true)
}

func (r *pdiRepository) CreateAula(ctx context.Context, aula *domain.PDIAula) error {
	return execute(ctx, r.db, psql.
		Insert(aulasTable).
		Columns("id", "tenant_id", "pdi_id", "title", "url", "completed", "completed_at", "created_at", "updated_at").
		Values(aula.ID, aula.TenantID, aula.PDIID, aula.Title, nullString(aula.URL), aula.Completed,
			aula.CompletedAt, aula.CreatedAt, aula.UpdatedAt), false)
}

func (r *pdiRepository) UpdateAula(ctx context.Context, aula *domain.PDIAula) error {
	return execute(ctx, r.db, psql.
		Update(aulasTable).
		Set("title", aula.Title).
		Set("url", nullString(aula.URL)).
		Set("completed", aula.Completed).
		Set("completed_at", aula.CompletedAt).
		Set("updated_at", aula.UpdatedAt).
		Where(squirrel.Eq{"id": aula.ID, "tenant_id": aula.TenantID}), true)
}

func (r *pdiRepository) GetAula(ctx context.Context, tenantID, id string) (*domain.PDIAula, error) {
	return selectOne(ctx, r.db, psql.
		Select(aulaColumns...).
		From(aulasTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), scanAula)
}

func (r *pdiRepository) ListAulas(ctx context.Context, tenantID, pdiID string) ([]*domain.PDIAula, error) {
	return selectAll(ctx, r.db, psql.
		Select(aulaColumns...).
		From(aulasTable).
		Where(squirrel.Eq{"pdi_id": pdiID, "tenant_id": tenantID}).
		OrderBy("created_at ASC"), scanAula)
}

func (r *pdiRepository) DeleteAula(ctx context.Context, tenantID, id string) error {
	return execute(ctx, r.db, psql.
		Delete(aulasTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), true)
}

func (r *pdiRepository) CreateAcesso(ctx context.Context, acesso *domain.PDIAcesso) error {
	return execute(ctx, r.db, psql.
		Insert(acessosTable).
		Columns("id", "tenant_id", "pdi_id", "platform", "url", "login", "password_encrypted", "created_at",
			"updated_at").
		Values(acesso.ID, acesso.TenantID, acesso.PDIID, acesso.Platform, nullString(acesso.URL), acesso.Login,
			acesso.PasswordEncrypted, acesso.CreatedAt, acesso.UpdatedAt), false)
}

func (r *pdiRepository) GetAcesso(ctx context.Context, tenantID, id string) (*domain.PDIAcesso, error) {
	return selectOne(ctx, r.db, psql.
		Select(acessoColumns...).
		From(acessosTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), scanAcesso)
}

func (r *pdiRepository) ListAcessos(ctx context.Context, tenantID, pdiID string) ([]*domain.PDIAcesso, error) {
	return selectAll(ctx, r.db, psql.
		Select(acessoColumns...).
		From(acessosTable).
		Where(squirrel.Eq{"pdi_id": pdiID, "tenant_id": tenantID}).
		OrderBy("platform ASC"), scanAcesso)
}

func (r *pdiRepository) DeleteAcesso(ctx context.Context, tenantID, id string) error {
	return execute(ctx, r.db, psql.
		Delete(acessosTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), true)
}

func scanPDI(row rowScanner) (*domain.PDI, error) {
	var pdi domain.PDI
	err := row.Scan(
		&pdi.ID,
		&pdi.TenantID,
		&pdi.CollaboratorID,
		&pdi.Title,
		&pdi.Objective,
		&pdi.StartDate,
		&pdi.EndDate,
		&pdi.Status,
		&pdi.CreatedAt,
		&pdi.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &pdi, nil
}

func scanAula(row rowScanner) (*domain.PDIAula, error) {
	var aula domain.PDIAula
	err := row.Scan(
		&aula.ID,
		&aula.TenantID,
		&aula.PDIID,
		&aula.Title,
		&aula.URL,
		&aula.Completed,
		&aula.CompletedAt,
		&aula.CreatedAt,
		&aula.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &aula, nil
}

func scanAcesso(row rowScanner) (*domain.PDIAcesso, error) {
	var acesso domain.PDIAcesso
	err := row.Scan(
		&acesso.ID,
		&acesso.TenantID,
		&acesso.PDIID,
		&acesso.Platform,
		&acesso.URL,
		&acesso.Login,
		&acesso.PasswordEncrypted,
		&acesso.CreatedAt,
		&acesso.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &acesso, nil
}
