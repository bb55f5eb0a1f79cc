package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/boraedu/bora-hub-api/infrastructure/database/postgres"
	"github.com/boraedu/bora-hub-api/internal/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

const tenantsTable = "tenants"

type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	WithTx(tx *sql.Tx) TenantRepository
}

type tenantRepository struct {
	db postgres.Queryer
}

func NewTenantRepository(db postgres.Queryer) TenantRepository {
	return &tenantRepository{db: db}
}

func (r *tenantRepository) WithTx(tx *sql.Tx) TenantRepository {
	return &tenantRepository{db: tx}
}

func (r *tenantRepository) Create(ctx context.Context, tenant *domain.Tenant) error {
	query, args, err := psql.
		Insert(tenantsTable).
		Columns("id", "name", "slug", "active").
		Values(tenant.ID, tenant.Name, tenant.Slug, tenant.Active).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return err
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&tenant.CreatedAt, &tenant.UpdatedAt)
	return translateError(err)
}

func (r *tenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	return r.getBy(ctx, "id", id)
}

func (r *tenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	return r.getBy(ctx, "slug", slug)
}

func (r *tenantRepository) getBy(ctx context.Context, column string, value string) (*domain.Tenant, error) {
	query, args, err := psql.
		Select("id", "name", "slug", "active", "created_at", "updated_at").
		From(tenantsTable).
		Where(squirrel.Eq{column: value}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var tenant domain.Tenant
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&tenant.ID,
		&tenant.Name,
		&tenant.Slug,
		&tenant.Active,
		&tenant.CreatedAt,
		&tenant.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}

	return &tenant, nil
}
