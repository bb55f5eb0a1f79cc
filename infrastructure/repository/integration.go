package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/boraedu/bora-hub-api/infrastructure/database/postgres"
	"github.com/boraedu/bora-hub-api/internal/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

const integrationsTable = "integrations"

var integrationColumns = []string{
	"id", "tenant_id", "provider", "name", "secret_name", "webhook_token", "default_seller_id",
	"default_commission_percent", "active", "last_sync_at", "created_at", "updated_at",
}

type IntegrationRepository interface {
	Create(ctx context.Context, integration *domain.Integration) error
	Update(ctx context.Context, integration *domain.Integration) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.Integration, error)
	List(ctx context.Context, tenantID string) ([]*domain.Integration, error)
	Delete(ctx context.Context, tenantID, id string) error
	ListActive(ctx context.Context) ([]*domain.Integration, error)
	GetByWebhookToken(ctx context.Context, provider domain.IntegrationProvider, token string) (*domain.Integration, error)
	TouchLastSync(ctx context.Context, id string, at time.Time) error
}

type integrationRepository struct {
	db postgres.Queryer
}

func NewIntegrationRepository(db postgres.Queryer) IntegrationRepository {
	return &integrationRepository{db: db}
}

func (r *integrationRepository) Create(ctx context.Context, integration *domain.Integration) error {
	query, args, err := psql.
		Insert(integrationsTable).
		Columns("id", "tenant_id", "provider", "name", "secret_name", "webhook_token", "default_seller_id",
			"default_commission_percent", "active", "created_at", "updated_at").
		Values(integration.ID, integration.TenantID, integration.Provider, integration.Name, integration.SecretName,
			integration.WebhookToken, integration.DefaultSellerID, integration.DefaultCommissionPercent,
			integration.Active, integration.CreatedAt, integration.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return translateError(err)
}

func (r *integrationRepository) Update(ctx context.Context, integration *domain.Integration) error {
	query, args, err := psql.
		Update(integrationsTable).
		Set("name", integration.Name).
		Set("secret_name", integration.SecretName).
		Set("webhook_token", integration.WebhookToken).
		Set("default_seller_id", integration.DefaultSellerID).
		Set("default_commission_percent", integration.DefaultCommissionPercent).
		Set("active", integration.Active).
		Set("updated_at", integration.UpdatedAt).
		Where(squirrel.Eq{"id": integration.ID, "tenant_id": integration.TenantID}).
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

func (r *integrationRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Integration, error) {
	query, args, err := psql.
		Select(integrationColumns...).
		From(integrationsTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	integration, err := scanIntegration(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}

	return integration, nil
}

// GetByWebhookToken identifica a integração (e o tenant) dona de um webhook recebido
func (r *integrationRepository) GetByWebhookToken(ctx context.Context, provider domain.IntegrationProvider, token string) (*domain.Integration, error) {
	query, args, err := psql.
		Select(integrationColumns...).
		From(integrationsTable).
		Where(squirrel.Eq{"provider": provider, "webhook_token": token, "active": true}).
		ToSql()
	if err != nil {
		return nil, err
	}

	integration, err := scanIntegration(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}

	return integration, nil
}

func (r *integrationRepository) List(ctx context.Context, tenantID string) ([]*domain.Integration, error) {
	return r.query(ctx, psql.
		Select(integrationColumns...).
		From(integrationsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("name ASC"))
}

func (r *integrationRepository) ListActive(ctx context.Context) ([]*domain.Integration, error) {
	return r.query(ctx, psql.
		Select(integrationColumns...).
		From(integrationsTable).
		Where(squirrel.Eq{"active": true}).
		OrderBy("tenant_id", "name ASC"))
}

func (r *integrationRepository) query(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.Integration, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	integrations := make([]*domain.Integration, 0)
	for rows.Next() {
		integration, err := scanIntegration(rows)
		if err != nil {
			return nil, err
		}
		integrations = append(integrations, integration)
	}

	return integrations, rows.Err()
}

func (r *integrationRepository) TouchLastSync(ctx context.Context, id string, at time.Time) error {
	query, args, err := psql.
		Update(integrationsTable).
		Set("last_sync_at", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *integrationRepository) Delete(ctx context.Context, tenantID, id string) error {
	query, args, err := psql.
		Delete(integrationsTable).
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

func scanIntegration(row rowScanner) (*domain.Integration, error) {
	var integration domain.Integration
	err := row.Scan(
		&integration.ID,
		&integration.TenantID,
		&integration.Provider,
		&integration.Name,
		&integration.SecretName,
		&integration.WebhookToken,
		&integration.DefaultSellerID,
		&integration.DefaultCommissionPercent,
		&integration.Active,
		&integration.LastSyncAt,
		&integration.CreatedAt,
		&integration.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &integration, nil
}
