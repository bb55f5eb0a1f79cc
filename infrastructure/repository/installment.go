package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/shopspring/decimal"
)

var installmentColumns = []string{
	"i.id", "i.tenant_id", "i.sale_id", "i.number", "i.value", "i.due_date", "i.status", "i.paid_at",
	"i.external_id", "i.created_at", "i.updated_at",
	"c.id", "c.seller_id", "c.percent", "c.value", "c.status", "c.released_at",
}

func installmentsQuery() squirrel.SelectBuilder {
	return psql.
		Select(installmentColumns...).
		From(installmentsTable + " i").
		LeftJoin(commissionsTable + " c ON c.installment_id = i.id")
}

func (r *saleRepository) CreateInstallment(ctx context.Context, installment *domain.Installment) error {
	query, args, err := psql.
		Insert(installmentsTable).
		Columns("id", "tenant_id", "sale_id", "number", "value", "due_date", "status", "paid_at", "external_id").
		Values(installment.ID, installment.TenantID, installment.SaleID, installment.Number, installment.Value,
			installment.DueDate, installment.Status, installment.PaidAt, installment.ExternalID).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return err
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&installment.CreatedAt, &installment.UpdatedAt)
	return translateError(err)
}

// UpsertInstallment insere ou atualiza a parcela pela chave (venda, número); installment.ID recebe o id persistido
func (r *saleRepository) UpsertInstallment(ctx context.Context, installment *domain.Installment) error {
	query, args, err := psql.
		Insert(installmentsTable).
		Columns("id", "tenant_id", "sale_id", "number", "value", "due_date", "status", "paid_at", "external_id").
		Values(installment.ID, installment.TenantID, installment.SaleID, installment.Number, installment.Value,
			installment.DueDate, installment.Status, installment.PaidAt, installment.ExternalID).
		Suffix(`ON CONFLICT (sale_id, number) DO UPDATE SET
			value = EXCLUDED.value,
			due_date = EXCLUDED.due_date,
			status = EXCLUDED.status,
			paid_at = EXCLUDED.paid_at,
			external_id = EXCLUDED.external_id,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return err
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&installment.ID, &installment.CreatedAt, &installment.UpdatedAt)
	return translateError(err)
}

func (r *saleRepository) UpdateInstallment(ctx context.Context, installment *domain.Installment) error {
	query, args, err := psql.
		Update(installmentsTable).
		Set("status", installment.Status).
		Set("paid_at", installment.PaidAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": installment.ID, "tenant_id": installment.TenantID}).
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

func (r *saleRepository) GetInstallment(ctx context.Context, tenantID, id string) (*domain.Installment, error) {
	query, args, err := installmentsQuery().
		Where(squirrel.Eq{"i.id": id, "i.tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	installment, err := scanInstallment(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}

	return installment, nil
}

// GetInstallmentForUpdate relê a parcela travando a linha até o fim da transação
func (r *saleRepository) GetInstallmentForUpdate(ctx context.Context, tenantID, id string) (*domain.Installment, error) {
	query, args, err := installmentsQuery().
		Where(squirrel.Eq{"i.id": id, "i.tenant_id": tenantID}).
		Suffix("FOR UPDATE OF i").
		ToSql()
	if err != nil {
		return nil, err
	}

	installment, err := scanInstallment(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}

	return installment, nil
}

func (r *saleRepository) ListInstallments(ctx context.Context, tenantID, saleID string) ([]*domain.Installment, error) {
	return r.queryInstallments(ctx, installmentsQuery().
		Where(squirrel.Eq{"i.sale_id": saleID, "i.tenant_id": tenantID}).
		OrderBy("i.number ASC"))
}

// ListPendingDueBefore busca em todos os tenants as parcelas pendentes vencidas antes da data
func (r *saleRepository) ListPendingDueBefore(ctx context.Context, date time.Time) ([]*domain.Installment, error) {
	return r.queryInstallments(ctx, installmentsQuery().
		Where(squirrel.Eq{"i.status": domain.InstallmentStatusPending}).
		Where(squirrel.Lt{"i.due_date": date}).
		OrderBy("i.tenant_id", "i.due_date ASC"))
}

func (r *saleRepository) queryInstallments(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.Installment, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	installments := make([]*domain.Installment, 0)
	for rows.Next() {
		installment, err := scanInstallment(rows)
		if err != nil {
			return nil, err
		}
		installments = append(installments, installment)
	}

	return installments, rows.Err()
}

func (r *saleRepository) DeleteInstallments(ctx context.Context, tenantID, saleID string) error {
	query, args, err := psql.
		Delete(installmentsTable).
		Where(squirrel.Eq{"sale_id": saleID, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return translateError(err)
}

func scanInstallment(row rowScanner) (*domain.Installment, error) {
	var (
		installment       domain.Installment
		commissionID      sql.NullString
		commissionSeller  *int
		commissionPercent decimal.NullDecimal
		commissionValue   decimal.NullDecimal
		commissionStatus  sql.NullString
		releasedAt        *time.Time
	)

	err := row.Scan(
		&installment.ID,
		&installment.TenantID,
		&installment.SaleID,
		&installment.Number,
		&installment.Value,
		&installment.DueDate,
		&installment.Status,
		&installment.PaidAt,
		&installment.ExternalID,
		&installment.CreatedAt,
		&installment.UpdatedAt,
		&commissionID,
		&commissionSeller,
		&commissionPercent,
		&commissionValue,
		&commissionStatus,
		&releasedAt,
	)
	if err != nil {
		return nil, err
	}

	if commissionID.Valid {
		installment.Commission = &domain.Commission{
			ID:            commissionID.String,
			TenantID:      installment.TenantID,
			InstallmentID: installment.ID,
			SellerID:      commissionSeller,
			Percent:       commissionPercent.Decimal,
			Value:         commissionValue.Decimal,
			Status:        domain.CommissionStatus(commissionStatus.String),
			ReleasedAt:    releasedAt,
		}
	}

	return &installment, nil
}
