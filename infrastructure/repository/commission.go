package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/boraedu/bora-hub-api/internal/domain"
)

var commissionInsertColumns = []string{
	"id", "tenant_id", "installment_id", "seller_id", "percent", "value", "status", "released_at",
}

func commissionValues(commission *domain.Commission) []any {
	return []any{
		commission.ID, commission.TenantID, commission.InstallmentID, commission.SellerID,
		commission.Percent, commission.Value, commission.Status, commission.ReleasedAt,
	}
}

func (r *saleRepository) CreateCommission(ctx context.Context, commission *domain.Commission) error {
	query, args, err := psql.
		Insert(commissionsTable).
		Columns(commissionInsertColumns...).
		Values(commissionValues(commission)...).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return err
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&commission.CreatedAt, &commission.UpdatedAt)
	return translateError(err)
}

// UpsertCommission mantém uma única comissão por parcela
func (r *saleRepository) UpsertCommission(ctx context.Context, commission *domain.Commission) error {
	query, args, err := psql.
		Insert(commissionsTable).
		Columns(commissionInsertColumns...).
		Values(commissionValues(commission)...).
		Suffix(`ON CONFLICT (installment_id) DO UPDATE SET
			seller_id = EXCLUDED.seller_id,
			percent = EXCLUDED.percent,
			value = EXCLUDED.value,
			status = EXCLUDED.status,
			released_at = EXCLUDED.released_at,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return err
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&commission.ID, &commission.CreatedAt, &commission.UpdatedAt)
	return translateError(err)
}

func (r *saleRepository) UpdateCommission(ctx context.Context, commission *domain.Commission) error {
	query, args, err := psql.
		Update(commissionsTable).
		Set("status", commission.Status).
		Set("released_at", commission.ReleasedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": commission.ID, "tenant_id": commission.TenantID}).
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

// ListCommissions filtra pelo vencimento da parcela de origem
func (r *saleRepository) ListCommissions(ctx context.Context, tenantID string, filter domain.CommissionFilter) ([]*domain.Commission, error) {
	builder := psql.
		Select("c.id", "c.tenant_id", "c.installment_id", "c.seller_id", "c.percent", "c.value", "c.status",
			"c.released_at", "c.created_at", "c.updated_at").
		From(commissionsTable + " c").
		Join(installmentsTable + " i ON i.id = c.installment_id").
		Where(squirrel.Eq{"c.tenant_id": tenantID}).
		OrderBy("i.due_date ASC")

	if filter.SellerID != nil {
		builder = builder.Where(squirrel.Eq{"c.seller_id": *filter.SellerID})
	}

	if filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"c.status": filter.Status})
	}

	builder = applyPeriod(builder, "i.due_date", filter.Period)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	commissions := make([]*domain.Commission, 0)
	for rows.Next() {
		var commission domain.Commission
		if err := rows.Scan(
			&commission.ID,
			&commission.TenantID,
			&commission.InstallmentID,
			&commission.SellerID,
			&commission.Percent,
			&commission.Value,
			&commission.Status,
			&commission.ReleasedAt,
			&commission.CreatedAt,
			&commission.UpdatedAt,
		); err != nil {
			return nil, err
		}
		commissions = append(commissions, &commission)
	}

	return commissions, rows.Err()
}

func (r *saleRepository) DeleteCommissions(ctx context.Context, tenantID, saleID string) error {
	query, args, err := psql.
		Delete(commissionsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where("installment_id IN (SELECT id FROM installments WHERE sale_id = ?)", saleID).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return translateError(err)
}
