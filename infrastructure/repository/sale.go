package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/boraedu/bora-hub-api/infrastructure/database/postgres"
	"github.com/boraedu/bora-hub-api/internal/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

const (
	salesTable        = "sales"
	installmentsTable = "installments"
	commissionsTable  = "commissions"
)

var saleColumns = []string{
	"id", "tenant_id", "source", "external_id", "customer_name", "COALESCE(customer_email, '')", "product",
	"total_value", "installments_count", "seller_id", "commission_percent", "status", "sold_at",
	"created_at", "updated_at",
}

// SaleRepository persiste vendas, parcelas e comissões
type SaleRepository interface {
	CreateSale(ctx context.Context, sale *domain.Sale) error
	UpsertSale(ctx context.Context, sale *domain.Sale) error
	UpdateSaleStatus(ctx context.Context, tenantID, saleID string, status domain.SaleStatus) error
	RefreshSaleTotals(ctx context.Context, tenantID, saleID string) error
	GetSale(ctx context.Context, tenantID, id string) (*domain.Sale, error)
	ListSales(ctx context.Context, tenantID string, filter domain.SaleFilter) ([]*domain.Sale, error)
	DeleteSale(ctx context.Context, tenantID, id string) error

	CreateInstallment(ctx context.Context, installment *domain.Installment) error
	UpsertInstallment(ctx context.Context, installment *domain.Installment) error
	UpdateInstallment(ctx context.Context, installment *domain.Installment) error
	GetInstallment(ctx context.Context, tenantID, id string) (*domain.Installment, error)
	GetInstallmentForUpdate(ctx context.Context, tenantID, id string) (*domain.Installment, error)
	ListInstallments(ctx context.Context, tenantID, saleID string) ([]*domain.Installment, error)
	ListPendingDueBefore(ctx context.Context, date time.Time) ([]*domain.Installment, error)
	DeleteInstallments(ctx context.Context, tenantID, saleID string) error

	CreateCommission(ctx context.Context, commission *domain.Commission) error
	UpsertCommission(ctx context.Context, commission *domain.Commission) error
	UpdateCommission(ctx context.Context, commission *domain.Commission) error
	ListCommissions(ctx context.Context, tenantID string, filter domain.CommissionFilter) ([]*domain.Commission, error)
	DeleteCommissions(ctx context.Context, tenantID, saleID string) error

	WithTx(tx *sql.Tx) SaleRepository
}

type saleRepository struct {
	db postgres.Queryer
}

func NewSaleRepository(db postgres.Queryer) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) WithTx(tx *sql.Tx) SaleRepository {
	return &saleRepository{db: tx}
}

func saleValues(sale *domain.Sale) []any {
	return []any{
		sale.ID, sale.TenantID, sale.Source, sale.ExternalID, sale.CustomerName, nullString(sale.CustomerEmail),
		sale.Product, sale.TotalValue, sale.InstallmentsCount, sale.SellerID, sale.CommissionPercent,
		sale.Status, sale.SoldAt,
	}
}

var saleInsertColumns = []string{
	"id", "tenant_id", "source", "external_id", "customer_name", "customer_email", "product",
	"total_value", "installments_count", "seller_id", "commission_percent", "status", "sold_at",
}

func (r *saleRepository) CreateSale(ctx context.Context, sale *domain.Sale) error {
	query, args, err := psql.
		Insert(salesTable).
		Columns(saleInsertColumns...).
		Values(saleValues(sale)...).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return err
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&sale.CreatedAt, &sale.UpdatedAt)
	return translateError(err)
}

// UpsertSale insere ou atualiza a venda pela chave (tenant, origem, id externo); sale.ID recebe o id persistido
func (r *saleRepository) UpsertSale(ctx context.Context, sale *domain.Sale) error {
	query, args, err := psql.
		Insert(salesTable).
		Columns(saleInsertColumns...).
		Values(saleValues(sale)...).
		Suffix(`ON CONFLICT (tenant_id, source, external_id) DO UPDATE SET
			customer_name = EXCLUDED.customer_name,
			customer_email = EXCLUDED.customer_email,
			product = EXCLUDED.product,
			installments_count = GREATEST(sales.installments_count, EXCLUDED.installments_count),
			updated_at = NOW()
		RETURNING id, seller_id, commission_percent, created_at, updated_at`).
		ToSql()
	if err != nil {
		return err
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&sale.ID,
		&sale.SellerID,
		&sale.CommissionPercent,
		&sale.CreatedAt,
		&sale.UpdatedAt,
	)
	return translateError(err)
}

// RefreshSaleTotals recalcula o valor total a partir das parcelas gravadas; a quantidade só cresce
func (r *saleRepository) RefreshSaleTotals(ctx context.Context, tenantID, saleID string) error {
	query, args, err := psql.
		Update(salesTable).
		Set("total_value", squirrel.Expr(
			"(SELECT COALESCE(SUM(value), 0) FROM "+installmentsTable+" WHERE sale_id = ?)", saleID)).
		Set("installments_count", squirrel.Expr(
			"GREATEST(installments_count, (SELECT COALESCE(MAX(number), 0) FROM "+installmentsTable+" WHERE sale_id = ?))", saleID)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": saleID, "tenant_id": tenantID}).
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

func (r *saleRepository) UpdateSaleStatus(ctx context.Context, tenantID, saleID string, status domain.SaleStatus) error {
	query, args, err := psql.
		Update(salesTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": saleID, "tenant_id": tenantID}).
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

func (r *saleRepository) GetSale(ctx context.Context, tenantID, id string) (*domain.Sale, error) {
	query, args, err := psql.
		Select(saleColumns...).
		From(salesTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	sale, err := scanSale(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}

	return sale, nil
}

func (r *saleRepository) ListSales(ctx context.Context, tenantID string, filter domain.SaleFilter) ([]*domain.Sale, error) {
	builder := psql.
		Select(saleColumns...).
		From(salesTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("sold_at DESC")

	if filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"status": filter.Status})
	}

	if filter.Source != "" {
		builder = builder.Where(squirrel.Eq{"source": filter.Source})
	}

	if filter.SellerID != nil {
		builder = builder.Where(squirrel.Eq{"seller_id": *filter.SellerID})
	}

	builder = applyPeriod(builder, "sold_at", filter.Period)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}

	return sales, rows.Err()
}

func (r *saleRepository) DeleteSale(ctx context.Context, tenantID, id string) error {
	query, args, err := psql.
		Delete(salesTable).
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

func scanSale(row rowScanner) (*domain.Sale, error) {
	var sale domain.Sale
	err := row.Scan(
		&sale.ID,
		&sale.TenantID,
		&sale.Source,
		&sale.ExternalID,
		&sale.CustomerName,
		&sale.CustomerEmail,
		&sale.Product,
		&sale.TotalValue,
		&sale.InstallmentsCount,
		&sale.SellerID,
		&sale.CommissionPercent,
		&sale.Status,
		&sale.SoldAt,
		&sale.CreatedAt,
		&sale.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &sale, nil
}
