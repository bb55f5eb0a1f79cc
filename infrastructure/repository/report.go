package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/boraedu/bora-hub-api/infrastructure/database/postgres"
	"github.com/boraedu/bora-hub-api/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

const reportsTable = "reports"

var reportColumns = []string{
	"id", "tenant_id", "title", "scopes", "start_date", "end_date", "status", "data", "COALESCE(content, '')",
	"COALESCE(generator, '')", "storage_key", "created_by", "created_at", "updated_at",
}

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.Report, error)
	List(ctx context.Context, tenantID string) ([]*domain.Report, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type reportRepository struct {
	db postgres.Queryer
}

func NewReportRepository(db postgres.Queryer) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	var data sql.NullString
	if report.Data != nil {
		encoded, err := jsoniter.MarshalToString(report.Data)
		if err != nil {
			return err
		}
		data = sql.NullString{String: encoded, Valid: true}
	}

	scopes := make([]string, len(report.Scopes))
	for i, scope := range report.Scopes {
		scopes[i] = string(scope)
	}

	return execute(ctx, r.db, psql.
		Insert(reportsTable).
		Columns("id", "tenant_id", "title", "scopes", "start_date", "end_date", "status", "data", "content",
			"generator", "storage_key", "created_by", "created_at", "updated_at").
		Values(report.ID, report.TenantID, report.Title, pq.Array(scopes), report.StartDate, report.EndDate,
			report.Status, data, report.Content, report.Generator, report.StorageKey, report.CreatedBy,
			report.CreatedAt, report.UpdatedAt), false)
}

func (r *reportRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Report, error) {
	return selectOne(ctx, r.db, psql.
		Select(reportColumns...).
		From(reportsTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), scanReport)
}

// List não carrega o JSON consolidado dos relatórios
func (r *reportRepository) List(ctx context.Context, tenantID string) ([]*domain.Report, error) {
	reports, err := selectAll(ctx, r.db, psql.
		Select(reportColumns...).
		From(reportsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("created_at DESC"), scanReport)
	if err != nil {
		return nil, err
	}

	for _, report := range reports {
		report.Data = nil
	}
	return reports, nil
}

func (r *reportRepository) Delete(ctx context.Context, tenantID, id string) error {
	return execute(ctx, r.db, psql.
		Delete(reportsTable).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}), true)
}

func scanReport(row rowScanner) (*domain.Report, error) {
	var (
		report domain.Report
		scopes pq.StringArray
		data   []byte
	)

	err := row.Scan(
		&report.ID,
		&report.TenantID,
		&report.Title,
		&scopes,
		&report.StartDate,
		&report.EndDate,
		&report.Status,
		&data,
		&report.Content,
		&report.Generator,
		&report.StorageKey,
		&report.CreatedBy,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	report.Scopes = make([]domain.ReportScope, len(scopes))
	for i, scope := range scopes {
		report.Scopes[i] = domain.ReportScope(scope)
	}

	if len(data) > 0 {
		var reportData domain.ReportData
		if err := jsoniter.Unmarshal(data, &reportData); err != nil {
			return nil, err
		}
		report.Data = &reportData
	}

	return &report, nil
}
