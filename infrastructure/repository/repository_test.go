package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db, mock
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))
	assert.ErrorIs(t, translateError(sql.ErrNoRows), domain.ErrNotFound)
	assert.ErrorIs(t, translateError(&pq.Error{Code: "23505"}), domain.ErrConflict)

	other := &pq.Error{Code: "23503"}
	assert.Equal(t, other, translateError(other))
}

func TestTicketRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("GetByID sem resultado retorna ErrNotFound", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery("SELECT (.+) FROM tickets WHERE").
			WithArgs("t1", "tenant").
			WillReturnError(sql.ErrNoRows)

		_, err := NewTicketRepository(db).GetByID(ctx, "tenant", "t1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetByID preenche o chamado", func(t *testing.T) {
		db, mock := newMock(t)
		rows := sqlmock.NewRows([]string{
			"id", "tenant_id", "code", "title", "description", "category", "priority", "status", "sla_deadline",
			"requester_id", "assignee_id", "task_id", "resolved_at", "created_at", "updated_at",
		}).AddRow("t1", "tenant", "CH-ABC123", "Erro no login", "", "acesso", "alta", "aberto", now.Add(24*time.Hour),
			int64(7), nil, "task-1", nil, now, now)
		mock.ExpectQuery("SELECT (.+) FROM tickets WHERE").WillReturnRows(rows)

		ticket, err := NewTicketRepository(db).GetByID(ctx, "tenant", "t1")
		require.NoError(t, err)
		assert.Equal(t, domain.TicketPriorityHigh, ticket.Priority)
		assert.Equal(t, 7, *ticket.RequesterID)
		assert.Nil(t, ticket.AssigneeID)
		assert.Equal(t, "task-1", *ticket.TaskID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Update sem linhas afetadas retorna ErrNotFound", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectExec("UPDATE tickets SET").WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewTicketRepository(db).Update(ctx, &domain.Ticket{ID: "t1", TenantID: "tenant"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Create com código duplicado retorna ErrConflict", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectExec("INSERT INTO tickets").WillReturnError(&pq.Error{Code: "23505"})

		err := NewTicketRepository(db).Create(ctx, &domain.Ticket{ID: "t1", TenantID: "tenant"})
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSaleRepository_ListInstallments(t *testing.T) {
	db, mock := newMock(t)
	due := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	paidAt := due.Add(time.Hour)

	rows := sqlmock.NewRows([]string{
		"id", "tenant_id", "sale_id", "number", "value", "due_date", "status", "paid_at", "external_id",
		"created_at", "updated_at", "c_id", "seller_id", "percent", "c_value", "c_status", "released_at",
	}).
		AddRow("i1", "tenant", "s1", int64(1), "500.00", due, "paid", paidAt, "pay_1", due, due,
			"c1", int64(3), "10.00", "50.00", "released", paidAt).
		AddRow("i2", "tenant", "s1", int64(2), "500.00", due.AddDate(0, 1, 0), "pending", nil, nil, due, due,
			nil, nil, nil, nil, nil, nil)

	mock.ExpectQuery("SELECT (.+) FROM installments i LEFT JOIN commissions c").
		WithArgs("s1", "tenant").
		WillReturnRows(rows)

	installments, err := NewSaleRepository(db).ListInstallments(context.Background(), "tenant", "s1")
	require.NoError(t, err)
	require.Len(t, installments, 2)

	first := installments[0]
	require.NotNil(t, first.Commission)
	assert.Equal(t, domain.CommissionStatusReleased, first.Commission.Status)
	assert.True(t, decimal.RequireFromString("50").Equal(first.Commission.Value))
	assert.Equal(t, 3, *first.Commission.SellerID)
	assert.Equal(t, "pay_1", *first.ExternalID)

	second := installments[1]
	assert.Nil(t, second.Commission)
	assert.Nil(t, second.PaidAt)
	assert.Equal(t, domain.InstallmentStatusPending, second.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepository_GetInstallmentForUpdate(t *testing.T) {
	db, mock := newMock(t)
	due := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "tenant_id", "sale_id", "number", "value", "due_date", "status", "paid_at", "external_id",
		"created_at", "updated_at", "c_id", "seller_id", "percent", "c_value", "c_status", "released_at",
	}).
		AddRow("i1", "tenant", "s1", int64(1), "500.00", due, "pending", nil, nil, due, due,
			"c1", int64(3), "10.00", "50.00", "pending", nil)

	// o lock precisa se restringir às parcelas; FOR UPDATE puro falha no lado anulável do LEFT JOIN
	mock.ExpectQuery("SELECT (.+) FROM installments i LEFT JOIN commissions c (.+) FOR UPDATE OF i$").
		WithArgs("i1", "tenant").
		WillReturnRows(rows)

	installment, err := NewSaleRepository(db).GetInstallmentForUpdate(context.Background(), "tenant", "i1")
	require.NoError(t, err)
	assert.Equal(t, domain.InstallmentStatusPending, installment.Status)
	require.NotNil(t, installment.Commission)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepository_UpsertSaleKeepsTotals(t *testing.T) {
	db, mock := newMock(t)
	created := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	// o total não é sobrescrito pelo plano e a quantidade de parcelas nunca diminui
	mock.ExpectQuery(`ON CONFLICT \(tenant_id, source, external_id\) DO UPDATE SET (.+) ` +
		`installments_count = GREATEST\(sales.installments_count, EXCLUDED.installments_count\), updated_at = NOW\(\) RETURNING`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "seller_id", "commission_percent", "created_at", "updated_at"}).
			AddRow("s1", int64(3), "10.00", created, created))

	sale := &domain.Sale{ID: "novo", TenantID: "tenant", Source: domain.SaleSourceHotmart, ExternalID: "SUB-1",
		TotalValue: decimal.RequireFromString("200"), InstallmentsCount: 12, Status: domain.SaleStatusActive, SoldAt: created}
	require.NoError(t, NewSaleRepository(db).UpsertSale(context.Background(), sale))

	assert.Equal(t, "s1", sale.ID)
	assert.Equal(t, 3, *sale.SellerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepository_RefreshSaleTotals(t *testing.T) {
	ctx := context.Background()

	t.Run("recalcula pelas parcelas gravadas", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectExec(`UPDATE sales SET total_value = \(SELECT COALESCE\(SUM\(value\), 0\) FROM installments WHERE sale_id = \$1\), `+
			`installments_count = GREATEST\(installments_count, \(SELECT COALESCE\(MAX\(number\), 0\) FROM installments WHERE sale_id = \$2\)\)`).
			WithArgs("s1", "s1", "s1", "tenant").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewSaleRepository(db).RefreshSaleTotals(ctx, "tenant", "s1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("venda inexistente", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectExec("UPDATE sales SET").WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewSaleRepository(db).RefreshSaleTotals(ctx, "tenant", "s1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestReportRepository_GetByID(t *testing.T) {
	db, mock := newMock(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "tenant_id", "title", "scopes", "start_date", "end_date", "status", "data", "content", "generator",
		"storage_key", "created_by", "created_at", "updated_at",
	}).AddRow("r1", "tenant", "Janeiro", "{vendas,chamados}", start, end, "parcial",
		[]byte(`{"title":"Janeiro","scopes":[{"scope":"vendas","data":{"total":3}},{"scope":"chamados","error":"timeout"}]}`),
		"# Janeiro", "template", nil, int64(1), start, start)

	mock.ExpectQuery("SELECT (.+) FROM reports WHERE").WillReturnRows(rows)

	report, err := NewReportRepository(db).GetByID(context.Background(), "tenant", "r1")
	require.NoError(t, err)
	assert.Equal(t, []domain.ReportScope{domain.ScopeSales, domain.ScopeTickets}, report.Scopes)
	assert.Equal(t, domain.ReportStatusPartial, report.Status)
	assert.Equal(t, domain.GeneratorTemplate, report.Generator)
	require.NotNil(t, report.Data)
	assert.Equal(t, 1, report.Data.Failed())
	assert.Nil(t, report.StorageKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOKRRepository_DeleteCycle(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("DELETE FROM okr_cycles WHERE").
		WithArgs("c1", "tenant").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, NewOKRRepository(db).DeleteCycle(context.Background(), "tenant", "c1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
