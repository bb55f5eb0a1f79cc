package selling

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	pgmocks "github.com/boraedu/bora-hub-api/infrastructure/database/postgres/mocks"
	"github.com/boraedu/bora-hub-api/infrastructure/repository/mocks"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func intPtr(v int) *int { return &v }

type fixture struct {
	service *Service
	sales   *mocks.MockSaleRepository
	tx      *pgmocks.MockTransactor
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		sales: mocks.NewMockSaleRepository(ctrl),
		tx:    pgmocks.NewMockTransactor(ctrl),
	}
	f.service = NewService(f.sales, f.tx).(*Service)
	f.service.now = func() time.Time { return now }

	f.tx.EXPECT().RunInTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sql.Tx) error) error { return fn(nil) }).
		AnyTimes()
	f.sales.EXPECT().WithTx(gomock.Any()).Return(f.sales).AnyTimes()
	return f
}

func TestCreateSale(t *testing.T) {
	ctx := context.Background()

	t.Run("divide parcelas e comissões", func(t *testing.T) {
		f := newFixture(t)

		f.sales.EXPECT().CreateSale(ctx, gomock.Any()).Return(nil)
		f.sales.EXPECT().CreateInstallment(ctx, gomock.Any()).Return(nil).Times(3)
		f.sales.EXPECT().CreateCommission(ctx, gomock.Any()).Return(nil).Times(3)

		sale, err := f.service.CreateSale(ctx, "tenant", &domain.CreateSaleRequest{
			CustomerName:      "Maria",
			Product:           "Mentoria anual",
			TotalValue:        d("1000"),
			InstallmentsCount: 3,
			SellerID:          intPtr(7),
			CommissionPercent: d("10"),
			SoldAt:            "2024-01-15",
			FirstDueDate:      "2024-01-31",
		})
		require.NoError(t, err)

		assert.Equal(t, domain.SaleSourceManual, sale.Source)
		assert.Equal(t, sale.ID, sale.ExternalID)
		require.Len(t, sale.Installments, 3)

		expectedValues := []string{"333.33", "333.33", "333.34"}
		expectedDue := []time.Time{
			time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		}
		for i, installment := range sale.Installments {
			assert.Equal(t, i+1, installment.Number)
			assert.True(t, d(expectedValues[i]).Equal(installment.Value), installment.Value.String())
			assert.Equal(t, expectedDue[i], installment.DueDate)
			assert.Equal(t, installment.ID, installment.Commission.InstallmentID)
			assert.True(t, d("33.33").Equal(installment.Commission.Value), installment.Commission.Value.String())
			assert.Equal(t, 7, *installment.Commission.SellerID)
		}
	})

	t.Run("rejeita valor e percentual inválidos", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.CreateSale(ctx, "tenant", &domain.CreateSaleRequest{TotalValue: d("0"), InstallmentsCount: 1})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = f.service.CreateSale(ctx, "tenant", &domain.CreateSaleRequest{TotalValue: d("10"), CommissionPercent: d("120"), InstallmentsCount: 1})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("falha na transação não devolve venda", func(t *testing.T) {
		f := newFixture(t)
		f.sales.EXPECT().CreateSale(ctx, gomock.Any()).Return(nil)
		f.sales.EXPECT().CreateInstallment(ctx, gomock.Any()).Return(errors.New("boom"))

		sale, err := f.service.CreateSale(ctx, "tenant", &domain.CreateSaleRequest{
			TotalValue: d("100"), InstallmentsCount: 2, SoldAt: "2024-01-01", FirstDueDate: "2024-01-01",
		})
		assert.Error(t, err)
		assert.Nil(t, sale)
	})
}

func TestUpdateInstallmentStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	installment := &domain.Installment{
		ID: "i2", TenantID: "tenant", SaleID: "s1", Number: 2, Status: domain.InstallmentStatusPending,
		Commission: &domain.Commission{ID: "c2", Status: domain.CommissionStatusPending, Value: d("10")},
	}

	f.sales.EXPECT().GetInstallment(ctx, "tenant", "i2").Return(installment, nil)
	f.sales.EXPECT().UpdateInstallment(ctx, installment).Return(nil)
	f.sales.EXPECT().UpdateCommission(ctx, installment.Commission).Return(nil)
	f.sales.EXPECT().ListInstallments(ctx, "tenant", "s1").Return([]*domain.Installment{
		{ID: "i1", Status: domain.InstallmentStatusPaid},
		{ID: "i2", Status: domain.InstallmentStatusPaid},
	}, nil)
	f.sales.EXPECT().UpdateSaleStatus(ctx, "tenant", "s1", domain.SaleStatusPaidOff).Return(nil)

	updated, err := f.service.UpdateInstallmentStatus(ctx, "tenant", "i2", domain.InstallmentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, now, *updated.PaidAt)
	assert.Equal(t, domain.CommissionStatusReleased, updated.Commission.Status)
	assert.Equal(t, now, *updated.Commission.ReleasedAt)

	_, err = f.service.UpdateInstallmentStatus(ctx, "tenant", "i2", "estornada")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteSale(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	gomock.InOrder(
		f.sales.EXPECT().GetSale(ctx, "tenant", "s1").Return(&domain.Sale{ID: "s1"}, nil),
		f.sales.EXPECT().DeleteCommissions(ctx, "tenant", "s1").Return(nil),
		f.sales.EXPECT().DeleteInstallments(ctx, "tenant", "s1").Return(nil),
		f.sales.EXPECT().DeleteSale(ctx, "tenant", "s1").Return(nil),
	)

	assert.NoError(t, f.service.DeleteSale(ctx, "tenant", "s1"))
}

func TestSummarizeCommissions(t *testing.T) {
	summaries := SummarizeCommissions([]*domain.Commission{
		{SellerID: intPtr(2), Status: domain.CommissionStatusReleased, Value: d("50")},
		{SellerID: intPtr(1), Status: domain.CommissionStatusPending, Value: d("10")},
		{SellerID: intPtr(2), Status: domain.CommissionStatusSuspended, Value: d("5.5")},
		{Status: domain.CommissionStatusCancelled, Value: d("3")},
	})

	require.Len(t, summaries, 3)
	assert.Nil(t, summaries[0].SellerID)
	assert.True(t, d("3").Equal(summaries[0].Cancelled))
	assert.Equal(t, 1, *summaries[1].SellerID)
	assert.Equal(t, 2, *summaries[2].SellerID)
	assert.True(t, d("50").Equal(summaries[2].Released))
	assert.True(t, d("55.5").Equal(summaries[2].Total))
}

func TestMarkOverdue(t *testing.T) {
	ctx := context.Background()

	t.Run("marca pendentes e segue após erro", func(t *testing.T) {
		f := newFixture(t)

		first := &domain.Installment{ID: "i1", TenantID: "a", SaleID: "s1", Status: domain.InstallmentStatusPending,
			Commission: &domain.Commission{ID: "c1", Status: domain.CommissionStatusPending}}
		second := &domain.Installment{ID: "i2", TenantID: "b", SaleID: "s2", Status: domain.InstallmentStatusPending}

		f.sales.EXPECT().ListPendingDueBefore(ctx, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)).
			Return([]*domain.Installment{first, second}, nil)

		f.sales.EXPECT().GetInstallmentForUpdate(ctx, "a", "i1").Return(first, nil)
		f.sales.EXPECT().UpdateInstallment(ctx, first).Return(nil)
		f.sales.EXPECT().UpdateCommission(ctx, first.Commission).Return(nil)
		f.sales.EXPECT().ListInstallments(ctx, "a", "s1").Return([]*domain.Installment{first}, nil)
		f.sales.EXPECT().UpdateSaleStatus(ctx, "a", "s1", domain.SaleStatusDefaulted).Return(nil)

		f.sales.EXPECT().GetInstallmentForUpdate(ctx, "b", "i2").Return(second, nil)
		f.sales.EXPECT().UpdateInstallment(ctx, second).Return(errors.New("conexão perdida"))

		updated, err := f.service.MarkOverdue(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, updated)
		assert.Equal(t, domain.CommissionStatusSuspended, first.Commission.Status)
	})

	t.Run("não sobrescreve parcela paga depois da listagem", func(t *testing.T) {
		f := newFixture(t)

		listed := &domain.Installment{ID: "i1", TenantID: "a", SaleID: "s1", Status: domain.InstallmentStatusPending,
			DueDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
		paidAt := now
		current := &domain.Installment{ID: "i1", TenantID: "a", SaleID: "s1", Status: domain.InstallmentStatusPaid,
			DueDate: listed.DueDate, PaidAt: &paidAt,
			Commission: &domain.Commission{ID: "c1", Status: domain.CommissionStatusReleased}}

		f.sales.EXPECT().ListPendingDueBefore(ctx, gomock.Any()).Return([]*domain.Installment{listed}, nil)
		f.sales.EXPECT().GetInstallmentForUpdate(ctx, "a", "i1").Return(current, nil)

		updated, err := f.service.MarkOverdue(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, updated)
		assert.Equal(t, domain.InstallmentStatusPaid, current.Status)
		assert.Equal(t, domain.CommissionStatusReleased, current.Commission.Status)
	})
}
