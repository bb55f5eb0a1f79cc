package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommissionStatusFor(t *testing.T) {
	tests := map[InstallmentStatus]CommissionStatus{
		InstallmentStatusPaid:      CommissionStatusReleased,
		InstallmentStatusOverdue:   CommissionStatusSuspended,
		InstallmentStatusCancelled: CommissionStatusCancelled,
		InstallmentStatusRefunded:  CommissionStatusCancelled,
		InstallmentStatusPending:   CommissionStatusPending,
		InstallmentStatus("xpto"):  CommissionStatusPending,
	}

	for installment, expected := range tests {
		assert.Equal(t, expected, CommissionStatusFor(installment), "parcela %s", installment)
	}
}

func TestSplitInstallments(t *testing.T) {
	tests := []struct {
		name     string
		total    string
		count    int
		expected []string
	}{
		{"divisão exata", "300.00", 3, []string{"100", "100", "100"}},
		{"última absorve a diferença", "100.00", 3, []string{"33.33", "33.33", "33.34"}},
		{"base truncada", "200.00", 3, []string{"66.66", "66.66", "66.68"}},
		{"parcela única", "997.00", 1, []string{"997"}},
		{"um centavo por parcela", "0.10", 10, []string{"0.01", "0.01", "0.01", "0.01", "0.01", "0.01", "0.01", "0.01", "0.01", "0.01"}},
		{"total pequeno com sobra", "0.19", 10, []string{"0.01", "0.01", "0.01", "0.01", "0.01", "0.01", "0.01", "0.01", "0.01", "0.10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := decimal.RequireFromString(tt.total)
			values, err := SplitInstallments(total, tt.count)
			require.NoError(t, err)
			require.Len(t, values, tt.count)

			sum := decimal.Zero
			for i, v := range values {
				assert.True(t, decimal.RequireFromString(tt.expected[i]).Equal(v), "parcela %d: %s", i+1, v)
				assert.False(t, v.IsNegative(), "parcela %d negativa: %s", i+1, v)
				sum = sum.Add(v)
			}
			assert.True(t, total.Equal(sum))
		})
	}

	_, err := SplitInstallments(decimal.NewFromInt(100), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// 0,05 em 10 parcelas deixaria parcelas zeradas
	_, err = SplitInstallments(decimal.RequireFromString("0.05"), 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCommissionValue(t *testing.T) {
	value := CommissionValue(decimal.RequireFromString("33.33"), decimal.RequireFromString("10"))
	assert.Equal(t, "3.33", value.StringFixed(2))

	value = CommissionValue(decimal.RequireFromString("99.99"), decimal.RequireFromString("12.5"))
	assert.Equal(t, "12.50", value.StringFixed(2))
}

func TestMonthlyDueDates(t *testing.T) {
	first := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	dates := MonthlyDueDates(first, 4)

	assert.Equal(t, []time.Time{
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
	}, dates)
}

func TestDeriveSaleStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []InstallmentStatus
		expected SaleStatus
	}{
		{"sem parcelas", nil, SaleStatusActive},
		{"todas pagas", []InstallmentStatus{InstallmentStatusPaid, InstallmentStatusPaid}, SaleStatusPaidOff},
		{"pendentes", []InstallmentStatus{InstallmentStatusPaid, InstallmentStatusPending}, SaleStatusActive},
		{"atrasada", []InstallmentStatus{InstallmentStatusPaid, InstallmentStatusOverdue, InstallmentStatusPending}, SaleStatusDefaulted},
		{"reembolsada", []InstallmentStatus{InstallmentStatusPaid, InstallmentStatusRefunded}, SaleStatusCancelled},
		{"cancelada com pendente", []InstallmentStatus{InstallmentStatusCancelled, InstallmentStatusPending}, SaleStatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveSaleStatus(tt.statuses))
		})
	}
}

func TestInstallmentAndCommissionFollowStatus(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	installment := &Installment{Status: InstallmentStatusPending}
	commission := &Commission{Status: CommissionStatusPending}

	installment.ApplyStatus(InstallmentStatusPaid, now)
	commission.FollowInstallment(installment.Status, now)
	assert.Equal(t, &now, installment.PaidAt)
	assert.Equal(t, CommissionStatusReleased, commission.Status)
	assert.Equal(t, &now, commission.ReleasedAt)

	installment.ApplyStatus(InstallmentStatusRefunded, now)
	commission.FollowInstallment(installment.Status, now)
	assert.Nil(t, installment.PaidAt)
	assert.Equal(t, CommissionStatusCancelled, commission.Status)
	assert.Nil(t, commission.ReleasedAt)
}

func TestGatewayStatusMapping(t *testing.T) {
	assert.Equal(t, InstallmentStatusPaid, InstallmentStatusFromAsaas("RECEIVED"))
	assert.Equal(t, InstallmentStatusPaid, InstallmentStatusFromAsaas("CONFIRMED"))
	assert.Equal(t, InstallmentStatusOverdue, InstallmentStatusFromAsaas("OVERDUE"))
	assert.Equal(t, InstallmentStatusRefunded, InstallmentStatusFromAsaas("REFUNDED"))
	assert.Equal(t, InstallmentStatusPending, InstallmentStatusFromAsaas("NOVO_STATUS"))

	assert.Equal(t, InstallmentStatusPaid, InstallmentStatusFromHotmart("APPROVED"))
	assert.Equal(t, InstallmentStatusCancelled, InstallmentStatusFromHotmart("CANCELED"))
	assert.Equal(t, InstallmentStatusRefunded, InstallmentStatusFromHotmart("CHARGEBACK"))
	assert.Equal(t, InstallmentStatusPending, InstallmentStatusFromHotmart("WAITING_PAYMENT"))
}

func TestCommissionSummary_Add(t *testing.T) {
	summary := &CommissionSummary{}
	summary.Add(CommissionStatusReleased, decimal.RequireFromString("10.50"))
	summary.Add(CommissionStatusPending, decimal.RequireFromString("5"))
	summary.Add(CommissionStatusSuspended, decimal.RequireFromString("2.25"))

	assert.Equal(t, "10.50", summary.Released.StringFixed(2))
	assert.Equal(t, "5.00", summary.Pending.StringFixed(2))
	assert.Equal(t, "2.25", summary.Suspended.StringFixed(2))
	assert.Equal(t, "17.75", summary.Total.StringFixed(2))
}
