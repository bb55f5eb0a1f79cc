package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SaleSource string

const (
	SaleSourceManual  SaleSource = "manual"
	SaleSourceAsaas   SaleSource = "asaas"
	SaleSourceHotmart SaleSource = "hotmart"
)

type SaleStatus string

const (
	SaleStatusActive    SaleStatus = "ativa"
	SaleStatusPaidOff   SaleStatus = "quitada"
	SaleStatusCancelled SaleStatus = "cancelada"
	SaleStatusDefaulted SaleStatus = "inadimplente"
)

type InstallmentStatus string

const (
	InstallmentStatusPending   InstallmentStatus = "pending"
	InstallmentStatusPaid      InstallmentStatus = "paid"
	InstallmentStatusOverdue   InstallmentStatus = "overdue"
	InstallmentStatusCancelled InstallmentStatus = "cancelled"
	InstallmentStatusRefunded  InstallmentStatus = "refunded"
)

func (s InstallmentStatus) Valid() bool {
	switch s {
	case InstallmentStatusPending, InstallmentStatusPaid, InstallmentStatusOverdue,
		InstallmentStatusCancelled, InstallmentStatusRefunded:
		return true
	}
	return false
}

type CommissionStatus string

const (
	CommissionStatusPending   CommissionStatus = "pending"
	CommissionStatusReleased  CommissionStatus = "released"
	CommissionStatusSuspended CommissionStatus = "suspended"
	CommissionStatusCancelled CommissionStatus = "cancelled"
)

var commissionByInstallment = map[InstallmentStatus]CommissionStatus{
	InstallmentStatusPaid:      CommissionStatusReleased,
	InstallmentStatusOverdue:   CommissionStatusSuspended,
	InstallmentStatusCancelled: CommissionStatusCancelled,
	InstallmentStatusRefunded:  CommissionStatusCancelled,
}

// CommissionStatusFor deriva o status da comissão a partir do status da parcela
func CommissionStatusFor(status InstallmentStatus) CommissionStatus {
	if commission, ok := commissionByInstallment[status]; ok {
		return commission
	}
	return CommissionStatusPending
}

type Sale struct {
	ID                string          `json:"id"`
	TenantID          string          `json:"tenant_id"`
	Source            SaleSource      `json:"source"`
	ExternalID        string          `json:"external_id"`
	CustomerName      string          `json:"customer_name"`
	CustomerEmail     string          `json:"customer_email"`
	Product           string          `json:"product"`
	TotalValue        decimal.Decimal `json:"total_value"`
	InstallmentsCount int             `json:"installments_count"`
	SellerID          *int            `json:"seller_id"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
	Status            SaleStatus      `json:"status"`
	SoldAt            time.Time       `json:"sold_at"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Installments      []*Installment  `json:"installments,omitempty"`
}

type Installment struct {
	ID         string            `json:"id"`
	TenantID   string            `json:"tenant_id"`
	SaleID     string            `json:"sale_id"`
	Number     int               `json:"number"`
	Value      decimal.Decimal   `json:"value"`
	DueDate    time.Time         `json:"due_date"`
	Status     InstallmentStatus `json:"status"`
	PaidAt     *time.Time        `json:"paid_at"`
	ExternalID *string           `json:"external_id"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	Commission *Commission       `json:"commission,omitempty"`
}

// ApplyStatus altera o status da parcela mantendo paid_at coerente
func (i *Installment) ApplyStatus(status InstallmentStatus, now time.Time) {
	i.Status = status
	if status == InstallmentStatusPaid {
		if i.PaidAt == nil {
			i.PaidAt = &now
		}
		return
	}
	i.PaidAt = nil
}

type Commission struct {
	ID            string           `json:"id"`
	TenantID      string           `json:"tenant_id"`
	InstallmentID string           `json:"installment_id"`
	SellerID      *int             `json:"seller_id"`
	Percent       decimal.Decimal  `json:"percent"`
	Value         decimal.Decimal  `json:"value"`
	Status        CommissionStatus `json:"status"`
	ReleasedAt    *time.Time       `json:"released_at"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// FollowInstallment aplica na comissão o status derivado da parcela
func (c *Commission) FollowInstallment(status InstallmentStatus, now time.Time) {
	c.Status = CommissionStatusFor(status)
	if c.Status == CommissionStatusReleased {
		if c.ReleasedAt == nil {
			c.ReleasedAt = &now
		}
		return
	}
	c.ReleasedAt = nil
}

var hundred = decimal.NewFromInt(100)

// CommissionValue calcula valor × percentual / 100 arredondado em centavos
func CommissionValue(value, percent decimal.Decimal) decimal.Decimal {
	return value.Mul(percent).Div(hundred).Round(2)
}

var cent = decimal.New(1, -2)

// SplitInstallments divide o total em parcelas truncadas em centavos; a última absorve a sobra e nunca fica menor que as demais
func SplitInstallments(total decimal.Decimal, count int) ([]decimal.Decimal, error) {
	if count <= 0 || total.IsNegative() {
		return nil, ErrInvalidInput
	}
	// cada parcela precisa de ao menos um centavo
	if total.IsPositive() && total.LessThan(cent.Mul(decimal.NewFromInt(int64(count)))) {
		return nil, ErrInvalidInput
	}

	base := total.Div(decimal.NewFromInt(int64(count))).Truncate(2)
	values := make([]decimal.Decimal, count)

	accumulated := decimal.Zero
	for i := 0; i < count-1; i++ {
		values[i] = base
		accumulated = accumulated.Add(base)
	}
	values[count-1] = total.Round(2).Sub(accumulated)

	return values, nil
}

// MonthlyDueDates gera vencimentos mensais a partir do primeiro, ajustando para o último dia em meses mais curtos
func MonthlyDueDates(first time.Time, count int) []time.Time {
	dates := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		dates = append(dates, addMonths(first, i))
	}
	return dates
}

func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// DeriveSaleStatus calcula o status da venda a partir das parcelas
func DeriveSaleStatus(statuses []InstallmentStatus) SaleStatus {
	if len(statuses) == 0 {
		return SaleStatusActive
	}

	var paid, pending, overdue, cancelled int
	for _, status := range statuses {
		switch status {
		case InstallmentStatusPaid:
			paid++
		case InstallmentStatusOverdue:
			overdue++
		case InstallmentStatusCancelled, InstallmentStatusRefunded:
			cancelled++
		default:
			pending++
		}
	}

	switch {
	case paid == len(statuses):
		return SaleStatusPaidOff
	case cancelled > 0 && pending == 0 && overdue == 0:
		return SaleStatusCancelled
	case overdue > 0:
		return SaleStatusDefaulted
	default:
		return SaleStatusActive
	}
}

var asaasStatuses = map[string]InstallmentStatus{
	"PENDING":                      InstallmentStatusPending,
	"AWAITING_RISK_ANALYSIS":       InstallmentStatusPending,
	"AUTHORIZED":                   InstallmentStatusPending,
	"RECEIVED":                     InstallmentStatusPaid,
	"CONFIRMED":                    InstallmentStatusPaid,
	"RECEIVED_IN_CASH":             InstallmentStatusPaid,
	"DUNNING_RECEIVED":             InstallmentStatusPaid,
	"OVERDUE":                      InstallmentStatusOverdue,
	"DUNNING_REQUESTED":            InstallmentStatusOverdue,
	"REFUNDED":                     InstallmentStatusRefunded,
	"REFUND_REQUESTED":             InstallmentStatusRefunded,
	"REFUND_IN_PROGRESS":           InstallmentStatusRefunded,
	"CHARGEBACK_REQUESTED":         InstallmentStatusRefunded,
	"CHARGEBACK_DISPUTE":           InstallmentStatusRefunded,
	"AWAITING_CHARGEBACK_REVERSAL": InstallmentStatusRefunded,
	"DELETED":                      InstallmentStatusCancelled,
}

// InstallmentStatusFromAsaas converte o status de cobrança do Asaas
func InstallmentStatusFromAsaas(status string) InstallmentStatus {
	if mapped, ok := asaasStatuses[status]; ok {
		return mapped
	}
	return InstallmentStatusPending
}

var hotmartStatuses = map[string]InstallmentStatus{
	"APPROVED":           InstallmentStatusPaid,
	"COMPLETE":           InstallmentStatusPaid,
	"PRODUCER_CONFIRMED": InstallmentStatusPaid,
	"CONFIRMED":          InstallmentStatusPaid,
	"WAITING_PAYMENT":    InstallmentStatusPending,
	"BILLET_PRINTED":     InstallmentStatusPending,
	"STARTED":            InstallmentStatusPending,
	"UNDER_ANALISYS":     InstallmentStatusPending,
	"DELAYED":            InstallmentStatusOverdue,
	"OVERDUE":            InstallmentStatusOverdue,
	"EXPIRED":            InstallmentStatusCancelled,
	"CANCELED":           InstallmentStatusCancelled,
	"CANCELLED":          InstallmentStatusCancelled,
	"NO_FUNDS":           InstallmentStatusCancelled,
	"REFUNDED":           InstallmentStatusRefunded,
	"PARTIALLY_REFUNDED": InstallmentStatusRefunded,
	"CHARGEBACK":         InstallmentStatusRefunded,
	"PROTESTED":          InstallmentStatusRefunded,
}

// InstallmentStatusFromHotmart converte o status de transação da Hotmart
func InstallmentStatusFromHotmart(status string) InstallmentStatus {
	if mapped, ok := hotmartStatuses[status]; ok {
		return mapped
	}
	return InstallmentStatusPending
}

type SaleFilter struct {
	Status   SaleStatus
	Source   SaleSource
	SellerID *int
	Period   Period
}

type CommissionFilter struct {
	SellerID *int
	Status   CommissionStatus
	Period   Period
}

// CommissionSummary agrega os valores de comissão de um vendedor por status
type CommissionSummary struct {
	SellerID  *int            `json:"seller_id"`
	Pending   decimal.Decimal `json:"pending"`
	Released  decimal.Decimal `json:"released"`
	Suspended decimal.Decimal `json:"suspended"`
	Cancelled decimal.Decimal `json:"cancelled"`
	Total     decimal.Decimal `json:"total"`
}

// Add soma o valor no balde do status correspondente
func (s *CommissionSummary) Add(status CommissionStatus, value decimal.Decimal) {
	switch status {
	case CommissionStatusReleased:
		s.Released = s.Released.Add(value)
	case CommissionStatusSuspended:
		s.Suspended = s.Suspended.Add(value)
	case CommissionStatusCancelled:
		s.Cancelled = s.Cancelled.Add(value)
	default:
		s.Pending = s.Pending.Add(value)
	}
	s.Total = s.Total.Add(value)
}

type CreateSaleRequest struct {
	ExternalID        string          `json:"external_id" validate:"max=120"`
	CustomerName      string          `json:"customer_name" validate:"required,max=200"`
	CustomerEmail     string          `json:"customer_email" validate:"omitempty,email"`
	Product           string          `json:"product" validate:"required,max=200"`
	TotalValue        decimal.Decimal `json:"total_value"`
	InstallmentsCount int             `json:"installments_count" validate:"required,min=1,max=120"`
	SellerID          *int            `json:"seller_id"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
	SoldAt            string          `json:"sold_at" validate:"required,datetime=2006-01-02"`
	FirstDueDate      string          `json:"first_due_date" validate:"required,datetime=2006-01-02"`
}

type UpdateInstallmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid overdue cancelled refunded"`
}
