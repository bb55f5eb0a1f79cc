package asaasdomain

import (
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Payment representa uma cobrança retornada pela API v3 do Asaas
type Payment struct {
	ID                string          `json:"id"`
	Customer          string          `json:"customer"`
	Installment       string          `json:"installment"`
	InstallmentNumber int             `json:"installmentNumber"`
	Value             decimal.Decimal `json:"value"`
	NetValue          decimal.Decimal `json:"netValue"`
	Status            string          `json:"status"`
	BillingType       string          `json:"billingType"`
	Description       string          `json:"description"`
	ExternalReference string          `json:"externalReference"`
	DueDate           string          `json:"dueDate"`
	PaymentDate       string          `json:"paymentDate"`
	ClientPaymentDate string          `json:"clientPaymentDate"`
	DateCreated       string          `json:"dateCreated"`
	Deleted           bool            `json:"deleted"`
}

// GroupKey identifica o plano de parcelamento; cobranças avulsas formam um plano próprio
func (p Payment) GroupKey() string {
	if p.Installment != "" {
		return p.Installment
	}
	return p.ID
}

func (p Payment) Due() time.Time {
	return parseDate(p.DueDate)
}

func (p Payment) Created() time.Time {
	return parseDate(p.DateCreated)
}

// PaidAt retorna a data de confirmação do pagamento, quando houver
func (p Payment) PaidAt() *time.Time {
	for _, value := range []string{p.PaymentDate, p.ClientPaymentDate} {
		if t := parseDate(value); !t.IsZero() {
			return &t
		}
	}
	return nil
}

func parseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// PaymentList é a página de cobranças de GET /payments
type PaymentList struct {
	Object     string    `json:"object"`
	HasMore    bool      `json:"hasMore"`
	TotalCount int       `json:"totalCount"`
	Limit      int       `json:"limit"`
	Offset     int       `json:"offset"`
	Data       []Payment `json:"data"`
}

type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// WebhookEvent é o corpo enviado pelo Asaas nas notificações de cobrança
type WebhookEvent struct {
	ID          string   `json:"id"`
	Event       string   `json:"event"`
	DateCreated string   `json:"dateCreated"`
	Payment     *Payment `json:"payment"`
}

// ErrorResponse representa a estrutura de erro da API do Asaas
type ErrorResponse struct {
	Errors []ErrorDetails `json:"errors"`
}

type ErrorDetails struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *ErrorResponse) Error() string {
	if len(e.Errors) == 0 {
		return "erro desconhecido do Asaas"
	}
	return e.Errors[0].Code + ": " + e.Errors[0].Description
}

// ListPaymentsParams filtra as cobranças pela data de criação ou pelo parcelamento
type ListPaymentsParams struct {
	Installment string
	CreatedFrom time.Time
	CreatedTo   time.Time
	Offset      int
	Limit       int
}
