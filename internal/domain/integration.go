package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type IntegrationProvider string

const (
	ProviderAsaas   IntegrationProvider = "asaas"
	ProviderHotmart IntegrationProvider = "hotmart"
)

func (p IntegrationProvider) Valid() bool {
	return p == ProviderAsaas || p == ProviderHotmart
}

// Integration é uma conta de gateway de pagamento vinculada a um tenant.
// SecretName aponta para as credenciais carregadas da configuração.
type Integration struct {
	ID                       string              `json:"id"`
	TenantID                 string              `json:"tenant_id"`
	Provider                 IntegrationProvider `json:"provider"`
	Name                     string              `json:"name"`
	SecretName               string              `json:"secret_name"`
	WebhookToken             string              `json:"webhook_token,omitempty"`
	DefaultSellerID          *int                `json:"default_seller_id"`
	DefaultCommissionPercent decimal.Decimal     `json:"default_commission_percent"`
	Active                   bool                `json:"active"`
	LastSyncAt               *time.Time          `json:"last_sync_at"`
	CreatedAt                time.Time           `json:"created_at"`
	UpdatedAt                time.Time           `json:"updated_at"`
}

type CreateIntegrationRequest struct {
	Provider                 string          `json:"provider" validate:"required,oneof=asaas hotmart"`
	Name                     string          `json:"name" validate:"required,max=120"`
	SecretName               string          `json:"secret_name" validate:"required,max=120"`
	WebhookToken             string          `json:"webhook_token" validate:"required,min=16,max=200"`
	DefaultSellerID          *int            `json:"default_seller_id"`
	DefaultCommissionPercent decimal.Decimal `json:"default_commission_percent"`
}

type UpdateIntegrationRequest struct {
	Name                     *string          `json:"name" validate:"omitempty,max=120"`
	SecretName               *string          `json:"secret_name" validate:"omitempty,max=120"`
	WebhookToken             *string          `json:"webhook_token" validate:"omitempty,min=16,max=200"`
	DefaultSellerID          *int             `json:"default_seller_id"`
	DefaultCommissionPercent *decimal.Decimal `json:"default_commission_percent"`
	Active                   *bool            `json:"active"`
}

// GatewayPayment é um registro de cobrança normalizado vindo de qualquer gateway
type GatewayPayment struct {
	ExternalID    string
	GroupKey      string
	Number        int
	Count         int
	Value         decimal.Decimal
	DueDate       time.Time
	Status        InstallmentStatus
	PaidAt        *time.Time
	CustomerName  string
	CustomerEmail string
	Product       string
	CreatedAt     time.Time
}

// GatewayPlan agrupa as cobranças de um mesmo plano de parcelamento
type GatewayPlan struct {
	Source        SaleSource
	ExternalID    string
	CustomerName  string
	CustomerEmail string
	Product       string
	SoldAt        time.Time
	Payments      []GatewayPayment
}

// Total soma os valores das cobranças do plano
func (p *GatewayPlan) Total() decimal.Decimal {
	total := decimal.Zero
	for _, payment := range p.Payments {
		total = total.Add(payment.Value)
	}
	return total
}

// SyncResult resume uma execução de sincronização de uma integração
type SyncResult struct {
	IntegrationID string `json:"integration_id"`
	Plans         int    `json:"plans"`
	Installments  int    `json:"installments"`
	Changed       int    `json:"changed"`
	Error         string `json:"error,omitempty"`
}
