package asaasclient

import (
	"context"
	"net/http"
	"time"

	asaasdomain "github.com/boraedu/bora-hub-api/infrastructure/integrator/asaas/domain"
	"github.com/boraedu/bora-hub-api/internal/config"
	jsoniter "github.com/json-iterator/go"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	ListPayments(ctx context.Context, apiKey string, params asaasdomain.ListPaymentsParams) (*asaasdomain.PaymentList, error)
	GetCustomer(ctx context.Context, apiKey, customerID string) (*asaasdomain.Customer, error)
}

type AsaasClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient cria o cliente da API v3 do Asaas
func NewClient(cfg *config.Config) Client {
	return &AsaasClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: cfg.Asaas.URL,
	}
}
