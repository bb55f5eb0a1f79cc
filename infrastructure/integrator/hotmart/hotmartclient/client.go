package hotmartclient

import (
	"context"
	"net/http"
	"time"

	hotmartdomain "github.com/boraedu/bora-hub-api/infrastructure/integrator/hotmart/domain"
	"github.com/boraedu/bora-hub-api/internal/config"
	jsoniter "github.com/json-iterator/go"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetSalesHistory(ctx context.Context, secretName string, params hotmartdomain.SalesHistoryParams) (*hotmartdomain.SalesHistory, error)
}

type HotmartClient struct {
	httpClient   *http.Client
	baseURL      string
	TokenManager *TokenManager
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &HotmartClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:      cfg.Hotmart.URL,
		TokenManager: tokenManager,
	}
}
