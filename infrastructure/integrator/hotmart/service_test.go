package hotmart

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	hotmartdomain "github.com/boraedu/bora-hub-api/infrastructure/integrator/hotmart/domain"
	"github.com/boraedu/bora-hub-api/infrastructure/integrator/hotmart/hotmartclient"
	"github.com/boraedu/bora-hub-api/internal/config"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, pages map[string]string) HotmartIntegrator {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/security/oauth/token" {
			_, _ = w.Write([]byte(`{"access_token":"tok","expires_in":3600}`))
			return
		}
		_, _ = w.Write([]byte(pages[r.URL.Query().Get("page_token")]))
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Hotmart: config.Hotmart{
			AuthURL:     server.URL,
			URL:         server.URL,
			Credentials: map[string]config.HotmartCredential{"bora": {ClientID: "c", ClientSecret: "s", Basic: "b"}},
		},
	}
	return New(cfg, hotmartclient.NewClient(cfg, hotmartclient.NewTokenManager(cfg)))
}

func TestFetchPlans_AgrupaAssinaturas(t *testing.T) {
	service := newTestService(t, map[string]string{
		"": `{"items":[
			{"product":{"id":7,"name":"Clube"},"buyer":{"name":"Ana","email":"ana@x.com","ucode":"U1"},
			 "purchase":{"transaction":"HP2","order_date":1706745600000,"status":"WAITING_PAYMENT","recurrency_number":2,"is_subscription":true,"price":{"value":99}}},
			{"product":{"id":3,"name":"Curso"},"buyer":{"name":"Bia","email":"bia@x.com","ucode":"U2"},
			 "purchase":{"transaction":"HP9","order_date":1704067200000,"approved_date":1704070800000,"status":"COMPLETE","price":{"value":497}}}],
			"page_info":{"next_page_token":"p2"}}`,
		"p2": `{"items":[
			{"product":{"id":7,"name":"Clube"},"buyer":{"name":"Ana","email":"ana@x.com","ucode":"U1"},
			 "purchase":{"transaction":"HP1","order_date":1704067200000,"approved_date":1704067300000,"status":"APPROVED","recurrency_number":1,"is_subscription":true,"price":{"value":99}}}],
			"page_info":{"next_page_token":""}}`,
	})

	plans, err := service.FetchPlans(context.Background(), "bora", domain.Period{})
	require.NoError(t, err)
	require.Len(t, plans, 2)

	club := plans[0]
	assert.Equal(t, "sub:ana@x.com:7", club.ExternalID)
	require.Len(t, club.Payments, 2)
	assert.Equal(t, "HP1", club.Payments[0].ExternalID)
	assert.Equal(t, domain.InstallmentStatusPaid, club.Payments[0].Status)
	assert.Equal(t, 2, club.Payments[1].Number)
	assert.Equal(t, domain.InstallmentStatusPending, club.Payments[1].Status)
	assert.Equal(t, "198", club.Total().String())

	course := plans[1]
	assert.Equal(t, "HP9", course.ExternalID)
	assert.Equal(t, "Bia", course.CustomerName)
	require.NotNil(t, course.Payments[0].PaidAt)
}

func TestPlansFromWebhook_CompraAvulsa(t *testing.T) {
	service := newTestService(t, nil)

	plans, err := service.PlansFromWebhook(context.Background(), "bora", &hotmartdomain.WebhookEvent{
		ID:    "evt-1",
		Event: "PURCHASE_REFUNDED",
		Data: hotmartdomain.SaleItem{
			Product:  hotmartdomain.Product{ID: 3, Name: "Curso"},
			Buyer:    hotmartdomain.Buyer{Name: "Bia", Email: "bia@x.com"},
			Purchase: hotmartdomain.Purchase{Transaction: "HP9", Status: "REFUNDED"},
		},
	})
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "HP9", plans[0].ExternalID)
	assert.Equal(t, domain.InstallmentStatusRefunded, plans[0].Payments[0].Status)

	plans, err = service.PlansFromWebhook(context.Background(), "bora", &hotmartdomain.WebhookEvent{Event: "CLUB_FIRST_ACCESS"})
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestPlansFromWebhook_AssinaturaRecarregaHistorico(t *testing.T) {
	service := newTestService(t, map[string]string{
		"": `{"items":[
			{"product":{"id":7,"name":"Clube"},"buyer":{"name":"Ana","email":"ana@x.com","ucode":"U1"},
			 "purchase":{"transaction":"HP1","order_date":1704067200000,"status":"APPROVED","recurrency_number":1,"is_subscription":true,"price":{"value":99}}}],
			"page_info":{}}`,
	})

	plans, err := service.PlansFromWebhook(context.Background(), "bora", &hotmartdomain.WebhookEvent{
		Event: "PURCHASE_APPROVED",
		Data: hotmartdomain.SaleItem{
			Product:      hotmartdomain.Product{ID: 7, Name: "Clube"},
			Buyer:        hotmartdomain.Buyer{Name: "Ana", Email: "Ana@X.com"},
			Purchase:     hotmartdomain.Purchase{Transaction: "HP2", Status: "APPROVED", RecurrencyNumber: 2, IsSubscription: true},
			Subscription: &hotmartdomain.Subscription{Subscriber: hotmartdomain.Subscriber{Code: "SUB9"}},
		},
	})
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "sub:ana@x.com:7", plans[0].ExternalID)
	assert.Len(t, plans[0].Payments, 2)
}

func TestFetchPlans_NumeraPelaRecorrencia(t *testing.T) {
	// a janela só alcança as cobranças 11 e 12 da assinatura
	service := newTestService(t, map[string]string{
		"": `{"items":[
			{"product":{"id":7,"name":"Clube"},"buyer":{"name":"Ana","email":"ana@x.com","ucode":"U1"},
			 "purchase":{"transaction":"HP12","order_date":1709251200000,"status":"WAITING_PAYMENT","recurrency_number":12,"is_subscription":true,"price":{"value":99}}},
			{"product":{"id":7,"name":"Clube"},"buyer":{"name":"Ana","email":"ana@x.com","ucode":"U1"},
			 "purchase":{"transaction":"HP11","order_date":1706745600000,"approved_date":1706745700000,"status":"APPROVED","recurrency_number":11,"is_subscription":true,"price":{"value":99}}},
			{"product":{"id":3,"name":"Curso"},"buyer":{"name":"Bia","email":"bia@x.com","ucode":"U2"},
			 "purchase":{"transaction":"HP9","order_date":1704067200000,"status":"COMPLETE","price":{"value":497}}}],
			"page_info":{}}`,
	})

	plans, err := service.FetchPlans(context.Background(), "bora", domain.Period{})
	require.NoError(t, err)
	require.Len(t, plans, 2)

	club := plans[0]
	require.Len(t, club.Payments, 2)
	assert.Equal(t, "HP11", club.Payments[0].ExternalID)
	assert.Equal(t, 11, club.Payments[0].Number)
	assert.Equal(t, 12, club.Payments[1].Number)
	assert.Equal(t, 12, club.Payments[1].Count)

	course := plans[1]
	assert.Equal(t, 1, course.Payments[0].Number)
	assert.Equal(t, 1, course.Payments[0].Count)
}
