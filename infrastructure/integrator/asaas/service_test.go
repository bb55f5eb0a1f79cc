package asaas

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/boraedu/bora-hub-api/infrastructure/integrator/asaas/asaasclient"
	asaasdomain "github.com/boraedu/bora-hub-api/infrastructure/integrator/asaas/domain"
	"github.com/boraedu/bora-hub-api/internal/config"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.HandlerFunc) AsaasIntegrator {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Asaas: config.Asaas{
			URL:       server.URL,
			Keys:      map[string]string{"bora": "$aact_key"},
			PageLimit: 2,
		},
	}
	return New(cfg, asaasclient.NewClient(cfg))
}

func TestFetchPlans_PaginaEAgrupa(t *testing.T) {
	pages := map[string]string{
		"0": `{"hasMore":true,"data":[
			{"id":"pay_2","customer":"cus_1","installment":"ins_1","installmentNumber":2,"value":50,"status":"PENDING","dueDate":"2024-02-10","dateCreated":"2024-01-10"},
			{"id":"pay_1","customer":"cus_1","installment":"ins_1","installmentNumber":1,"value":50,"status":"RECEIVED","dueDate":"2024-01-10","paymentDate":"2024-01-10","dateCreated":"2024-01-10"}]}`,
		"2": `{"hasMore":false,"data":[
			{"id":"pay_9","customer":"cus_2","value":80,"status":"OVERDUE","dueDate":"2024-01-20","dateCreated":"2024-01-15","description":"Workshop"}]}`,
	}
	customerCalls := 0

	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/payments":
			_, _ = w.Write([]byte(pages[r.URL.Query().Get("offset")]))
		case "/customers/cus_1":
			customerCalls++
			_, _ = w.Write([]byte(`{"id":"cus_1","name":"Ana Souza","email":"ana@exemplo.com"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	plans, err := service.FetchPlans(context.Background(), "bora", domain.Period{})
	require.NoError(t, err)
	require.Len(t, plans, 2)

	plan := plans[0]
	assert.Equal(t, "ins_1", plan.ExternalID)
	assert.Equal(t, "Ana Souza", plan.CustomerName)
	require.Len(t, plan.Payments, 2)
	assert.Equal(t, "pay_1", plan.Payments[0].ExternalID)
	assert.Equal(t, domain.InstallmentStatusPaid, plan.Payments[0].Status)
	assert.Equal(t, 2, plan.Payments[1].Count)
	assert.Equal(t, "100", plan.Total().String())
	assert.Equal(t, 1, customerCalls)

	avulsa := plans[1]
	assert.Equal(t, "pay_9", avulsa.ExternalID)
	assert.Equal(t, "Workshop", avulsa.Product)
	assert.Equal(t, "cus_2", avulsa.CustomerName)
	assert.Equal(t, domain.InstallmentStatusOverdue, avulsa.Payments[0].Status)
	assert.Equal(t, 1, avulsa.Payments[0].Number)
}

func TestFetchPlans_SemChave(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("não deveria chamar a API")
	})

	_, err := service.FetchPlans(context.Background(), "desconhecida", domain.Period{})
	assert.Error(t, err)
}

func TestPlansFromWebhook(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/payments" {
			assert.Equal(t, "ins_1", r.URL.Query().Get("installment"))
			_, _ = w.Write([]byte(`{"hasMore":false,"data":[
				{"id":"pay_1","installment":"ins_1","installmentNumber":1,"value":50,"status":"CONFIRMED","dueDate":"2024-01-10"},
				{"id":"pay_2","installment":"ins_1","installmentNumber":2,"value":50,"status":"PENDING","dueDate":"2024-02-10"}]}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	plans, err := service.PlansFromWebhook(context.Background(), "bora", &asaasdomain.WebhookEvent{
		ID:      "evt_1",
		Event:   "PAYMENT_CONFIRMED",
		Payment: &asaasdomain.Payment{ID: "pay_1", Installment: "ins_1"},
	})
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Len(t, plans[0].Payments, 2)

	plans, err = service.PlansFromWebhook(context.Background(), "bora", &asaasdomain.WebhookEvent{Event: "PAYMENT_VIEWED", Payment: &asaasdomain.Payment{ID: "pay_1"}})
	require.NoError(t, err)
	assert.Empty(t, plans)
}
