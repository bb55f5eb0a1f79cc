package asaasclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	asaasdomain "github.com/boraedu/bora-hub-api/infrastructure/integrator/asaas/domain"
	"github.com/boraedu/bora-hub-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) Client {
	return NewClient(&config.Config{Asaas: config.Asaas{URL: url + "/v3"}})
}

func TestListPayments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/payments", r.URL.Path)
		assert.Equal(t, "$aact_key", r.Header.Get("access_token"))
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("dateCreated[ge]"))
		assert.Equal(t, "2024-01-31", r.URL.Query().Get("dateCreated[le]"))
		assert.Equal(t, "20", r.URL.Query().Get("offset"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","hasMore":false,"totalCount":1,"limit":10,"offset":20,"data":[
			{"id":"pay_1","customer":"cus_1","installment":"ins_1","installmentNumber":2,"value":150.5,
			 "status":"RECEIVED","dueDate":"2024-02-10","paymentDate":"2024-02-09","dateCreated":"2024-01-10"}]}`))
	}))
	defer server.Close()

	list, err := newTestClient(server.URL).ListPayments(context.Background(), "$aact_key", asaasdomain.ListPaymentsParams{
		CreatedFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedTo:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Offset:      20,
		Limit:       10,
	})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)

	payment := list.Data[0]
	assert.Equal(t, "ins_1", payment.GroupKey())
	assert.Equal(t, "150.5", payment.Value.String())
	assert.Equal(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), payment.Due())
	require.NotNil(t, payment.PaidAt())
	assert.Equal(t, time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC), *payment.PaidAt())
}

func TestGet_ErroDaAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"code":"invalid_access_token","description":"A chave de API informada não pertence a este ambiente"}]}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetCustomer(context.Background(), "bad", "cus_1")
	require.Error(t, err)

	var apiErr *asaasdomain.ErrorResponse
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid_access_token", apiErr.Errors[0].Code)
}
