package hotmartclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	hotmartdomain "github.com/boraedu/bora-hub-api/infrastructure/integrator/hotmart/domain"
	"github.com/boraedu/bora-hub-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(url string) *config.Config {
	return &config.Config{
		Hotmart: config.Hotmart{
			AuthURL: url,
			URL:     url,
			Credentials: map[string]config.HotmartCredential{
				"bora": {ClientID: "client", ClientSecret: "secret", Basic: "YmFzaWM="},
			},
		},
	}
}

func TestTokenManager_Cache(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/security/oauth/token", r.URL.Path)
		assert.Equal(t, "client_credentials", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "Basic YmFzaWM=", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"access_token":"tok-1","token_type":"bearer","expires_in":3600}`))
	}))
	defer server.Close()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	manager := NewTokenManager(testConfig(server.URL))
	manager.now = func() time.Time { return now }

	token, err := manager.Token(context.Background(), "bora")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	_, err = manager.Token(context.Background(), "bora")
	require.NoError(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))

	// passa da margem de expiração
	now = now.Add(56 * time.Minute)
	_, err = manager.Token(context.Background(), "bora")
	require.NoError(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))

	_, err = manager.Token(context.Background(), "outra")
	assert.Error(t, err)
}

func TestGetSalesHistory_RenovaTokenEm401(t *testing.T) {
	var tokens int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/security/oauth/token":
			n := atomic.AddInt32(&tokens, 1)
			if n == 1 {
				_, _ = w.Write([]byte(`{"access_token":"velho","expires_in":3600}`))
				return
			}
			_, _ = w.Write([]byte(`{"access_token":"novo","expires_in":3600}`))
		case "/payments/api/v1/sales/history":
			if r.Header.Get("Authorization") != "Bearer novo" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			assert.Equal(t, "tok-page", r.URL.Query().Get("page_token"))
			assert.Equal(t, "1704067200000", r.URL.Query().Get("start_date"))
			_, _ = w.Write([]byte(`{"items":[{"product":{"id":10,"name":"Curso"},"buyer":{"name":"Ana","email":"ana@x.com"},
				"purchase":{"transaction":"HP1","order_date":1704110400000,"status":"APPROVED","price":{"value":497.9}}}],
				"page_info":{"next_page_token":""}}`))
		}
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	client := NewClient(cfg, NewTokenManager(cfg))

	history, err := client.GetSalesHistory(context.Background(), "bora", hotmartdomain.SalesHistoryParams{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PageToken: "tok-page",
	})
	require.NoError(t, err)
	require.Len(t, history.Items, 1)
	assert.Equal(t, "HP1", history.Items[0].Purchase.Transaction)
	assert.Equal(t, "497.9", history.Items[0].Purchase.Price.Value.String())
	assert.EqualValues(t, 2, atomic.LoadInt32(&tokens))
}
