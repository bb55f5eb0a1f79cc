package llm

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/boraedu/bora-hub-api/infrastructure/integrator/llm/llmclient"
	"github.com/boraedu/bora-hub-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWriter(t *testing.T, enabled bool, handler http.HandlerFunc) Writer {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{LLM: config.LLM{
		Enabled: enabled,
		URL:     server.URL + "/v1",
		APIKey:  "sk-test",
		Model:   "gpt-4o-mini",
		Timeout: 5 * time.Second,
	}}
	return New(cfg, llmclient.NewClient(cfg))
}

func TestWriteReport(t *testing.T) {
	writer := newWriter(t, true, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		assert.True(t, strings.Contains(string(body), `"model":"gpt-4o-mini"`))
		assert.True(t, strings.Contains(string(body), "Fechamento de maio"))

		_, _ = w.Write([]byte(`{"id":"c1","choices":[{"index":0,"message":{"role":"assistant","content":"  # Relatório\n\nTudo certo.  "}}]}`))
	})

	content, err := writer.WriteReport(context.Background(), "Fechamento de maio", `{"vendas":{}}`)
	require.NoError(t, err)
	assert.Equal(t, "# Relatório\n\nTudo certo.", content)
}

func TestWriteReport_Falhas(t *testing.T) {
	disabled := newWriter(t, false, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("não deveria chamar a API")
	})
	_, err := disabled.WriteReport(context.Background(), "x", "{}")
	assert.ErrorIs(t, err, ErrDisabled)

	empty := newWriter(t, true, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})
	_, err = empty.WriteReport(context.Background(), "x", "{}")
	assert.ErrorIs(t, err, ErrEmptyResponse)

	failing := newWriter(t, true, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"rate_limit"}}`))
	})
	_, err = failing.WriteReport(context.Background(), "x", "{}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Rate limit reached")
}
