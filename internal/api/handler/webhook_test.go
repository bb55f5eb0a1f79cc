package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	asaasdomain "github.com/boraedu/bora-hub-api/infrastructure/integrator/asaas/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/reconciling"
	"github.com/boraedu/bora-hub-api/internal/usecases/reconciling/mocks"
	"github.com/boraedu/bora-hub-api/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAsaasWebhook(t *testing.T) {
	const payload = `{"id":"evt_1","event":"PAYMENT_RECEIVED","payment":{"id":"pay_1"}}`

	tests := []struct {
		name          string
		body          string
		processed     bool
		err           error
		expectCall    bool
		wantStatus    int
		wantDuplicate bool
		wantCode      string
	}{
		{name: "evento novo", body: payload, processed: true, expectCall: true, wantStatus: http.StatusOK},
		{name: "entrega repetida", body: payload, processed: false, expectCall: true, wantStatus: http.StatusOK, wantDuplicate: true},
		{name: "token inválido", body: payload, err: errors.Wrap(reconciling.ErrInvalidWebhookToken, "asaas"), expectCall: true, wantStatus: http.StatusUnauthorized, wantCode: apiErrors.ErrInvalidWebhookToken},
		{name: "payload inválido", body: `{"id":`, wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockReconciler(ctrl)

			if tt.expectCall {
				service.EXPECT().
					HandleAsaasWebhook(gomock.Any(), "segredo", gomock.Any()).
					DoAndReturn(func(_ any, _ string, event *asaasdomain.WebhookEvent) (bool, error) {
						assert.Equal(t, "evt_1", event.ID)
						return tt.processed, tt.err
					})
			}

			req := newRequest(http.MethodPost, "/v1/webhooks/asaas", tt.body, nil)
			req.Header.Set(asaasTokenHeader, "segredo")
			rec := httptest.NewRecorder()
			AsaasWebhook(service)(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
				return
			}

			var resp WebhookResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.True(t, resp.Received)
			assert.Equal(t, tt.wantDuplicate, resp.Duplicate)
		})
	}
}

func TestHotmartWebhookUsesHottok(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReconciler(ctrl)

	service.EXPECT().
		HandleHotmartWebhook(gomock.Any(), "hottok-1", gomock.Any()).
		Return(true, nil)

	req := newRequest(http.MethodPost, "/v1/webhooks/hotmart", `{"id":"h-1","event":"PURCHASE_APPROVED"}`, nil)
	req.Header.Set(hotmartTokenHeader, "hottok-1")
	rec := httptest.NewRecorder()
	HotmartWebhook(service)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
