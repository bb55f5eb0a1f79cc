package handler

import (
	"net/http"

	asaasdomain "github.com/boraedu/bora-hub-api/infrastructure/integrator/asaas/domain"
	hotmartdomain "github.com/boraedu/bora-hub-api/infrastructure/integrator/hotmart/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/reconciling"
	"github.com/boraedu/bora-hub-api/pkg/apiErrors"
	"github.com/boraedu/bora-hub-api/pkg/log"
	"github.com/boraedu/bora-hub-api/pkg/utils"
)

const (
	asaasTokenHeader   = "asaas-access-token"
	hotmartTokenHeader = "X-HOTMART-HOTTOK"
)

// WebhookResponse confirma o recebimento; duplicate indica entrega repetida já processada
type WebhookResponse struct {
	Received  bool `json:"received"`
	Duplicate bool `json:"duplicate"`
}

func AsaasWebhook(service reconciling.Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event asaasdomain.WebhookEvent
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("webhook asaas: payload inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Payload inválido", nil)
			return
		}

		logger := log.ForContext(r.Context()).WithFields(log.Fields{
			"event_id": event.ID,
			"event":    event.Event,
		})
		logger.Info("webhook asaas: evento recebido")
		logger.Debugf("webhook asaas: payload %s", utils.PrettyJson(event))

		processed, err := service.HandleAsaasWebhook(r.Context(), r.Header.Get(asaasTokenHeader), &event)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao processar webhook do Asaas")
			return
		}

		writeJSON(w, http.StatusOK, WebhookResponse{Received: true, Duplicate: !processed})
	}
}

func HotmartWebhook(service reconciling.Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event hotmartdomain.WebhookEvent
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("webhook hotmart: payload inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Payload inválido", nil)
			return
		}

		logger := log.ForContext(r.Context()).WithFields(log.Fields{
			"event_id": event.ID,
			"event":    event.Event,
		})
		logger.Info("webhook hotmart: evento recebido")
		logger.Debugf("webhook hotmart: payload %s", utils.PrettyJson(event))

		processed, err := service.HandleHotmartWebhook(r.Context(), r.Header.Get(hotmartTokenHeader), &event)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao processar webhook da Hotmart")
			return
		}

		writeJSON(w, http.StatusOK, WebhookResponse{Received: true, Duplicate: !processed})
	}
}
