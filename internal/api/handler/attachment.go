package handler

import (
	"net/http"

	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/attaching"
	"github.com/boraedu/bora-hub-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// RequestUpload registra o anexo e devolve a URL assinada para envio direto ao storage
func RequestUpload(service attaching.Attaching) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RequestUpload")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.CreateAttachmentRequest
		if !decodeBody(w, r, &req) {
			return
		}

		presigned, err := service.RequestUpload(r.Context(), userClaims.TenantID, userClaims.UserID, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao preparar envio do anexo")
			return
		}

		writeJSON(w, http.StatusCreated, presigned)
	}
}

func ListAttachments(service attaching.Attaching) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		entityType, entityID := query.Get("entity_type"), query.Get("entity_id")
		if entityType == "" || entityID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "entity_type e entity_id são obrigatórios", nil)
			return
		}

		attachments, err := service.List(r.Context(), userClaims.TenantID, entityType, entityID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar anexos")
			return
		}

		writeJSON(w, http.StatusOK, attachments)
	}
}

func DownloadAttachment(service attaching.Attaching) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		download, err := service.Download(r.Context(), userClaims.TenantID, param(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar link do anexo")
			return
		}

		writeJSON(w, http.StatusOK, download)
	}
}

func DeleteAttachment(service attaching.Attaching) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), userClaims.TenantID, param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao remover anexo")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
