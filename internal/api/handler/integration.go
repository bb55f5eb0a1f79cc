package handler

import (
	"net/http"

	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/reconciling"
	"github.com/sirupsen/logrus"
)

func CreateIntegration(service reconciling.Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateIntegration")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.CreateIntegrationRequest
		if !decodeBody(w, r, &req) {
			return
		}

		integration, err := service.CreateIntegration(r.Context(), userClaims.TenantID, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar integração")
			return
		}

		writeJSON(w, http.StatusCreated, integration)
	}
}

func ListIntegrations(service reconciling.Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		integrations, err := service.ListIntegrations(r.Context(), userClaims.TenantID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar integrações")
			return
		}

		writeJSON(w, http.StatusOK, integrations)
	}
}

func GetIntegration(service reconciling.Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		integration, err := service.GetIntegration(r.Context(), userClaims.TenantID, param(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar integração")
			return
		}

		writeJSON(w, http.StatusOK, integration)
	}
}

func UpdateIntegration(service reconciling.Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateIntegration")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.UpdateIntegrationRequest
		if !decodeBody(w, r, &req) {
			return
		}

		integration, err := service.UpdateIntegration(r.Context(), userClaims.TenantID, param(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar integração")
			return
		}

		writeJSON(w, http.StatusOK, integration)
	}
}

func DeleteIntegration(service reconciling.Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteIntegration")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		if err := service.DeleteIntegration(r.Context(), userClaims.TenantID, param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao remover integração")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
