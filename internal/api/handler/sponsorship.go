package handler

import (
	"net/http"

	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/sponsoring"
	"github.com/sirupsen/logrus"
)

func CreateSponsorship(service sponsoring.Sponsoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateSponsorship")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.CreateSponsorshipRequest
		if !decodeBody(w, r, &req) {
			return
		}

		sponsorship, err := service.Create(r.Context(), userClaims.TenantID, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar patrocínio")
			return
		}

		writeJSON(w, http.StatusCreated, sponsorship)
	}
}

func ListSponsorships(service sponsoring.Sponsoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		period, ok := periodQuery(w, r)
		if !ok {
			return
		}

		status := domain.SponsorshipStatus(r.URL.Query().Get("status"))
		sponsorships, err := service.List(r.Context(), userClaims.TenantID, status, period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar patrocínios")
			return
		}

		writeJSON(w, http.StatusOK, sponsorships)
	}
}

// SponsorshipPipeline resume quantidade e valor por etapa do funil
func SponsorshipPipeline(service sponsoring.Sponsoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		period, ok := periodQuery(w, r)
		if !ok {
			return
		}

		pipeline, err := service.Pipeline(r.Context(), userClaims.TenantID, period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar funil de patrocínios")
			return
		}

		writeJSON(w, http.StatusOK, pipeline)
	}
}

func GetSponsorship(service sponsoring.Sponsoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		sponsorship, err := service.Get(r.Context(), userClaims.TenantID, param(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar patrocínio")
			return
		}

		writeJSON(w, http.StatusOK, sponsorship)
	}
}

func UpdateSponsorship(service sponsoring.Sponsoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateSponsorship")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.UpdateSponsorshipRequest
		if !decodeBody(w, r, &req) {
			return
		}

		sponsorship, err := service.Update(r.Context(), userClaims.TenantID, param(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar patrocínio")
			return
		}

		writeJSON(w, http.StatusOK, sponsorship)
	}
}

func DeleteSponsorship(service sponsoring.Sponsoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), userClaims.TenantID, param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao remover patrocínio")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
