package handler

import (
	"net/http"

	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/agenda"
	"github.com/sirupsen/logrus"
)

func CreateEvent(service agenda.Agenda) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateEvent")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.CreateEventRequest
		if !decodeBody(w, r, &req) {
			return
		}

		event, err := service.Create(r.Context(), userClaims.TenantID, userClaims.UserID, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar evento")
			return
		}

		writeJSON(w, http.StatusCreated, event)
	}
}

// ListEvents devolve os eventos que cruzam o período informado
func ListEvents(service agenda.Agenda) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		period, ok := periodQuery(w, r)
		if !ok {
			return
		}

		events, err := service.List(r.Context(), userClaims.TenantID, domain.EventFilter{
			Period: period,
			Type:   r.URL.Query().Get("type"),
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar eventos")
			return
		}

		writeJSON(w, http.StatusOK, events)
	}
}

func GetEvent(service agenda.Agenda) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		event, err := service.Get(r.Context(), userClaims.TenantID, param(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar evento")
			return
		}

		writeJSON(w, http.StatusOK, event)
	}
}

func UpdateEvent(service agenda.Agenda) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateEvent")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.UpdateEventRequest
		if !decodeBody(w, r, &req) {
			return
		}

		event, err := service.Update(r.Context(), userClaims.TenantID, param(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar evento")
			return
		}

		writeJSON(w, http.StatusOK, event)
	}
}

func DeleteEvent(service agenda.Agenda) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), userClaims.TenantID, param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao remover evento")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
