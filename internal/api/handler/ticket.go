package handler

import (
	"net/http"
	"strconv"

	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/ticketing"
	"github.com/boraedu/bora-hub-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

func CreateTicket(service ticketing.Ticketing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateTicket")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.CreateTicketRequest
		if !decodeBody(w, r, &req) {
			return
		}

		ticket, err := service.Create(r.Context(), userClaims.TenantID, userClaims.UserID, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar chamado")
			return
		}

		writeJSON(w, http.StatusCreated, ticket)
	}
}

// ListTickets aceita os filtros status, priority, assignee_id e overdue
func ListTickets(service ticketing.Ticketing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		filter := domain.TicketFilter{
			Status:   domain.TicketStatus(query.Get("status")),
			Priority: domain.TicketPriority(query.Get("priority")),
		}

		if filter.Status != "" && !filter.Status.Valid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "status inválido", nil)
			return
		}

		assigneeID, ok := optionalIntQuery(w, r, "assignee_id")
		if !ok {
			return
		}
		filter.AssigneeID = assigneeID

		if value := query.Get("overdue"); value != "" {
			overdue, err := strconv.ParseBool(value)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "overdue inválido", nil)
				return
			}
			filter.Overdue = overdue
		}

		tickets, err := service.List(r.Context(), userClaims.TenantID, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar chamados")
			return
		}

		writeJSON(w, http.StatusOK, tickets)
	}
}

func GetTicket(service ticketing.Ticketing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		ticket, err := service.Get(r.Context(), userClaims.TenantID, param(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar chamado")
			return
		}

		writeJSON(w, http.StatusOK, ticket)
	}
}

func UpdateTicket(service ticketing.Ticketing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateTicket")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.UpdateTicketRequest
		if !decodeBody(w, r, &req) {
			return
		}

		ticket, err := service.Update(r.Context(), userClaims.TenantID, param(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar chamado")
			return
		}

		writeJSON(w, http.StatusOK, ticket)
	}
}

func DeleteTicket(service ticketing.Ticketing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteTicket")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), userClaims.TenantID, param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao remover chamado")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
