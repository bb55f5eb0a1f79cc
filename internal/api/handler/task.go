package handler

import (
	"net/http"

	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/tasking"
	"github.com/boraedu/bora-hub-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

func CreateTask(service tasking.Tasking) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateTask")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.CreateTaskRequest
		if !decodeBody(w, r, &req) {
			return
		}

		task, err := service.Create(r.Context(), userClaims.TenantID, userClaims.UserID, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar tarefa")
			return
		}

		writeJSON(w, http.StatusCreated, task)
	}
}

func ListTasks(service tasking.Tasking) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		filter := domain.TaskFilter{
			Status:   domain.TaskStatus(query.Get("status")),
			TicketID: query.Get("ticket_id"),
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

		period, ok := periodQuery(w, r)
		if !ok {
			return
		}
		filter.Period = period

		tasks, err := service.List(r.Context(), userClaims.TenantID, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar tarefas")
			return
		}

		writeJSON(w, http.StatusOK, tasks)
	}
}

func GetTask(service tasking.Tasking) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		task, err := service.Get(r.Context(), userClaims.TenantID, param(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar tarefa")
			return
		}

		writeJSON(w, http.StatusOK, task)
	}
}

func UpdateTask(service tasking.Tasking) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateTask")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.UpdateTaskRequest
		if !decodeBody(w, r, &req) {
			return
		}

		task, err := service.Update(r.Context(), userClaims.TenantID, param(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar tarefa")
			return
		}

		writeJSON(w, http.StatusOK, task)
	}
}

func DeleteTask(service tasking.Tasking) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteTask")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), userClaims.TenantID, param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao remover tarefa")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
