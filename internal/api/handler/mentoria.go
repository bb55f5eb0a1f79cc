package handler

import (
	"net/http"

	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/mentoring"
	"github.com/sirupsen/logrus"
)

func CreateProcesso(service mentoring.Mentoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateProcesso")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.CreateProcessoRequest
		if !decodeBody(w, r, &req) {
			return
		}

		processo, err := service.CreateProcesso(r.Context(), userClaims.TenantID, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar processo de mentoria")
			return
		}

		writeJSON(w, http.StatusCreated, processo)
	}
}

func ListProcessos(service mentoring.Mentoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		processos, err := service.ListProcessos(r.Context(), userClaims.TenantID, r.URL.Query().Get("status"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar processos de mentoria")
			return
		}

		writeJSON(w, http.StatusOK, processos)
	}
}

// GetBoard devolve processo, etapas e tarefas com o progresso de cada nível
func GetBoard(service mentoring.Mentoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		board, err := service.Board(r.Context(), userClaims.TenantID, param(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar quadro da mentoria")
			return
		}

		writeJSON(w, http.StatusOK, board)
	}
}

func UpdateProcesso(service mentoring.Mentoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateProcesso")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.UpdateProcessoRequest
		if !decodeBody(w, r, &req) {
			return
		}

		processo, err := service.UpdateProcesso(r.Context(), userClaims.TenantID, param(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar processo de mentoria")
			return
		}

		writeJSON(w, http.StatusOK, processo)
	}
}

func DeleteProcesso(service mentoring.Mentoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteProcesso")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		if err := service.DeleteProcesso(r.Context(), userClaims.TenantID, param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao remover processo de mentoria")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func CreateEtapa(service mentoring.Mentoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.CreateEtapaRequest
		if !decodeBody(w, r, &req) {
			return
		}

		etapa, err := service.CreateEtapa(r.Context(), userClaims.TenantID, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar etapa")
			return
		}

		writeJSON(w, http.StatusCreated, etapa)
	}
}

func UpdateEtapa(service mentoring.Mentoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.UpdateEtapaRequest
		if !decodeBody(w, r, &req) {
			return
		}

		etapa, err := service.UpdateEtapa(r.Context(), userClaims.TenantID, param(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar etapa")
			return
		}

		writeJSON(w, http.StatusOK, etapa)
	}
}

func DeleteEtapa(service mentoring.Mentoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		if err := service.DeleteEtapa(r.Context(), userClaims.TenantID, param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao remover etapa")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func CreateTarefa(service mentoring.Mentoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.CreateTarefaRequest
		if !decodeBody(w, r, &req) {
			return
		}

		tarefa, err := service.CreateTarefa(r.Context(), userClaims.TenantID, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar tarefa da mentoria")
			return
		}

		writeJSON(w, http.StatusCreated, tarefa)
	}
}

func UpdateTarefa(service mentoring.Mentoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.UpdateTarefaRequest
		if !decodeBody(w, r, &req) {
			return
		}

		tarefa, err := service.UpdateTarefa(r.Context(), userClaims.TenantID, param(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar tarefa da mentoria")
			return
		}

		writeJSON(w, http.StatusOK, tarefa)
	}
}

// MoveTarefa troca coluna e posição da tarefa no quadro
func MoveTarefa(service mentoring.Mentoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - MoveTarefa")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.MoveTarefaRequest
		if !decodeBody(w, r, &req) {
			return
		}

		tarefa, err := service.MoveTarefa(r.Context(), userClaims.TenantID, param(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao mover tarefa da mentoria")
			return
		}

		writeJSON(w, http.StatusOK, tarefa)
	}
}

func DeleteTarefa(service mentoring.Mentoring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		if err := service.DeleteTarefa(r.Context(), userClaims.TenantID, param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao remover tarefa da mentoria")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
