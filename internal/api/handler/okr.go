package handler

import (
	"net/http"

	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/okrtracking"
	"github.com/sirupsen/logrus"
)

func CreateCycle(service okrtracking.OKRTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCycle")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.CreateCycleRequest
		if !decodeBody(w, r, &req) {
			return
		}

		cycle, err := service.CreateCycle(r.Context(), userClaims.TenantID, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar ciclo")
			return
		}

		writeJSON(w, http.StatusCreated, cycle)
	}
}

// ListCycles devolve os ciclos que cruzam o período, com progresso calculado
func ListCycles(service okrtracking.OKRTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		period, ok := periodQuery(w, r)
		if !ok {
			return
		}

		cycles, err := service.ListCycles(r.Context(), userClaims.TenantID, period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar ciclos")
			return
		}

		writeJSON(w, http.StatusOK, cycles)
	}
}

func GetCycleTree(service okrtracking.OKRTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		cycle, err := service.CycleTree(r.Context(), userClaims.TenantID, param(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar árvore do ciclo")
			return
		}

		writeJSON(w, http.StatusOK, cycle)
	}
}

func UpdateCycle(service okrtracking.OKRTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCycle")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.UpdateCycleRequest
		if !decodeBody(w, r, &req) {
			return
		}

		cycle, err := service.UpdateCycle(r.Context(), userClaims.TenantID, param(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar ciclo")
			return
		}

		writeJSON(w, http.StatusOK, cycle)
	}
}

func DeleteCycle(service okrtracking.OKRTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteCycle")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		if err := service.DeleteCycle(r.Context(), userClaims.TenantID, param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao remover ciclo")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func CreateObjective(service okrtracking.OKRTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateObjective")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.CreateObjectiveRequest
		if !decodeBody(w, r, &req) {
			return
		}

		objective, err := service.CreateObjective(r.Context(), userClaims.TenantID, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar objetivo")
			return
		}

		writeJSON(w, http.StatusCreated, objective)
	}
}

func UpdateObjective(service okrtracking.OKRTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateObjective")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.UpdateObjectiveRequest
		if !decodeBody(w, r, &req) {
			return
		}

		objective, err := service.UpdateObjective(r.Context(), userClaims.TenantID, param(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar objetivo")
			return
		}

		writeJSON(w, http.StatusOK, objective)
	}
}

func DeleteObjective(service okrtracking.OKRTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		if err := service.DeleteObjective(r.Context(), userClaims.TenantID, param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao remover objetivo")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func CreateKeyResult(service okrtracking.OKRTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateKeyResult")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.CreateKeyResultRequest
		if !decodeBody(w, r, &req) {
			return
		}

		keyResult, err := service.CreateKeyResult(r.Context(), userClaims.TenantID, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar resultado-chave")
			return
		}

		writeJSON(w, http.StatusCreated, keyResult)
	}
}

func UpdateKeyResult(service okrtracking.OKRTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateKeyResult")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.UpdateKeyResultRequest
		if !decodeBody(w, r, &req) {
			return
		}

		keyResult, err := service.UpdateKeyResult(r.Context(), userClaims.TenantID, param(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar resultado-chave")
			return
		}

		writeJSON(w, http.StatusOK, keyResult)
	}
}

// CheckInKeyResult registra o valor atual do resultado-chave
func CheckInKeyResult(service okrtracking.OKRTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CheckInKeyResult")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.CheckInRequest
		if !decodeBody(w, r, &req) {
			return
		}

		keyResult, err := service.CheckIn(r.Context(), userClaims.TenantID, param(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao registrar check-in")
			return
		}

		writeJSON(w, http.StatusOK, keyResult)
	}
}

func DeleteKeyResult(service okrtracking.OKRTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		if err := service.DeleteKeyResult(r.Context(), userClaims.TenantID, param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao remover resultado-chave")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
