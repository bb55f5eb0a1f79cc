package handler

import (
	"net/http"

	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/developing"
	"github.com/boraedu/bora-hub-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// Colaboradores enxergam apenas os próprios PDIs
func canAccessPDI(claims *domain.Claims, pdi *domain.PDI) bool {
	return claims.CanManage() || pdi.CollaboratorID == claims.UserID
}

func CreatePDI(service developing.Developing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreatePDI")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.CreatePDIRequest
		if !decodeBody(w, r, &req) {
			return
		}

		pdi, err := service.Create(r.Context(), userClaims.TenantID, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar PDI")
			return
		}

		writeJSON(w, http.StatusCreated, pdi)
	}
}

func ListPDIs(service developing.Developing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		collaboratorID, ok := optionalIntQuery(w, r, "collaborator_id")
		if !ok {
			return
		}
		if !userClaims.CanManage() {
			own := userClaims.UserID
			collaboratorID = &own
		}

		pdis, err := service.List(r.Context(), userClaims.TenantID, collaboratorID, r.URL.Query().Get("status"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar PDIs")
			return
		}

		writeJSON(w, http.StatusOK, pdis)
	}
}

func GetPDI(service developing.Developing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		pdi, err := service.Get(r.Context(), userClaims.TenantID, param(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar PDI")
			return
		}

		if !canAccessPDI(userClaims, pdi) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este PDI", nil)
			return
		}

		writeJSON(w, http.StatusOK, pdi)
	}
}

func UpdatePDI(service developing.Developing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdatePDI")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.UpdatePDIRequest
		if !decodeBody(w, r, &req) {
			return
		}

		pdi, err := service.Update(r.Context(), userClaims.TenantID, param(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar PDI")
			return
		}

		writeJSON(w, http.StatusOK, pdi)
	}
}

func DeletePDI(service developing.Developing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeletePDI")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), userClaims.TenantID, param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao remover PDI")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func AddAula(service developing.Developing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.CreateAulaRequest
		if !decodeBody(w, r, &req) {
			return
		}

		aula, err := service.AddAula(r.Context(), userClaims.TenantID, param(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao adicionar aula")
			return
		}

		writeJSON(w, http.StatusCreated, aula)
	}
}

// CompleteAula marca ou desmarca a conclusão da aula
func CompleteAula(service developing.Developing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.CompleteAulaRequest
		if !decodeBody(w, r, &req) {
			return
		}

		aula, err := service.CompleteAula(r.Context(), userClaims.TenantID, param(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar aula")
			return
		}

		writeJSON(w, http.StatusOK, aula)
	}
}

func DeleteAula(service developing.Developing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		if err := service.DeleteAula(r.Context(), userClaims.TenantID, param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao remover aula")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func AddAcesso(service developing.Developing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.CreateAcessoRequest
		if !decodeBody(w, r, &req) {
			return
		}

		acesso, err := service.AddAcesso(r.Context(), userClaims.TenantID, param(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao adicionar acesso")
			return
		}

		writeJSON(w, http.StatusCreated, acesso)
	}
}

// RevealAcesso devolve a senha decifrada; colaboradores apenas dos próprios PDIs
func RevealAcesso(service developing.Developing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RevealAcesso")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		acesso, err := service.RevealAcesso(r.Context(), userClaims.TenantID, param(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao revelar acesso")
			return
		}

		if !userClaims.CanManage() {
			pdi, err := service.Get(r.Context(), userClaims.TenantID, acesso.PDIID)
			if err != nil {
				writeServiceError(w, r, err, "Erro ao buscar PDI do acesso")
				return
			}
			if !canAccessPDI(userClaims, pdi) {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este PDI", nil)
				return
			}
		}

		writeJSON(w, http.StatusOK, acesso)
	}
}

func DeleteAcesso(service developing.Developing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		if err := service.DeleteAcesso(r.Context(), userClaims.TenantID, param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao remover acesso")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
