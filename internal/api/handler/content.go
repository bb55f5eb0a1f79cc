package handler

import (
	"net/http"

	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/publishing"
	"github.com/sirupsen/logrus"
)

func CreatePost(service publishing.Publishing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreatePost")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.CreatePostRequest
		if !decodeBody(w, r, &req) {
			return
		}

		post, err := service.Create(r.Context(), userClaims.TenantID, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar conteúdo")
			return
		}

		writeJSON(w, http.StatusCreated, post)
	}
}

// ListPosts filtra o calendário por período, rede e status
func ListPosts(service publishing.Publishing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		period, ok := periodQuery(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		posts, err := service.List(r.Context(), userClaims.TenantID, domain.PostFilter{
			Period:  period,
			Network: query.Get("network"),
			Status:  domain.PostStatus(query.Get("status")),
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar conteúdos")
			return
		}

		writeJSON(w, http.StatusOK, posts)
	}
}

func GetPost(service publishing.Publishing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		post, err := service.Get(r.Context(), userClaims.TenantID, param(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar conteúdo")
			return
		}

		writeJSON(w, http.StatusOK, post)
	}
}

func UpdatePost(service publishing.Publishing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdatePost")

		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.UpdatePostRequest
		if !decodeBody(w, r, &req) {
			return
		}

		post, err := service.Update(r.Context(), userClaims.TenantID, param(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar conteúdo")
			return
		}

		writeJSON(w, http.StatusOK, post)
	}
}

func DeletePost(service publishing.Publishing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), userClaims.TenantID, param(r, "id")); err != nil {
			writeServiceError(w, r, err, "Erro ao remover conteúdo")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
