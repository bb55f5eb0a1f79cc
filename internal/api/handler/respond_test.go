package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/boraedu/bora-hub-api/infrastructure/storage"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/authenticating"
	"github.com/boraedu/bora-hub-api/internal/usecases/reconciling"
	"github.com/boraedu/bora-hub-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("chamado: %w", domain.ErrNotFound), apiErrors.ErrResourceNotFound},
		{domain.ErrConflict, apiErrors.ErrResourceConflict},
		{domain.ErrInvalidStatusTransition, apiErrors.ErrInvalidTransition},
		{domain.ErrInvalidInput, apiErrors.ErrInvalidRequest},
		{domain.ErrForbidden, apiErrors.ErrInsufficientPrivilege},
		{reconciling.ErrInvalidWebhookToken, apiErrors.ErrInvalidWebhookToken},
		{storage.ErrDisabled, apiErrors.ErrExternalService},
		{&authenticating.AuthError{Err: fmt.Errorf("desativado"), Code: apiErrors.ErrUserDisabled}, apiErrors.ErrUserDisabled},
		{fmt.Errorf("falha qualquer"), apiErrors.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, errorCode(tt.err))
		})
	}
}

func TestWriteServiceErrorHidesInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, newRequest(http.MethodGet, "/", "", nil), fmt.Errorf("pq: conexão recusada"), "Erro ao listar")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Erro ao listar", resp.Message)
}

func TestIntParam(t *testing.T) {
	rec := httptest.NewRecorder()
	_, ok := intParam(rec, newRequest(http.MethodGet, "/", "", nil), "id")

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
}
