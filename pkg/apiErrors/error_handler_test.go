package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrInvalidTransition, "Transição não permitida", map[string]string{"from": "fechado"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrInvalidTransition, body.Code)
	assert.Equal(t, "Transição não permitida", body.Message)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusFor(ErrResourceNotFound))
	assert.Equal(t, http.StatusConflict, StatusFor(ErrResourceConflict))
	assert.Equal(t, http.StatusBadGateway, StatusFor(ErrExternalService))
	assert.Equal(t, http.StatusInternalServerError, StatusFor("DESCONHECIDO"))
}

func TestWriteErrorDefaultMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrExpiredToken, "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Token expirado", body.Message)
	assert.Nil(t, body.Details)
}
