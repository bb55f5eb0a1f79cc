package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/pkg/apiErrors"
	"github.com/boraedu/bora-hub-api/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
)

var (
	adminClaims        = &domain.Claims{UserID: 1, TenantID: "tenant-1", UserRoleID: domain.RoleAdmin}
	collaboratorClaims = &domain.Claims{UserID: 9, TenantID: "tenant-1", UserRoleID: domain.RoleCollaborator}
)

// newRequest monta a requisição com claims e parâmetros de rota já no contexto
func newRequest(method, target, body string, claims *domain.Claims, params ...httprouter.Param) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	ctx := req.Context()
	if claims != nil {
		ctx = context.WithValue(ctx, middleware.ContextKeyUser, claims)
	}
	if len(params) > 0 {
		ctx = context.WithValue(ctx, httprouter.ParamsKey, httprouter.Params(params))
	}
	return req.WithContext(ctx)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var resp apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
