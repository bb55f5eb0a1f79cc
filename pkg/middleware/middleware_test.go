package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/pkg/apiErrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

type stubValidator struct {
	claims *domain.Claims
	err    error
}

func (s stubValidator) ValidateToken(string) (*domain.Claims, error) {
	return s.claims, s.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	validClaims := &domain.Claims{UserID: 7, TenantID: "tenant-1", UserRoleID: domain.RoleManager}

	tests := []struct {
		name       string
		path       string
		header     string
		validator  stubValidator
		wantStatus int
	}{
		{"rota pública", "/v1/login", "", stubValidator{}, http.StatusOK},
		{"webhook não exige JWT", "/v1/webhooks/asaas", "", stubValidator{}, http.StatusOK},
		{"sem header", "/v1/tickets", "", stubValidator{}, http.StatusUnauthorized},
		{"sem bearer", "/v1/tickets", "Token abc", stubValidator{}, http.StatusUnauthorized},
		{"token inválido", "/v1/tickets", "Bearer abc", stubValidator{err: errors.New("expirado")}, http.StatusUnauthorized},
		{"token sem tenant", "/v1/tickets", "Bearer abc", stubValidator{claims: &domain.Claims{UserID: 1}}, http.StatusUnauthorized},
		{"token válido", "/v1/tickets", "Bearer abc", stubValidator{claims: validClaims}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	chain := func(claims *domain.Claims) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/integrations", nil)
		req.Header.Set("Authorization", "Bearer abc")
		rec := httptest.NewRecorder()
		AuthMiddleware(stubValidator{claims: claims})(AdminOnly()(okHandler())).ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, chain(&domain.Claims{TenantID: "t", UserRoleID: domain.RoleAdmin}).Code)
	assert.Equal(t, http.StatusForbidden, chain(&domain.Claims{TenantID: "t", UserRoleID: domain.RoleCollaborator}).Code)

	rec := httptest.NewRecorder()
	AllRoles()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:5173"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/tickets", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/tickets", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingMiddlewarePropagatesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()

	LoggingMiddleware()(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falhou")
	})
	rec := httptest.NewRecorder()

	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/tickets", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec := httptest.NewRecorder()

	validator := stubValidator{err: fmt.Errorf("token expirado: %w", jwt.ErrTokenExpired)}
	AuthMiddleware(validator)(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrExpiredToken)
}
