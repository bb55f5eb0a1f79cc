package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/boraedu/bora-hub-api/internal/api/handler"
	"github.com/boraedu/bora-hub-api/internal/config"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/authenticating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator struct {
	authenticating.Authenticator
	claims *domain.Claims
}

func (s stubAuthenticator) ValidateToken(string) (*domain.Claims, error) {
	return s.claims, nil
}

type stubCronJob struct{ runs int }

func (s *stubCronJob) TriggerManualSync()        { s.runs++ }
func (s *stubCronJob) GetStatus() map[string]any { return map[string]any{} }

func newTestServer(t *testing.T, claims *domain.Claims, cron *stubCronJob) http.Handler {
	t.Helper()
	srv, err := New(&config.Config{}, Services{
		Authenticator: stubAuthenticator{claims: claims},
		CronJobs:      handler.CronJobServices{PaymentSync: cron},
	})
	require.NoError(t, err)
	return srv.Handler()
}

func TestServerRoutes(t *testing.T) {
	admin := &domain.Claims{UserID: 1, TenantID: "tenant-1", UserRoleID: domain.RoleAdmin}
	collaborator := &domain.Claims{UserID: 9, TenantID: "tenant-1", UserRoleID: domain.RoleCollaborator}

	tests := []struct {
		name       string
		claims     *domain.Claims
		method     string
		path       string
		token      bool
		wantStatus int
	}{
		{"healthcheck é público", nil, http.MethodGet, "/healthcheck", false, http.StatusOK},
		{"rota protegida sem token", admin, http.MethodGet, "/v1/tickets", false, http.StatusUnauthorized},
		{"colaborador não lista usuários", collaborator, http.MethodGet, "/v1/users", true, http.StatusForbidden},
		{"colaborador não dispara cron", collaborator, http.MethodPost, "/v1/cron/payment-sync/run", true, http.StatusForbidden},
		{"admin dispara cron", admin, http.MethodPost, "/v1/cron/payment-sync/run", true, http.StatusAccepted},
		{"rota inexistente", admin, http.MethodGet, "/v1/insights", true, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cron := &stubCronJob{}
			h := newTestServer(t, tt.claims, cron)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token {
				req.Header.Set("Authorization", "Bearer token")
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusAccepted {
				assert.Equal(t, 1, cron.runs)
			}
		})
	}
}
