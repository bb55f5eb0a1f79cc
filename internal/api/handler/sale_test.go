package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/selling/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListCommissionsScope(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		target     string
		wantSeller *int
	}{
		{"admin sem filtro", adminClaims, "/v1/commissions", nil},
		{"admin filtra vendedor", adminClaims, "/v1/commissions?seller_id=5", intPtr(5)},
		{"colaborador vê apenas as próprias", collaboratorClaims, "/v1/commissions?seller_id=5", intPtr(collaboratorClaims.UserID)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockSelling(ctrl)

			service.EXPECT().
				ListCommissions(gomock.Any(), "tenant-1", gomock.Any()).
				DoAndReturn(func(_ any, _ string, filter domain.CommissionFilter) ([]*domain.Commission, error) {
					assert.Equal(t, tt.wantSeller, filter.SellerID)
					return []*domain.Commission{}, nil
				})

			rec := httptest.NewRecorder()
			ListCommissions(service)(rec, newRequest(http.MethodGet, tt.target, "", tt.claims))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestCommissionSummaryInvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSelling(ctrl)

	rec := httptest.NewRecorder()
	CommissionSummary(service)(rec, newRequest(http.MethodGet, "/v1/commissions/summary?start_date=01-02-2025", "", adminClaims))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListSalesNotFoundMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSelling(ctrl)

	service.EXPECT().ListSales(gomock.Any(), "tenant-1", gomock.Any()).Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	ListSales(service)(rec, newRequest(http.MethodGet, "/v1/sales", "", adminClaims))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func intPtr(v int) *int { return &v }
