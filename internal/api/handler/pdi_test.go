package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/developing/mocks"
	"github.com/boraedu/bora-hub-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetPDIAccess(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		owner      int
		wantStatus int
	}{
		{"admin acessa qualquer PDI", adminClaims, 42, http.StatusOK},
		{"colaborador acessa o próprio", collaboratorClaims, collaboratorClaims.UserID, http.StatusOK},
		{"colaborador não acessa de outro", collaboratorClaims, 42, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockDeveloping(ctrl)

			service.EXPECT().
				Get(gomock.Any(), "tenant-1", "pdi-1").
				Return(&domain.PDI{ID: "pdi-1", CollaboratorID: tt.owner}, nil)

			rec := httptest.NewRecorder()
			GetPDI(service)(rec, newRequest(http.MethodGet, "/v1/pdis/pdi-1", "", tt.claims,
				httprouter.Param{Key: "id", Value: "pdi-1"}))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestListPDIsForcesOwnCollaborator(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDeveloping(ctrl)

	service.EXPECT().
		List(gomock.Any(), "tenant-1", intPtr(collaboratorClaims.UserID), "").
		Return([]*domain.PDI{}, nil)

	rec := httptest.NewRecorder()
	ListPDIs(service)(rec, newRequest(http.MethodGet, "/v1/pdis?collaborator_id=42", "", collaboratorClaims))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRevealAcessoOfAnotherCollaborator(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDeveloping(ctrl)

	service.EXPECT().
		RevealAcesso(gomock.Any(), "tenant-1", "ac-1").
		Return(&domain.PDIAcesso{ID: "ac-1", PDIID: "pdi-1"}, nil)
	service.EXPECT().
		Get(gomock.Any(), "tenant-1", "pdi-1").
		Return(&domain.PDI{ID: "pdi-1", CollaboratorID: 42}, nil)

	rec := httptest.NewRecorder()
	RevealAcesso(service)(rec, newRequest(http.MethodGet, "/v1/pdi-acessos/ac-1/reveal", "", collaboratorClaims,
		httprouter.Param{Key: "id", Value: "ac-1"}))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeError(t, rec).Code)
}
