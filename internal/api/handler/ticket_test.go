package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/ticketing/mocks"
	"github.com/boraedu/bora-hub-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateTicket(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockTicketing(ctrl)

	t.Run("cria chamado do usuário logado", func(t *testing.T) {
		service.EXPECT().
			Create(gomock.Any(), "tenant-1", 1, gomock.Any()).
			DoAndReturn(func(_ any, _ string, _ int, req *domain.CreateTicketRequest) (*domain.Ticket, error) {
				assert.Equal(t, "Impressora", req.Title)
				return &domain.Ticket{ID: "t-1", Code: "TCK-0001", Title: req.Title}, nil
			})

		rec := httptest.NewRecorder()
		CreateTicket(service)(rec, newRequest(http.MethodPost, "/v1/tickets", `{"title":"Impressora","priority":"alta"}`, adminClaims))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var ticket domain.Ticket
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ticket))
		assert.Equal(t, "TCK-0001", ticket.Code)
	})

	t.Run("prioridade inválida", func(t *testing.T) {
		rec := httptest.NewRecorder()
		CreateTicket(service)(rec, newRequest(http.MethodPost, "/v1/tickets", `{"title":"Impressora","priority":"imediata"}`, adminClaims))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("json malformado", func(t *testing.T) {
		rec := httptest.NewRecorder()
		CreateTicket(service)(rec, newRequest(http.MethodPost, "/v1/tickets", `{"title":`, adminClaims))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("sem autenticação", func(t *testing.T) {
		rec := httptest.NewRecorder()
		CreateTicket(service)(rec, newRequest(http.MethodPost, "/v1/tickets", `{}`, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestListTickets(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockTicketing(ctrl)

	t.Run("aplica filtros", func(t *testing.T) {
		service.EXPECT().
			List(gomock.Any(), "tenant-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, filter domain.TicketFilter) ([]*domain.Ticket, error) {
				assert.Equal(t, domain.TicketStatusOpen, filter.Status)
				require.NotNil(t, filter.AssigneeID)
				assert.Equal(t, 4, *filter.AssigneeID)
				assert.True(t, filter.Overdue)
				return []*domain.Ticket{{ID: "t-1"}}, nil
			})

		rec := httptest.NewRecorder()
		ListTickets(service)(rec, newRequest(http.MethodGet, "/v1/tickets?status=aberto&assignee_id=4&overdue=true", "", adminClaims))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("status desconhecido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ListTickets(service)(rec, newRequest(http.MethodGet, "/v1/tickets?status=perdido", "", adminClaims))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateTicketTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockTicketing(ctrl)

	service.EXPECT().
		Update(gomock.Any(), "tenant-1", "t-1", gomock.Any()).
		Return(nil, domain.ErrInvalidStatusTransition)

	rec := httptest.NewRecorder()
	UpdateTicket(service)(rec, newRequest(http.MethodPut, "/v1/tickets/t-1", `{"status":"aberto"}`, adminClaims,
		httprouter.Param{Key: "id", Value: "t-1"}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidTransition, decodeError(t, rec).Code)
}

func TestDeleteTicket(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockTicketing(ctrl)

	service.EXPECT().Delete(gomock.Any(), "tenant-1", "t-1").Return(nil)

	rec := httptest.NewRecorder()
	DeleteTicket(service)(rec, newRequest(http.MethodDelete, "/v1/tickets/t-1", "", adminClaims,
		httprouter.Param{Key: "id", Value: "t-1"}))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
