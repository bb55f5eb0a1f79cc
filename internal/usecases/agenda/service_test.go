package agenda

import (
	"context"
	"testing"
	"time"

	"github.com/boraedu/bora-hub-api/infrastructure/repository/mocks"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (*Service, *mocks.MockEventRepository) {
	repo := mocks.NewMockEventRepository(gomock.NewController(t))
	service := NewService(repo).(*Service)
	service.now = func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) }
	return service, repo
}

func strPtr(v string) *string { return &v }

func TestCreate(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	event, err := service.Create(ctx, "tenant", 7, &domain.CreateEventRequest{
		Title:   "Live de lançamento",
		Type:    "live",
		StartAt: "2024-06-12T20:00:00Z",
		EndAt:   "2024-06-12T22:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, *event.CreatedBy)
	assert.Equal(t, 2*time.Hour, event.EndAt.Sub(event.StartAt))
}

func TestCreate_FimAntesDoInicio(t *testing.T) {
	service, _ := newService(t)

	_, err := service.Create(context.Background(), "tenant", 7, &domain.CreateEventRequest{
		Title:   "Reunião",
		Type:    "reuniao",
		StartAt: "2024-06-12T20:00:00Z",
		EndAt:   "2024-06-12T19:00:00Z",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_ValidaIntervaloResultante(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	repo.EXPECT().GetByID(ctx, "tenant", "e1").Return(&domain.Event{
		ID:      "e1",
		StartAt: time.Date(2024, 6, 12, 20, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2024, 6, 12, 22, 0, 0, 0, time.UTC),
	}, nil)

	_, err := service.Update(ctx, "tenant", "e1", &domain.UpdateEventRequest{StartAt: strPtr("2024-06-13")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_DiaInteiro(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	repo.EXPECT().GetByID(ctx, "tenant", "e1").Return(&domain.Event{ID: "e1"}, nil)
	repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	allDay := true
	event, err := service.Update(ctx, "tenant", "e1", &domain.UpdateEventRequest{
		StartAt: strPtr("2024-06-20"),
		EndAt:   strPtr("2024-06-20"),
		AllDay:  &allDay,
	})
	require.NoError(t, err)
	assert.True(t, event.AllDay)
	assert.True(t, event.StartAt.Equal(event.EndAt))
}
