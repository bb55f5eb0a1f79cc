package tasking

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

var now = time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*Service, *mocks.MockTaskRepository) {
	repo := mocks.NewMockTaskRepository(gomock.NewController(t))
	service := NewService(repo).(*Service)
	service.now = func() time.Time { return now }
	return service, repo
}

func strPtr(v string) *string { return &v }

func TestCreate(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	task, err := service.Create(ctx, "tenant", 3, &domain.CreateTaskRequest{Title: "Revisar contrato", DueDate: strPtr("2024-05-10")})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusPending, task.Status)
	assert.Equal(t, "media", task.Priority)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), *task.DueDate)
	assert.Equal(t, 3, *task.CreatedBy)

	_, err = service.Create(ctx, "tenant", 3, &domain.CreateTaskRequest{Title: "x", DueDate: strPtr("10/05/2024")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_Status(t *testing.T) {
	ctx := context.Background()

	t.Run("concluir preenche completed_at", func(t *testing.T) {
		service, repo := newService(t)
		repo.EXPECT().GetByID(ctx, "tenant", "1").Return(&domain.Task{ID: "1", Status: domain.TaskStatusInProgress}, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		task, err := service.Update(ctx, "tenant", "1", &domain.UpdateTaskRequest{Status: strPtr("concluida")})
		require.NoError(t, err)
		assert.Equal(t, now, *task.CompletedAt)
	})

	t.Run("voltar para pendente limpa completed_at", func(t *testing.T) {
		service, repo := newService(t)
		done := now.Add(-time.Hour)
		repo.EXPECT().GetByID(ctx, "tenant", "1").Return(&domain.Task{ID: "1", Status: domain.TaskStatusDone, CompletedAt: &done}, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		task, err := service.Update(ctx, "tenant", "1", &domain.UpdateTaskRequest{Status: strPtr("pendente"), DueDate: strPtr("")})
		require.NoError(t, err)
		assert.Nil(t, task.CompletedAt)
		assert.Nil(t, task.DueDate)
	})

	t.Run("status desconhecido", func(t *testing.T) {
		service, repo := newService(t)
		repo.EXPECT().GetByID(ctx, "tenant", "1").Return(&domain.Task{ID: "1"}, nil)

		_, err := service.Update(ctx, "tenant", "1", &domain.UpdateTaskRequest{Status: strPtr("arquivada")})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
