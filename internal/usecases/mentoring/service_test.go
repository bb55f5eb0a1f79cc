package mentoring

import (
	"context"
	"database/sql"
	"testing"
	"time"

	pgmocks "github.com/boraedu/bora-hub-api/infrastructure/database/postgres/mocks"
	"github.com/boraedu/bora-hub-api/infrastructure/repository/mocks"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (*Service, *mocks.MockMentoriaRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMentoriaRepository(ctrl)

	transactor := pgmocks.NewMockTransactor(ctrl)
	transactor.EXPECT().RunInTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sql.Tx) error) error { return fn(nil) }).
		AnyTimes()
	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()

	service := NewService(repo, transactor).(*Service)
	service.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return service, repo
}

func TestBoard(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	repo.EXPECT().GetProcesso(ctx, "tenant", "p1").Return(&domain.MentoriaProcesso{ID: "p1", TenantID: "tenant"}, nil)
	repo.EXPECT().ListEtapas(ctx, "tenant", "p1").Return([]*domain.MentoriaEtapa{{ID: "e1"}, {ID: "e2"}}, nil)
	repo.EXPECT().ListTarefasByProcesso(ctx, "tenant", "p1").Return([]*domain.MentoriaTarefa{
		{ID: "t1", EtapaID: "e1", Status: domain.TaskStatusDone},
		{ID: "t2", EtapaID: "e1", Status: domain.TaskStatusPending},
		{ID: "t3", EtapaID: "e2", Status: domain.TaskStatusDone},
		{ID: "t4", EtapaID: "e2", Status: domain.TaskStatusDone},
	}, nil)

	processo, err := service.Board(ctx, "tenant", "p1")
	require.NoError(t, err)

	require.Len(t, processo.Etapas, 2)
	assert.Equal(t, 0.5, processo.Etapas[0].Progress)
	assert.Equal(t, 1.0, processo.Etapas[1].Progress)
	assert.Equal(t, 0.75, processo.Progress)
}

func TestMoveTarefa_EntreEtapas(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	moving := &domain.MentoriaTarefa{ID: "t1", EtapaID: "e1", Status: domain.TaskStatusPending, Position: 0}
	repo.EXPECT().GetTarefa(ctx, "tenant", "t1").Return(moving, nil)
	repo.EXPECT().GetEtapa(ctx, "tenant", "e2").Return(&domain.MentoriaEtapa{ID: "e2"}, nil)
	repo.EXPECT().ListTarefas(ctx, "tenant", "e2").Return([]*domain.MentoriaTarefa{
		{ID: "t4", EtapaID: "e2", Position: 0},
	}, nil)
	repo.EXPECT().ListTarefas(ctx, "tenant", "e1").Return([]*domain.MentoriaTarefa{
		{ID: "t1", EtapaID: "e1", Position: 0},
		{ID: "t2", EtapaID: "e1", Position: 1},
		{ID: "t3", EtapaID: "e1", Position: 2},
	}, nil)

	positions := map[string]int{}
	repo.EXPECT().UpdateTarefa(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tarefa *domain.MentoriaTarefa) error {
		positions[tarefa.ID] = tarefa.Position
		return nil
	}).Times(4)

	tarefa, err := service.MoveTarefa(ctx, "tenant", "t1", &domain.MoveTarefaRequest{
		EtapaID:  "e2",
		Status:   "em_andamento",
		Position: 0,
	})
	require.NoError(t, err)

	assert.Equal(t, "e2", tarefa.EtapaID)
	assert.Equal(t, domain.TaskStatusInProgress, tarefa.Status)
	assert.Equal(t, map[string]int{"t1": 0, "t4": 1, "t2": 0, "t3": 1}, positions)
}

func TestMoveTarefa_MesmaEtapaPosicaoForaDoLimite(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	repo.EXPECT().GetTarefa(ctx, "tenant", "t1").Return(&domain.MentoriaTarefa{ID: "t1", EtapaID: "e1", Position: 0}, nil)
	repo.EXPECT().ListTarefas(ctx, "tenant", "e1").Return([]*domain.MentoriaTarefa{
		{ID: "t1", EtapaID: "e1", Position: 0},
		{ID: "t2", EtapaID: "e1", Position: 1},
	}, nil)

	positions := map[string]int{}
	repo.EXPECT().UpdateTarefa(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tarefa *domain.MentoriaTarefa) error {
		positions[tarefa.ID] = tarefa.Position
		return nil
	}).Times(2)

	tarefa, err := service.MoveTarefa(ctx, "tenant", "t1", &domain.MoveTarefaRequest{Status: "concluida", Position: 10})
	require.NoError(t, err)

	assert.Equal(t, 1, tarefa.Position)
	assert.Equal(t, map[string]int{"t1": 1, "t2": 0}, positions)
}

func TestMoveTarefa_StatusInvalido(t *testing.T) {
	service, _ := newService(t)

	_, err := service.MoveTarefa(context.Background(), "tenant", "t1", &domain.MoveTarefaRequest{Status: "arquivada"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteProcesso_Cascata(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	gomock.InOrder(
		repo.EXPECT().DeleteTarefasByProcesso(ctx, "tenant", "p1").Return(nil),
		repo.EXPECT().DeleteEtapasByProcesso(ctx, "tenant", "p1").Return(nil),
		repo.EXPECT().DeleteProcesso(ctx, "tenant", "p1").Return(nil),
	)

	assert.NoError(t, service.DeleteProcesso(ctx, "tenant", "p1"))
}

func TestCreateTarefa_AoFinalDaEtapa(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	repo.EXPECT().GetEtapa(ctx, "tenant", "e1").Return(&domain.MentoriaEtapa{ID: "e1"}, nil)
	repo.EXPECT().ListTarefas(ctx, "tenant", "e1").Return([]*domain.MentoriaTarefa{{ID: "t1"}, {ID: "t2"}}, nil)
	repo.EXPECT().CreateTarefa(ctx, gomock.Any()).Return(nil)

	due := "2024-05-20"
	tarefa, err := service.CreateTarefa(ctx, "tenant", &domain.CreateTarefaRequest{EtapaID: "e1", Title: "Gravar aula", DueDate: &due})
	require.NoError(t, err)

	assert.Equal(t, 2, tarefa.Position)
	assert.Equal(t, domain.TaskStatusPending, tarefa.Status)
	require.NotNil(t, tarefa.DueDate)
	assert.Equal(t, 20, tarefa.DueDate.Day())
}
