package ticketing

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

var now = time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)

type fixture struct {
	service *Service
	tickets *mocks.MockTicketRepository
	tasks   *mocks.MockTaskRepository
	tx      *pgmocks.MockTransactor
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		tickets: mocks.NewMockTicketRepository(ctrl),
		tasks:   mocks.NewMockTaskRepository(ctrl),
		tx:      pgmocks.NewMockTransactor(ctrl),
	}
	f.service = NewService(f.tickets, f.tasks, f.tx).(*Service)
	f.service.now = func() time.Time { return now }
	f.service.newCode = func(prefix string) (string, error) { return prefix + "ABC234", nil }
	return f
}

// inTx executa a função da transação com os mesmos mocks
func (f *fixture) inTx() {
	f.tx.EXPECT().RunInTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sql.Tx) error) error { return fn(nil) }).
		AnyTimes()
	f.tickets.EXPECT().WithTx(gomock.Any()).Return(f.tickets).AnyTimes()
	f.tasks.EXPECT().WithTx(gomock.Any()).Return(f.tasks).AnyTimes()
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("calcula SLA e cria tarefa vinculada", func(t *testing.T) {
		f := newFixture(t)
		f.inTx()

		var createdTask *domain.Task
		f.tasks.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, task *domain.Task) error {
			createdTask = task
			return nil
		})
		f.tickets.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		ticket, err := f.service.Create(ctx, "tenant", 4, &domain.CreateTicketRequest{
			Title:      "Acesso bloqueado",
			Priority:   "urgente",
			AssigneeID: intPtr(9),
		})
		require.NoError(t, err)

		assert.Equal(t, "CH-ABC234", ticket.Code)
		assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
		assert.Equal(t, now.Add(4*time.Hour), ticket.SLADeadline)
		assert.Equal(t, 4, *ticket.RequesterID)

		require.NotNil(t, createdTask)
		assert.Equal(t, createdTask.ID, *ticket.TaskID)
		assert.Equal(t, ticket.ID, *createdTask.TicketID)
		assert.Equal(t, ticket.SLADeadline, *createdTask.DueDate)
		assert.Equal(t, 9, *createdTask.AssigneeID)
		assert.Equal(t, "[CH-ABC234] Acesso bloqueado", createdTask.Title)
		assert.Equal(t, domain.TaskStatusPending, createdTask.Status)
	})

	t.Run("gera novo código em caso de colisão", func(t *testing.T) {
		f := newFixture(t)
		f.inTx()

		codes := []string{"CH-AAAAAA", "CH-BBBBBB"}
		f.service.newCode = func(string) (string, error) {
			code := codes[0]
			codes = codes[1:]
			return code, nil
		}

		f.tasks.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2)
		gomock.InOrder(
			f.tickets.EXPECT().Create(ctx, gomock.Any()).Return(domain.ErrConflict),
			f.tickets.EXPECT().Create(ctx, gomock.Any()).Return(nil),
		)

		ticket, err := f.service.Create(ctx, "tenant", 4, &domain.CreateTicketRequest{Title: "x", Priority: "baixa"})
		require.NoError(t, err)
		assert.Equal(t, "CH-BBBBBB", ticket.Code)
		assert.Equal(t, now.Add(72*time.Hour), ticket.SLADeadline)
	})

	t.Run("prioridade inválida", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.Create(ctx, "tenant", 4, &domain.CreateTicketRequest{Title: "x", Priority: "altissima"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func openTicket() *domain.Ticket {
	created := now.Add(-10 * time.Hour)
	return &domain.Ticket{
		ID:          "t1",
		TenantID:    "tenant",
		Code:        "CH-ABC234",
		Priority:    domain.TicketPriorityMedium,
		Status:      domain.TicketStatusOpen,
		SLADeadline: created.Add(48 * time.Hour),
		TaskID:      strPtr("task-1"),
		CreatedAt:   created,
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("resolver conclui a tarefa vinculada", func(t *testing.T) {
		f := newFixture(t)
		f.inTx()

		f.tickets.EXPECT().GetByID(ctx, "tenant", "t1").Return(openTicket(), nil)
		f.tickets.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		f.tasks.EXPECT().GetByID(ctx, "tenant", "task-1").Return(&domain.Task{ID: "task-1", TenantID: "tenant", Status: domain.TaskStatusInProgress}, nil)
		f.tasks.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, task *domain.Task) error {
			assert.Equal(t, domain.TaskStatusDone, task.Status)
			assert.Equal(t, now, *task.CompletedAt)
			return nil
		})

		ticket, err := f.service.Update(ctx, "tenant", "t1", &domain.UpdateTicketRequest{Status: strPtr("resolvido")})
		require.NoError(t, err)
		assert.Equal(t, domain.TicketStatusResolved, ticket.Status)
		assert.Equal(t, now, *ticket.ResolvedAt)
	})

	t.Run("reabrir devolve a tarefa para pendente", func(t *testing.T) {
		f := newFixture(t)
		f.inTx()

		resolved := openTicket()
		resolved.Status = domain.TicketStatusClosed
		resolvedAt := now.Add(-time.Hour)
		resolved.ResolvedAt = &resolvedAt

		f.tickets.EXPECT().GetByID(ctx, "tenant", "t1").Return(resolved, nil)
		f.tickets.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		f.tasks.EXPECT().GetByID(ctx, "tenant", "task-1").Return(&domain.Task{ID: "task-1", Status: domain.TaskStatusDone, CompletedAt: &resolvedAt}, nil)
		f.tasks.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, task *domain.Task) error {
			assert.Equal(t, domain.TaskStatusPending, task.Status)
			assert.Nil(t, task.CompletedAt)
			return nil
		})

		ticket, err := f.service.Update(ctx, "tenant", "t1", &domain.UpdateTicketRequest{Status: strPtr("aberto")})
		require.NoError(t, err)
		assert.Nil(t, ticket.ResolvedAt)
	})

	t.Run("transição não permitida", func(t *testing.T) {
		f := newFixture(t)
		closed := openTicket()
		closed.Status = domain.TicketStatusClosed
		f.tickets.EXPECT().GetByID(ctx, "tenant", "t1").Return(closed, nil)

		_, err := f.service.Update(ctx, "tenant", "t1", &domain.UpdateTicketRequest{Status: strPtr("em_andamento")})
		assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	})

	t.Run("mudar prioridade recalcula o SLA a partir da abertura", func(t *testing.T) {
		f := newFixture(t)
		f.inTx()

		ticket := openTicket()
		f.tickets.EXPECT().GetByID(ctx, "tenant", "t1").Return(ticket, nil)
		f.tickets.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		f.tasks.EXPECT().GetByID(ctx, "tenant", "task-1").Return(nil, domain.ErrNotFound)

		updated, err := f.service.Update(ctx, "tenant", "t1", &domain.UpdateTicketRequest{Priority: strPtr("urgente")})
		require.NoError(t, err)
		assert.Equal(t, ticket.CreatedAt.Add(4*time.Hour), updated.SLADeadline)
		assert.True(t, updated.Overdue)
	})
}

func TestList_MarcaAtrasados(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	late := openTicket()
	late.SLADeadline = now.Add(-time.Minute)
	onTime := openTicket()
	onTime.ID = "t2"

	f.tickets.EXPECT().List(ctx, "tenant", domain.TicketFilter{Now: now}).Return([]*domain.Ticket{late, onTime}, nil)

	tickets, err := f.service.List(ctx, "tenant", domain.TicketFilter{})
	require.NoError(t, err)
	assert.True(t, tickets[0].Overdue)
	assert.False(t, tickets[1].Overdue)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.inTx()

	f.tickets.EXPECT().GetByID(ctx, "tenant", "t1").Return(openTicket(), nil)
	f.tickets.EXPECT().Delete(ctx, "tenant", "t1").Return(nil)
	f.tasks.EXPECT().Delete(ctx, "tenant", "task-1").Return(domain.ErrNotFound)

	assert.NoError(t, f.service.Delete(ctx, "tenant", "t1"))
}
