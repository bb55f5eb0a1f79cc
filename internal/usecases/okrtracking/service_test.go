package okrtracking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	pgmocks "github.com/boraedu/bora-hub-api/infrastructure/database/postgres/mocks"
	"github.com/boraedu/bora-hub-api/infrastructure/repository/mocks"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func strPtr(v string) *string { return &v }

func newService(t *testing.T) (*Service, *mocks.MockOKRRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOKRRepository(ctrl)

	transactor := pgmocks.NewMockTransactor(ctrl)
	transactor.EXPECT().RunInTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sql.Tx) error) error { return fn(nil) }).
		AnyTimes()
	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()

	service := NewService(repo, transactor).(*Service)
	service.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	return service, repo
}

func TestCycleTree(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	repo.EXPECT().GetCycle(ctx, "tenant", "c1").Return(&domain.OKRCycle{ID: "c1", TenantID: "tenant"}, nil)
	repo.EXPECT().ListObjectives(ctx, "tenant", "c1").Return([]*domain.Objective{{ID: "o1"}, {ID: "o2"}, {ID: "o3"}}, nil)
	repo.EXPECT().ListKeyResultsByCycle(ctx, "tenant", "c1").Return([]*domain.KeyResult{
		{ID: "k1", ObjectiveID: "o1", CurrentValue: d("50"), TargetValue: d("100")},
		{ID: "k2", ObjectiveID: "o1", CurrentValue: d("300"), TargetValue: d("100")},
		{ID: "k3", ObjectiveID: "o2", CurrentValue: d("10"), TargetValue: d("0")},
	}, nil)

	cycle, err := service.CycleTree(ctx, "tenant", "c1")
	require.NoError(t, err)

	require.Len(t, cycle.Objectives, 3)
	assert.InDelta(t, 0.75, cycle.Objectives[0].Progress, 1e-9)
	assert.Equal(t, 1.0, cycle.Objectives[0].KeyResults[1].Progress)
	assert.Equal(t, 0.0, cycle.Objectives[1].Progress)
	assert.Empty(t, cycle.Objectives[2].KeyResults)
	assert.InDelta(t, 0.25, cycle.Progress, 1e-9)
}

func TestCreateCycle_DatasInvertidas(t *testing.T) {
	service, _ := newService(t)

	_, err := service.CreateCycle(context.Background(), "tenant", &domain.CreateCycleRequest{
		Name: "Q1", StartDate: "2024-03-31", EndDate: "2024-01-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateCycle_ValidaPeriodoCombinado(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	repo.EXPECT().GetCycle(ctx, "tenant", "c1").Return(&domain.OKRCycle{
		ID:        "c1",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}, nil)

	_, err := service.UpdateCycle(ctx, "tenant", "c1", &domain.UpdateCycleRequest{StartDate: strPtr("2024-04-15")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteCycle_Cascata(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	gomock.InOrder(
		repo.EXPECT().DeleteKeyResultsByCycle(ctx, "tenant", "c1").Return(nil),
		repo.EXPECT().DeleteObjectivesByCycle(ctx, "tenant", "c1").Return(nil),
		repo.EXPECT().DeleteCycle(ctx, "tenant", "c1").Return(domain.ErrNotFound),
	)

	assert.ErrorIs(t, service.DeleteCycle(ctx, "tenant", "c1"), domain.ErrNotFound)
}

func TestCheckIn(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	repo.EXPECT().GetKeyResult(ctx, "tenant", "k1").Return(&domain.KeyResult{ID: "k1", TargetValue: d("200")}, nil)
	repo.EXPECT().UpdateKeyResult(ctx, gomock.Any()).Return(nil)

	kr, err := service.CheckIn(ctx, "tenant", "k1", &domain.CheckInRequest{CurrentValue: d("50")})
	require.NoError(t, err)
	assert.InDelta(t, 0.25, kr.Progress, 1e-9)
}

func TestCreateObjective_CicloInexistente(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	repo.EXPECT().GetCycle(ctx, "tenant", "x").Return(nil, domain.ErrNotFound)

	_, err := service.CreateObjective(ctx, "tenant", &domain.CreateObjectiveRequest{CycleID: "x", Title: "Crescer"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
