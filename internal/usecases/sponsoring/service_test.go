package sponsoring

import (
	"context"
	"testing"
	"time"

	"github.com/boraedu/bora-hub-api/infrastructure/repository/mocks"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (*Service, *mocks.MockSponsorshipRepository) {
	repo := mocks.NewMockSponsorshipRepository(gomock.NewController(t))
	service := NewService(repo).(*Service)
	service.now = func() time.Time { return time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC) }
	return service, repo
}

func strPtr(v string) *string { return &v }

func TestCreate(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	sponsorship, err := service.Create(ctx, "tenant", &domain.CreateSponsorshipRequest{
		Sponsor:   "Banco Azul",
		Value:     decimal.NewFromInt(15000),
		StartDate: strPtr("2024-08-01"),
		EndDate:   strPtr("2024-12-31"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SponsorshipStatusProspecting, sponsorship.Status)
}

func TestCreate_Invalido(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, "tenant", &domain.CreateSponsorshipRequest{Sponsor: "X", Value: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = service.Create(ctx, "tenant", &domain.CreateSponsorshipRequest{Sponsor: "X", Status: "assinado"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = service.Create(ctx, "tenant", &domain.CreateSponsorshipRequest{
		Sponsor:   "X",
		StartDate: strPtr("2024-08-01"),
		EndDate:   strPtr("2024-07-01"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPipeline(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	repo.EXPECT().List(ctx, "tenant", domain.SponsorshipStatus(""), domain.Period{}).Return([]*domain.Sponsorship{
		{Status: domain.SponsorshipStatusNegotiating, Value: decimal.NewFromInt(1000)},
		{Status: domain.SponsorshipStatusNegotiating, Value: decimal.RequireFromString("500.50")},
		{Status: domain.SponsorshipStatusClosed, Value: decimal.NewFromInt(8000)},
	}, nil)

	stages, err := service.Pipeline(ctx, "tenant", domain.Period{})
	require.NoError(t, err)

	require.Len(t, stages, 4)
	assert.Equal(t, 0, stages[0].Count)
	assert.True(t, stages[0].Value.IsZero())
	assert.Equal(t, 2, stages[1].Count)
	assert.Equal(t, "1500.5", stages[1].Value.String())
	assert.Equal(t, 1, stages[2].Count)
	assert.Equal(t, 0, stages[3].Count)
}

func TestUpdate_StatusFechado(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	repo.EXPECT().GetByID(ctx, "tenant", "s1").Return(&domain.Sponsorship{ID: "s1", Status: domain.SponsorshipStatusNegotiating}, nil)
	repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	sponsorship, err := service.Update(ctx, "tenant", "s1", &domain.UpdateSponsorshipRequest{Status: strPtr("fechado")})
	require.NoError(t, err)
	assert.Equal(t, domain.SponsorshipStatusClosed, sponsorship.Status)
}
