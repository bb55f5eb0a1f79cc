package developing

import (
	"context"
	"testing"
	"time"

	"github.com/boraedu/bora-hub-api/infrastructure/repository/mocks"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/pkg/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, 4, 2, 8, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*Service, *mocks.MockPDIRepository) {
	repo := mocks.NewMockPDIRepository(gomock.NewController(t))
	service := NewService(repo, crypto.NewSecretBox("segredo-de-teste")).(*Service)
	service.now = func() time.Time { return now }
	return service, repo
}

func TestGet_Progresso(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	repo.EXPECT().GetByID(ctx, "tenant", "p1").Return(&domain.PDI{ID: "p1"}, nil)
	repo.EXPECT().ListAulas(ctx, "tenant", "p1").Return([]*domain.PDIAula{
		{ID: "a1", Completed: true}, {ID: "a2"}, {ID: "a3"}, {ID: "a4", Completed: true},
	}, nil)
	repo.EXPECT().ListAcessos(ctx, "tenant", "p1").Return([]*domain.PDIAcesso{}, nil)

	pdi, err := service.Get(ctx, "tenant", "p1")
	require.NoError(t, err)
	assert.Equal(t, 0.5, pdi.Progress)
}

func TestAcesso_CifraERevela(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	var stored *domain.PDIAcesso
	repo.EXPECT().GetByID(ctx, "tenant", "p1").Return(&domain.PDI{ID: "p1"}, nil)
	repo.EXPECT().CreateAcesso(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, acesso *domain.PDIAcesso) error {
		stored = acesso
		return nil
	})

	acesso, err := service.AddAcesso(ctx, "tenant", "p1", &domain.CreateAcessoRequest{
		Platform: "Alura", Login: "ana@bora.com", Password: "s3nh@",
	})
	require.NoError(t, err)
	assert.Empty(t, acesso.Password)
	assert.NotEqual(t, "s3nh@", stored.PasswordEncrypted)

	repo.EXPECT().GetAcesso(ctx, "tenant", stored.ID).Return(&domain.PDIAcesso{
		ID: stored.ID, PasswordEncrypted: stored.PasswordEncrypted,
	}, nil)

	revealed, err := service.RevealAcesso(ctx, "tenant", stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "s3nh@", revealed.Password)
}

func TestRevealAcesso_ChaveDiferente(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	encrypted, err := crypto.NewSecretBox("outra-chave").Encrypt("s3nh@")
	require.NoError(t, err)

	repo.EXPECT().GetAcesso(ctx, "tenant", "x").Return(&domain.PDIAcesso{ID: "x", PasswordEncrypted: encrypted}, nil)

	_, err = service.RevealAcesso(ctx, "tenant", "x")
	assert.ErrorIs(t, err, crypto.ErrDecrypt)
}

func TestCompleteAula(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	repo.EXPECT().GetAula(ctx, "tenant", "a1").Return(&domain.PDIAula{ID: "a1"}, nil)
	repo.EXPECT().UpdateAula(ctx, gomock.Any()).Return(nil)

	aula, err := service.CompleteAula(ctx, "tenant", "a1", &domain.CompleteAulaRequest{Completed: true})
	require.NoError(t, err)
	assert.True(t, aula.Completed)
	assert.Equal(t, now, *aula.CompletedAt)
}

func TestCreate_PeriodoInvalido(t *testing.T) {
	service, _ := newService(t)

	_, err := service.Create(context.Background(), "tenant", &domain.CreatePDIRequest{
		CollaboratorID: 1, Title: "Liderança", StartDate: "2024-05-01", EndDate: "2024-04-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
