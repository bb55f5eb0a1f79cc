package publishing

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

var now = time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*Service, *mocks.MockContentRepository) {
	repo := mocks.NewMockContentRepository(gomock.NewController(t))
	service := NewService(repo).(*Service)
	service.now = func() time.Time { return now }
	return service, repo
}

func strPtr(v string) *string { return &v }

func TestCreate(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	post, err := service.Create(ctx, "tenant", &domain.CreatePostRequest{
		Title:       "Bastidores da imersão",
		Network:     "instagram",
		Format:      "reels",
		ScheduledAt: "2024-06-10T18:00:00-03:00",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PostStatusIdea, post.Status)
	assert.Nil(t, post.PublishedAt)
	assert.Equal(t, 21, post.ScheduledAt.UTC().Hour())

	_, err = service.Create(ctx, "tenant", &domain.CreatePostRequest{Title: "x", ScheduledAt: "amanhã"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_PublicarRegistraData(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	post := &domain.ContentPost{ID: "p1", Status: domain.PostStatusScheduled}
	repo.EXPECT().GetByID(ctx, "tenant", "p1").Return(post, nil)
	repo.EXPECT().Update(ctx, post).Return(nil)

	updated, err := service.Update(ctx, "tenant", "p1", &domain.UpdatePostRequest{Status: strPtr("publicado")})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	assert.Equal(t, now, *updated.PublishedAt)
	assert.Equal(t, now, updated.UpdatedAt)
}

func TestUpdate_VoltarStatusLimpaPublicacao(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	published := now.Add(-time.Hour)
	repo.EXPECT().GetByID(ctx, "tenant", "p1").Return(&domain.ContentPost{ID: "p1", Status: domain.PostStatusPublished, PublishedAt: &published}, nil)
	repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	updated, err := service.Update(ctx, "tenant", "p1", &domain.UpdatePostRequest{Status: strPtr("aprovacao")})
	require.NoError(t, err)
	assert.Nil(t, updated.PublishedAt)
}

func TestList_StatusInvalido(t *testing.T) {
	service, _ := newService(t)

	_, err := service.List(context.Background(), "tenant", domain.PostFilter{Status: "rascunho"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
