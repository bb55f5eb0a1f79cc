package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryIdempotencyStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	store := NewMemoryIdempotencyStore()
	store.now = func() time.Time { return now }

	claimed, err := store.Claim(ctx, "asaas:evt_1", time.Hour)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, _ = store.Claim(ctx, "asaas:evt_1", time.Hour)
	assert.False(t, claimed)

	claimed, _ = store.Claim(ctx, "hotmart:evt_1", time.Hour)
	assert.True(t, claimed)

	now = now.Add(time.Hour)
	claimed, _ = store.Claim(ctx, "asaas:evt_1", time.Hour)
	assert.True(t, claimed)

	require.NoError(t, store.Release(ctx, "asaas:evt_1"))
	claimed, _ = store.Claim(ctx, "asaas:evt_1", time.Hour)
	assert.True(t, claimed)
}

type failingStore struct{}

func (failingStore) Claim(context.Context, string, time.Duration) (bool, error) {
	return false, errors.New("indisponível")
}

func (failingStore) Release(context.Context, string) error {
	return errors.New("indisponível")
}

func TestFallbackIdempotencyStore(t *testing.T) {
	ctx := context.Background()
	store := NewFallbackIdempotencyStore(failingStore{}, NewMemoryIdempotencyStore())

	claimed, err := store.Claim(ctx, "evt", time.Minute)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = store.Claim(ctx, "evt", time.Minute)
	require.NoError(t, err)
	assert.False(t, claimed)

	require.NoError(t, store.Release(ctx, "evt"))
	claimed, err = store.Claim(ctx, "evt", time.Minute)
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestRedisIdempotencyStore_FalhaDeConexao(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	store := NewFallbackIdempotencyStore(NewRedisIdempotencyStore(client), NewMemoryIdempotencyStore())

	claimed, err := store.Claim(context.Background(), "evt", time.Minute)
	require.NoError(t, err)
	assert.True(t, claimed)
}
