package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/boraedu/bora-hub-api/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

const keyPrefix = "bora:webhook:"

// IdempotencyStore registra eventos já recebidos.
// Claim devolve true apenas para a primeira chamada com a mesma chave dentro do TTL.
// Release libera a chave quando o processamento falha, permitindo a reentrega.
type IdempotencyStore interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// NewIdempotencyStore usa o Redis quando habilitado, com fallback em memória
func NewIdempotencyStore(cfg *config.Config) IdempotencyStore {
	memory := NewMemoryIdempotencyStore()
	if !cfg.Redis.Enabled {
		logrus.Info("Redis desabilitado, idempotência de webhooks em memória")
		return memory
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logrus.Warnf("Redis indisponível em %s: %v. Usando fallback em memória até reconectar", cfg.Redis.Addr, err)
	}

	return NewFallbackIdempotencyStore(NewRedisIdempotencyStore(client), memory)
}

type RedisIdempotencyStore struct {
	client *redis.Client
}

func NewRedisIdempotencyStore(client *redis.Client) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{client: client}
}

// Claim usa SETNX com TTL numa única operação atômica
func (s *RedisIdempotencyStore) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	claimed, err := s.client.SetNX(ctx, keyPrefix+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("erro ao registrar evento no Redis: %w", err)
	}
	return claimed, nil
}

func (s *RedisIdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("erro ao liberar evento no Redis: %w", err)
	}
	return nil
}

func (s *RedisIdempotencyStore) Close() error {
	return s.client.Close()
}

type MemoryIdempotencyStore struct {
	mutex   sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemoryIdempotencyStore() *MemoryIdempotencyStore {
	return &MemoryIdempotencyStore{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryIdempotencyStore) Claim(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()
	if expiresAt, ok := s.entries[key]; ok && now.Before(expiresAt) {
		return false, nil
	}

	s.entries[key] = now.Add(ttl)
	s.evictExpired(now)
	return true, nil
}

func (s *MemoryIdempotencyStore) Release(_ context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.entries, key)
	return nil
}

func (s *MemoryIdempotencyStore) evictExpired(now time.Time) {
	for key, expiresAt := range s.entries {
		if !now.Before(expiresAt) {
			delete(s.entries, key)
		}
	}
}

// FallbackIdempotencyStore consulta o primário e recorre ao secundário quando ele falha
type FallbackIdempotencyStore struct {
	primary  IdempotencyStore
	fallback IdempotencyStore
}

func NewFallbackIdempotencyStore(primary, fallback IdempotencyStore) *FallbackIdempotencyStore {
	return &FallbackIdempotencyStore{primary: primary, fallback: fallback}
}

func (s *FallbackIdempotencyStore) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	claimed, err := s.primary.Claim(ctx, key, ttl)
	if err == nil {
		return claimed, nil
	}

	logrus.WithFields(logrus.Fields{
		"key":   key,
		"error": err,
	}).Warn("Falha no armazenamento de idempotência, usando memória")
	return s.fallback.Claim(ctx, key, ttl)
}

// Release libera nos dois armazenamentos; a chave pode ter sido registrada em qualquer um deles
func (s *FallbackIdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.primary.Release(ctx, key); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err,
		}).Warn("Falha ao liberar chave no armazenamento de idempotência")
	}
	return s.fallback.Release(ctx, key)
}
