package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// IdempotencyStore deduplica submissions reintentadas. Lookup devuelve el id
// de la evaluacion ya creada con esa key, si existe; Store asocia la key con
// un id recien creado por una ventana de tiempo.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (uuid.UUID, bool)
	Store(ctx context.Context, key string, id uuid.UUID) error
}

type redisStringCmder interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

type redisIdempotencyStore struct {
	client redisStringCmder
	ttl    time.Duration
	prefix string
}

func NewRedisIdempotencyStore(client *redis.Client, ttl time.Duration) IdempotencyStore {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &redisIdempotencyStore{
		client: client,
		ttl:    ttl,
		prefix: "idem:",
	}
}

func (s *redisIdempotencyStore) Lookup(ctx context.Context, key string) (uuid.UUID, bool) {
	if s == nil || s.client == nil {
		return uuid.Nil, false
	}
	normalized := strings.TrimSpace(key)
	if normalized == "" {
		return uuid.Nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	raw, err := s.client.Get(ctx, s.prefix+normalized).Result()
	if err != nil {
		// redis.Nil es un miss normal; cualquier otro error tambien abre
		// el paso (fail-open) para no bloquear submissions por un redis caido.
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (s *redisIdempotencyStore) Store(ctx context.Context, key string, id uuid.UUID) error {
	if s == nil || s.client == nil {
		return nil
	}
	normalized := strings.TrimSpace(key)
	if normalized == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	return s.client.SetNX(ctx, s.prefix+normalized, id.String(), s.ttl).Err()
}
