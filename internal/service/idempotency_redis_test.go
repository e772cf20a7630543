package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type mockStringCmder struct {
	values   map[string]string
	getErr   error
	setErr   error
	lastTTL  time.Duration
	lastKey  string
	setCalls int
}

func (m *mockStringCmder) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if m.getErr != nil {
		cmd.SetErr(m.getErr)
		return cmd
	}
	val, ok := m.values[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(val)
	return cmd
}

func (m *mockStringCmder) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolCmd(ctx)
	m.lastKey = key
	m.lastTTL = expiration
	m.setCalls++
	if m.setErr != nil {
		cmd.SetErr(m.setErr)
		return cmd
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, exists := m.values[key]; !exists {
		m.values[key] = value.(string)
		cmd.SetVal(true)
	} else {
		cmd.SetVal(false)
	}
	return cmd
}

func TestRedisIdempotencyStoreNilClient(t *testing.T) {
	if store := NewRedisIdempotencyStore(nil, time.Hour); store != nil {
		t.Fatalf("expected nil store without client")
	}
}

func TestRedisIdempotencyStoreRoundTrip(t *testing.T) {
	mock := &mockStringCmder{}
	store := &redisIdempotencyStore{client: mock, ttl: time.Hour, prefix: "idem:"}
	id := uuid.New()

	if _, ok := store.Lookup(context.Background(), "key-1"); ok {
		t.Fatalf("expected miss before store")
	}
	if err := store.Store(context.Background(), " key-1 ", id); err != nil {
		t.Fatalf("store: %v", err)
	}
	if mock.lastKey != "idem:key-1" {
		t.Fatalf("expected trimmed prefixed key, got %q", mock.lastKey)
	}
	if mock.lastTTL != time.Hour {
		t.Fatalf("expected ttl propagated, got %v", mock.lastTTL)
	}

	got, ok := store.Lookup(context.Background(), "key-1")
	if !ok || got != id {
		t.Fatalf("expected stored id back, got %v ok=%v", got, ok)
	}
}

func TestRedisIdempotencyStoreEmptyKeyIgnored(t *testing.T) {
	mock := &mockStringCmder{}
	store := &redisIdempotencyStore{client: mock, ttl: time.Hour, prefix: "idem:"}

	if _, ok := store.Lookup(context.Background(), "   "); ok {
		t.Fatalf("expected empty key to miss")
	}
	if err := store.Store(context.Background(), "", uuid.New()); err != nil {
		t.Fatalf("expected empty key store to be a no-op, got %v", err)
	}
	if mock.setCalls != 0 {
		t.Fatalf("expected no redis call for empty key")
	}
}

func TestRedisIdempotencyStoreFailOpenOnErrors(t *testing.T) {
	mock := &mockStringCmder{getErr: errors.New("redis down")}
	store := &redisIdempotencyStore{client: mock, ttl: time.Hour, prefix: "idem:"}

	if _, ok := store.Lookup(context.Background(), "key"); ok {
		t.Fatalf("expected fail-open miss on redis error")
	}

	mock = &mockStringCmder{setErr: errors.New("redis down")}
	store = &redisIdempotencyStore{client: mock, ttl: time.Hour, prefix: "idem:"}
	if err := store.Store(context.Background(), "key", uuid.New()); err == nil {
		t.Fatalf("expected store error surfaced to caller")
	}
}

func TestRedisIdempotencyStoreGarbageValueIsMiss(t *testing.T) {
	mock := &mockStringCmder{values: map[string]string{"idem:key": "not-a-uuid"}}
	store := &redisIdempotencyStore{client: mock, ttl: time.Hour, prefix: "idem:"}

	if _, ok := store.Lookup(context.Background(), "key"); ok {
		t.Fatalf("expected non-uuid value to be treated as miss")
	}
}
