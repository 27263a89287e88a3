package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeRedisKV struct {
	setKey string
	setVal interface{}
	setTTL time.Duration
	exists []string
	dels   []string

	setErr    error
	existsErr error
	delErr    error
	existsN   int64
}

func (f *fakeRedisKV) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.setKey = key
	f.setVal = value
	f.setTTL = expiration
	cmd := redis.NewStatusCmd(ctx)
	if f.setErr != nil {
		cmd.SetErr(f.setErr)
		return cmd
	}
	cmd.SetVal("OK")
	return cmd
}

func (f *fakeRedisKV) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	f.exists = keys
	cmd := redis.NewIntCmd(ctx)
	if f.existsErr != nil {
		cmd.SetErr(f.existsErr)
		return cmd
	}
	cmd.SetVal(f.existsN)
	return cmd
}

func (f *fakeRedisKV) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.dels = keys
	cmd := redis.NewIntCmd(ctx)
	if f.delErr != nil {
		cmd.SetErr(f.delErr)
		return cmd
	}
	cmd.SetVal(1)
	return cmd
}

func TestMemoryRefreshTokenStore_StoreAndExpiry(t *testing.T) {
	store := NewMemoryRefreshTokenStore()

	ok, err := store.Exists("unknown-jti")
	if err != nil || ok {
		t.Fatalf("unknown jti must be false,nil; got %v,%v", ok, err)
	}

	if err := store.Store("jti-access-1", "client-1", 50*time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ok, err = store.Exists("jti-access-1")
	if err != nil || !ok {
		t.Fatalf("stored jti must exist, got %v,%v", ok, err)
	}

	// Pasado el TTL el jti deja de ser valido.
	time.Sleep(70 * time.Millisecond)
	ok, err = store.Exists("jti-access-1")
	if err != nil || ok {
		t.Fatalf("expired jti must be gone, got %v,%v", ok, err)
	}
}

func TestMemoryRefreshTokenStore_Revoke(t *testing.T) {
	store := NewMemoryRefreshTokenStore()

	// Un jti vacio no registra nada: el par JWT nunca emite jti vacios,
	// pero el store no debe fallar si llega uno.
	if err := store.Store("", "client-1", time.Minute); err != nil {
		t.Fatalf("empty jti must be a no-op, got %v", err)
	}

	if err := store.Store("jti-access-2", "client-1", time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Revoke("jti-access-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ok, err := store.Exists("jti-access-2")
	if err != nil || ok {
		t.Fatalf("revoked jti must be gone, got %v,%v", ok, err)
	}
}

func TestRedisRefreshTokenStore_KeysAndClientID(t *testing.T) {
	kv := &fakeRedisKV{existsN: 1}
	store := &redisRefreshTokenStore{
		client: kv,
		prefix: "auth:refresh:",
	}

	if err := store.Store(" jti-rot-1 ", "client-1", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kv.setKey != "auth:refresh:jti-rot-1" {
		t.Fatalf("jti must be trimmed before prefixing, got %q", kv.setKey)
	}
	// El valor guardado es el client id del par emitido.
	if kv.setVal != "client-1" {
		t.Fatalf("expected client id as value, got %v", kv.setVal)
	}
	if kv.setTTL <= 0 {
		t.Fatalf("zero TTL must fall back to a positive default, got %v", kv.setTTL)
	}

	ok, err := store.Exists(" jti-rot-1 ")
	if err != nil || !ok {
		t.Fatalf("expected exists true,nil; got %v,%v", ok, err)
	}
	if len(kv.exists) != 1 || kv.exists[0] != "auth:refresh:jti-rot-1" {
		t.Fatalf("unexpected exists key: %+v", kv.exists)
	}

	if err := store.Revoke(" jti-rot-1 "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(kv.dels) != 1 || kv.dels[0] != "auth:refresh:jti-rot-1" {
		t.Fatalf("unexpected del key: %+v", kv.dels)
	}
}

func TestRedisRefreshTokenStore_ErrorsPropagate(t *testing.T) {
	kv := &fakeRedisKV{
		setErr:    errors.New("set failed"),
		existsErr: errors.New("exists failed"),
		delErr:    errors.New("del failed"),
	}
	store := &redisRefreshTokenStore{
		client: kv,
		prefix: "auth:refresh:",
	}

	// Jti vacio: no-op silencioso, sin tocar redis.
	if err := store.Store("", "client-1", time.Minute); err != nil {
		t.Fatalf("empty jti must be a no-op, got %v", err)
	}
	ok, err := store.Exists("")
	if err != nil || ok {
		t.Fatalf("empty jti exists must be false,nil; got %v,%v", ok, err)
	}
	if err := store.Revoke(""); err != nil {
		t.Fatalf("empty jti revoke must be a no-op, got %v", err)
	}

	if err := store.Store("jti-err", "client-1", time.Minute); err == nil {
		t.Fatal("expected set error to propagate")
	}
	if _, err := store.Exists("jti-err"); err == nil {
		t.Fatal("expected exists error to propagate")
	}
	if err := store.Revoke("jti-err"); err == nil {
		t.Fatal("expected del error to propagate")
	}
}
