package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/target/finance-web/internal/domain/auth"
	"github.com/target/finance-web/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	session := domainauth.Session{
		ID:        "test-session-1",
		Username:  "admin",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}

	require.NoError(t, store.Save(ctx, session))

	retrieved, err := store.Get(ctx, "test-session-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
	assert.Equal(t, session.Username, retrieved.Username)
	assert.WithinDuration(t, session.ExpiresAt, retrieved.ExpiresAt, time.Second)

	ttl := client.TTL(ctx, "session:test-session-1").Val()
	assert.Greater(t, ttl, 29*time.Minute)
}

func TestSessionStore_GetNonExistent(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)

	_, err := store.Get(context.Background(), "non-existent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	session := domainauth.Session{
		ID:        "test-session-delete",
		Username:  "admin",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}

	require.NoError(t, store.Save(ctx, session))

	_, err := store.Get(ctx, "test-session-delete")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "test-session-delete"))

	_, err = store.Get(ctx, "test-session-delete")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, store.Delete(ctx, ""), "deleting nothing is not an error")
}

func TestSessionStore_TTLExpiration(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	session := domainauth.Session{
		ID:        "test-session-ttl",
		Username:  "admin",
		ExpiresAt: time.Now().Add(100 * time.Millisecond),
	}

	require.NoError(t, store.Save(ctx, session))

	time.Sleep(200 * time.Millisecond)

	_, err := store.Get(ctx, "test-session-ttl")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_ExpiredByClockIsRemoved(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	now := time.Now()
	session := domainauth.Session{
		ID:        "test-session-clock",
		Username:  "admin",
		ExpiresAt: now.Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, session))

	// Redis still holds the key, but the store's clock is past the expiry.
	store.now = testutil.FixedTimeFunc(now.Add(2 * time.Hour))

	_, err := store.Get(ctx, "test-session-clock")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int64(0), client.Exists(ctx, "session:test-session-clock").Val())
}

func TestSessionStore_CustomPrefix(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStoreWithPrefix(client, "test-prefix:")
	ctx := context.Background()

	session := domainauth.Session{
		ID:        "prefix-test",
		Username:  "admin",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}

	require.NoError(t, store.Save(ctx, session))

	exists := client.Exists(ctx, "test-prefix:prefix-test").Val()
	assert.Equal(t, int64(1), exists)

	retrieved, err := store.Get(ctx, "prefix-test")
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
}

func TestSessionStore_SaveEmptyID(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)

	err := store.Save(context.Background(), domainauth.Session{
		Username:  "admin",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session ID cannot be empty")
}

func TestSessionStore_SaveExpiredSession(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)

	err := store.Save(context.Background(), domainauth.Session{
		ID:        "expired-session",
		Username:  "admin",
		ExpiresAt: time.Now().Add(-1 * time.Hour),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session is expired")
}

func TestSessionStore_GetEmptyID(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)

	_, err := store.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}
