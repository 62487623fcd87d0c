package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniRedis(t *testing.T) *miniredis.Miniredis {
	mr := miniredis.RunT(t)
	UseClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	return mr
}

func TestLockIsExclusiveUntilReleased(t *testing.T) {
	setupMiniRedis(t)
	ctx := context.Background()

	ok, err := TryLock(ctx, "lock:test", "owner-a", time.Minute, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = TryLock(ctx, "lock:test", "owner-b", time.Minute, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	UnLock(ctx, "lock:test", "owner-b")
	value, err := GetValue(ctx, "lock:test")
	require.NoError(t, err)
	assert.Equal(t, "owner-a", value)

	UnLock(ctx, "lock:test", "owner-a")
	ok, err = TryLock(ctx, "lock:test", "owner-b", time.Minute, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSetMembersWithExpirationReplacesSet(t *testing.T) {
	mr := setupMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, AddToSet(ctx, "s", "stale"))
	require.NoError(t, SetMembersWithExpiration(ctx, "s", []interface{}{"1", "2"}, time.Hour))

	members, err := GetSet(ctx, "s")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "2"}, members)
	assert.Equal(t, time.Hour, mr.TTL("s"))
}

func TestGetValueMissingKey(t *testing.T) {
	setupMiniRedis(t)
	value, err := GetValue(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestRenameMissingKeyFails(t *testing.T) {
	setupMiniRedis(t)
	assert.Error(t, Rename(context.Background(), "nope", "nope:processing"))
}
