package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectRedis_InvalidURL(t *testing.T) {
	client, err := ConnectRedis(context.Background(), "http://localhost:6379")
	require.Error(t, err)
	assert.Nil(t, client)
}

func TestConnectRedis_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := ConnectRedis(ctx, "redis://127.0.0.1:1/0?max_retries=-1&dial_timeout=200ms")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRedisNotReady)
	assert.Nil(t, client)
}

func TestRedisStore_IncrementAndGet_ClientError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client)
	assert.Equal(t, defaultKeyPrefix, store.keyPrefix)

	_, _, err := store.IncrementAndGet(context.Background(), "10.0.0.1", time.Minute)
	assert.Error(t, err)
}
