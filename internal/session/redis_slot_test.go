// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis returns a client for POKEDEX_TEST_REDIS_ADDR (default
// localhost:6379) or skips the test when no server answers.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	addr := os.Getenv("POKEDEX_TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("redis not available at %s: %v", addr, err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisSlot_RoundTrip(t *testing.T) {
	client := setupTestRedis(t)
	slot := NewRedisSlotWithClient(client, "pokedex-test:")
	ctx := context.Background()
	require.NoError(t, slot.Delete(ctx))

	_, err := slot.Get(ctx)
	assert.ErrorIs(t, err, ErrSlotEmpty)

	require.NoError(t, slot.Put(ctx, "redis-token"))
	v, err := slot.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "redis-token", v)

	raw, err := client.Get(ctx, "pokedex-test:token").Result()
	require.NoError(t, err)
	assert.Equal(t, "redis-token", raw)

	require.NoError(t, slot.Delete(ctx))
	require.NoError(t, slot.Delete(ctx))
	_, err = slot.Get(ctx)
	assert.ErrorIs(t, err, ErrSlotEmpty)

	require.NoError(t, slot.Close(), "borrowed client stays open")
	assert.NoError(t, client.Ping(ctx).Err())
}

func TestRedisSlot_UnreachableServer(t *testing.T) {
	slot := NewRedisSlot(RedisOptions{Addr: "127.0.0.1:1", Prefix: "x:"})
	defer slot.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	s := NewStore(slot)
	err := s.Initialize(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSlotEmpty)
	assert.False(t, s.HasSession())
}
