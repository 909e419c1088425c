// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisOptions configures a RedisSlot.
type RedisOptions struct {
	Addr   string
	DB     int
	Prefix string
}

// RedisSlot stores the value under <prefix>token with no expiry; the API
// decides when a token is stale.
type RedisSlot struct {
	client redis.UniversalClient
	key    string
	owned  bool
}

// NewRedisSlot dials lazily; errors surface on first use.
func NewRedisSlot(opts RedisOptions) *RedisSlot {
	client := redis.NewClient(&redis.Options{
		Addr: opts.Addr,
		DB:   opts.DB,
	})
	s := NewRedisSlotWithClient(client, opts.Prefix)
	s.owned = true
	return s
}

// NewRedisSlotWithClient wraps an existing client. Close leaves it open.
func NewRedisSlotWithClient(client redis.UniversalClient, prefix string) *RedisSlot {
	if prefix == "" {
		prefix = "pokedex:"
	}
	return &RedisSlot{client: client, key: prefix + tokenKey}
}

// Key returns the redis key holding the token.
func (r *RedisSlot) Key() string { return r.key }

func (r *RedisSlot) Get(ctx context.Context) (string, error) {
	value, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSlotEmpty
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return value, nil
}

func (r *RedisSlot) Put(ctx context.Context, value string) error {
	if err := r.client.Set(ctx, r.key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *RedisSlot) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (r *RedisSlot) Close() error {
	if r.owned {
		return r.client.Close()
	}
	return nil
}
