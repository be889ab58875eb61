// Package redis provides Redis-backed implementations of the state
// persistence port and the bearer-token source.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// TokenKey is the fixed key the bearer token is stored under.
const TokenKey = "storefront:auth-token"

// Config holds Redis connection configuration.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Dial creates a Redis client and verifies the connection.
func Dial(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// Store persists state blobs in Redis, one value per key. It implements
// store.Persister.
type Store struct {
	client *redis.Client
}

// NewStore creates a Redis-backed persistence adapter.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Load returns the value stored under key, if any.
func (s *Store) Load(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return raw, true, nil
}

// Save stores value under key without expiry.
func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// TokenSource reads the bearer token from Redis. The token store is
// written by the upstream auth flow; this SDK only reads it. A missing
// token yields the empty string, which the catalog client treats as
// "send the request unauthenticated".
type TokenSource struct {
	client *redis.Client
	key    string
}

// NewTokenSource creates a token source reading from key; an empty key
// selects TokenKey.
func NewTokenSource(client *redis.Client, key string) *TokenSource {
	if key == "" {
		key = TokenKey
	}
	return &TokenSource{client: client, key: key}
}

// Token implements catalog.TokenSource.
func (t *TokenSource) Token(ctx context.Context) (string, error) {
	token, err := t.client.Get(ctx, t.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", t.key, err)
	}
	return token, nil
}
