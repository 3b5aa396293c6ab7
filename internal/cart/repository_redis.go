package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepository keeps each cart as a JSON list under cart:<session>, so
// line order survives a round trip.
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRepository(client *redis.Client, ttl time.Duration) *RedisRepository {
	return &RedisRepository{client: client, ttl: ttl}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

func (r *RedisRepository) Get(ctx context.Context, sessionID string) ([]Item, error) {
	raw, err := r.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart %s: %w", sessionID, err)
	}
	return items, nil
}

func (r *RedisRepository) Save(ctx context.Context, sessionID string, items []Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, cartKey(sessionID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (r *RedisRepository) Clear(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
