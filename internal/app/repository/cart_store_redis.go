package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// redisCartStore keeps each user's cart as a JSON value with a rolling TTL,
// so an abandoned cart expires with the visit.
type redisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) CartStore {
	return &redisCartStore{client: client, ttl: ttl}
}

func cartKey(userID uint) string {
	return fmt.Sprintf("cart:%d", userID)
}

func (s *redisCartStore) Get(ctx context.Context, userID uint) ([]model.CartLine, error) {
	raw, err := s.client.Get(ctx, cartKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed to read cart from redis", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	var lines []model.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		// malformed value is treated as an absent cart
		logger.Warn("Discarding malformed cart value", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, nil
	}
	return lines, nil
}

func (s *redisCartStore) Put(ctx context.Context, userID uint, lines []model.CartLine) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, cartKey(userID), raw, s.ttl).Err(); err != nil {
		logger.Error("Failed to write cart to redis", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}
	return nil
}

func (s *redisCartStore) Clear(ctx context.Context, userID uint) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		logger.Error("Failed to clear cart in redis", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}
	return nil
}
