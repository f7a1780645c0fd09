package teamcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Slim0909/nhl-bets/pkg/models"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is where the team list lives in Redis
const DefaultRedisKey = "nhl:teams"

// RedisStore keeps the team list as a JSON value in Redis, so several
// instances share one copy and expiry is enforced by Redis itself.
type RedisStore struct {
	redis *redis.Client
	key   string
}

// NewRedisStore creates a Redis-backed store
func NewRedisStore(redisClient *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{
		redis: redisClient,
		key:   key,
	}
}

// Get reads the team list, reporting false when the key is absent
func (s *RedisStore) Get(ctx context.Context) ([]models.Team, bool, error) {
	data, err := s.redis.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var teams []models.Team
	if err := json.Unmarshal(data, &teams); err != nil {
		// Corrupt entry, treat as a miss so it gets overwritten
		return nil, false, nil
	}
	return teams, true, nil
}

// Set writes the team list. A ttl <= 0 stores it without expiry.
func (s *RedisStore) Set(ctx context.Context, teams []models.Team, ttl time.Duration) error {
	data, err := json.Marshal(teams)
	if err != nil {
		return fmt.Errorf("marshal teams: %w", err)
	}

	if ttl < 0 {
		ttl = 0
	}
	if err := s.redis.Set(ctx, s.key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes the key
func (s *RedisStore) Delete(ctx context.Context) error {
	if err := s.redis.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
