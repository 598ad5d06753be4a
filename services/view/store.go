package view

import (
	"context"
	"encoding/json"
	"fmt"

	"availcal/models"
	"availcal/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists view sessions between state transitions.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.ViewSession, error)
	Save(ctx context.Context, sess *models.ViewSession) error
}

// RedisSessionStore keeps sessions as JSON with an idle TTL.
type RedisSessionStore struct {
	Client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.ViewSession, error) {
	data, err := s.Client.Get(ctx, utils.SessionCachePrefix+id).Result()
	if err != nil {
		return nil, fmt.Errorf("view session not found or expired")
	}
	var sess models.ViewSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse view session: %w", err)
	}
	return &sess, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *models.ViewSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal view session: %w", err)
	}
	if err := s.Client.Set(ctx, utils.SessionCachePrefix+sess.ID, data, utils.SessionCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to store view session: %w", err)
	}
	return nil
}
