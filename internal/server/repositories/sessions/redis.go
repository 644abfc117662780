package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/recipesearch/recipesearch/internal/common"
	"github.com/recipesearch/recipesearch/internal/server/models"
	"github.com/redis/go-redis/v9"
)

type redisSession struct {
	UserID    int64  `json:"user_id"`
	UserName  string `json:"username"`
	ExpiresAt int64  `json:"expires_at"`
}

// RedisRepository keeps each session under session:<id> with a TTL matching
// its expiry, so Redis drops expired sessions on its own.
type RedisRepository struct {
	redis *redis.Client
}

func NewRedisRepository(rds *redis.Client) *RedisRepository {
	return &RedisRepository{redis: rds}
}

func (r *RedisRepository) Create(ctx context.Context, s *models.Session) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	b, err := json.Marshal(redisSession{UserID: s.UserID, UserName: s.UserName, ExpiresAt: s.ExpiresAt.Unix()})
	if err != nil {
		return err
	}

	if err := r.redis.Set(ctx, r.key(s.ID), b, ttl).Err(); err != nil {
		return fmt.Errorf("redis error: %w", err)
	}

	return nil
}

func (r *RedisRepository) Find(ctx context.Context, id string) (*models.Session, error) {
	b, err := r.redis.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("redis error: %w", err)
	}

	var rs redisSession
	if err := json.Unmarshal(b, &rs); err != nil {
		return nil, fmt.Errorf("corrupt session %s: %w", id, err)
	}

	return &models.Session{
		ID:        id,
		UserID:    rs.UserID,
		UserName:  rs.UserName,
		ExpiresAt: time.Unix(rs.ExpiresAt, 0),
	}, nil
}

func (r *RedisRepository) Delete(ctx context.Context, id string) error {
	if err := r.redis.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("redis error: %w", err)
	}
	return nil
}

// DeleteExpired is a no-op: keys expire through their TTL.
func (r *RedisRepository) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (r *RedisRepository) key(id string) string {
	return "session:" + id
}
