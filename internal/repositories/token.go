package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/kanban-board-api/internal/logger"
)

// AccessTokenRepository keeps the set of live access tokens in Redis.
// A token is live while its key exists.
type AccessTokenRepository struct {
	client *redis.Client
}

func NewAccessTokenRepository(client *redis.Client) *AccessTokenRepository {
	return &AccessTokenRepository{client: client}
}

func accessTokenKey(tokenID string) string {
	return fmt.Sprintf("access_token:%s", tokenID)
}

// Save registers tokenID for userID until exp elapses.
func (r *AccessTokenRepository) Save(ctx context.Context, tokenID string, userID uuid.UUID, exp time.Duration) error {
	key := accessTokenKey(tokenID)
	err := r.client.Set(ctx, key, userID.String(), exp).Err()

	logger.Log.Infow("redis set",
		"key", key,
		"exp", exp,
		"error", err,
	)
	return err
}

// Exists reports whether tokenID is still live.
func (r *AccessTokenRepository) Exists(ctx context.Context, tokenID string) (bool, error) {
	key := accessTokenKey(tokenID)
	n, err := r.client.Exists(ctx, key).Result()

	logger.Log.Infow("redis exists",
		"key", key,
		"result", n,
		"error", err,
	)
	return n > 0, err
}

// Delete revokes tokenID and reports whether it was live.
func (r *AccessTokenRepository) Delete(ctx context.Context, tokenID string) (bool, error) {
	key := accessTokenKey(tokenID)
	n, err := r.client.Del(ctx, key).Result()

	logger.Log.Infow("redis del",
		"key", key,
		"result", n,
		"error", err,
	)
	return n > 0, err
}
