package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/podcast-network/internal/logger"
)

const oauthStatePrefix = "oauth_state:"

// OAuthStateRepository keeps pending OAuth state values in Redis until they are consumed or expire.
type OAuthStateRepository struct {
	client *redis.Client
}

// NewOAuthStateRepository creates a new OAuthStateRepository
func NewOAuthStateRepository(client *redis.Client) *OAuthStateRepository {
	return &OAuthStateRepository{client: client}
}

// Save stores state for ttl.
func (r *OAuthStateRepository) Save(ctx context.Context, state string, ttl time.Duration) error {
	key := oauthStatePrefix + state
	err := r.client.Set(ctx, key, time.Now().Unix(), ttl).Err()

	logger.Log.Infow("oauth state saved", "ttl", ttl, "error", err)

	return err
}

// Consume deletes state and reports whether it was present. A state can be consumed once.
func (r *OAuthStateRepository) Consume(ctx context.Context, state string) (bool, error) {
	key := oauthStatePrefix + state
	err := r.client.GetDel(ctx, key).Err()
	if errors.Is(err, redis.Nil) {
		logger.Log.Infow("oauth state unknown or expired")
		return false, nil
	}

	logger.Log.Infow("oauth state consumed", "error", err)

	if err != nil {
		return false, err
	}
	return true, nil
}
