package session_cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

const filterKeyPrefix = "storefront:filters:"

// RedisFilterStateRepository stores selections as JSON with a sliding expiry.
type RedisFilterStateRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFilterStateRepository(client *redis.Client, ttl time.Duration) *RedisFilterStateRepository {
	return &RedisFilterStateRepository{client: client, ttl: ttl}
}

func (r *RedisFilterStateRepository) Load(ctx context.Context, sessionID string) (models.FilterState, bool, error) {
	raw, err := r.client.Get(ctx, filterKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.FilterState{}, false, nil
	}
	if err != nil {
		return models.FilterState{}, false, fmt.Errorf("load filters: %w", err)
	}

	var filters models.FilterState
	if err := json.Unmarshal(raw, &filters); err != nil {
		return models.FilterState{}, false, fmt.Errorf("decode filters: %w", err)
	}
	if _, ok := models.FindSortOption(filters.ActiveSortOptionID); !ok {
		filters.ActiveSortOptionID = models.DefaultSortOptionID()
	}
	return filters, true, nil
}

func (r *RedisFilterStateRepository) Save(ctx context.Context, sessionID string, filters models.FilterState) error {
	raw, err := json.Marshal(filters)
	if err != nil {
		return fmt.Errorf("encode filters: %w", err)
	}
	if err := r.client.Set(ctx, filterKeyPrefix+sessionID, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("save filters: %w", err)
	}
	return nil
}
