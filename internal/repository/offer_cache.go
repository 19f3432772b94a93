package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/job-board/internal/domain"
)

// ErrCacheMiss reports that no cached listing is available.
var ErrCacheMiss = errors.New("offer listing not cached")

// ListingCache caches the public offer listing. Best effort: callers treat
// every failure as a miss.
type ListingCache interface {
	Get(ctx context.Context) ([]domain.JobOffer, error)
	Set(ctx context.Context, offers []domain.JobOffer) error
	Invalidate(ctx context.Context) error
}

const (
	listingCacheKey = "offers:listing"
	listingCacheTTL = 30 * time.Second
)

type redisListingCache struct {
	client *redis.Client
}

// NewListingCache returns a Redis-backed listing cache.
func NewListingCache(client *redis.Client) ListingCache {
	return &redisListingCache{client: client}
}

func (c *redisListingCache) Get(ctx context.Context) ([]domain.JobOffer, error) {
	payload, err := c.client.Get(ctx, listingCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var offers []domain.JobOffer
	if err := json.Unmarshal(payload, &offers); err != nil {
		return nil, ErrCacheMiss
	}
	return offers, nil
}

func (c *redisListingCache) Set(ctx context.Context, offers []domain.JobOffer) error {
	payload, err := json.Marshal(offers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listingCacheKey, payload, listingCacheTTL).Err()
}

func (c *redisListingCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, listingCacheKey).Err()
}
