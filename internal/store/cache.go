package store

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/teejay382/jobtolk-search/model"
	"github.com/teejay382/jobtolk-search/services"
)

// CachedSource decorates a services.Source with a short-TTL Redis
// read-through cache keyed on the structured filter only. The scoring
// core never caches; this sits strictly behind the coarse-fetch
// contract, and cache errors degrade to a direct fetch rather than a
// failed search.
type CachedSource struct {
	inner  services.Source
	client *redis.Client
	ttl    time.Duration
}

// NewCachedSource wraps inner with a Redis cache. redisURL is parsed
// and connectivity verified up front.
func NewCachedSource(ctx context.Context, inner services.Source, redisURL string, ttl time.Duration) (*CachedSource, error) {
	if inner == nil {
		return nil, fmt.Errorf("inner source cannot be nil")
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &CachedSource{inner: inner, client: client, ttl: ttl}, nil
}

// Close releases the Redis client.
func (c *CachedSource) Close() error {
	return c.client.Close()
}

// FetchJobs implements services.JobSource with a read-through cache.
func (c *CachedSource) FetchJobs(ctx context.Context, filter services.CoarseFilter, limit int) ([]model.Job, error) {
	key := cacheKey("jobs", filter, limit)

	var cached []model.Job
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}

	jobs, err := c.inner.FetchJobs(ctx, filter, limit)
	if err != nil {
		return nil, err
	}
	c.put(ctx, key, jobs)
	return jobs, nil
}

// FetchProfiles implements services.ProfileSource with a read-through
// cache.
func (c *CachedSource) FetchProfiles(ctx context.Context, filter services.CoarseFilter, limit int) ([]model.FreelancerProfile, error) {
	key := cacheKey("freelancers", filter, limit)

	var cached []model.FreelancerProfile
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}

	profiles, err := c.inner.FetchProfiles(ctx, filter, limit)
	if err != nil {
		return nil, err
	}
	c.put(ctx, key, profiles)
	return profiles, nil
}

// lookup reads and decodes a cache entry, reporting whether it hit.
// Any Redis or decode problem counts as a miss.
func (c *CachedSource) lookup(ctx context.Context, key string, dest any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Warning: cache lookup for %s failed: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("Warning: cache entry %s is corrupt, ignoring: %v", key, err)
		return false
	}
	return true
}

// put stores a cache entry; failures are logged and otherwise ignored.
func (c *CachedSource) put(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("Warning: failed to encode cache entry %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("Warning: failed to store cache entry %s: %v", key, err)
	}
}

// cacheKey derives a stable key from the entity kind and the structured
// filter. The free-text query is deliberately not part of the key.
func cacheKey(kind string, filter services.CoarseFilter, limit int) string {
	payload, _ := json.Marshal(struct {
		Filter services.CoarseFilter `json:"filter"`
		Limit  int                   `json:"limit"`
	}{filter, limit})
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("search:coarse:%s:%x", kind, sum[:8])
}
