package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/braetspilscafeen/go-catalog-backend/internal/auth/domain"
)

const profileKeyPrefix = "catalog:profile:" // catalog:profile:{email}

// ProfileCache keeps resolved profiles in Redis so a busy client does
// not hit the Users collection on every request. Entries expire after a
// short TTL; an admin-flag change in the store is visible at most one
// TTL later or immediately after Invalidate.
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProfileCache(client *redis.Client, ttl time.Duration) *ProfileCache {
	return &ProfileCache{client: client, ttl: ttl}
}

// Get returns the cached profile, or (nil, nil) on a miss. Cache errors
// are returned to the caller, who treats them as misses.
func (c *ProfileCache) Get(ctx context.Context, email string) (*domain.Profile, error) {
	data, err := c.client.Get(ctx, profileKeyPrefix+email).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var p domain.Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Set caches a resolved profile with the configured TTL.
func (c *ProfileCache) Set(ctx context.Context, p *domain.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, profileKeyPrefix+p.Email, data, c.ttl).Err()
}

// Invalidate drops a cached profile.
func (c *ProfileCache) Invalidate(ctx context.Context, email string) error {
	return c.client.Del(ctx, profileKeyPrefix+email).Err()
}
