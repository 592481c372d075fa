package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bookmarkd/bookmarkd/internal/model"
)

const (
	// userCachePrefix is the Redis key prefix for cached user profiles.
	userCachePrefix = "user:profile:"
	// userCacheTTL is the time-to-live for cached profiles.
	userCacheTTL = 5 * time.Minute
)

// cachedUser is the profile shape stored in Redis.
// The password hash is deliberately absent: it never enters the cache.
type cachedUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetUser retrieves a cached user profile by user ID.
// Returns nil if not found (cache miss).
func (c *Cache) GetUser(ctx context.Context, userID string) (*model.User, error) {
	key := userCachePrefix + userID

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// Cache miss is not an error
		return nil, nil //nolint:nilerr
	}

	var cached cachedUser
	if err := json.Unmarshal(data, &cached); err != nil {
		// Corrupted cache entry - treat as miss
		return nil, nil //nolint:nilerr
	}

	return &model.User{
		ID:        cached.ID,
		Email:     cached.Email,
		FirstName: cached.FirstName,
		LastName:  cached.LastName,
		CreatedAt: cached.CreatedAt,
		UpdatedAt: cached.UpdatedAt,
	}, nil
}

// SetUser caches a user profile.
func (c *Cache) SetUser(ctx context.Context, user *model.User) error {
	key := userCachePrefix + user.ID

	cached := cachedUser{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("marshal user profile: %w", err)
	}

	return c.client.Set(ctx, key, data, userCacheTTL).Err()
}

// DeleteUser removes a cached user profile.
// Used when a profile is updated.
func (c *Cache) DeleteUser(ctx context.Context, userID string) error {
	key := userCachePrefix + userID
	return c.client.Del(ctx, key).Err()
}
