package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/bookmarkd/bookmarkd/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

// ResetTables truncates all application tables so each test starts clean.
// Bookmarks go first to satisfy the owner foreign key.
func ResetTables(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec("TRUNCATE TABLE bookmarks RESTART IDENTITY").Error; err != nil {
		return fmt.Errorf("truncate bookmarks: %w", err)
	}
	if err := db.WithContext(ctx).Exec("TRUNCATE TABLE users CASCADE").Error; err != nil {
		return fmt.Errorf("truncate users: %w", err)
	}
	return nil
}

// FlushRedis clears the current Redis database.
func FlushRedis(ctx context.Context, client *redis.Client) error {
	return client.FlushDB(ctx).Err()
}

// ============================================================================
// Test Data Factories
// ============================================================================

// NewTestUser creates a test user with sensible defaults.
func NewTestUser(t testing.TB, email string) *model.User {
	t.Helper()
	now := time.Now().UTC()
	return &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=4$dGVzdHNhbHQ$dGVzdGhhc2g",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewTestBookmark creates a test bookmark owned by userID.
func NewTestBookmark(t testing.TB, userID, title string) *model.Bookmark {
	t.Helper()
	now := time.Now().UTC()
	return &model.Bookmark{
		UserID:    userID,
		Title:     title,
		Link:      "https://example.com/" + title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UniqueEmail generates a unique email address for tests.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}
