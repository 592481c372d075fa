package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bookmarkd/bookmarkd/internal/metrics"
	"github.com/bookmarkd/bookmarkd/internal/model"
	"github.com/bookmarkd/bookmarkd/internal/repository"
)

// ErrUserNotFound indicates the token subject no longer resolves to a user.
var ErrUserNotFound = errors.New("user not found")

// ProfileCache caches user profiles keyed by user ID.
// Implemented by *cache.Cache. Nil disables caching.
type ProfileCache interface {
	GetUser(ctx context.Context, userID string) (*model.User, error)
	SetUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, userID string) error
}

// UserService handles profile reads and edits.
type UserService struct {
	users   UserStore
	cache   ProfileCache
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore, cache ProfileCache, logger *slog.Logger, recorder metrics.Recorder) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		users:   users,
		cache:   cache,
		logger:  logger,
		metrics: recorder,
	}
}

// Profile returns the profile of the given user, cache-first.
func (s *UserService) Profile(ctx context.Context, userID string) (*model.User, error) {
	if s.cache != nil {
		cached, _ := s.cache.GetUser(ctx, userID)
		if cached != nil {
			s.metrics.IncProfileCacheHit()
			return cached, nil
		}
		s.metrics.IncProfileCacheMiss()
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetUser(ctx, user); err != nil {
			// Cache failures must not fail the read path.
			s.logger.Warn("failed to cache user profile", "user_id", userID, "error", err)
		}
	}

	return user, nil
}

// UpdateProfileInput defines a partial profile update.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// UpdateProfile applies a partial update to the user's profile and
// invalidates the cached copy. An email change is subject to the same
// uniqueness rule as signup.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*model.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if input.Email != nil {
		email, err := normalizeEmail(*input.Email)
		if err != nil {
			return nil, err
		}
		user.Email = email
	}

	if input.FirstName != nil {
		user.FirstName = nilIfEmpty(*input.FirstName)
	}

	if input.LastName != nil {
		user.LastName = nilIfEmpty(*input.LastName)
	}

	if err := s.users.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrCredentialsTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.DeleteUser(ctx, userID); err != nil {
			s.logger.Warn("failed to invalidate user profile cache", "user_id", userID, "error", err)
		}
	}

	return user, nil
}

// nilIfEmpty maps an empty string to nil so cleared fields are dropped
// from JSON output instead of serialized as "".
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
