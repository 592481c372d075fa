package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bookmarkd/bookmarkd/internal/auth"
	"github.com/bookmarkd/bookmarkd/internal/metrics"
	"github.com/bookmarkd/bookmarkd/internal/model"
)

func seedUser(t *testing.T, store *fakeUserStore, email string) *model.User {
	t.Helper()
	hash, err := auth.HashPassword("password1")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &model.User{ID: "user-" + email, Email: email, PasswordHash: hash}
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestUserService_Profile(t *testing.T) {
	store := newFakeUserStore()
	cache := newFakeProfileCache()
	recorder := metrics.NewInMemory()
	svc := NewUserService(store, cache, nil, recorder)
	ctx := context.Background()

	user := seedUser(t, store, "a@x.com")

	// First read misses the cache and populates it.
	profile, err := svc.Profile(ctx, user.ID)
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if profile.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %s", profile.Email)
	}
	if cache.sets != 1 {
		t.Errorf("expected 1 cache set, got %d", cache.sets)
	}

	// Second read hits the cache.
	if _, err := svc.Profile(ctx, user.ID); err != nil {
		t.Fatalf("Profile failed: %v", err)
	}

	snap := recorder.Snapshot()
	if snap.ProfileCacheMisses != 1 || snap.ProfileCacheHits != 1 {
		t.Errorf("expected 1 miss and 1 hit, got %d misses, %d hits",
			snap.ProfileCacheMisses, snap.ProfileCacheHits)
	}
}

func TestUserService_Profile_UnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), nil, nil, nil)

	if _, err := svc.Profile(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	store := newFakeUserStore()
	cache := newFakeProfileCache()
	svc := NewUserService(store, cache, nil, nil)
	ctx := context.Background()

	user := seedUser(t, store, "a@x.com")

	updated, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileInput{
		FirstName: strPtr("Ada"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	if updated.FirstName == nil || *updated.FirstName != "Ada" {
		t.Errorf("expected first name Ada, got %v", updated.FirstName)
	}
	// Unspecified fields unchanged.
	if updated.Email != "a@x.com" {
		t.Errorf("expected email unchanged, got %s", updated.Email)
	}
	if cache.deletes != 1 {
		t.Errorf("expected cache invalidation, got %d deletes", cache.deletes)
	}
}

func TestUserService_UpdateProfile_EmailCollision(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, nil, nil, nil)
	ctx := context.Background()

	userA := seedUser(t, store, "a@x.com")
	seedUser(t, store, "b@x.com")

	_, err := svc.UpdateProfile(ctx, userA.ID, UpdateProfileInput{Email: strPtr("b@x.com")})
	if !errors.Is(err, ErrCredentialsTaken) {
		t.Errorf("expected ErrCredentialsTaken, got %v", err)
	}

	_, err = svc.UpdateProfile(ctx, userA.ID, UpdateProfileInput{Email: strPtr("not-an-email")})
	if !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestUserService_UpdateProfile_ClearsEmptyNames(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, nil, nil, nil)
	ctx := context.Background()

	user := seedUser(t, store, "a@x.com")

	if _, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileInput{FirstName: strPtr("Ada")}); err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	updated, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileInput{FirstName: strPtr("")})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.FirstName != nil {
		t.Errorf("expected cleared first name, got %v", *updated.FirstName)
	}
}
