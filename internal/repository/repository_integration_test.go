//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/bookmarkd/bookmarkd/internal/testutil"
)

// ============================================================================
// User Repository Integration Tests
// ============================================================================

func TestIntegrationUserRepository_CreateAndGet(t *testing.T) {
	ctx, repo := newTestEnv(t)

	user := testutil.NewTestUser(t, testutil.UniqueEmail("create"))
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	byID, err := repo.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if byID.Email != user.Email {
		t.Errorf("Email mismatch: got %q, want %q", byID.Email, user.Email)
	}

	byEmail, err := repo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("ID mismatch: got %q, want %q", byEmail.ID, user.ID)
	}
}

func TestIntegrationUserRepository_DuplicateEmail(t *testing.T) {
	ctx, repo := newTestEnv(t)

	email := testutil.UniqueEmail("dup")
	first := testutil.NewTestUser(t, email)
	second := testutil.NewTestUser(t, email)

	if err := repo.CreateUser(ctx, first); err != nil {
		t.Fatalf("CreateUser (first) failed: %v", err)
	}

	err := repo.CreateUser(ctx, second)
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("Expected ErrEmailExists, got: %v", err)
	}
}

func TestIntegrationUserRepository_GetNotFound(t *testing.T) {
	ctx, repo := newTestEnv(t)

	if _, err := repo.GetUserByID(ctx, "00000000-0000-0000-0000-000000000000"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound by ID, got: %v", err)
	}
	if _, err := repo.GetUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound by email, got: %v", err)
	}
}

func TestIntegrationUserRepository_Update(t *testing.T) {
	ctx, repo := newTestEnv(t)

	user := testutil.NewTestUser(t, testutil.UniqueEmail("update"))
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	name := "Ada"
	user.FirstName = &name
	if err := repo.UpdateUser(ctx, user); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	updated, err := repo.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if updated.FirstName == nil || *updated.FirstName != "Ada" {
		t.Errorf("FirstName not persisted: got %v", updated.FirstName)
	}
}

func TestIntegrationUserRepository_UpdateEmailCollision(t *testing.T) {
	ctx, repo := newTestEnv(t)

	taken := testutil.NewTestUser(t, testutil.UniqueEmail("taken"))
	other := testutil.NewTestUser(t, testutil.UniqueEmail("other"))
	if err := repo.CreateUser(ctx, taken); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if err := repo.CreateUser(ctx, other); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	other.Email = taken.Email
	if err := repo.UpdateUser(ctx, other); !errors.Is(err, ErrEmailExists) {
		t.Errorf("Expected ErrEmailExists, got: %v", err)
	}
}

// ============================================================================
// Bookmark Repository Integration Tests
// ============================================================================

func TestIntegrationBookmarkRepository_CreateAndList(t *testing.T) {
	ctx, repo := newTestEnv(t)
	owner := seedOwner(ctx, t, repo)

	first := testutil.NewTestBookmark(t, owner, "first")
	second := testutil.NewTestBookmark(t, owner, "second")
	if err := repo.CreateBookmark(ctx, first); err != nil {
		t.Fatalf("CreateBookmark failed: %v", err)
	}
	if err := repo.CreateBookmark(ctx, second); err != nil {
		t.Fatalf("CreateBookmark failed: %v", err)
	}
	if first.ID == 0 || second.ID == 0 {
		t.Fatal("expected generated ids")
	}

	list, err := repo.ListBookmarksByOwner(ctx, owner)
	if err != nil {
		t.Fatalf("ListBookmarksByOwner failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 bookmarks, got %d", len(list))
	}
	if list[0].ID > list[1].ID {
		t.Error("expected ascending id order")
	}
}

func TestIntegrationBookmarkRepository_OwnerScoping(t *testing.T) {
	ctx, repo := newTestEnv(t)
	owner := seedOwner(ctx, t, repo)
	stranger := seedOwner(ctx, t, repo)

	bookmark := testutil.NewTestBookmark(t, owner, "scoped")
	if err := repo.CreateBookmark(ctx, bookmark); err != nil {
		t.Fatalf("CreateBookmark failed: %v", err)
	}

	if _, err := repo.GetBookmarkByOwner(ctx, owner, bookmark.ID); err != nil {
		t.Errorf("owner read failed: %v", err)
	}
	if _, err := repo.GetBookmarkByOwner(ctx, stranger, bookmark.ID); !errors.Is(err, ErrBookmarkNotFound) {
		t.Errorf("Expected ErrBookmarkNotFound for stranger, got: %v", err)
	}

	list, err := repo.ListBookmarksByOwner(ctx, stranger)
	if err != nil {
		t.Fatalf("ListBookmarksByOwner failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list for stranger, got %d", len(list))
	}
}

func TestIntegrationBookmarkRepository_UpdateAndDelete(t *testing.T) {
	ctx, repo := newTestEnv(t)
	owner := seedOwner(ctx, t, repo)

	bookmark := testutil.NewTestBookmark(t, owner, "mutable")
	if err := repo.CreateBookmark(ctx, bookmark); err != nil {
		t.Fatalf("CreateBookmark failed: %v", err)
	}

	bookmark.Title = "renamed"
	if err := repo.UpdateBookmark(ctx, bookmark); err != nil {
		t.Fatalf("UpdateBookmark failed: %v", err)
	}
	updated, err := repo.GetBookmarkByID(ctx, bookmark.ID)
	if err != nil {
		t.Fatalf("GetBookmarkByID failed: %v", err)
	}
	if updated.Title != "renamed" {
		t.Errorf("Title mismatch: got %q", updated.Title)
	}

	if err := repo.DeleteBookmark(ctx, bookmark.ID); err != nil {
		t.Fatalf("DeleteBookmark failed: %v", err)
	}
	if _, err := repo.GetBookmarkByID(ctx, bookmark.ID); !errors.Is(err, ErrBookmarkNotFound) {
		t.Errorf("Expected ErrBookmarkNotFound after delete, got: %v", err)
	}
	if err := repo.DeleteBookmark(ctx, bookmark.ID); !errors.Is(err, ErrBookmarkNotFound) {
		t.Errorf("Expected ErrBookmarkNotFound on re-delete, got: %v", err)
	}
}

// ============================================================================
// Test Environment Setup
// ============================================================================

func newTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(repo.Close)

	if err := testutil.ResetTables(ctx, repo.DB()); err != nil {
		t.Fatalf("reset tables: %v", err)
	}

	return ctx, repo
}

func seedOwner(ctx context.Context, t *testing.T, repo *Repository) string {
	t.Helper()
	user := testutil.NewTestUser(t, testutil.UniqueEmail("owner"))
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	return user.ID
}
