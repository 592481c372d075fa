package service

import (
	"context"
	"time"

	"github.com/bookmarkd/bookmarkd/internal/model"
	"github.com/bookmarkd/bookmarkd/internal/repository"
)

// fakeUserStore is an in-memory UserStore for tests.
type fakeUserStore struct {
	users map[string]*model.User // keyed by ID
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrEmailExists
		}
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) UpdateUser(_ context.Context, user *model.User) error {
	for id, u := range f.users {
		if id != user.ID && u.Email == user.Email {
			return repository.ErrEmailExists
		}
	}
	user.UpdatedAt = time.Now()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

// fakeBookmarkStore is an in-memory BookmarkStore for tests.
type fakeBookmarkStore struct {
	bookmarks map[int64]*model.Bookmark
	nextID    int64
}

func newFakeBookmarkStore() *fakeBookmarkStore {
	return &fakeBookmarkStore{bookmarks: make(map[int64]*model.Bookmark), nextID: 1}
}

func (f *fakeBookmarkStore) CreateBookmark(_ context.Context, bookmark *model.Bookmark) error {
	bookmark.ID = f.nextID
	f.nextID++
	now := time.Now()
	bookmark.CreatedAt = now
	bookmark.UpdatedAt = now
	copied := *bookmark
	f.bookmarks[bookmark.ID] = &copied
	return nil
}

func (f *fakeBookmarkStore) ListBookmarksByOwner(_ context.Context, userID string) ([]*model.Bookmark, error) {
	result := make([]*model.Bookmark, 0)
	// Insertion order = id order.
	for id := int64(1); id < f.nextID; id++ {
		if b, ok := f.bookmarks[id]; ok && b.UserID == userID {
			copied := *b
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeBookmarkStore) GetBookmarkByOwner(_ context.Context, userID string, id int64) (*model.Bookmark, error) {
	b, ok := f.bookmarks[id]
	if !ok || b.UserID != userID {
		return nil, repository.ErrBookmarkNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookmarkStore) GetBookmarkByID(_ context.Context, id int64) (*model.Bookmark, error) {
	b, ok := f.bookmarks[id]
	if !ok {
		return nil, repository.ErrBookmarkNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookmarkStore) UpdateBookmark(_ context.Context, bookmark *model.Bookmark) error {
	if _, ok := f.bookmarks[bookmark.ID]; !ok {
		return repository.ErrBookmarkNotFound
	}
	bookmark.UpdatedAt = time.Now()
	copied := *bookmark
	f.bookmarks[bookmark.ID] = &copied
	return nil
}

func (f *fakeBookmarkStore) DeleteBookmark(_ context.Context, id int64) error {
	if _, ok := f.bookmarks[id]; !ok {
		return repository.ErrBookmarkNotFound
	}
	delete(f.bookmarks, id)
	return nil
}

// fakeProfileCache is an in-memory ProfileCache for tests.
type fakeProfileCache struct {
	profiles map[string]*model.User
	sets     int
	deletes  int
}

func newFakeProfileCache() *fakeProfileCache {
	return &fakeProfileCache{profiles: make(map[string]*model.User)}
}

func (f *fakeProfileCache) GetUser(_ context.Context, userID string) (*model.User, error) {
	u, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeProfileCache) SetUser(_ context.Context, user *model.User) error {
	f.sets++
	copied := *user
	f.profiles[user.ID] = &copied
	return nil
}

func (f *fakeProfileCache) DeleteUser(_ context.Context, userID string) error {
	f.deletes++
	delete(f.profiles, userID)
	return nil
}
