package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bookmarkd/bookmarkd/internal/model"
)

// ErrBookmarkNotFound is returned when no bookmark matches the query.
var ErrBookmarkNotFound = errors.New("bookmark not found")

// CreateBookmark inserts a new bookmark. The generated ID and timestamps
// are written back into the passed model.
func (r *Repository) CreateBookmark(ctx context.Context, bookmark *model.Bookmark) error {
	if err := r.db.WithContext(ctx).Create(bookmark).Error; err != nil {
		return fmt.Errorf("failed to create bookmark: %w", err)
	}
	return nil
}

// ListBookmarksByOwner retrieves all bookmarks owned by the given user,
// in insertion order. Returns an empty slice if none exist.
func (r *Repository) ListBookmarksByOwner(ctx context.Context, userID string) ([]*model.Bookmark, error) {
	bookmarks := make([]*model.Bookmark, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&bookmarks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	return bookmarks, nil
}

// GetBookmarkByOwner retrieves a bookmark only if it is owned by the given
// user. A bookmark owned by someone else is indistinguishable from one
// that does not exist.
func (r *Repository) GetBookmarkByOwner(ctx context.Context, userID string, id int64) (*model.Bookmark, error) {
	var bookmark model.Bookmark
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&bookmark).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookmarkNotFound
		}
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}
	return &bookmark, nil
}

// GetBookmarkByID retrieves a bookmark by id alone, regardless of owner.
// Callers are responsible for the ownership check.
func (r *Repository) GetBookmarkByID(ctx context.Context, id int64) (*model.Bookmark, error) {
	var bookmark model.Bookmark
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&bookmark).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookmarkNotFound
		}
		return nil, fmt.Errorf("failed to get bookmark by ID: %w", err)
	}
	return &bookmark, nil
}

// UpdateBookmark persists changes to an existing bookmark.
func (r *Repository) UpdateBookmark(ctx context.Context, bookmark *model.Bookmark) error {
	if err := r.db.WithContext(ctx).Save(bookmark).Error; err != nil {
		return fmt.Errorf("failed to update bookmark: %w", err)
	}
	return nil
}

// DeleteBookmark removes a bookmark by ID.
func (r *Repository) DeleteBookmark(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Bookmark{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete bookmark: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBookmarkNotFound
	}
	return nil
}
