package dto

import (
	"time"

	"github.com/bookmarkd/bookmarkd/internal/model"
)

// CreateBookmarkRequest represents the request body for creating a bookmark.
type CreateBookmarkRequest struct {
	Title       string  `json:"title"`
	Link        string  `json:"link"`
	Description *string `json:"description,omitempty"`
}

// EditBookmarkRequest represents a partial bookmark update.
// Nil fields are left unchanged.
type EditBookmarkRequest struct {
	Title       *string `json:"title,omitempty"`
	Link        *string `json:"link,omitempty"`
	Description *string `json:"description,omitempty"`
}

// BookmarkResponse represents a bookmark in API responses.
type BookmarkResponse struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToBookmarkResponse converts a Bookmark model to BookmarkResponse DTO.
func ToBookmarkResponse(bookmark *model.Bookmark) *BookmarkResponse {
	return &BookmarkResponse{
		ID:          bookmark.ID,
		UserID:      bookmark.UserID,
		Title:       bookmark.Title,
		Description: bookmark.Description,
		Link:        bookmark.Link,
		CreatedAt:   bookmark.CreatedAt,
		UpdatedAt:   bookmark.UpdatedAt,
	}
}

// ToBookmarkListResponse converts a slice of bookmarks.
// Always returns a non-nil slice so the JSON encodes as [] when empty.
func ToBookmarkListResponse(bookmarks []*model.Bookmark) []BookmarkResponse {
	result := make([]BookmarkResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		result = append(result, *ToBookmarkResponse(b))
	}
	return result
}
