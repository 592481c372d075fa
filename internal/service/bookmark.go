package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/bookmarkd/bookmarkd/internal/metrics"
	"github.com/bookmarkd/bookmarkd/internal/model"
	"github.com/bookmarkd/bookmarkd/internal/repository"
)

// Bookmark service errors.
var (
	// ErrAccessDenied is returned by edit/delete when the bookmark is
	// absent or owned by another user. The two cases are not told apart.
	ErrAccessDenied = errors.New("access to resource denied")
	// ErrTitleRequired indicates an empty bookmark title.
	ErrTitleRequired = errors.New("title is required")
	// ErrInvalidLink indicates a link that is not a valid http(s) URL.
	ErrInvalidLink = errors.New("invalid link URL")
)

// maxLinkLength is the maximum accepted link length.
const maxLinkLength = 2048

// BookmarkStore is the persistence surface the bookmark service needs.
// Implemented by *repository.Repository.
type BookmarkStore interface {
	CreateBookmark(ctx context.Context, bookmark *model.Bookmark) error
	ListBookmarksByOwner(ctx context.Context, userID string) ([]*model.Bookmark, error)
	GetBookmarkByOwner(ctx context.Context, userID string, id int64) (*model.Bookmark, error)
	GetBookmarkByID(ctx context.Context, id int64) (*model.Bookmark, error)
	UpdateBookmark(ctx context.Context, bookmark *model.Bookmark) error
	DeleteBookmark(ctx context.Context, id int64) error
}

// BookmarkService handles owner-scoped bookmark CRUD.
type BookmarkService struct {
	store   BookmarkStore
	metrics metrics.Recorder
}

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(store BookmarkStore, recorder metrics.Recorder) *BookmarkService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &BookmarkService{
		store:   store,
		metrics: recorder,
	}
}

// CreateBookmarkInput defines input for creating a bookmark.
type CreateBookmarkInput struct {
	Title       string
	Link        string
	Description *string
}

// EditBookmarkInput defines a partial bookmark update.
// Nil fields are left unchanged.
type EditBookmarkInput struct {
	Title       *string
	Link        *string
	Description *string
}

// Create inserts a new bookmark owned by userID and returns the stored
// record including its generated ID and timestamps.
func (s *BookmarkService) Create(ctx context.Context, userID string, input CreateBookmarkInput) (*model.Bookmark, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	if err := validateLink(input.Link); err != nil {
		return nil, err
	}

	bookmark := &model.Bookmark{
		UserID:      userID,
		Title:       title,
		Link:        input.Link,
		Description: input.Description,
	}

	if err := s.store.CreateBookmark(ctx, bookmark); err != nil {
		return nil, fmt.Errorf("failed to create bookmark: %w", err)
	}

	s.metrics.IncBookmarkCreated()

	return bookmark, nil
}

// List returns all bookmarks owned by userID. Empty slice if none.
func (s *BookmarkService) List(ctx context.Context, userID string) ([]*model.Bookmark, error) {
	return s.store.ListBookmarksByOwner(ctx, userID)
}

// Get returns the bookmark only if it exists and is owned by userID.
// Absence and foreign ownership both yield (nil, nil): the caller cannot
// learn whether another user's bookmark exists.
func (s *BookmarkService) Get(ctx context.Context, userID string, id int64) (*model.Bookmark, error) {
	bookmark, err := s.store.GetBookmarkByOwner(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}
	return bookmark, nil
}

// Edit applies a partial update to a bookmark. Returns ErrAccessDenied
// when the bookmark is absent or owned by another user.
func (s *BookmarkService) Edit(ctx context.Context, userID string, id int64, input EditBookmarkInput) (*model.Bookmark, error) {
	bookmark, err := s.loadOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		bookmark.Title = title
	}

	if input.Link != nil {
		if err := validateLink(*input.Link); err != nil {
			return nil, err
		}
		bookmark.Link = *input.Link
	}

	if input.Description != nil {
		bookmark.Description = input.Description
	}

	if err := s.store.UpdateBookmark(ctx, bookmark); err != nil {
		return nil, fmt.Errorf("failed to update bookmark: %w", err)
	}

	s.metrics.IncBookmarkUpdated()

	return bookmark, nil
}

// Delete removes a bookmark. Same ErrAccessDenied policy as Edit.
func (s *BookmarkService) Delete(ctx context.Context, userID string, id int64) error {
	if _, err := s.loadOwned(ctx, userID, id); err != nil {
		return err
	}

	if err := s.store.DeleteBookmark(ctx, id); err != nil {
		// Deleted out from under us between the load and the delete.
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return ErrAccessDenied
		}
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	s.metrics.IncBookmarkDeleted()

	return nil
}

// loadOwned loads a bookmark by id alone and enforces ownership.
func (s *BookmarkService) loadOwned(ctx context.Context, userID string, id int64) (*model.Bookmark, error) {
	bookmark, err := s.store.GetBookmarkByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return nil, ErrAccessDenied
		}
		return nil, fmt.Errorf("failed to load bookmark: %w", err)
	}

	if !bookmark.OwnedBy(userID) {
		return nil, ErrAccessDenied
	}

	return bookmark, nil
}

// validateLink checks that a link is a well-formed http(s) URL.
func validateLink(link string) error {
	if link == "" || len(link) > maxLinkLength {
		return ErrInvalidLink
	}

	parsed, err := url.Parse(link)
	if err != nil {
		return ErrInvalidLink
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ErrInvalidLink
	}

	if parsed.Host == "" {
		return ErrInvalidLink
	}

	return nil
}
