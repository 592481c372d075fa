package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bookmarkd/bookmarkd/internal/auth"
	"github.com/bookmarkd/bookmarkd/internal/handler/dto"
	"github.com/bookmarkd/bookmarkd/internal/service"
)

// BookmarkHandler handles bookmark CRUD for the authenticated user.
type BookmarkHandler struct {
	svc    *service.BookmarkService
	logger *slog.Logger
}

// NewBookmarkHandler creates a new BookmarkHandler.
func NewBookmarkHandler(svc *service.BookmarkService, logger *slog.Logger) *BookmarkHandler {
	return &BookmarkHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /bookmarks.
func (h *BookmarkHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req dto.CreateBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	input := service.CreateBookmarkInput{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	}

	bookmark, err := h.svc.Create(r.Context(), userID, input)
	if err != nil {
		h.handleBookmarkError(w, err)
		return
	}

	h.logger.Info("bookmark_created",
		"bookmark_id", bookmark.ID,
		"user_id", userID,
	)

	writeJSON(w, http.StatusCreated, dto.ToBookmarkResponse(bookmark))
}

// List handles GET /bookmarks.
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	bookmarks, err := h.svc.List(r.Context(), userID)
	if err != nil {
		h.handleBookmarkError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBookmarkListResponse(bookmarks))
}

// Get handles GET /bookmarks/{id}.
// An absent or foreign-owned bookmark is a 200 with a null body, not an
// error: existence of other users' bookmarks is never revealed.
func (h *BookmarkHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	id, err := parseBookmarkID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Bookmark ID must be an integer")
		return
	}

	bookmark, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		h.handleBookmarkError(w, err)
		return
	}

	if bookmark == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBookmarkResponse(bookmark))
}

// Update handles PATCH /bookmarks/{id}.
func (h *BookmarkHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	id, err := parseBookmarkID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Bookmark ID must be an integer")
		return
	}

	var req dto.EditBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	input := service.EditBookmarkInput{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	}

	bookmark, err := h.svc.Edit(r.Context(), userID, id, input)
	if err != nil {
		h.handleBookmarkError(w, err)
		return
	}

	h.logger.Info("bookmark_updated",
		"bookmark_id", bookmark.ID,
		"user_id", userID,
	)

	writeJSON(w, http.StatusOK, dto.ToBookmarkResponse(bookmark))
}

// Delete handles DELETE /bookmarks/{id}.
func (h *BookmarkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	id, err := parseBookmarkID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Bookmark ID must be an integer")
		return
	}

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		h.handleBookmarkError(w, err)
		return
	}

	h.logger.Info("bookmark_deleted",
		"bookmark_id", id,
		"user_id", userID,
	)

	w.WriteHeader(http.StatusNoContent)
}

// parseBookmarkID extracts and parses the {id} URL parameter.
func parseBookmarkID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// handleBookmarkError maps bookmark service errors to HTTP responses.
func (h *BookmarkHandler) handleBookmarkError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrAccessDenied):
		writeError(w, http.StatusForbidden, "ACCESS_DENIED", "Access to resource denied")
	case errors.Is(err, service.ErrTitleRequired):
		writeError(w, http.StatusBadRequest, "TITLE_REQUIRED", "Title is required")
	case errors.Is(err, service.ErrInvalidLink):
		writeError(w, http.StatusBadRequest, "INVALID_LINK", "Link must be a valid http(s) URL")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
