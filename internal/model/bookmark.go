// Package model defines domain entities for the application.
package model

import "time"

// Bookmark represents a saved link owned by a single user.
// Visibility and mutation are scoped to the owner at the service layer.
type Bookmark struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      string    `json:"user_id" gorm:"type:uuid;not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description *string   `json:"description,omitempty"`
	Link        string    `json:"link" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName overrides the default GORM table name.
func (Bookmark) TableName() string {
	return "bookmarks"
}

// OwnedBy reports whether the bookmark belongs to the given user.
func (b *Bookmark) OwnedBy(userID string) bool {
	return b.UserID == userID
}
