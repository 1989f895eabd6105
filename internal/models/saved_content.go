package models

import "time"

// SavedContent represents a catalog item bookmarked by a user
type SavedContent struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_content_save"`
	ContentID uint      `json:"content_id" gorm:"index;uniqueIndex:idx_user_content_save"`
	CreatedAt time.Time `json:"created_at"`
}
