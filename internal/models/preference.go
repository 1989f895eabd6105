package models

import "gorm.io/gorm"

// UserPreference stores per-user settings as a JSON blob, one row per user
type UserPreference struct {
	gorm.Model
	UserID      uint   `json:"user_id" gorm:"uniqueIndex"`
	User        User   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Preferences string `json:"preferences" gorm:"type:text"` // JSON string
}

// UpsertPreferencesRequest replaces the user's preference blob
type UpsertPreferencesRequest struct {
	Preferences string `json:"preferences" validate:"required,json,max=8000"`
}
