package models

import (
	"strings"

	"gorm.io/gorm"
)

// Content kinds
const (
	ContentArticle    = "article"
	ContentAudio      = "audio"
	ContentMeditation = "meditation"
)

// ContentMetadata is a catalog row describing a piece of static wellness content
type ContentMetadata struct {
	gorm.Model
	Kind            string `json:"kind" gorm:"size:20;index"` // article, audio, meditation
	Title           string `json:"title"`
	Description     string `json:"description" gorm:"type:text"`
	URL             string `json:"url"`
	DurationSeconds int    `json:"duration_seconds"`
	TargetMoods     string `json:"target_moods" gorm:"index"` // comma-separated mood labels
}

// TargetsMood reports whether the row is aimed at the given mood label
func (c *ContentMetadata) TargetsMood(mood string) bool {
	for _, m := range strings.Split(c.TargetMoods, ",") {
		if strings.TrimSpace(m) == mood {
			return true
		}
	}
	return false
}

// CreateContentRequest defines the admin request body for catalog rows
type CreateContentRequest struct {
	Kind            string `json:"kind" validate:"required,oneof=article audio meditation"`
	Title           string `json:"title" validate:"required,min=2,max=160"`
	Description     string `json:"description,omitempty" validate:"omitempty,max=2000"`
	URL             string `json:"url" validate:"required,url"`
	DurationSeconds int    `json:"duration_seconds,omitempty" validate:"omitempty,min=0,max=86400"`
	TargetMoods     string `json:"target_moods,omitempty" validate:"omitempty,max=200"`
}

// UpdateContentRequest defines the admin request body for editing catalog rows
type UpdateContentRequest struct {
	Kind            string `json:"kind,omitempty" validate:"omitempty,oneof=article audio meditation"`
	Title           string `json:"title,omitempty" validate:"omitempty,min=2,max=160"`
	Description     string `json:"description,omitempty" validate:"omitempty,max=2000"`
	URL             string `json:"url,omitempty" validate:"omitempty,url"`
	DurationSeconds int    `json:"duration_seconds,omitempty" validate:"omitempty,min=0,max=86400"`
	TargetMoods     string `json:"target_moods,omitempty" validate:"omitempty,max=200"`
}
