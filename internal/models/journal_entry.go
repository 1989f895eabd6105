package models

import "gorm.io/gorm"

// JournalEntry represents a free-form journaling record, optionally written
// against an AI-generated CBT prompt
type JournalEntry struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index"`
	User      User   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Title     string `json:"title"`
	Body      string `json:"body" gorm:"type:text"`
	MoodScore int    `json:"mood_score"` // optional 1-10 self-rating at write time
	Prompt    string `json:"prompt" gorm:"type:text"` // the prompt the entry answered, if any
}

// CreateJournalEntryRequest defines the request body for creating a journal entry
type CreateJournalEntryRequest struct {
	Title     string `json:"title,omitempty" validate:"omitempty,max=120"`
	Body      string `json:"body" validate:"required,min=1,max=10000"`
	MoodScore int    `json:"mood_score,omitempty" validate:"omitempty,min=1,max=10"`
	Prompt    string `json:"prompt,omitempty" validate:"omitempty,max=1000"`
}

// UpdateJournalEntryRequest defines the request body for editing a journal entry
type UpdateJournalEntryRequest struct {
	Title     string `json:"title,omitempty" validate:"omitempty,max=120"`
	Body      string `json:"body,omitempty" validate:"omitempty,min=1,max=10000"`
	MoodScore int    `json:"mood_score,omitempty" validate:"omitempty,min=1,max=10"`
}
