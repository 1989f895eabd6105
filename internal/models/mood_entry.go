package models

import (
	"time"

	"gorm.io/gorm"
)

// Mood labels accepted by the tracker. Negative labels feed the
// recommendation rules.
const (
	MoodHappy    = "happy"
	MoodCalm     = "calm"
	MoodNeutral  = "neutral"
	MoodAnxious  = "anxious"
	MoodSad      = "sad"
	MoodStressed = "stressed"
	MoodAngry    = "angry"
)

// NegativeMoods is the set of labels treated as low moods
var NegativeMoods = map[string]bool{
	MoodAnxious:  true,
	MoodSad:      true,
	MoodStressed: true,
	MoodAngry:    true,
}

// MoodEntry represents a user-submitted record of an emotional state
type MoodEntry struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"index;constraint:OnDelete:CASCADE"`
	User       User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Mood       string    `json:"mood" gorm:"size:20;index"`
	Intensity  int       `json:"intensity"` // 1-10
	Note       string    `json:"note" gorm:"type:text"`
	Triggers   string    `json:"triggers" gorm:"type:text"` // comma-separated trigger tags
	RecordedAt time.Time `json:"recorded_at" gorm:"index"`
}

// CreateMoodEntryRequest defines the request body for logging a mood
type CreateMoodEntryRequest struct {
	Mood       string     `json:"mood" validate:"required,oneof=happy calm neutral anxious sad stressed angry"`
	Intensity  int        `json:"intensity" validate:"required,min=1,max=10"`
	Note       string     `json:"note,omitempty" validate:"omitempty,max=2000"`
	Triggers   string     `json:"triggers,omitempty" validate:"omitempty,max=500"`
	RecordedAt *time.Time `json:"recorded_at,omitempty"`
}

// UpdateMoodEntryRequest defines the request body for editing a mood entry
type UpdateMoodEntryRequest struct {
	Mood      string `json:"mood,omitempty" validate:"omitempty,oneof=happy calm neutral anxious sad stressed angry"`
	Intensity int    `json:"intensity,omitempty" validate:"omitempty,min=1,max=10"`
	Note      string `json:"note,omitempty" validate:"omitempty,max=2000"`
	Triggers  string `json:"triggers,omitempty" validate:"omitempty,max=500"`
}

// MoodStats summarises a user's recent mood activity
type MoodStats struct {
	Days             int            `json:"days"`
	EntryCount       int            `json:"entry_count"`
	AverageIntensity float64        `json:"average_intensity"`
	MoodCounts       map[string]int `json:"mood_counts"`
	Trend            []int          `json:"trend"` // intensities ordered oldest to newest
}
