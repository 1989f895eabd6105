package models

import (
	"time"

	"gorm.io/gorm"
)

// SleepEntry represents one night of sleep
type SleepEntry struct {
	gorm.Model
	UserID        uint      `json:"user_id" gorm:"index"`
	User          User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Quality       int       `json:"quality"` // 1-10
	Interruptions string    `json:"interruptions" gorm:"type:text"` // comma-separated
}

// DurationHours returns the slept duration in hours
func (s *SleepEntry) DurationHours() float64 {
	return s.EndTime.Sub(s.StartTime).Hours()
}

// CreateSleepEntryRequest defines the request body for logging sleep
type CreateSleepEntryRequest struct {
	StartTime     time.Time `json:"start_time" validate:"required"`
	EndTime       time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	Quality       int       `json:"quality" validate:"required,min=1,max=10"`
	Interruptions string    `json:"interruptions,omitempty" validate:"omitempty,max=500"`
}

// SleepStats summarises the last week of sleep
type SleepStats struct {
	EntryCount      int     `json:"entry_count"`
	AverageQuality  float64 `json:"average_quality"`
	AverageDuration float64 `json:"average_duration_hours"`
	QualityTrend    []int   `json:"quality_trend"`
}
