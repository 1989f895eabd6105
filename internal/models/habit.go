package models

import (
	"time"

	"gorm.io/gorm"
)

// Habit is a recurring wellness activity a user wants to keep up
type Habit struct {
	gorm.Model
	UserID       uint   `json:"user_id" gorm:"index"`
	User         User   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Name         string `json:"name"`
	Frequency    string `json:"frequency" gorm:"size:10;default:'daily'"` // daily or weekly
	ReminderTime string `json:"reminder_time"`                            // HH:MM, user-local
	Archived     bool   `json:"archived" gorm:"default:false"`
}

// HabitCheckin marks a habit as done for a calendar day
type HabitCheckin struct {
	gorm.Model
	HabitID uint      `json:"habit_id" gorm:"index:idx_habit_day,unique"`
	Habit   Habit     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Day     time.Time `json:"day" gorm:"index:idx_habit_day,unique"` // truncated to midnight
}

// CreateHabitRequest defines the request body for creating a habit
type CreateHabitRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=80"`
	Frequency    string `json:"frequency,omitempty" validate:"omitempty,oneof=daily weekly"`
	ReminderTime string `json:"reminder_time,omitempty" validate:"omitempty,len=5"`
}

// UpdateHabitRequest defines the request body for editing a habit
type UpdateHabitRequest struct {
	Name         string `json:"name,omitempty" validate:"omitempty,min=1,max=80"`
	Frequency    string `json:"frequency,omitempty" validate:"omitempty,oneof=daily weekly"`
	ReminderTime string `json:"reminder_time,omitempty" validate:"omitempty,len=5"`
	Archived     *bool  `json:"archived,omitempty"`
}
