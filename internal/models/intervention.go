package models

import (
	"time"

	"gorm.io/gorm"
)

// Intervention kinds
const (
	InterventionBreathing  = "breathing"
	InterventionMeditation = "meditation"
	InterventionGrounding  = "grounding"
	InterventionCBT        = "cbt"
)

// Intervention is a catalog row describing a guided self-help exercise
type Intervention struct {
	gorm.Model
	Type            string `json:"type" gorm:"size:20;index"` // breathing, meditation, grounding, cbt
	Title           string `json:"title"`
	Description     string `json:"description" gorm:"type:text"`
	DurationSeconds int    `json:"duration_seconds"`
	Steps           string `json:"steps" gorm:"type:text"` // JSON array of step instructions
}

// InterventionSession records a user completing an intervention
type InterventionSession struct {
	gorm.Model
	UserID         uint      `json:"user_id" gorm:"index"`
	User           User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	InterventionID uint      `json:"intervention_id" gorm:"index"`
	Rating         int       `json:"rating"`                    // optional 1-5, how helpful it felt
	Reflection     string    `json:"reflection" gorm:"type:text"`
	CompletedAt    time.Time `json:"completed_at" gorm:"index"`
}

// CreateInterventionRequest defines the admin request body for catalog rows
type CreateInterventionRequest struct {
	Type            string `json:"type" validate:"required,oneof=breathing meditation grounding cbt"`
	Title           string `json:"title" validate:"required,min=2,max=120"`
	Description     string `json:"description" validate:"required,max=2000"`
	DurationSeconds int    `json:"duration_seconds" validate:"required,min=10,max=3600"`
	Steps           string `json:"steps,omitempty"`
}

// UpdateInterventionRequest defines the admin request body for editing catalog rows
type UpdateInterventionRequest struct {
	Type            string `json:"type,omitempty" validate:"omitempty,oneof=breathing meditation grounding cbt"`
	Title           string `json:"title,omitempty" validate:"omitempty,min=2,max=120"`
	Description     string `json:"description,omitempty" validate:"omitempty,max=2000"`
	DurationSeconds int    `json:"duration_seconds,omitempty" validate:"omitempty,min=10,max=3600"`
	Steps           string `json:"steps,omitempty"`
}

// CompleteInterventionRequest records the result of a finished exercise
type CompleteInterventionRequest struct {
	Rating     int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Reflection string `json:"reflection,omitempty" validate:"omitempty,max=2000"`
}
