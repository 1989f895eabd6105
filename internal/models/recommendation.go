package models

import (
	"time"

	"gorm.io/gorm"
)

// Recommendation kinds produced by the rule engine
const (
	RecommendationBreathing = "breathing"
	RecommendationCBT       = "cbt_prompt"
	RecommendationSleep     = "sleep_content"
	RecommendationCheckin   = "checkin"
	RecommendationContent   = "content"
)

// MaxActiveRecommendations caps the number of unexpired, undismissed rows
// per user. Generation tops up to the cap and never evicts.
const MaxActiveRecommendations = 12

// RecommendationTTL is the fixed expiry applied to every generated row.
const RecommendationTTL = 24 * time.Hour

// Recommendation is a server-generated suggestion pointing a user at a piece
// of content or activity
type Recommendation struct {
	gorm.Model
	UserID    uint      `json:"user_id" gorm:"index"`
	User      User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Type      string    `json:"type" gorm:"size:20;index"`
	Title     string    `json:"title"`
	Message   string    `json:"message" gorm:"type:text"`
	ContentID *uint     `json:"content_id,omitempty"` // optional link into content_metadata
	Dismissed bool      `json:"dismissed" gorm:"default:false;index"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index"`
}

// Active reports whether the row should still be shown
func (r *Recommendation) Active(now time.Time) bool {
	return !r.Dismissed && r.ExpiresAt.After(now)
}
