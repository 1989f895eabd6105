package models

import (
	"time"

	"gorm.io/gorm"
)

// Support message statuses
const (
	SupportOpen    = "open"
	SupportReplied = "replied"
	SupportClosed  = "closed"
)

// SupportMessage is an admin-inbox row: a user writing to the team
type SupportMessage struct {
	gorm.Model
	UserID    uint       `json:"user_id" gorm:"index"`
	User      User       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body" gorm:"type:text"`
	Status    string     `json:"status" gorm:"size:10;default:'open';index"`
	ReplyBody string     `json:"reply_body,omitempty" gorm:"type:text"`
	RepliedAt *time.Time `json:"replied_at,omitempty"`
}

// CreateSupportMessageRequest defines the request body for contacting support
type CreateSupportMessageRequest struct {
	Subject string `json:"subject" validate:"required,min=2,max=160"`
	Body    string `json:"body" validate:"required,min=1,max=5000"`
}

// ReplySupportMessageRequest defines the admin reply body
type ReplySupportMessageRequest struct {
	Body string `json:"body" validate:"required,min=1,max=10000"`
}
