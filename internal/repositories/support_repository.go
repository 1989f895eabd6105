package repositories

import (
	"github.com/rahat-dev/mindnest/backend/internal/models"
	"gorm.io/gorm"
)

// SupportRepository defines the interface for admin-inbox message operations
type SupportRepository interface {
	CreateMessage(msg *models.SupportMessage) error
	GetMessageByID(id uint) (*models.SupportMessage, error)
	GetMessages(status string, page, limit int) ([]models.SupportMessage, int64, error)
	GetMessagesByUserID(userID uint) ([]models.SupportMessage, error)
	UpdateMessage(msg *models.SupportMessage) error
}

// PostgresSupportRepository implements SupportRepository for PostgreSQL
type PostgresSupportRepository struct {
	db *gorm.DB
}

// NewPostgresSupportRepository creates a new PostgresSupportRepository
func NewPostgresSupportRepository(db *gorm.DB) *PostgresSupportRepository {
	return &PostgresSupportRepository{db: db}
}

// CreateMessage creates a new support message in PostgreSQL
func (r *PostgresSupportRepository) CreateMessage(msg *models.SupportMessage) error {
	return r.db.Create(msg).Error
}

// GetMessageByID retrieves a support message by ID from PostgreSQL
func (r *PostgresSupportRepository) GetMessageByID(id uint) (*models.SupportMessage, error) {
	var msg models.SupportMessage
	if err := r.db.First(&msg, id).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// GetMessages retrieves inbox messages with pagination, optionally filtered
// by status, newest first
func (r *PostgresSupportRepository) GetMessages(status string, page, limit int) ([]models.SupportMessage, int64, error) {
	var msgs []models.SupportMessage
	var total int64

	q := r.db.Model(&models.SupportMessage{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	q.Count(&total)

	offset := (page - 1) * limit
	err := q.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&msgs).Error

	return msgs, total, err
}

// GetMessagesByUserID retrieves a user's own support messages, newest first
func (r *PostgresSupportRepository) GetMessagesByUserID(userID uint) ([]models.SupportMessage, error) {
	var msgs []models.SupportMessage
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// UpdateMessage updates an existing support message in PostgreSQL
func (r *PostgresSupportRepository) UpdateMessage(msg *models.SupportMessage) error {
	return r.db.Save(msg).Error
}
