package repositories

import (
	"fmt"

	"github.com/rahat-dev/mindnest/backend/internal/models"
	"gorm.io/gorm"
)

// SavedContentRepository defines the interface for content bookmark operations
type SavedContentRepository interface {
	SaveContent(saved *models.SavedContent) error
	UnsaveContent(userID, contentID uint) error
	GetSavedByUserID(userID uint) ([]models.SavedContent, error)
	IsSaved(userID, contentID uint) (bool, error)
}

// PostgresSavedContentRepository implements SavedContentRepository for PostgreSQL
type PostgresSavedContentRepository struct {
	db *gorm.DB
}

// NewPostgresSavedContentRepository creates a new PostgresSavedContentRepository
func NewPostgresSavedContentRepository(db *gorm.DB) *PostgresSavedContentRepository {
	return &PostgresSavedContentRepository{db: db}
}

// SaveContent bookmarks a catalog item for a user
func (r *PostgresSavedContentRepository) SaveContent(saved *models.SavedContent) error {
	return r.db.Create(saved).Error
}

// UnsaveContent removes a user's bookmark
func (r *PostgresSavedContentRepository) UnsaveContent(userID, contentID uint) error {
	res := r.db.Where("user_id = ? AND content_id = ?", userID, contentID).
		Delete(&models.SavedContent{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("saved content not found")
	}
	return nil
}

// GetSavedByUserID retrieves a user's bookmarks, newest first
func (r *PostgresSavedContentRepository) GetSavedByUserID(userID uint) ([]models.SavedContent, error) {
	var saved []models.SavedContent
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// IsSaved checks whether the user already bookmarked the item
func (r *PostgresSavedContentRepository) IsSaved(userID, contentID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.SavedContent{}).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		Count(&count).Error
	return count > 0, err
}
