package repositories

import (
	"time"

	"github.com/rahat-dev/mindnest/backend/internal/models"
	"gorm.io/gorm"
)

// RecommendationRepository defines the interface for recommendation row operations
type RecommendationRepository interface {
	CreateRecommendation(rec *models.Recommendation) error
	GetActiveByUserID(userID uint, now time.Time) ([]models.Recommendation, error)
	CountActiveByUserID(userID uint, now time.Time) (int64, error)
	GetRecommendationByID(id uint) (*models.Recommendation, error)
	MarkDismissed(id uint) error
	DeleteExpired(now time.Time) (int64, error)
}

// PostgresRecommendationRepository implements RecommendationRepository for PostgreSQL
type PostgresRecommendationRepository struct {
	db *gorm.DB
}

// NewPostgresRecommendationRepository creates a new PostgresRecommendationRepository
func NewPostgresRecommendationRepository(db *gorm.DB) *PostgresRecommendationRepository {
	return &PostgresRecommendationRepository{db: db}
}

// CreateRecommendation creates a new recommendation row in PostgreSQL
func (r *PostgresRecommendationRepository) CreateRecommendation(rec *models.Recommendation) error {
	return r.db.Create(rec).Error
}

// GetActiveByUserID retrieves a user's unexpired, undismissed rows, newest first
func (r *PostgresRecommendationRepository) GetActiveByUserID(userID uint, now time.Time) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	err := r.db.Where("user_id = ? AND dismissed = ? AND expires_at > ?", userID, false, now).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// CountActiveByUserID counts a user's active rows
func (r *PostgresRecommendationRepository) CountActiveByUserID(userID uint, now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Recommendation{}).
		Where("user_id = ? AND dismissed = ? AND expires_at > ?", userID, false, now).
		Count(&count).Error
	return count, err
}

// GetRecommendationByID retrieves a recommendation row by ID
func (r *PostgresRecommendationRepository) GetRecommendationByID(id uint) (*models.Recommendation, error) {
	var rec models.Recommendation
	if err := r.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// MarkDismissed flags a recommendation row as dismissed
func (r *PostgresRecommendationRepository) MarkDismissed(id uint) error {
	return r.db.Model(&models.Recommendation{}).
		Where("id = ?", id).
		Update("dismissed", true).Error
}

// DeleteExpired hard-deletes rows past their expiry. Returns rows removed.
func (r *PostgresRecommendationRepository) DeleteExpired(now time.Time) (int64, error) {
	res := r.db.Unscoped().Where("expires_at <= ?", now).Delete(&models.Recommendation{})
	return res.RowsAffected, res.Error
}
