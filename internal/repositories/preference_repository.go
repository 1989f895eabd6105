package repositories

import (
	"github.com/rahat-dev/mindnest/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreferenceRepository defines the interface for user preference operations
type PreferenceRepository interface {
	GetPreferences(userID uint) (*models.UserPreference, error)
	UpsertPreferences(pref *models.UserPreference) error
}

// PostgresPreferenceRepository implements PreferenceRepository for PostgreSQL
type PostgresPreferenceRepository struct {
	db *gorm.DB
}

// NewPostgresPreferenceRepository creates a new PostgresPreferenceRepository
func NewPostgresPreferenceRepository(db *gorm.DB) *PostgresPreferenceRepository {
	return &PostgresPreferenceRepository{db: db}
}

// GetPreferences retrieves the preference row for a user
func (r *PostgresPreferenceRepository) GetPreferences(userID uint) (*models.UserPreference, error) {
	var pref models.UserPreference
	if err := r.db.Where("user_id = ?", userID).First(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

// UpsertPreferences creates or replaces the preference row for a user
func (r *PostgresPreferenceRepository) UpsertPreferences(pref *models.UserPreference) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"preferences", "updated_at"}),
	}).Create(pref).Error
}
