package repositories

import (
	"github.com/rahat-dev/mindnest/backend/internal/models"
	"gorm.io/gorm"
)

// InterventionRepository defines the interface for intervention catalog and
// session data operations
type InterventionRepository interface {
	CreateIntervention(intervention *models.Intervention) error
	GetInterventionByID(id uint) (*models.Intervention, error)
	GetInterventions(kind string) ([]models.Intervention, error)
	UpdateIntervention(intervention *models.Intervention) error
	DeleteIntervention(id uint) error
	CreateSession(session *models.InterventionSession) error
	GetSessionsByUserID(userID uint) ([]models.InterventionSession, error)
}

// PostgresInterventionRepository implements InterventionRepository for PostgreSQL
type PostgresInterventionRepository struct {
	db *gorm.DB
}

// NewPostgresInterventionRepository creates a new PostgresInterventionRepository
func NewPostgresInterventionRepository(db *gorm.DB) *PostgresInterventionRepository {
	return &PostgresInterventionRepository{db: db}
}

// CreateIntervention creates a new catalog row in PostgreSQL
func (r *PostgresInterventionRepository) CreateIntervention(intervention *models.Intervention) error {
	return r.db.Create(intervention).Error
}

// GetInterventionByID retrieves a catalog row by ID from PostgreSQL
func (r *PostgresInterventionRepository) GetInterventionByID(id uint) (*models.Intervention, error) {
	var intervention models.Intervention
	if err := r.db.First(&intervention, id).Error; err != nil {
		return nil, err
	}
	return &intervention, nil
}

// GetInterventions retrieves catalog rows, optionally filtered by kind
func (r *PostgresInterventionRepository) GetInterventions(kind string) ([]models.Intervention, error) {
	var interventions []models.Intervention
	q := r.db
	if kind != "" {
		q = q.Where("type = ?", kind)
	}
	if err := q.Find(&interventions).Error; err != nil {
		return nil, err
	}
	return interventions, nil
}

// UpdateIntervention updates an existing catalog row in PostgreSQL
func (r *PostgresInterventionRepository) UpdateIntervention(intervention *models.Intervention) error {
	return r.db.Save(intervention).Error
}

// DeleteIntervention deletes a catalog row by ID from PostgreSQL
func (r *PostgresInterventionRepository) DeleteIntervention(id uint) error {
	return r.db.Delete(&models.Intervention{}, id).Error
}

// CreateSession records a completed exercise in PostgreSQL
func (r *PostgresInterventionRepository) CreateSession(session *models.InterventionSession) error {
	return r.db.Create(session).Error
}

// GetSessionsByUserID retrieves a user's completed sessions, newest first
func (r *PostgresInterventionRepository) GetSessionsByUserID(userID uint) ([]models.InterventionSession, error) {
	var sessions []models.InterventionSession
	err := r.db.Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
