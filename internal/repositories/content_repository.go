package repositories

import (
	"github.com/rahat-dev/mindnest/backend/internal/models"
	"gorm.io/gorm"
)

// ContentRepository defines the interface for content catalog operations
type ContentRepository interface {
	CreateContent(content *models.ContentMetadata) error
	GetContentByID(id uint) (*models.ContentMetadata, error)
	GetContents(kind, mood string) ([]models.ContentMetadata, error)
	UpdateContent(content *models.ContentMetadata) error
	DeleteContent(id uint) error
}

// PostgresContentRepository implements ContentRepository for PostgreSQL
type PostgresContentRepository struct {
	db *gorm.DB
}

// NewPostgresContentRepository creates a new PostgresContentRepository
func NewPostgresContentRepository(db *gorm.DB) *PostgresContentRepository {
	return &PostgresContentRepository{db: db}
}

// CreateContent creates a new catalog row in PostgreSQL
func (r *PostgresContentRepository) CreateContent(content *models.ContentMetadata) error {
	return r.db.Create(content).Error
}

// GetContentByID retrieves a catalog row by ID from PostgreSQL
func (r *PostgresContentRepository) GetContentByID(id uint) (*models.ContentMetadata, error) {
	var content models.ContentMetadata
	if err := r.db.First(&content, id).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

// GetContents retrieves catalog rows, optionally filtered by kind and by a
// targeted mood label
func (r *PostgresContentRepository) GetContents(kind, mood string) ([]models.ContentMetadata, error) {
	var contents []models.ContentMetadata
	q := r.db
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	if mood != "" {
		q = q.Where("target_moods LIKE ?", "%"+mood+"%")
	}
	if err := q.Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// UpdateContent updates an existing catalog row in PostgreSQL
func (r *PostgresContentRepository) UpdateContent(content *models.ContentMetadata) error {
	return r.db.Save(content).Error
}

// DeleteContent deletes a catalog row by ID from PostgreSQL
func (r *PostgresContentRepository) DeleteContent(id uint) error {
	return r.db.Delete(&models.ContentMetadata{}, id).Error
}
