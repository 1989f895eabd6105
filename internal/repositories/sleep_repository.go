package repositories

import (
	"time"

	"github.com/rahat-dev/mindnest/backend/internal/models"
	"gorm.io/gorm"
)

// SleepRepository defines the interface for sleep entry data operations
type SleepRepository interface {
	CreateSleepEntry(entry *models.SleepEntry) error
	GetSleepEntryByID(id uint) (*models.SleepEntry, error)
	GetSleepEntriesByUserID(userID uint, since time.Time) ([]models.SleepEntry, error)
	DeleteSleepEntry(id uint) error
}

// PostgresSleepRepository implements SleepRepository for PostgreSQL
type PostgresSleepRepository struct {
	db *gorm.DB
}

// NewPostgresSleepRepository creates a new PostgresSleepRepository
func NewPostgresSleepRepository(db *gorm.DB) *PostgresSleepRepository {
	return &PostgresSleepRepository{db: db}
}

// CreateSleepEntry creates a new sleep entry in PostgreSQL
func (r *PostgresSleepRepository) CreateSleepEntry(entry *models.SleepEntry) error {
	return r.db.Create(entry).Error
}

// GetSleepEntryByID retrieves a sleep entry by ID from PostgreSQL
func (r *PostgresSleepRepository) GetSleepEntryByID(id uint) (*models.SleepEntry, error) {
	var entry models.SleepEntry
	if err := r.db.First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetSleepEntriesByUserID retrieves a user's sleep entries starting at or
// after the given time, newest first
func (r *PostgresSleepRepository) GetSleepEntriesByUserID(userID uint, since time.Time) ([]models.SleepEntry, error) {
	var entries []models.SleepEntry
	err := r.db.Where("user_id = ? AND start_time >= ?", userID, since).
		Order("start_time DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteSleepEntry deletes a sleep entry by ID from PostgreSQL
func (r *PostgresSleepRepository) DeleteSleepEntry(id uint) error {
	return r.db.Delete(&models.SleepEntry{}, id).Error
}
