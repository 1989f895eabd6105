package repositories

import (
	"time"

	"github.com/rahat-dev/mindnest/backend/internal/models"
	"gorm.io/gorm"
)

// MoodEntryRepository defines the interface for mood entry data operations
type MoodEntryRepository interface {
	CreateMoodEntry(entry *models.MoodEntry) error
	GetMoodEntryByID(id uint) (*models.MoodEntry, error)
	GetMoodEntriesByUserID(userID uint, since time.Time) ([]models.MoodEntry, error)
	UpdateMoodEntry(entry *models.MoodEntry) error
	DeleteMoodEntry(id uint) error
	GetRecentlyActiveUserIDs(since time.Time) ([]uint, error)
}

// PostgresMoodEntryRepository implements MoodEntryRepository for PostgreSQL
type PostgresMoodEntryRepository struct {
	db *gorm.DB
}

// NewPostgresMoodEntryRepository creates a new PostgresMoodEntryRepository
func NewPostgresMoodEntryRepository(db *gorm.DB) *PostgresMoodEntryRepository {
	return &PostgresMoodEntryRepository{db: db}
}

// CreateMoodEntry creates a new mood entry in PostgreSQL
func (r *PostgresMoodEntryRepository) CreateMoodEntry(entry *models.MoodEntry) error {
	return r.db.Create(entry).Error
}

// GetMoodEntryByID retrieves a mood entry by ID from PostgreSQL
func (r *PostgresMoodEntryRepository) GetMoodEntryByID(id uint) (*models.MoodEntry, error) {
	var entry models.MoodEntry
	if err := r.db.First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetMoodEntriesByUserID retrieves a user's mood entries recorded at or after
// the given time, newest first
func (r *PostgresMoodEntryRepository) GetMoodEntriesByUserID(userID uint, since time.Time) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	err := r.db.Where("user_id = ? AND recorded_at >= ?", userID, since).
		Order("recorded_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateMoodEntry updates an existing mood entry in PostgreSQL
func (r *PostgresMoodEntryRepository) UpdateMoodEntry(entry *models.MoodEntry) error {
	return r.db.Save(entry).Error
}

// DeleteMoodEntry deletes a mood entry by ID from PostgreSQL
func (r *PostgresMoodEntryRepository) DeleteMoodEntry(id uint) error {
	return r.db.Delete(&models.MoodEntry{}, id).Error
}

// GetRecentlyActiveUserIDs returns IDs of users with at least one mood entry
// since the given time. Used by the nightly recommendation job.
func (r *PostgresMoodEntryRepository) GetRecentlyActiveUserIDs(since time.Time) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.MoodEntry{}).
		Where("recorded_at >= ?", since).
		Distinct("user_id").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
