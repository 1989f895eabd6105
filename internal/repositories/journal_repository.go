package repositories

import (
	"github.com/rahat-dev/mindnest/backend/internal/models"
	"gorm.io/gorm"
)

// JournalRepository defines the interface for journal entry data operations
type JournalRepository interface {
	CreateJournalEntry(entry *models.JournalEntry) error
	GetJournalEntryByID(id uint) (*models.JournalEntry, error)
	GetJournalEntriesByUserID(userID uint, page, limit int) ([]models.JournalEntry, int64, error)
	UpdateJournalEntry(entry *models.JournalEntry) error
	DeleteJournalEntry(id uint) error
}

// PostgresJournalRepository implements JournalRepository for PostgreSQL
type PostgresJournalRepository struct {
	db *gorm.DB
}

// NewPostgresJournalRepository creates a new PostgresJournalRepository
func NewPostgresJournalRepository(db *gorm.DB) *PostgresJournalRepository {
	return &PostgresJournalRepository{db: db}
}

// CreateJournalEntry creates a new journal entry in PostgreSQL
func (r *PostgresJournalRepository) CreateJournalEntry(entry *models.JournalEntry) error {
	return r.db.Create(entry).Error
}

// GetJournalEntryByID retrieves a journal entry by ID from PostgreSQL
func (r *PostgresJournalRepository) GetJournalEntryByID(id uint) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	if err := r.db.First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetJournalEntriesByUserID retrieves a user's journal entries with pagination,
// newest first
func (r *PostgresJournalRepository) GetJournalEntriesByUserID(userID uint, page, limit int) ([]models.JournalEntry, int64, error) {
	var entries []models.JournalEntry
	var total int64

	r.db.Model(&models.JournalEntry{}).Where("user_id = ?", userID).Count(&total)

	offset := (page - 1) * limit
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&entries).Error

	return entries, total, err
}

// UpdateJournalEntry updates an existing journal entry in PostgreSQL
func (r *PostgresJournalRepository) UpdateJournalEntry(entry *models.JournalEntry) error {
	return r.db.Save(entry).Error
}

// DeleteJournalEntry deletes a journal entry by ID from PostgreSQL
func (r *PostgresJournalRepository) DeleteJournalEntry(id uint) error {
	return r.db.Delete(&models.JournalEntry{}, id).Error
}
