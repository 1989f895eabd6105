package repositories

import (
	"time"

	"github.com/rahat-dev/mindnest/backend/internal/models"
	"gorm.io/gorm"
)

// HabitRepository defines the interface for habit and check-in data operations
type HabitRepository interface {
	CreateHabit(habit *models.Habit) error
	GetHabitByID(id uint) (*models.Habit, error)
	GetHabitsByUserID(userID uint, includeArchived bool) ([]models.Habit, error)
	UpdateHabit(habit *models.Habit) error
	DeleteHabit(id uint) error
	CreateCheckin(checkin *models.HabitCheckin) error
	DeleteCheckin(habitID uint, day time.Time) error
	GetCheckins(habitID uint, since time.Time) ([]models.HabitCheckin, error)
}

// PostgresHabitRepository implements HabitRepository for PostgreSQL
type PostgresHabitRepository struct {
	db *gorm.DB
}

// NewPostgresHabitRepository creates a new PostgresHabitRepository
func NewPostgresHabitRepository(db *gorm.DB) *PostgresHabitRepository {
	return &PostgresHabitRepository{db: db}
}

// CreateHabit creates a new habit in PostgreSQL
func (r *PostgresHabitRepository) CreateHabit(habit *models.Habit) error {
	return r.db.Create(habit).Error
}

// GetHabitByID retrieves a habit by ID from PostgreSQL
func (r *PostgresHabitRepository) GetHabitByID(id uint) (*models.Habit, error) {
	var habit models.Habit
	if err := r.db.First(&habit, id).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

// GetHabitsByUserID retrieves a user's habits from PostgreSQL
func (r *PostgresHabitRepository) GetHabitsByUserID(userID uint, includeArchived bool) ([]models.Habit, error) {
	var habits []models.Habit
	q := r.db.Where("user_id = ?", userID)
	if !includeArchived {
		q = q.Where("archived = ?", false)
	}
	if err := q.Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

// UpdateHabit updates an existing habit in PostgreSQL
func (r *PostgresHabitRepository) UpdateHabit(habit *models.Habit) error {
	return r.db.Save(habit).Error
}

// DeleteHabit deletes a habit by ID from PostgreSQL
func (r *PostgresHabitRepository) DeleteHabit(id uint) error {
	return r.db.Delete(&models.Habit{}, id).Error
}

// CreateCheckin marks a habit done for a day. The unique index on
// (habit_id, day) rejects duplicates.
func (r *PostgresHabitRepository) CreateCheckin(checkin *models.HabitCheckin) error {
	checkin.Day = checkin.Day.Truncate(24 * time.Hour)
	return r.db.Create(checkin).Error
}

// DeleteCheckin removes a day's check-in for a habit
func (r *PostgresHabitRepository) DeleteCheckin(habitID uint, day time.Time) error {
	day = day.Truncate(24 * time.Hour)
	return r.db.Where("habit_id = ? AND day = ?", habitID, day).
		Delete(&models.HabitCheckin{}).Error
}

// GetCheckins retrieves a habit's check-ins since the given time
func (r *PostgresHabitRepository) GetCheckins(habitID uint, since time.Time) ([]models.HabitCheckin, error) {
	var checkins []models.HabitCheckin
	err := r.db.Where("habit_id = ? AND day >= ?", habitID, since).
		Order("day DESC").
		Find(&checkins).Error
	if err != nil {
		return nil, err
	}
	return checkins, nil
}
