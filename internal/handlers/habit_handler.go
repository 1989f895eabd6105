package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rahat-dev/mindnest/backend/internal/models"
	"github.com/rahat-dev/mindnest/backend/internal/repositories"
	"gorm.io/gorm"
)

// HabitHandler handles HTTP requests related to habits and check-ins
type HabitHandler struct {
	habitRepository repositories.HabitRepository
}

// NewHabitHandler creates a new HabitHandler
func NewHabitHandler(habitRepo repositories.HabitRepository) *HabitHandler {
	return &HabitHandler{habitRepository: habitRepo}
}

// RegisterHabitRoutes registers habit-related routes
func (h *HabitHandler) RegisterHabitRoutes(g *echo.Group) {
	g.POST("/habits", h.CreateHabit)
	g.GET("/habits", h.GetHabits)
	g.PUT("/habits/:id", h.UpdateHabit)
	g.DELETE("/habits/:id", h.DeleteHabit)
	g.POST("/habits/:id/checkins", h.CheckIn)
	g.DELETE("/habits/:id/checkins", h.UndoCheckIn)
	g.GET("/habits/:id/checkins", h.GetCheckins)
}

// CreateHabit creates a new habit
func (h *HabitHandler) CreateHabit(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateHabitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	habit := &models.Habit{
		UserID:       currentUserID,
		Name:         req.Name,
		Frequency:    req.Frequency,
		ReminderTime: req.ReminderTime,
	}
	if habit.Frequency == "" {
		habit.Frequency = "daily"
	}

	if err := h.habitRepository.CreateHabit(habit); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, habit)
}

// GetHabits lists the user's habits; `archived=true` includes archived ones
func (h *HabitHandler) GetHabits(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	includeArchived := c.QueryParam("archived") == "true"
	habits, err := h.habitRepository.GetHabitsByUserID(currentUserID, includeArchived)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, habits)
}

// UpdateHabit edits a habit
func (h *HabitHandler) UpdateHabit(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	habit, httpErr := h.ownedHabit(c, currentUserID)
	if httpErr != nil {
		return httpErr
	}

	var req models.UpdateHabitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.Name != "" {
		habit.Name = req.Name
	}
	if req.Frequency != "" {
		habit.Frequency = req.Frequency
	}
	if req.ReminderTime != "" {
		habit.ReminderTime = req.ReminderTime
	}
	if req.Archived != nil {
		habit.Archived = *req.Archived
	}

	if err := h.habitRepository.UpdateHabit(habit); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, habit)
}

// DeleteHabit deletes a habit and its check-ins
func (h *HabitHandler) DeleteHabit(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	habit, httpErr := h.ownedHabit(c, currentUserID)
	if httpErr != nil {
		return httpErr
	}

	if err := h.habitRepository.DeleteHabit(habit.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

// CheckIn marks the habit done for today (or a `day` query param date)
func (h *HabitHandler) CheckIn(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	habit, httpErr := h.ownedHabit(c, currentUserID)
	if httpErr != nil {
		return httpErr
	}

	day, httpErr := dayParam(c)
	if httpErr != nil {
		return httpErr
	}

	checkin := &models.HabitCheckin{HabitID: habit.ID, Day: day}
	if err := h.habitRepository.CreateCheckin(checkin); err != nil {
		// unique index on (habit_id, day) rejects double check-ins
		return echo.NewHTTPError(http.StatusConflict, "Habit already checked in for this day")
	}

	return c.JSON(http.StatusCreated, checkin)
}

// UndoCheckIn removes today's (or a given day's) check-in
func (h *HabitHandler) UndoCheckIn(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	habit, httpErr := h.ownedHabit(c, currentUserID)
	if httpErr != nil {
		return httpErr
	}

	day, httpErr := dayParam(c)
	if httpErr != nil {
		return httpErr
	}

	if err := h.habitRepository.DeleteCheckin(habit.ID, day); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

// GetCheckins lists the habit's check-ins over the last 30 days
func (h *HabitHandler) GetCheckins(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	habit, httpErr := h.ownedHabit(c, currentUserID)
	if httpErr != nil {
		return httpErr
	}

	checkins, err := h.habitRepository.GetCheckins(habit.ID, time.Now().AddDate(0, 0, -30))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, checkins)
}

// ownedHabit loads the habit from the :id param and enforces ownership
func (h *HabitHandler) ownedHabit(c echo.Context, userID uint) (*models.Habit, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid habit ID")
	}

	habit, err := h.habitRepository.GetHabitByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Habit not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if habit.UserID != userID {
		return nil, echo.NewHTTPError(http.StatusForbidden, "You are not authorized to access this habit")
	}
	return habit, nil
}

func dayParam(c echo.Context) (time.Time, error) {
	if raw := c.QueryParam("day"); raw != "" {
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid day format, expected YYYY-MM-DD")
		}
		return day, nil
	}
	return time.Now(), nil
}
