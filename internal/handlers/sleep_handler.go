package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rahat-dev/mindnest/backend/internal/models"
	"github.com/rahat-dev/mindnest/backend/internal/repositories"
	"github.com/rahat-dev/mindnest/backend/internal/services"
	"gorm.io/gorm"
)

// SleepHandler handles HTTP requests related to sleep entries
type SleepHandler struct {
	sleepRepository repositories.SleepRepository
}

// NewSleepHandler creates a new SleepHandler
func NewSleepHandler(sleepRepo repositories.SleepRepository) *SleepHandler {
	return &SleepHandler{sleepRepository: sleepRepo}
}

// RegisterSleepRoutes registers sleep-related routes
func (h *SleepHandler) RegisterSleepRoutes(g *echo.Group) {
	g.POST("/sleep-entries", h.CreateSleepEntry)
	g.GET("/sleep-entries", h.GetSleepEntries)
	g.DELETE("/sleep-entries/:id", h.DeleteSleepEntry)
	g.GET("/sleep-entries/stats", h.GetSleepStats)
}

// CreateSleepEntry logs a night of sleep
func (h *SleepHandler) CreateSleepEntry(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateSleepEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	entry := &models.SleepEntry{
		UserID:        currentUserID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Quality:       req.Quality,
		Interruptions: req.Interruptions,
	}

	if err := h.sleepRepository.CreateSleepEntry(entry); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, entry)
}

// GetSleepEntries lists the user's recent sleep entries
func (h *SleepHandler) GetSleepEntries(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	entries, err := h.sleepRepository.GetSleepEntriesByUserID(currentUserID, weekAgo())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, entries)
}

// DeleteSleepEntry deletes a sleep entry
func (h *SleepHandler) DeleteSleepEntry(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid sleep entry ID")
	}

	entry, err := h.sleepRepository.GetSleepEntryByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Sleep entry not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if entry.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this sleep entry")
	}

	if err := h.sleepRepository.DeleteSleepEntry(uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

// GetSleepStats returns aggregate sleep stats over the last week
func (h *SleepHandler) GetSleepStats(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	entries, err := h.sleepRepository.GetSleepEntriesByUserID(currentUserID, weekAgo())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, services.CalculateSleepStats(entries))
}
