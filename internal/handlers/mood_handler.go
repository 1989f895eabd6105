package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rahat-dev/mindnest/backend/internal/models"
	"github.com/rahat-dev/mindnest/backend/internal/repositories"
	"github.com/rahat-dev/mindnest/backend/internal/services"
	"gorm.io/gorm"
)

// MoodHandler handles HTTP requests related to mood entries
type MoodHandler struct {
	moodRepository repositories.MoodEntryRepository
	insights       *services.InsightsService
}

// NewMoodHandler creates a new MoodHandler
func NewMoodHandler(moodRepo repositories.MoodEntryRepository, insights *services.InsightsService) *MoodHandler {
	return &MoodHandler{
		moodRepository: moodRepo,
		insights:       insights,
	}
}

// RegisterMoodRoutes registers mood-related routes
func (h *MoodHandler) RegisterMoodRoutes(g *echo.Group) {
	g.POST("/mood-entries", h.CreateMoodEntry)
	g.GET("/mood-entries", h.GetMoodEntries)
	g.PUT("/mood-entries/:id", h.UpdateMoodEntry)
	g.DELETE("/mood-entries/:id", h.DeleteMoodEntry)
	g.GET("/mood-entries/stats", h.GetMoodStats)
	g.GET("/mood-entries/summary", h.GetPatternSummary)
}

// CreateMoodEntry logs a new mood entry
func (h *MoodHandler) CreateMoodEntry(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateMoodEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	recordedAt := time.Now()
	if req.RecordedAt != nil {
		recordedAt = *req.RecordedAt
	}

	entry := &models.MoodEntry{
		UserID:     currentUserID,
		Mood:       req.Mood,
		Intensity:  req.Intensity,
		Note:       req.Note,
		Triggers:   req.Triggers,
		RecordedAt: recordedAt,
	}

	if err := h.moodRepository.CreateMoodEntry(entry); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, entry)
}

// GetMoodEntries lists the authenticated user's recent mood entries.
// The `days` query param bounds the window (default 7, max 365).
func (h *MoodHandler) GetMoodEntries(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	days, _ := strconv.Atoi(c.QueryParam("days"))
	if days < 1 || days > 365 {
		days = 7
	}

	entries, err := h.moodRepository.GetMoodEntriesByUserID(currentUserID, time.Now().AddDate(0, 0, -days))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, entries)
}

// UpdateMoodEntry edits an existing mood entry
func (h *MoodHandler) UpdateMoodEntry(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	entryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid mood entry ID")
	}

	var req models.UpdateMoodEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	entry, err := h.moodRepository.GetMoodEntryByID(uint(entryID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Mood entry not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if entry.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this mood entry")
	}

	if req.Mood != "" {
		entry.Mood = req.Mood
	}
	if req.Intensity != 0 {
		entry.Intensity = req.Intensity
	}
	if req.Note != "" {
		entry.Note = req.Note
	}
	if req.Triggers != "" {
		entry.Triggers = req.Triggers
	}

	if err := h.moodRepository.UpdateMoodEntry(entry); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, entry)
}

// DeleteMoodEntry deletes a mood entry
func (h *MoodHandler) DeleteMoodEntry(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	entryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid mood entry ID")
	}

	entry, err := h.moodRepository.GetMoodEntryByID(uint(entryID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Mood entry not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if entry.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this mood entry")
	}

	if err := h.moodRepository.DeleteMoodEntry(uint(entryID)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

// GetMoodStats returns aggregate stats over the recent window
func (h *MoodHandler) GetMoodStats(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	days, _ := strconv.Atoi(c.QueryParam("days"))
	if days < 1 || days > 90 {
		days = 7
	}

	stats, err := h.insights.MoodStats(currentUserID, days)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, stats)
}

// GetPatternSummary returns an AI-written summary of the week's moods
func (h *MoodHandler) GetPatternSummary(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	summary, err := h.insights.PatternSummary(c.Request().Context(), currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"summary": summary})
}
