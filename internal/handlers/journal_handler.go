package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rahat-dev/mindnest/backend/internal/ai"
	"github.com/rahat-dev/mindnest/backend/internal/models"
	"github.com/rahat-dev/mindnest/backend/internal/repositories"
	"gorm.io/gorm"
)

// JournalHandler handles HTTP requests related to journal entries
type JournalHandler struct {
	journalRepository repositories.JournalRepository
	moodRepository    repositories.MoodEntryRepository
	generator         ai.Generator
}

// NewJournalHandler creates a new JournalHandler
func NewJournalHandler(journalRepo repositories.JournalRepository, moodRepo repositories.MoodEntryRepository, generator ai.Generator) *JournalHandler {
	return &JournalHandler{
		journalRepository: journalRepo,
		moodRepository:    moodRepo,
		generator:         generator,
	}
}

// RegisterJournalRoutes registers journal-related routes
func (h *JournalHandler) RegisterJournalRoutes(g *echo.Group) {
	g.POST("/journal-entries", h.CreateJournalEntry)
	g.GET("/journal-entries", h.GetJournalEntries)
	g.GET("/journal-entries/:id", h.GetJournalEntry)
	g.PUT("/journal-entries/:id", h.UpdateJournalEntry)
	g.DELETE("/journal-entries/:id", h.DeleteJournalEntry)
	g.GET("/journal-entries/prompt", h.GetPrompt)
}

// CreateJournalEntry creates a new journal entry
func (h *JournalHandler) CreateJournalEntry(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateJournalEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	entry := &models.JournalEntry{
		UserID:    currentUserID,
		Title:     req.Title,
		Body:      req.Body,
		MoodScore: req.MoodScore,
		Prompt:    req.Prompt,
	}

	if err := h.journalRepository.CreateJournalEntry(entry); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, entry)
}

// GetJournalEntries lists the user's journal entries with pagination
func (h *JournalHandler) GetJournalEntries(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	entries, total, err := h.journalRepository.GetJournalEntriesByUserID(currentUserID, page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return c.JSON(http.StatusOK, echo.Map{
		"entries": entries,
		"meta": echo.Map{
			"currentPage":  page,
			"totalPages":   totalPages,
			"totalItems":   total,
			"itemsPerPage": limit,
		},
	})
}

// GetJournalEntry retrieves one of the user's journal entries
func (h *JournalHandler) GetJournalEntry(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid journal entry ID")
	}

	entry, err := h.journalRepository.GetJournalEntryByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Journal entry not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if entry.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to view this journal entry")
	}

	return c.JSON(http.StatusOK, entry)
}

// UpdateJournalEntry edits an existing journal entry
func (h *JournalHandler) UpdateJournalEntry(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid journal entry ID")
	}

	var req models.UpdateJournalEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	entry, err := h.journalRepository.GetJournalEntryByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Journal entry not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if entry.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this journal entry")
	}

	if req.Title != "" {
		entry.Title = req.Title
	}
	if req.Body != "" {
		entry.Body = req.Body
	}
	if req.MoodScore != 0 {
		entry.MoodScore = req.MoodScore
	}

	if err := h.journalRepository.UpdateJournalEntry(entry); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, entry)
}

// DeleteJournalEntry deletes a journal entry
func (h *JournalHandler) DeleteJournalEntry(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid journal entry ID")
	}

	entry, err := h.journalRepository.GetJournalEntryByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Journal entry not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if entry.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this journal entry")
	}

	if err := h.journalRepository.DeleteJournalEntry(uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

// GetPrompt returns a CBT-style journaling prompt tailored to the user's
// most recent mood
func (h *JournalHandler) GetPrompt(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	mood := models.MoodNeutral
	trigger := ""
	entries, err := h.moodRepository.GetMoodEntriesByUserID(currentUserID, weekAgo())
	if err == nil && len(entries) > 0 {
		mood = entries[0].Mood
		trigger = entries[0].Triggers
	}

	prompt := h.generator.CBTPrompt(c.Request().Context(), mood, trigger)
	return c.JSON(http.StatusOK, echo.Map{"prompt": prompt})
}
