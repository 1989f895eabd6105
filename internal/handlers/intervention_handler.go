package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rahat-dev/mindnest/backend/internal/ai"
	"github.com/rahat-dev/mindnest/backend/internal/models"
	"github.com/rahat-dev/mindnest/backend/internal/repositories"
	"gorm.io/gorm"
)

// InterventionHandler handles the guided-exercise catalog and completion records
type InterventionHandler struct {
	interventionRepository repositories.InterventionRepository
	generator              ai.Generator
}

// NewInterventionHandler creates a new InterventionHandler
func NewInterventionHandler(interventionRepo repositories.InterventionRepository, generator ai.Generator) *InterventionHandler {
	return &InterventionHandler{
		interventionRepository: interventionRepo,
		generator:              generator,
	}
}

// RegisterInterventionRoutes registers intervention routes
func (h *InterventionHandler) RegisterInterventionRoutes(g *echo.Group) {
	g.GET("/interventions", h.GetInterventions)
	g.GET("/interventions/:id", h.GetIntervention)
	g.GET("/interventions/:id/guidance", h.GetGuidance)
	g.POST("/interventions/:id/complete", h.CompleteIntervention)
	g.GET("/interventions/sessions", h.GetSessions)
}

// RegisterAdminInterventionRoutes registers catalog management routes
func (h *InterventionHandler) RegisterAdminInterventionRoutes(g *echo.Group) {
	g.POST("/interventions", h.CreateIntervention)
	g.PUT("/interventions/:id", h.UpdateIntervention)
	g.DELETE("/interventions/:id", h.DeleteIntervention)
}

// GetInterventions lists the catalog, optionally filtered by type
func (h *InterventionHandler) GetInterventions(c echo.Context) error {
	interventions, err := h.interventionRepository.GetInterventions(c.QueryParam("type"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, interventions)
}

// GetIntervention retrieves one catalog row
func (h *InterventionHandler) GetIntervention(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid intervention ID")
	}

	intervention, err := h.interventionRepository.GetInterventionByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Intervention not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, intervention)
}

// GetGuidance returns AI-personalized guidance text for an exercise.
// The `mood` query param tailors the text; falls back to canned steps on
// AI failure.
func (h *InterventionHandler) GetGuidance(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid intervention ID")
	}

	intervention, err := h.interventionRepository.GetInterventionByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Intervention not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	mood := c.QueryParam("mood")
	if mood == "" {
		mood = models.MoodNeutral
	}

	guidance := h.generator.InterventionText(c.Request().Context(), intervention.Type, mood)
	return c.JSON(http.StatusOK, echo.Map{"guidance": guidance})
}

// CompleteIntervention records a finished exercise session
func (h *InterventionHandler) CompleteIntervention(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid intervention ID")
	}

	var req models.CompleteInterventionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// Verify the catalog row exists
	if _, err := h.interventionRepository.GetInterventionByID(uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Intervention not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	session := &models.InterventionSession{
		UserID:         currentUserID,
		InterventionID: uint(id),
		Rating:         req.Rating,
		Reflection:     req.Reflection,
		CompletedAt:    time.Now(),
	}

	if err := h.interventionRepository.CreateSession(session); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, session)
}

// GetSessions lists the authenticated user's completed sessions
func (h *InterventionHandler) GetSessions(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	sessions, err := h.interventionRepository.GetSessionsByUserID(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, sessions)
}

// CreateIntervention adds a catalog row (admin)
func (h *InterventionHandler) CreateIntervention(c echo.Context) error {
	var req models.CreateInterventionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	intervention := &models.Intervention{
		Type:            req.Type,
		Title:           req.Title,
		Description:     req.Description,
		DurationSeconds: req.DurationSeconds,
		Steps:           req.Steps,
	}

	if err := h.interventionRepository.CreateIntervention(intervention); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, intervention)
}

// UpdateIntervention edits a catalog row (admin)
func (h *InterventionHandler) UpdateIntervention(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid intervention ID")
	}

	intervention, err := h.interventionRepository.GetInterventionByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Intervention not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var req models.UpdateInterventionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.Type != "" {
		intervention.Type = req.Type
	}
	if req.Title != "" {
		intervention.Title = req.Title
	}
	if req.Description != "" {
		intervention.Description = req.Description
	}
	if req.DurationSeconds > 0 {
		intervention.DurationSeconds = req.DurationSeconds
	}
	if req.Steps != "" {
		intervention.Steps = req.Steps
	}

	if err := h.interventionRepository.UpdateIntervention(intervention); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, intervention)
}

// DeleteIntervention removes a catalog row (admin)
func (h *InterventionHandler) DeleteIntervention(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid intervention ID")
	}

	if err := h.interventionRepository.DeleteIntervention(uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
