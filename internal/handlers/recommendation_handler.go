package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rahat-dev/mindnest/backend/internal/repositories"
	"github.com/rahat-dev/mindnest/backend/internal/services"
	"gorm.io/gorm"
)

// RecommendationHandler handles HTTP requests for AI recommendations
type RecommendationHandler struct {
	recommendationService *services.RecommendationService
	recommendationRepo    repositories.RecommendationRepository
}

// NewRecommendationHandler creates a new RecommendationHandler
func NewRecommendationHandler(svc *services.RecommendationService, recRepo repositories.RecommendationRepository) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: svc,
		recommendationRepo:    recRepo,
	}
}

// RegisterRecommendationRoutes registers recommendation-related routes
func (h *RecommendationHandler) RegisterRecommendationRoutes(g *echo.Group) {
	g.GET("/recommendations", h.ListRecommendations)
	g.POST("/recommendations/generate", h.GenerateRecommendations)
	g.DELETE("/recommendations/:id", h.DismissRecommendation)
}

// ListRecommendations returns the authenticated user's active recommendations
func (h *RecommendationHandler) ListRecommendations(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	recs, err := h.recommendationService.ListActive(c.Request().Context(), currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, recs)
}

// GenerateRecommendations runs the rule engine for the authenticated user and
// returns the newly created rows
func (h *RecommendationHandler) GenerateRecommendations(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	recs, err := h.recommendationService.GenerateForUser(c.Request().Context(), currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, recs)
}

// DismissRecommendation marks one of the user's recommendations dismissed
func (h *RecommendationHandler) DismissRecommendation(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid recommendation ID")
	}

	rec, err := h.recommendationRepo.GetRecommendationByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Recommendation not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if rec.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You can only dismiss your own recommendations")
	}

	if err := h.recommendationService.Dismiss(c.Request().Context(), currentUserID, rec.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
