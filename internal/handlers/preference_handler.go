package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rahat-dev/mindnest/backend/internal/models"
	"github.com/rahat-dev/mindnest/backend/internal/repositories"
	"gorm.io/gorm"
)

// PreferenceHandler handles HTTP requests for user preferences
type PreferenceHandler struct {
	preferenceRepository repositories.PreferenceRepository
}

// NewPreferenceHandler creates a new PreferenceHandler
func NewPreferenceHandler(prefRepo repositories.PreferenceRepository) *PreferenceHandler {
	return &PreferenceHandler{preferenceRepository: prefRepo}
}

// RegisterPreferenceRoutes registers preference-related routes
func (h *PreferenceHandler) RegisterPreferenceRoutes(g *echo.Group) {
	g.GET("/preferences", h.GetPreferences)
	g.PUT("/preferences", h.UpsertPreferences)
}

// GetPreferences returns the authenticated user's preference blob.
// Users with no stored preferences get an empty object rather than a 404.
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	pref, err := h.preferenceRepository.GetPreferences(currentUserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusOK, map[string]interface{}{
				"user_id":     currentUserID,
				"preferences": "{}",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, pref)
}

// UpsertPreferences replaces the authenticated user's preference blob
func (h *PreferenceHandler) UpsertPreferences(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	req := new(models.UpsertPreferencesRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pref := &models.UserPreference{
		UserID:      currentUserID,
		Preferences: req.Preferences,
	}
	if err := h.preferenceRepository.UpsertPreferences(pref); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, pref)
}
