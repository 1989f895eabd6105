package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rahat-dev/mindnest/backend/internal/models"
	"github.com/rahat-dev/mindnest/backend/internal/repositories"
	"gorm.io/gorm"
)

// ContentHandler handles HTTP requests for the wellness content catalog
type ContentHandler struct {
	contentRepository repositories.ContentRepository
	savedRepository   repositories.SavedContentRepository
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contentRepo repositories.ContentRepository, savedRepo repositories.SavedContentRepository) *ContentHandler {
	return &ContentHandler{
		contentRepository: contentRepo,
		savedRepository:   savedRepo,
	}
}

// RegisterContentRoutes registers catalog browse and bookmark routes
func (h *ContentHandler) RegisterContentRoutes(g *echo.Group) {
	g.GET("/content", h.ListContent)
	g.GET("/content/:id", h.GetContent)
	g.GET("/content/saved", h.ListSavedContent)
	g.POST("/content/:id/save", h.SaveContent)
	g.DELETE("/content/:id/save", h.UnsaveContent)
}

// RegisterAdminContentRoutes registers catalog management routes
func (h *ContentHandler) RegisterAdminContentRoutes(g *echo.Group) {
	g.POST("/content", h.CreateContent)
	g.PUT("/content/:id", h.UpdateContent)
	g.DELETE("/content/:id", h.DeleteContent)
}

// ListContent returns catalog rows, optionally filtered by kind and target mood
func (h *ContentHandler) ListContent(c echo.Context) error {
	kind := c.QueryParam("kind")
	mood := c.QueryParam("mood")

	contents, err := h.contentRepository.GetContents(kind, mood)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, contents)
}

// GetContent returns a single catalog row by ID
func (h *ContentHandler) GetContent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid content ID")
	}

	content, err := h.contentRepository.GetContentByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Content not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, content)
}

// ListSavedContent returns the catalog rows the user has bookmarked
func (h *ContentHandler) ListSavedContent(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	saved, err := h.savedRepository.GetSavedByUserID(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	contents := make([]models.ContentMetadata, 0, len(saved))
	for _, s := range saved {
		content, err := h.contentRepository.GetContentByID(s.ContentID)
		if err != nil {
			continue // row was deleted from the catalog after saving
		}
		contents = append(contents, *content)
	}

	return c.JSON(http.StatusOK, contents)
}

// SaveContent bookmarks a catalog row for the authenticated user
func (h *ContentHandler) SaveContent(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid content ID")
	}

	if _, err := h.contentRepository.GetContentByID(uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Content not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	already, err := h.savedRepository.IsSaved(currentUserID, uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if already {
		return echo.NewHTTPError(http.StatusConflict, "Content already saved")
	}

	saved := &models.SavedContent{UserID: currentUserID, ContentID: uint(id)}
	if err := h.savedRepository.SaveContent(saved); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, saved)
}

// UnsaveContent removes the user's bookmark for a catalog row
func (h *ContentHandler) UnsaveContent(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid content ID")
	}

	if err := h.savedRepository.UnsaveContent(currentUserID, uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Saved content not found")
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateContent adds a catalog row (admin only)
func (h *ContentHandler) CreateContent(c echo.Context) error {
	req := new(models.CreateContentRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	content := &models.ContentMetadata{
		Kind:            req.Kind,
		Title:           req.Title,
		Description:     req.Description,
		URL:             req.URL,
		DurationSeconds: req.DurationSeconds,
		TargetMoods:     req.TargetMoods,
	}
	if err := h.contentRepository.CreateContent(content); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, content)
}

// UpdateContent edits a catalog row (admin only)
func (h *ContentHandler) UpdateContent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid content ID")
	}

	content, err := h.contentRepository.GetContentByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Content not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	req := new(models.UpdateContentRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.Kind != "" {
		content.Kind = req.Kind
	}
	if req.Title != "" {
		content.Title = req.Title
	}
	if req.Description != "" {
		content.Description = req.Description
	}
	if req.URL != "" {
		content.URL = req.URL
	}
	if req.DurationSeconds > 0 {
		content.DurationSeconds = req.DurationSeconds
	}
	if req.TargetMoods != "" {
		content.TargetMoods = req.TargetMoods
	}

	if err := h.contentRepository.UpdateContent(content); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, content)
}

// DeleteContent removes a catalog row (admin only)
func (h *ContentHandler) DeleteContent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid content ID")
	}

	if _, err := h.contentRepository.GetContentByID(uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Content not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.contentRepository.DeleteContent(uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
