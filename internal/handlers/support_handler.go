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

// SupportHandler handles HTTP requests for the support inbox
type SupportHandler struct {
	supportRepository repositories.SupportRepository
	userRepository    repositories.UserRepository
	mailer            services.Mailer
}

// NewSupportHandler creates a new SupportHandler
func NewSupportHandler(supportRepo repositories.SupportRepository, userRepo repositories.UserRepository, mailer services.Mailer) *SupportHandler {
	return &SupportHandler{
		supportRepository: supportRepo,
		userRepository:    userRepo,
		mailer:            mailer,
	}
}

// RegisterSupportRoutes registers user-facing support routes
func (h *SupportHandler) RegisterSupportRoutes(g *echo.Group) {
	g.POST("/support", h.CreateMessage)
	g.GET("/support", h.GetMyMessages)
}

// RegisterAdminSupportRoutes registers admin inbox routes
func (h *SupportHandler) RegisterAdminSupportRoutes(g *echo.Group) {
	g.GET("/support", h.GetInbox)
	g.POST("/support/:id/reply", h.ReplyToMessage)
	g.POST("/support/:id/close", h.CloseMessage)
}

// CreateMessage files a new support message from the authenticated user
func (h *SupportHandler) CreateMessage(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	req := new(models.CreateSupportMessageRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg := &models.SupportMessage{
		UserID:  currentUserID,
		Subject: req.Subject,
		Body:    req.Body,
		Status:  models.SupportOpen,
	}
	if err := h.supportRepository.CreateMessage(msg); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, msg)
}

// GetMyMessages returns the authenticated user's support thread history
func (h *SupportHandler) GetMyMessages(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	msgs, err := h.supportRepository.GetMessagesByUserID(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, msgs)
}

// GetInbox returns support messages for admins, optionally filtered by status
func (h *SupportHandler) GetInbox(c echo.Context) error {
	status := c.QueryParam("status")
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	msgs, total, err := h.supportRepository.GetMessages(status, page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"messages": msgs,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

// ReplyToMessage records an admin reply and emails it to the message author.
// If the email cannot be delivered the message stays open so the admin can
// retry.
func (h *SupportHandler) ReplyToMessage(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid message ID")
	}

	msg, err := h.supportRepository.GetMessageByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Support message not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if msg.Status == models.SupportClosed {
		return echo.NewHTTPError(http.StatusConflict, "Support message is closed")
	}

	req := new(models.ReplySupportMessageRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	author, err := h.userRepository.GetUserByID(msg.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.mailer.Send(author.Email, "Re: "+msg.Subject, req.Body); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "Failed to send reply email")
	}

	now := time.Now()
	msg.ReplyBody = req.Body
	msg.Status = models.SupportReplied
	msg.RepliedAt = &now
	if err := h.supportRepository.UpdateMessage(msg); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, msg)
}

// CloseMessage marks a support message closed without replying
func (h *SupportHandler) CloseMessage(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid message ID")
	}

	msg, err := h.supportRepository.GetMessageByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Support message not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	msg.Status = models.SupportClosed
	if err := h.supportRepository.UpdateMessage(msg); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, msg)
}
