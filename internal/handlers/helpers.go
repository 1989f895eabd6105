package handlers

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rahat-dev/mindnest/backend/internal/models"
)

// getUserIDFromContext extracts the authenticated user's ID from JWT claims
// set by the auth middleware. Returns 0 when unauthenticated.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

func weekAgo() time.Time {
	return time.Now().AddDate(0, 0, -7)
}
