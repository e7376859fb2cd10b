package handler

import (
	"net/http"

	"stampcard/internal/delivery/http/middleware"
	"stampcard/internal/delivery/http/response"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionHandler holds dependencies for session-scoped handlers.
type SessionHandler struct {
	accessUC usecase.AccessUsecase
}

// NewSessionHandler is the constructor for SessionHandler.
func NewSessionHandler(accessUC usecase.AccessUsecase) *SessionHandler {
	return &SessionHandler{accessUC: accessUC}
}

// GetAccess resolves the role, permissions, and visible UI sections of the
// authenticated identity. Resolution never fails, unknown identities land on
// the default staff tier.
func (h *SessionHandler) GetAccess(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	email, _ := c.Get(middleware.ContextKeyEmail).(string)

	access := h.accessUC.ResolveAccess(c.Request().Context(), usecase.AuthIdentity{
		UserID: userID,
		Email:  email,
	})

	return response.Success(c, http.StatusOK, access, "Access resolved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
