// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"stampcard/internal/delivery/http/middleware"
	"stampcard/internal/delivery/http/response"
	"stampcard/internal/domain/entity"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GeoPushHandler holds dependencies for geo-push trigger handlers.
type GeoPushHandler struct {
	uc     usecase.GeoPushUsecase
	logger *slog.Logger
}

// NewGeoPushHandler is the constructor for GeoPushHandler.
func NewGeoPushHandler(uc usecase.GeoPushUsecase, logger *slog.Logger) *GeoPushHandler {
	return &GeoPushHandler{
		uc:     uc,
		logger: logger,
	}
}

// TriggerGeoPushRequest represents the position reported by a client device.
// Pointer fields distinguish an absent coordinate from a zero one.
type TriggerGeoPushRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// TriggerGeoPush handles a reported client position. The response bodies on
// this endpoint are part of the public API contract consumed by the mobile
// clients and must stay stable.
func (h *GeoPushHandler) TriggerGeoPush(c echo.Context) error {
	var req TriggerGeoPushRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Latitude and longitude are required"})
	}

	// Reject incomplete positions before touching any store or transport.
	if req.Latitude == nil || req.Longitude == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Latitude and longitude are required"})
	}

	position := entity.Coordinate{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	}

	result, err := h.uc.Dispatch(c.Request().Context(), position, h.requestIdentity(c))
	if err != nil {
		h.logger.Error("Geo-push dispatch failed",
			slog.Float64("latitude", position.Latitude),
			slog.Float64("longitude", position.Longitude),
			slog.Any("error", err),
		)

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	if result.NearbyCount == 0 {
		return c.JSON(http.StatusOK, map[string]string{"message": "No nearby restaurants found"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":           "Geo-push notifications processed",
		"nearbyRestaurants": result.NearbyCount,
		"notificationsSent": result.SentCount,
	})
}

// GetTriggerHistory handles retrieving the dispatch history for the
// authenticated client.
func (h *GeoPushHandler) GetTriggerHistory(c echo.Context) error {
	clientID, ok := c.Get(middleware.ContextKeyClientID).(uuid.UUID)
	if !ok {
		return response.Forbidden(c, "FORBIDDEN", "Client identity required")
	}

	limit := 20
	offset := 0

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		if parsedOffset, err := strconv.Atoi(offsetStr); err == nil && parsedOffset >= 0 {
			offset = parsedOffset
		}
	}

	logs, err := h.uc.GetClientTriggerHistory(c.Request().Context(), clientID, limit, offset)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs, "Trigger history retrieved successfully")
}

// requestIdentity collects the optional identifiers the auth middleware may
// have attached to the request.
func (h *GeoPushHandler) requestIdentity(c echo.Context) usecase.Identity {
	var identity usecase.Identity

	if userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID); ok {
		identity.UserID = &userID
	}
	if clientID, ok := c.Get(middleware.ContextKeyClientID).(uuid.UUID); ok {
		identity.ClientID = &clientID
	}

	return identity
}
