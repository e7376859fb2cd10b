package handler

import (
	"log/slog"
	"net/http"

	"stampcard/internal/delivery/http/response"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RestaurantHandler holds dependencies for restaurant directory handlers.
type RestaurantHandler struct {
	uc     usecase.RestaurantUsecase
	logger *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler.
func NewRestaurantHandler(uc usecase.RestaurantUsecase, logger *slog.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateRestaurantRequest represents the request body for registering a restaurant location.
type CreateRestaurantRequest struct {
	TenantID            uuid.UUID `json:"tenant_id" validate:"required"`
	Name                string    `json:"name" validate:"required"`
	OwnerEmail          string    `json:"owner_email" validate:"omitempty,email"`
	Latitude            float64   `json:"latitude" validate:"min=-90,max=90"`
	Longitude           float64   `json:"longitude" validate:"min=-180,max=180"`
	NotificationRadius  float64   `json:"notification_radius,omitempty" validate:"omitempty,gt=0"`
	NotificationMessage string    `json:"notification_message,omitempty"`
}

// CreateRestaurant handles registering a new restaurant location.
func (h *RestaurantHandler) CreateRestaurant(c echo.Context) error {
	var req CreateRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.RestaurantInput{
		TenantID:            req.TenantID,
		Name:                req.Name,
		OwnerEmail:          req.OwnerEmail,
		Latitude:            req.Latitude,
		Longitude:           req.Longitude,
		NotificationRadius:  req.NotificationRadius,
		NotificationMessage: req.NotificationMessage,
	}

	restaurant, err := h.uc.CreateRestaurant(c.Request().Context(), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, restaurant, "Restaurant registered successfully")
}

// GetRestaurant handles retrieving one restaurant location by ID.
func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid restaurant ID")
	}

	restaurant, err := h.uc.GetRestaurant(c.Request().Context(), id)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurant, "Restaurant retrieved successfully")
}

// ListRestaurants handles listing the restaurant locations of one tenant.
func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	tenantID, err := uuid.Parse(c.QueryParam("tenant_id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "tenant_id query parameter is required")
	}

	restaurants, err := h.uc.ListRestaurantsByTenant(c.Request().Context(), tenantID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurants, "Restaurants retrieved successfully")
}
