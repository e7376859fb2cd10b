package handler

import (
	"log/slog"
	"net/http"

	"stampcard/internal/delivery/http/response"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// LoyaltyHandler holds dependencies for stamp card handlers.
type LoyaltyHandler struct {
	uc     usecase.LoyaltyUsecase
	logger *slog.Logger
}

// NewLoyaltyHandler is the constructor for LoyaltyHandler.
func NewLoyaltyHandler(uc usecase.LoyaltyUsecase, logger *slog.Logger) *LoyaltyHandler {
	return &LoyaltyHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateCardRequest represents the request body for opening a stamp card.
type CreateCardRequest struct {
	ClientID     uuid.UUID `json:"client_id" validate:"required"`
	RestaurantID uuid.UUID `json:"restaurant_id" validate:"required"`
}

// CreateCard handles opening a new stamp card for a client at a restaurant.
func (h *LoyaltyHandler) CreateCard(c echo.Context) error {
	var req CreateCardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stamp card input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	card, err := h.uc.CreateCard(c.Request().Context(), req.ClientID, req.RestaurantID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, card, "Stamp card created successfully")
}

// GetCard handles retrieving a stamp card by ID.
func (h *LoyaltyHandler) GetCard(c echo.Context) error {
	cardID, err := h.cardID(c)
	if err != nil {
		return err
	}

	card, err := h.uc.GetCard(c.Request().Context(), cardID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, card, "Stamp card retrieved successfully")
}

// AddStamp handles adding one stamp to a card.
func (h *LoyaltyHandler) AddStamp(c echo.Context) error {
	cardID, err := h.cardID(c)
	if err != nil {
		return err
	}

	card, err := h.uc.AddStamp(c.Request().Context(), cardID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, card, "Stamp added successfully")
}

// CollectStampRequest represents a scanned stamp QR payload.
type CollectStampRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// CollectStamp handles adding a stamp identified by scanned QR payload data.
func (h *LoyaltyHandler) CollectStamp(c echo.Context) error {
	var req CollectStampRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stamp collection input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	card, err := h.uc.CollectStamp(c.Request().Context(), req.QRData)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, card, "Stamp collected successfully")
}

// RedeemReward handles consuming one reward's worth of stamps.
func (h *LoyaltyHandler) RedeemReward(c echo.Context) error {
	cardID, err := h.cardID(c)
	if err != nil {
		return err
	}

	card, err := h.uc.RedeemReward(c.Request().Context(), cardID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, card, "Reward redeemed successfully")
}

// GetStampQR handles rendering the stamp-collection QR code as a PNG image.
func (h *LoyaltyHandler) GetStampQR(c echo.Context) error {
	cardID, err := h.cardID(c)
	if err != nil {
		return err
	}

	png, err := h.uc.StampQR(c.Request().Context(), cardID)
	if err != nil {
		return handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetWalletPass handles building the Apple Wallet pass document for a card.
func (h *LoyaltyHandler) GetWalletPass(c echo.Context) error {
	cardID, err := h.cardID(c)
	if err != nil {
		return err
	}

	pass, err := h.uc.WalletPass(c.Request().Context(), cardID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pass, "Wallet pass generated successfully")
}

// cardID extracts and validates the card ID path parameter.
func (h *LoyaltyHandler) cardID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, response.BadRequest(c, "VALIDATION_ERROR", "Invalid card ID")
	}

	return id, nil
}
