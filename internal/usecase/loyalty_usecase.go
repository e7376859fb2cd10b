package usecase

import (
	"context"

	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/service"

	"github.com/google/uuid"
)

// LoyaltyUsecase defines the interface for stamp card management.
type LoyaltyUsecase interface {
	// CreateCard opens a new stamp card for a client at a restaurant.
	CreateCard(ctx context.Context, clientID, restaurantID uuid.UUID) (*entity.LoyaltyCard, error)

	// GetCard retrieves a card by ID.
	GetCard(ctx context.Context, cardID uuid.UUID) (*entity.LoyaltyCard, error)

	// AddStamp adds one stamp to a card. Accumulation is not capped at the
	// reward threshold.
	AddStamp(ctx context.Context, cardID uuid.UUID) (*entity.LoyaltyCard, error)

	// CollectStamp adds one stamp identified by scanned QR payload data.
	CollectStamp(ctx context.Context, qrData string) (*entity.LoyaltyCard, error)

	// RedeemReward consumes one reward's worth of stamps.
	RedeemReward(ctx context.Context, cardID uuid.UUID) (*entity.LoyaltyCard, error)

	// StampQR renders the PNG QR code a till displays for stamp collection.
	StampQR(ctx context.Context, cardID uuid.UUID) ([]byte, error)

	// WalletPass builds the unsigned Apple Wallet pass document for a card.
	WalletPass(ctx context.Context, cardID uuid.UUID) (*service.WalletPass, error)
}
