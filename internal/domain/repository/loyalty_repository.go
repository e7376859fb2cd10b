package repository

import (
	"context"
	"errors"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for loyalty persistence.
var (
	// ErrLoyaltyCardNotFound is returned when a loyalty card is not found.
	ErrLoyaltyCardNotFound = errors.New("loyalty card not found")
	// ErrDuplicateLoyaltyCard is returned when the client already has a card at the restaurant.
	ErrDuplicateLoyaltyCard = errors.New("loyalty card already exists")
	// ErrRewardNotReady is returned when a redeem is attempted below the stamp threshold.
	ErrRewardNotReady = errors.New("reward not ready")
)

// LoyaltyRepository defines the interface for loyalty-card database operations.
type LoyaltyRepository interface {
	// CreateCard persists a new loyalty card.
	CreateCard(ctx context.Context, card *entity.LoyaltyCard) error

	// FindCardByID retrieves a loyalty card by its unique ID.
	FindCardByID(ctx context.Context, id uuid.UUID) (*entity.LoyaltyCard, error)

	// FindCardByClientAndRestaurant retrieves the client's card at one restaurant.
	FindCardByClientAndRestaurant(ctx context.Context, clientID, restaurantID uuid.UUID) (*entity.LoyaltyCard, error)

	// FindCardsByClientAndRestaurants retrieves every card the client holds at
	// any of the candidate restaurants. An empty result is not an error.
	FindCardsByClientAndRestaurants(ctx context.Context, clientID uuid.UUID, restaurantIDs []uuid.UUID) ([]*entity.LoyaltyCard, error)

	// AddStamp increments the stamp count of a card by one and returns the
	// updated card. Accumulation past the reward threshold is not capped.
	AddStamp(ctx context.Context, cardID uuid.UUID) (*entity.LoyaltyCard, error)

	// RedeemReward subtracts one reward's worth of stamps from a card and
	// increments its redeemed counter, returning the updated card. Returns
	// ErrRewardNotReady when the card is below the threshold.
	RedeemReward(ctx context.Context, cardID uuid.UUID) (*entity.LoyaltyCard, error)
}
