package entity

import (
	"time"

	"github.com/google/uuid"
)

// LoyaltyCard tracks a client's stamp progress at one restaurant.
//
// StampsCollected is not capped at StampsRequired: stamps keep accumulating
// past the threshold until the reward is redeemed, matching the uncapped
// accumulation the product currently exhibits.
type LoyaltyCard struct {
	ID              uuid.UUID `json:"id"`               // The unique identifier of the card.
	ClientID        uuid.UUID `json:"client_id"`        // The registered client who owns the card.
	RestaurantID    uuid.UUID `json:"restaurant_id"`    // The restaurant location the card belongs to.
	StampsCollected int       `json:"stamps_collected"` // Stamps collected so far. Never negative.
	StampsRequired  int       `json:"stamps_required"`  // Stamps needed for one reward. Always positive.
	RewardsRedeemed int       `json:"rewards_redeemed"` // Total rewards redeemed on this card.
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RewardReady reports whether the card has enough stamps for a reward.
func (c *LoyaltyCard) RewardReady() bool {
	return c.StampsCollected >= c.StampsRequired
}

// StampsRemaining returns the stamps still needed for the next reward.
// Zero or negative means the reward is already earned.
func (c *LoyaltyCard) StampsRemaining() int {
	return c.StampsRequired - c.StampsCollected
}
