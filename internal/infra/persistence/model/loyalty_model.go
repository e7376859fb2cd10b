package model

import (
	"time"

	"github.com/google/uuid"
)

// LoyaltyCardModel is the GORM-specific struct for the 'loyalty_cards' table.
// One row per client per restaurant, enforced by a composite unique index.
type LoyaltyCardModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ClientID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_loyalty_cards_client_restaurant"`
	RestaurantID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_loyalty_cards_client_restaurant"`
	StampsCollected int       `gorm:"not null;default:0"`
	StampsRequired  int       `gorm:"not null;default:10"`
	RewardsRedeemed int       `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoyaltyCardModel) TableName() string {
	return "loyalty_cards"
}
