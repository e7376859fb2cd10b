package model

import (
	"time"

	"github.com/google/uuid"
)

// GeoTriggerLogModel is the GORM-specific struct for the 'geo_trigger_logs' table.
// It is the append-only audit trail of geo-push dispatches.
type GeoTriggerLogModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	ClientID  *uuid.UUID `gorm:"type:uuid;index"`
	Latitude  float64    `gorm:"type:decimal(10,8);not null"`
	Longitude float64    `gorm:"type:decimal(11,8);not null"`
	// RestaurantIDs keeps the nearby restaurants in filter order.
	RestaurantIDs     []uuid.UUID `gorm:"type:jsonb;serializer:json"`
	NotificationsSent int         `gorm:"not null;default:0"`
	TriggeredAt       time.Time   `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (GeoTriggerLogModel) TableName() string {
	return "geo_trigger_logs"
}
