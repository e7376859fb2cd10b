// Package model contains the GORM-specific structs mapped to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantLocationModel is the GORM-specific struct for the 'restaurant_locations' table.
// It represents one physical restaurant location of a tenant.
type RestaurantLocationModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"type:text;not null"`
	// OwnerEmail links the location to the owning identity for role resolution.
	OwnerEmail string   `gorm:"type:text;index"`
	Latitude   *float64 `gorm:"type:decimal(10,8)"`
	Longitude  *float64 `gorm:"type:decimal(11,8)"`
	// NotificationRadius in meters. Zero means "use the platform default".
	NotificationRadius  float64 `gorm:"not null;default:0"`
	NotificationMessage string  `gorm:"type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantLocationModel) TableName() string {
	return "restaurant_locations"
}
