package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultNotificationRadius is the geo-push radius in meters applied when a
// restaurant location has no explicit radius configured.
const DefaultNotificationRadius = 500.0

// RestaurantLocation represents one physical location of a tenant restaurant.
// It is immutable for the duration of a single geo-push dispatch.
type RestaurantLocation struct {
	ID                  uuid.UUID  `json:"id"`                             // The unique identifier of the location.
	TenantID            uuid.UUID  `json:"tenant_id"`                      // The restaurant business this location belongs to.
	Name                string     `json:"name"`                           // Display name shown in notifications.
	OwnerEmail          string     `json:"owner_email"`                    // Email of the owning identity, used for role resolution.
	Coordinate          Coordinate `json:"coordinate"`                     // Geographic position of the location.
	NotificationRadius  float64    `json:"notification_radius"`            // Geo-push radius in meters.
	NotificationMessage string     `json:"notification_message,omitempty"` // Optional custom geo-push body template.
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
