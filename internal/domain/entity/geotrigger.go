package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationResult captures the outcome of a single geo-push send attempt.
// Results are ephemeral: only the aggregate counts are persisted.
type NotificationResult struct {
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Success      bool      `json:"success"`
	Error        string    `json:"error,omitempty"`
}

// GeoTriggerLog is the append-only audit record written once per geo-push
// dispatch. It is never mutated or deleted by this service.
type GeoTriggerLog struct {
	ID                uuid.UUID   `json:"id"`
	Coordinate        Coordinate  `json:"coordinate"`           // Position that triggered the dispatch.
	UserID            *uuid.UUID  `json:"user_id,omitempty"`    // Authenticated user, when known.
	ClientID          *uuid.UUID  `json:"client_id,omitempty"`  // Registered loyalty client, when known.
	RestaurantIDs     []uuid.UUID `json:"restaurant_ids"`       // Nearby restaurants, in filter order.
	NotificationsSent int         `json:"notifications_sent"`   // Successful sends only.
	TriggeredAt       time.Time   `json:"triggered_at"`
}
