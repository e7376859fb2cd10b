package service

import (
	"context"
)

// GeoTriggerEvent is the analytics event emitted once per geo-push dispatch.
type GeoTriggerEvent struct {
	RequestID         string   `json:"request_id,omitempty"` // For distributed tracing.
	TriggerID         string   `json:"trigger_id"`
	ClientID          string   `json:"client_id,omitempty"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	RestaurantIDs     []string `json:"restaurant_ids"`
	NotificationsSent int      `json:"notifications_sent"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishGeoTriggerEvent publishes a dispatch event for async analytics processing.
	PublishGeoTriggerEvent(ctx context.Context, event *GeoTriggerEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
