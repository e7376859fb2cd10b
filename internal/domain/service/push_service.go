// Package service defines the interfaces for infrastructure-backed domain services.
package service

import (
	"context"

	"stampcard/internal/domain/entity"
)

// GeoPushMessage is a radius-targeted push request. Audience selection is
// delegated entirely to the transport: it delivers to every opted-in device
// within RadiusMeters of Center. The dispatcher keeps no subscriber list.
type GeoPushMessage struct {
	Heading      string            // Notification title.
	Body         string            // Notification body.
	Center       entity.Coordinate // Center of the delivery radius.
	RadiusMeters float64           // Delivery radius in meters.
	Data         map[string]string // Opaque metadata attached to the push.
}

// PushService defines the interface for the geo-targeted push transport.
type PushService interface {
	// SendGeoPush submits one radius-targeted notification and returns the
	// provider's message ID on success.
	SendGeoPush(ctx context.Context, msg *GeoPushMessage) (string, error)
}
