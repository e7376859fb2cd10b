// Package usecase defines the application use-case interfaces.
package usecase

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// Identity carries the optional identifiers attached to a geo trigger request.
// Both are nil for anonymous positions.
type Identity struct {
	UserID   *uuid.UUID // Authenticated platform user, when known.
	ClientID *uuid.UUID // Registered loyalty client, when known.
}

// DispatchResult summarizes one geo-push dispatch.
type DispatchResult struct {
	NearbyCount int                         // Restaurants within their own notification radius.
	SentCount   int                         // Sends that succeeded.
	Results     []entity.NotificationResult // Per-restaurant outcomes, in filter order.
}

// GeoPushUsecase defines the interface for the proximity notification dispatcher.
type GeoPushUsecase interface {
	// Dispatch runs the full geo-push flow for one position: filter nearby
	// restaurants, resolve loyalty state, template and send notifications
	// concurrently, then append one audit log entry. Individual send failures
	// are recorded in the result, never returned as an error.
	Dispatch(ctx context.Context, position entity.Coordinate, identity Identity) (*DispatchResult, error)

	// GetClientTriggerHistory retrieves a client's dispatch audit entries with pagination.
	GetClientTriggerHistory(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*entity.GeoTriggerLog, error)
}
