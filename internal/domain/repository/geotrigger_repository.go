package repository

import (
	"context"
	"errors"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTriggerLogNotFound is returned when a geo-trigger log entry is not found.
var ErrTriggerLogNotFound = errors.New("geo trigger log not found")

// GeoTriggerRepository defines the interface for the append-only geo-push audit log.
type GeoTriggerRepository interface {
	// CreateTriggerLog appends one audit entry for a completed dispatch.
	CreateTriggerLog(ctx context.Context, log *entity.GeoTriggerLog) error

	// FindTriggerLogsByClient retrieves the dispatch history of one client,
	// newest first, with pagination.
	FindTriggerLogsByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*entity.GeoTriggerLog, error)
}
