package usecase

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// RestaurantInput carries the fields needed to register a restaurant location.
type RestaurantInput struct {
	TenantID            uuid.UUID `json:"tenant_id"`
	Name                string    `json:"name"`
	OwnerEmail          string    `json:"owner_email"`
	Latitude            float64   `json:"latitude"`
	Longitude           float64   `json:"longitude"`
	NotificationRadius  float64   `json:"notification_radius,omitempty"`
	NotificationMessage string    `json:"notification_message,omitempty"`
}

// RestaurantUsecase defines the interface for restaurant directory management.
type RestaurantUsecase interface {
	// CreateRestaurant registers a new restaurant location. A missing radius
	// falls back to the configured default.
	CreateRestaurant(ctx context.Context, input *RestaurantInput) (*entity.RestaurantLocation, error)

	// GetRestaurant retrieves one restaurant location by ID.
	GetRestaurant(ctx context.Context, id uuid.UUID) (*entity.RestaurantLocation, error)

	// ListRestaurantsByTenant retrieves all locations of one tenant.
	ListRestaurantsByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.RestaurantLocation, error)
}
