// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for restaurant persistence.
var (
	// ErrRestaurantNotFound is returned when a restaurant location is not found.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrDuplicateRestaurant is returned when a restaurant location already exists.
	ErrDuplicateRestaurant = errors.New("restaurant already exists")
)

// RestaurantRepository defines the interface for restaurant-directory database operations.
type RestaurantRepository interface {
	// CreateRestaurant persists a new restaurant location.
	CreateRestaurant(ctx context.Context, restaurant *entity.RestaurantLocation) error

	// FindRestaurantByID retrieves a restaurant location by its unique ID.
	FindRestaurantByID(ctx context.Context, id uuid.UUID) (*entity.RestaurantLocation, error)

	// FindAllWithCoordinates retrieves every restaurant location that has a
	// known coordinate pair. Rows without coordinates are excluded here so the
	// nearby filter never sees them.
	FindAllWithCoordinates(ctx context.Context) ([]*entity.RestaurantLocation, error)

	// FindRestaurantByOwnerEmail retrieves the single restaurant location owned
	// by the given identity email, or ErrRestaurantNotFound.
	FindRestaurantByOwnerEmail(ctx context.Context, email string) (*entity.RestaurantLocation, error)

	// FindRestaurantsByTenant retrieves all locations of one tenant.
	FindRestaurantsByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.RestaurantLocation, error)
}
