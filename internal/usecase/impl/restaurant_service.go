package impl

import (
	"context"
	"time"

	"stampcard/config"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	defaultRadius  float64
}

// RestaurantServiceParams holds dependencies for RestaurantService, injected by Fx.
type RestaurantServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	Config         *config.Config
}

// NewRestaurantService creates a new restaurant directory service instance
func NewRestaurantService(params RestaurantServiceParams) usecase.RestaurantUsecase {
	defaultRadius := entity.DefaultNotificationRadius
	if params.Config.GeoPush != nil && params.Config.GeoPush.DefaultRadius > 0 {
		defaultRadius = params.Config.GeoPush.DefaultRadius
	}

	return &restaurantService{
		restaurantRepo: params.RestaurantRepo,
		defaultRadius:  defaultRadius,
	}
}

// CreateRestaurant registers a new restaurant location.
func (s *restaurantService) CreateRestaurant(ctx context.Context, input *usecase.RestaurantInput) (*entity.RestaurantLocation, error) {
	radius := input.NotificationRadius
	if radius <= 0 {
		radius = s.defaultRadius
	}

	restaurant := &entity.RestaurantLocation{
		ID:         uuid.New(),
		TenantID:   input.TenantID,
		Name:       input.Name,
		OwnerEmail: input.OwnerEmail,
		Coordinate: entity.Coordinate{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
		},
		NotificationRadius:  radius,
		NotificationMessage: input.NotificationMessage,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}

	if err := s.restaurantRepo.CreateRestaurant(ctx, restaurant); err != nil {
		if errors.Is(err, repository.ErrDuplicateRestaurant) {
			return nil, domainerrors.ErrRestaurantAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create restaurant")
	}

	return restaurant, nil
}

// GetRestaurant retrieves one restaurant location by ID.
func (s *restaurantService) GetRestaurant(ctx context.Context, id uuid.UUID) (*entity.RestaurantLocation, error) {
	restaurant, err := s.restaurantRepo.FindRestaurantByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	return restaurant, nil
}

// ListRestaurantsByTenant retrieves all locations of one tenant.
func (s *restaurantService) ListRestaurantsByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.RestaurantLocation, error) {
	restaurants, err := s.restaurantRepo.FindRestaurantsByTenant(ctx, tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find restaurants by tenant")
	}

	return restaurants, nil
}
