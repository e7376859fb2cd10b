// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{
		db: db,
	}
}

// CreateRestaurant persists a new restaurant location.
func (repo *restaurantRepository) CreateRestaurant(ctx context.Context, restaurant *entity.RestaurantLocation) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRestaurant
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required restaurant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	// Update the entity with generated values
	restaurant.ID = restaurantM.ID
	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

// FindRestaurantByID retrieves a restaurant location by its unique ID.
func (repo *restaurantRepository) FindRestaurantByID(ctx context.Context, id uuid.UUID) (*entity.RestaurantLocation, error) {
	var restaurantM model.RestaurantLocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by ID")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// FindAllWithCoordinates retrieves every restaurant location with a known
// coordinate pair. Rows without coordinates never reach the nearby filter.
func (repo *restaurantRepository) FindAllWithCoordinates(ctx context.Context) ([]*entity.RestaurantLocation, error) {
	var restaurantModels []*model.RestaurantLocationModel

	if err := repo.db.WithContext(ctx).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Order("created_at ASC").
		Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find restaurants with coordinates")
	}

	restaurants := make([]*entity.RestaurantLocation, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

// FindRestaurantByOwnerEmail retrieves the single restaurant location owned by
// the given identity email.
func (repo *restaurantRepository) FindRestaurantByOwnerEmail(ctx context.Context, email string) (*entity.RestaurantLocation, error) {
	var restaurantM model.RestaurantLocationModel

	if err := repo.db.WithContext(ctx).
		Where("lower(owner_email) = lower(?)", email).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by owner email")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// FindRestaurantsByTenant retrieves all locations of one tenant.
func (repo *restaurantRepository) FindRestaurantsByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.RestaurantLocation, error) {
	var restaurantModels []*model.RestaurantLocationModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC").
		Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find restaurants by tenant")
	}

	restaurants := make([]*entity.RestaurantLocation, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

// --- Mapper Functions ---

// toRestaurantDomain converts a GORM RestaurantLocationModel to a domain RestaurantLocation entity.
func toRestaurantDomain(data *model.RestaurantLocationModel) *entity.RestaurantLocation {
	if data == nil {
		return nil
	}

	restaurant := &entity.RestaurantLocation{
		ID:                  data.ID,
		TenantID:            data.TenantID,
		Name:                data.Name,
		OwnerEmail:          data.OwnerEmail,
		NotificationRadius:  data.NotificationRadius,
		NotificationMessage: data.NotificationMessage,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}

	if data.Latitude != nil && data.Longitude != nil {
		restaurant.Coordinate = entity.Coordinate{
			Latitude:  *data.Latitude,
			Longitude: *data.Longitude,
		}
	}

	if restaurant.NotificationRadius <= 0 {
		restaurant.NotificationRadius = entity.DefaultNotificationRadius
	}

	return restaurant
}

// fromRestaurantDomain converts a domain RestaurantLocation entity to a GORM RestaurantLocationModel.
func fromRestaurantDomain(data *entity.RestaurantLocation) *model.RestaurantLocationModel {
	if data == nil {
		return nil
	}

	lat := data.Coordinate.Latitude
	lng := data.Coordinate.Longitude

	return &model.RestaurantLocationModel{
		ID:                  data.ID,
		TenantID:            data.TenantID,
		Name:                data.Name,
		OwnerEmail:          data.OwnerEmail,
		Latitude:            &lat,
		Longitude:           &lng,
		NotificationRadius:  data.NotificationRadius,
		NotificationMessage: data.NotificationMessage,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
