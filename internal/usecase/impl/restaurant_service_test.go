package impl

import (
	"context"
	"testing"

	"stampcard/config"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	mockRepo "stampcard/internal/mocks/repository"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRestaurantService(t *testing.T) (usecase.RestaurantUsecase, *mockRepo.MockRestaurantRepository) {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)

	svc := NewRestaurantService(RestaurantServiceParams{
		RestaurantRepo: restaurantRepo,
		Config: &config.Config{
			GeoPush: &config.GeoPushConfig{DefaultRadius: 500},
		},
	})

	return svc, restaurantRepo
}

func TestRestaurantService_CreateRestaurant(t *testing.T) {
	svc, restaurantRepo := createTestRestaurantService(t)

	ctx := context.Background()
	input := &usecase.RestaurantInput{
		TenantID:           uuid.New(),
		Name:               "Corner Cafe",
		OwnerEmail:         "owner@cornercafe.com",
		Latitude:           40.0,
		Longitude:          -74.0,
		NotificationRadius: 750,
	}

	restaurantRepo.EXPECT().
		CreateRestaurant(ctx, mock.MatchedBy(func(r *entity.RestaurantLocation) bool {
			return r.Name == "Corner Cafe" && r.NotificationRadius == 750
		})).
		Return(nil)

	restaurant, err := svc.CreateRestaurant(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.TenantID, restaurant.TenantID)
	assert.Equal(t, 750.0, restaurant.NotificationRadius)
}

func TestRestaurantService_CreateRestaurant_DefaultRadius(t *testing.T) {
	svc, restaurantRepo := createTestRestaurantService(t)

	ctx := context.Background()
	input := &usecase.RestaurantInput{
		TenantID:  uuid.New(),
		Name:      "No Radius Diner",
		Latitude:  40.0,
		Longitude: -74.0,
	}

	restaurantRepo.EXPECT().
		CreateRestaurant(ctx, mock.MatchedBy(func(r *entity.RestaurantLocation) bool {
			return r.NotificationRadius == 500
		})).
		Return(nil)

	restaurant, err := svc.CreateRestaurant(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 500.0, restaurant.NotificationRadius)
}

func TestRestaurantService_CreateRestaurant_Duplicate(t *testing.T) {
	svc, restaurantRepo := createTestRestaurantService(t)

	ctx := context.Background()
	restaurantRepo.EXPECT().
		CreateRestaurant(ctx, mock.Anything).
		Return(repository.ErrDuplicateRestaurant)

	restaurant, err := svc.CreateRestaurant(ctx, &usecase.RestaurantInput{Name: "Dup"})

	assert.ErrorIs(t, err, domainerrors.ErrRestaurantAlreadyExists)
	assert.Nil(t, restaurant)
}

func TestRestaurantService_GetRestaurant_NotFound(t *testing.T) {
	svc, restaurantRepo := createTestRestaurantService(t)

	ctx := context.Background()
	id := uuid.New()

	restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, id).
		Return(nil, repository.ErrRestaurantNotFound)

	restaurant, err := svc.GetRestaurant(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
	assert.Nil(t, restaurant)
}

func TestRestaurantService_ListRestaurantsByTenant(t *testing.T) {
	svc, restaurantRepo := createTestRestaurantService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	expected := []*entity.RestaurantLocation{
		{ID: uuid.New(), TenantID: tenantID, Name: "Location A"},
		{ID: uuid.New(), TenantID: tenantID, Name: "Location B"},
	}

	restaurantRepo.EXPECT().
		FindRestaurantsByTenant(ctx, tenantID).
		Return(expected, nil)

	restaurants, err := svc.ListRestaurantsByTenant(ctx, tenantID)

	require.NoError(t, err)
	assert.Equal(t, expected, restaurants)
}

func TestRestaurantService_ListRestaurantsByTenant_Error(t *testing.T) {
	svc, restaurantRepo := createTestRestaurantService(t)

	ctx := context.Background()
	tenantID := uuid.New()

	restaurantRepo.EXPECT().
		FindRestaurantsByTenant(ctx, tenantID).
		Return(nil, errors.New("db error"))

	restaurants, err := svc.ListRestaurantsByTenant(ctx, tenantID)

	assert.Error(t, err)
	assert.Nil(t, restaurants)
	assert.Contains(t, err.Error(), "failed to find restaurants by tenant")
}
