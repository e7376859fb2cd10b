package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"stampcard/config"
	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/service"
	mockRepo "stampcard/internal/mocks/repository"
	mockSvc "stampcard/internal/mocks/service"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestGeoPushService(t *testing.T) (
	usecase.GeoPushUsecase,
	*mockRepo.MockRestaurantRepository,
	*mockRepo.MockLoyaltyRepository,
	*mockRepo.MockGeoTriggerRepository,
	*mockSvc.MockPushService,
	*mockSvc.MockEventPublisher,
) {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	loyaltyRepo := mockRepo.NewMockLoyaltyRepository(t)
	triggerRepo := mockRepo.NewMockGeoTriggerRepository(t)
	pushSvc := mockSvc.NewMockPushService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	dispatcher := NewGeoPushService(GeoPushServiceParams{
		RestaurantRepo: restaurantRepo,
		LoyaltyRepo:    loyaltyRepo,
		TriggerRepo:    triggerRepo,
		PushService:    pushSvc,
		Publisher:      publisher,
		Logger:         logger,
		Config: &config.Config{
			GeoPush: &config.GeoPushConfig{DefaultRadius: 500, SendTimeout: 5 * time.Second},
		},
	})

	return dispatcher, restaurantRepo, loyaltyRepo, triggerRepo, pushSvc, publisher
}

func nearbyRestaurant(name string, lat, lng, radius float64) *entity.RestaurantLocation {
	return &entity.RestaurantLocation{
		ID:                 uuid.New(),
		TenantID:           uuid.New(),
		Name:               name,
		Coordinate:         entity.Coordinate{Latitude: lat, Longitude: lng},
		NotificationRadius: radius,
	}
}

func TestGeoPushService_Dispatch_NoNearbyRestaurants(t *testing.T) {
	dispatcher, restaurantRepo, _, triggerRepo, _, publisher := createTestGeoPushService(t)

	ctx := context.Background()
	position := entity.Coordinate{Latitude: 40.0, Longitude: -74.0}

	// One restaurant roughly 100km away, far outside its 500m radius.
	far := nearbyRestaurant("Far Away", 41.0, -74.0, 500)
	restaurantRepo.EXPECT().FindAllWithCoordinates(ctx).Return([]*entity.RestaurantLocation{far}, nil)

	// The audit entry is written even when nothing was nearby.
	triggerRepo.EXPECT().
		CreateTriggerLog(ctx, mock.MatchedBy(func(log *entity.GeoTriggerLog) bool {
			return log.NotificationsSent == 0 && len(log.RestaurantIDs) == 0
		})).
		Return(nil)

	publisher.EXPECT().PublishGeoTriggerEvent(ctx, mock.Anything).Return(nil)

	result, err := dispatcher.Dispatch(ctx, position, usecase.Identity{})

	require.NoError(t, err)
	assert.Equal(t, 0, result.NearbyCount)
	assert.Equal(t, 0, result.SentCount)
	assert.Empty(t, result.Results)
}

func TestGeoPushService_Dispatch_AnonymousSendsGeneric(t *testing.T) {
	dispatcher, restaurantRepo, _, triggerRepo, pushSvc, publisher := createTestGeoPushService(t)

	ctx := context.Background()
	position := entity.Coordinate{Latitude: 40.0, Longitude: -74.0}

	near := nearbyRestaurant("Corner Cafe", 40.0001, -74.0001, 500)
	restaurantRepo.EXPECT().FindAllWithCoordinates(ctx).Return([]*entity.RestaurantLocation{near}, nil)

	pushSvc.EXPECT().
		SendGeoPush(mock.Anything, mock.MatchedBy(func(msg *service.GeoPushMessage) bool {
			return msg.Heading == "Corner Cafe is nearby" && msg.RadiusMeters == 500
		})).
		Return("msg-1", nil)

	triggerRepo.EXPECT().
		CreateTriggerLog(ctx, mock.MatchedBy(func(log *entity.GeoTriggerLog) bool {
			return log.NotificationsSent == 1 && len(log.RestaurantIDs) == 1 && log.RestaurantIDs[0] == near.ID
		})).
		Return(nil)

	publisher.EXPECT().PublishGeoTriggerEvent(ctx, mock.Anything).Return(nil)

	result, err := dispatcher.Dispatch(ctx, position, usecase.Identity{})

	require.NoError(t, err)
	assert.Equal(t, 1, result.NearbyCount)
	assert.Equal(t, 1, result.SentCount)
}

func TestGeoPushService_Dispatch_PartialSendFailure(t *testing.T) {
	dispatcher, restaurantRepo, _, triggerRepo, pushSvc, publisher := createTestGeoPushService(t)

	ctx := context.Background()
	position := entity.Coordinate{Latitude: 40.0, Longitude: -74.0}

	first := nearbyRestaurant("First", 40.0001, -74.0001, 500)
	second := nearbyRestaurant("Second", 40.0002, -74.0002, 500)
	third := nearbyRestaurant("Third", 40.0003, -74.0003, 500)
	restaurantRepo.EXPECT().
		FindAllWithCoordinates(ctx).
		Return([]*entity.RestaurantLocation{first, second, third}, nil)

	pushSvc.EXPECT().
		SendGeoPush(mock.Anything, mock.MatchedBy(func(msg *service.GeoPushMessage) bool {
			return msg.Data["restaurant_id"] == second.ID.String()
		})).
		Return("", errors.New("provider unavailable"))
	pushSvc.EXPECT().
		SendGeoPush(mock.Anything, mock.MatchedBy(func(msg *service.GeoPushMessage) bool {
			return msg.Data["restaurant_id"] != second.ID.String()
		})).
		Return("msg-ok", nil).
		Times(2)

	triggerRepo.EXPECT().
		CreateTriggerLog(ctx, mock.MatchedBy(func(log *entity.GeoTriggerLog) bool {
			return log.NotificationsSent == 2 && len(log.RestaurantIDs) == 3
		})).
		Return(nil)

	publisher.EXPECT().PublishGeoTriggerEvent(ctx, mock.Anything).Return(nil)

	result, err := dispatcher.Dispatch(ctx, position, usecase.Identity{})

	// One failed send never fails the dispatch.
	require.NoError(t, err)
	assert.Equal(t, 3, result.NearbyCount)
	assert.Equal(t, 2, result.SentCount)
	require.Len(t, result.Results, 3)

	// Results stay in nearby-filter order.
	assert.Equal(t, first.ID, result.Results[0].RestaurantID)
	assert.True(t, result.Results[0].Success)
	assert.Equal(t, second.ID, result.Results[1].RestaurantID)
	assert.False(t, result.Results[1].Success)
	assert.Equal(t, third.ID, result.Results[2].RestaurantID)
	assert.True(t, result.Results[2].Success)
}

func TestGeoPushService_Dispatch_SendTimeoutCountsAsFailure(t *testing.T) {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	loyaltyRepo := mockRepo.NewMockLoyaltyRepository(t)
	triggerRepo := mockRepo.NewMockGeoTriggerRepository(t)
	pushSvc := mockSvc.NewMockPushService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// A short timeout keeps the test fast; the dispatcher behavior is the same.
	dispatcher := NewGeoPushService(GeoPushServiceParams{
		RestaurantRepo: restaurantRepo,
		LoyaltyRepo:    loyaltyRepo,
		TriggerRepo:    triggerRepo,
		PushService:    pushSvc,
		Publisher:      publisher,
		Logger:         logger,
		Config: &config.Config{
			GeoPush: &config.GeoPushConfig{DefaultRadius: 500, SendTimeout: 50 * time.Millisecond},
		},
	})

	ctx := context.Background()
	position := entity.Coordinate{Latitude: 40.0, Longitude: -74.0}

	near := nearbyRestaurant("Corner Cafe", 40.0001, -74.0001, 500)
	restaurantRepo.EXPECT().FindAllWithCoordinates(ctx).Return([]*entity.RestaurantLocation{near}, nil)

	// A hung transport call: it only returns once the per-send context expires.
	pushSvc.EXPECT().
		SendGeoPush(mock.Anything, mock.Anything).
		RunAndReturn(func(sendCtx context.Context, _ *service.GeoPushMessage) (string, error) {
			<-sendCtx.Done()

			return "", sendCtx.Err()
		})

	triggerRepo.EXPECT().
		CreateTriggerLog(ctx, mock.MatchedBy(func(log *entity.GeoTriggerLog) bool {
			return log.NotificationsSent == 0 && len(log.RestaurantIDs) == 1
		})).
		Return(nil)

	publisher.EXPECT().PublishGeoTriggerEvent(ctx, mock.Anything).Return(nil)

	result, err := dispatcher.Dispatch(ctx, position, usecase.Identity{})

	// A timed-out send settles as a failed result, never as a dispatch error.
	require.NoError(t, err)
	assert.Equal(t, 1, result.NearbyCount)
	assert.Equal(t, 0, result.SentCount)
	require.Len(t, result.Results, 1)
	assert.False(t, result.Results[0].Success)
	assert.Equal(t, context.DeadlineExceeded.Error(), result.Results[0].Error)
}

func TestGeoPushService_Dispatch_LoyaltyTemplating(t *testing.T) {
	dispatcher, restaurantRepo, loyaltyRepo, triggerRepo, pushSvc, publisher := createTestGeoPushService(t)

	ctx := context.Background()
	position := entity.Coordinate{Latitude: 40.0, Longitude: -74.0}
	clientID := uuid.New()

	near := nearbyRestaurant("Nonna's", 40.0001, -74.0001, 500)
	restaurantRepo.EXPECT().FindAllWithCoordinates(ctx).Return([]*entity.RestaurantLocation{near}, nil)

	loyaltyRepo.EXPECT().
		FindCardsByClientAndRestaurants(ctx, clientID, []uuid.UUID{near.ID}).
		Return([]*entity.LoyaltyCard{
			{ID: uuid.New(), ClientID: clientID, RestaurantID: near.ID, StampsCollected: 9, StampsRequired: 10},
		}, nil)

	pushSvc.EXPECT().
		SendGeoPush(mock.Anything, mock.MatchedBy(func(msg *service.GeoPushMessage) bool {
			return msg.Heading == "Almost there!" && msg.Body == "Only 1 stamp to go at Nonna's."
		})).
		Return("msg-1", nil)

	triggerRepo.EXPECT().CreateTriggerLog(ctx, mock.Anything).Return(nil)
	publisher.EXPECT().PublishGeoTriggerEvent(ctx, mock.Anything).Return(nil)

	result, err := dispatcher.Dispatch(ctx, position, usecase.Identity{ClientID: &clientID})

	require.NoError(t, err)
	assert.Equal(t, 1, result.SentCount)
}

func TestGeoPushService_Dispatch_LoyaltyLookupFailureDegradesToGeneric(t *testing.T) {
	dispatcher, restaurantRepo, loyaltyRepo, triggerRepo, pushSvc, publisher := createTestGeoPushService(t)

	ctx := context.Background()
	position := entity.Coordinate{Latitude: 40.0, Longitude: -74.0}
	clientID := uuid.New()

	near := nearbyRestaurant("Corner Cafe", 40.0001, -74.0001, 500)
	restaurantRepo.EXPECT().FindAllWithCoordinates(ctx).Return([]*entity.RestaurantLocation{near}, nil)

	loyaltyRepo.EXPECT().
		FindCardsByClientAndRestaurants(ctx, clientID, []uuid.UUID{near.ID}).
		Return(nil, errors.New("db error"))

	pushSvc.EXPECT().
		SendGeoPush(mock.Anything, mock.MatchedBy(func(msg *service.GeoPushMessage) bool {
			return msg.Heading == "Corner Cafe is nearby"
		})).
		Return("msg-1", nil)

	triggerRepo.EXPECT().CreateTriggerLog(ctx, mock.Anything).Return(nil)
	publisher.EXPECT().PublishGeoTriggerEvent(ctx, mock.Anything).Return(nil)

	result, err := dispatcher.Dispatch(ctx, position, usecase.Identity{ClientID: &clientID})

	require.NoError(t, err)
	assert.Equal(t, 1, result.SentCount)
}

func TestGeoPushService_Dispatch_AuditLogFailureIsSwallowed(t *testing.T) {
	dispatcher, restaurantRepo, _, triggerRepo, pushSvc, publisher := createTestGeoPushService(t)

	ctx := context.Background()
	position := entity.Coordinate{Latitude: 40.0, Longitude: -74.0}

	near := nearbyRestaurant("Corner Cafe", 40.0001, -74.0001, 500)
	restaurantRepo.EXPECT().FindAllWithCoordinates(ctx).Return([]*entity.RestaurantLocation{near}, nil)

	pushSvc.EXPECT().SendGeoPush(mock.Anything, mock.Anything).Return("msg-1", nil)
	triggerRepo.EXPECT().CreateTriggerLog(ctx, mock.Anything).Return(errors.New("insert failed"))
	publisher.EXPECT().PublishGeoTriggerEvent(ctx, mock.Anything).Return(nil)

	result, err := dispatcher.Dispatch(ctx, position, usecase.Identity{})

	require.NoError(t, err)
	assert.Equal(t, 1, result.SentCount)
}

func TestGeoPushService_Dispatch_PublishFailureIsSwallowed(t *testing.T) {
	dispatcher, restaurantRepo, _, triggerRepo, pushSvc, publisher := createTestGeoPushService(t)

	ctx := context.Background()
	position := entity.Coordinate{Latitude: 40.0, Longitude: -74.0}

	near := nearbyRestaurant("Corner Cafe", 40.0001, -74.0001, 500)
	restaurantRepo.EXPECT().FindAllWithCoordinates(ctx).Return([]*entity.RestaurantLocation{near}, nil)

	pushSvc.EXPECT().SendGeoPush(mock.Anything, mock.Anything).Return("msg-1", nil)
	triggerRepo.EXPECT().CreateTriggerLog(ctx, mock.Anything).Return(nil)
	publisher.EXPECT().PublishGeoTriggerEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	result, err := dispatcher.Dispatch(ctx, position, usecase.Identity{})

	require.NoError(t, err)
	assert.Equal(t, 1, result.SentCount)
}

func TestGeoPushService_Dispatch_DirectoryError(t *testing.T) {
	dispatcher, restaurantRepo, _, _, _, _ := createTestGeoPushService(t)

	ctx := context.Background()
	position := entity.Coordinate{Latitude: 40.0, Longitude: -74.0}

	restaurantRepo.EXPECT().FindAllWithCoordinates(ctx).Return(nil, errors.New("db error"))

	result, err := dispatcher.Dispatch(ctx, position, usecase.Identity{})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to load restaurant directory")
}

func TestGeoPushService_GetClientTriggerHistory(t *testing.T) {
	dispatcher, _, _, triggerRepo, _, _ := createTestGeoPushService(t)

	ctx := context.Background()
	clientID := uuid.New()
	expected := []*entity.GeoTriggerLog{
		{ID: uuid.New(), ClientID: &clientID, NotificationsSent: 2},
	}

	triggerRepo.EXPECT().
		FindTriggerLogsByClient(ctx, clientID, 20, 0).
		Return(expected, nil)

	logs, err := dispatcher.GetClientTriggerHistory(ctx, clientID, 20, 0)

	require.NoError(t, err)
	assert.Equal(t, expected, logs)
}

func TestGeoPushService_GetClientTriggerHistory_Error(t *testing.T) {
	dispatcher, _, _, triggerRepo, _, _ := createTestGeoPushService(t)

	ctx := context.Background()
	clientID := uuid.New()

	triggerRepo.EXPECT().
		FindTriggerLogsByClient(ctx, clientID, 20, 0).
		Return(nil, errors.New("db error"))

	logs, err := dispatcher.GetClientTriggerHistory(ctx, clientID, 20, 0)

	assert.Error(t, err)
	assert.Nil(t, logs)
	assert.Contains(t, err.Error(), "failed to find trigger logs by client")
}
