// Package impl contains the concrete implementations of the use-case layer.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"stampcard/config"
	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/repository"
	"stampcard/internal/domain/service"
	"stampcard/internal/geo"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type geoPushService struct {
	restaurantRepo repository.RestaurantRepository
	loyaltyRepo    repository.LoyaltyRepository
	triggerRepo    repository.GeoTriggerRepository
	pushSvc        service.PushService
	publisher      service.EventPublisher
	logger         *slog.Logger
	sendTimeout    time.Duration
}

// GeoPushServiceParams holds dependencies for the geo-push dispatcher, injected by Fx.
type GeoPushServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	LoyaltyRepo    repository.LoyaltyRepository
	TriggerRepo    repository.GeoTriggerRepository
	PushService    service.PushService
	Publisher      service.EventPublisher
	Logger         *slog.Logger
	Config         *config.Config
}

// NewGeoPushService creates a new geo-push dispatcher instance
func NewGeoPushService(params GeoPushServiceParams) usecase.GeoPushUsecase {
	return &geoPushService{
		restaurantRepo: params.RestaurantRepo,
		loyaltyRepo:    params.LoyaltyRepo,
		triggerRepo:    params.TriggerRepo,
		pushSvc:        params.PushService,
		publisher:      params.Publisher,
		logger:         params.Logger,
		sendTimeout:    params.Config.GeoPush.SendTimeout,
	}
}

// Dispatch runs the full geo-push flow for one position.
func (s *geoPushService) Dispatch(ctx context.Context, position entity.Coordinate, identity usecase.Identity) (*usecase.DispatchResult, error) {
	restaurants, err := s.restaurantRepo.FindAllWithCoordinates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load restaurant directory")
	}

	nearby := geo.FindNearby(position, restaurants)

	cardsByRestaurant := s.lookupLoyaltyCards(ctx, identity.ClientID, nearby)

	results := s.sendAll(ctx, nearby, cardsByRestaurant)

	sentCount := 0
	for _, r := range results {
		if r.Success {
			sentCount++
		}
	}

	// The audit entry is always appended, even for a zero-restaurant dispatch.
	// A persistence failure must not change the outcome already determined by
	// the sends, so it is logged and swallowed.
	s.appendTriggerLog(ctx, position, identity, nearby, sentCount)

	s.publishTriggerEvent(ctx, position, identity, nearby, sentCount)

	return &usecase.DispatchResult{
		NearbyCount: len(nearby),
		SentCount:   sentCount,
		Results:     results,
	}, nil
}

// lookupLoyaltyCards fetches the client's cards at every nearby restaurant and
// indexes them by restaurant. Each restaurant is later templated against its
// own card. A lookup failure degrades to generic messaging, it never fails
// the dispatch.
func (s *geoPushService) lookupLoyaltyCards(ctx context.Context, clientID *uuid.UUID, nearby []*entity.RestaurantLocation) map[uuid.UUID]*entity.LoyaltyCard {
	if clientID == nil || len(nearby) == 0 {
		return nil
	}

	restaurantIDs := make([]uuid.UUID, 0, len(nearby))
	for _, r := range nearby {
		restaurantIDs = append(restaurantIDs, r.ID)
	}

	cards, err := s.loyaltyRepo.FindCardsByClientAndRestaurants(ctx, *clientID, restaurantIDs)
	if err != nil {
		s.logger.Warn("loyalty lookup failed, sending generic notifications",
			slog.String("client_id", clientID.String()),
			slog.Any("error", err),
		)

		return nil
	}

	byRestaurant := make(map[uuid.UUID]*entity.LoyaltyCard, len(cards))
	for _, card := range cards {
		byRestaurant[card.RestaurantID] = card
	}

	return byRestaurant
}

// sendAll fires one push per nearby restaurant concurrently and waits for all
// of them to settle. Each send gets its own timeout so a hung transport call
// becomes a failed result instead of stalling the dispatch. One failure never
// cancels the sibling sends.
func (s *geoPushService) sendAll(ctx context.Context, nearby []*entity.RestaurantLocation, cards map[uuid.UUID]*entity.LoyaltyCard) []entity.NotificationResult {
	results := make([]entity.NotificationResult, len(nearby))

	var wg sync.WaitGroup
	for i, restaurant := range nearby {
		wg.Add(1)
		go func(i int, restaurant *entity.RestaurantLocation) {
			defer wg.Done()
			results[i] = s.sendOne(ctx, restaurant, cards[restaurant.ID])
		}(i, restaurant)
	}
	wg.Wait()

	return results
}

func (s *geoPushService) sendOne(ctx context.Context, restaurant *entity.RestaurantLocation, card *entity.LoyaltyCard) entity.NotificationResult {
	content := templateNotification(restaurant, card)

	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	msg := &service.GeoPushMessage{
		Heading:      content.Heading,
		Body:         content.Body,
		Center:       restaurant.Coordinate,
		RadiusMeters: restaurant.NotificationRadius,
		Data: map[string]string{
			"restaurant_id": restaurant.ID.String(),
			"tenant_id":     restaurant.TenantID.String(),
		},
	}

	if _, err := s.pushSvc.SendGeoPush(sendCtx, msg); err != nil {
		s.logger.Warn("geo-push send failed",
			slog.String("restaurant_id", restaurant.ID.String()),
			slog.Any("error", err),
		)

		return entity.NotificationResult{
			RestaurantID: restaurant.ID,
			Success:      false,
			Error:        err.Error(),
		}
	}

	return entity.NotificationResult{
		RestaurantID: restaurant.ID,
		Success:      true,
	}
}

func (s *geoPushService) appendTriggerLog(ctx context.Context, position entity.Coordinate, identity usecase.Identity, nearby []*entity.RestaurantLocation, sentCount int) {
	restaurantIDs := make([]uuid.UUID, 0, len(nearby))
	for _, r := range nearby {
		restaurantIDs = append(restaurantIDs, r.ID)
	}

	log := &entity.GeoTriggerLog{
		ID:                uuid.New(),
		Coordinate:        position,
		UserID:            identity.UserID,
		ClientID:          identity.ClientID,
		RestaurantIDs:     restaurantIDs,
		NotificationsSent: sentCount,
		TriggeredAt:       time.Now(),
	}

	if err := s.triggerRepo.CreateTriggerLog(ctx, log); err != nil {
		s.logger.Error("failed to append geo trigger log",
			slog.String("trigger_id", log.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *geoPushService) publishTriggerEvent(ctx context.Context, position entity.Coordinate, identity usecase.Identity, nearby []*entity.RestaurantLocation, sentCount int) {
	restaurantIDs := make([]string, 0, len(nearby))
	for _, r := range nearby {
		restaurantIDs = append(restaurantIDs, r.ID.String())
	}

	event := &service.GeoTriggerEvent{
		TriggerID:         uuid.New().String(),
		Latitude:          position.Latitude,
		Longitude:         position.Longitude,
		RestaurantIDs:     restaurantIDs,
		NotificationsSent: sentCount,
	}
	if identity.ClientID != nil {
		event.ClientID = identity.ClientID.String()
	}

	if err := s.publisher.PublishGeoTriggerEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish geo trigger event", slog.Any("error", err))
	}
}

// GetClientTriggerHistory retrieves a client's dispatch audit entries with pagination.
func (s *geoPushService) GetClientTriggerHistory(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*entity.GeoTriggerLog, error) {
	logs, err := s.triggerRepo.FindTriggerLogsByClient(ctx, clientID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find trigger logs by client")
	}

	return logs, nil
}
