package impl

import (
	"context"
	"time"

	"stampcard/config"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/domain/service"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrInvalidStampQR is returned when scanned QR payload data cannot be decoded.
var ErrInvalidStampQR = errors.New("invalid stamp QR code")

type loyaltyService struct {
	loyaltyRepo    repository.LoyaltyRepository
	restaurantRepo repository.RestaurantRepository
	qrService      service.StampQRService
	walletService  service.WalletPassService
	config         *config.Config
}

// LoyaltyServiceParams holds dependencies for LoyaltyService, injected by Fx.
type LoyaltyServiceParams struct {
	fx.In

	LoyaltyRepo    repository.LoyaltyRepository
	RestaurantRepo repository.RestaurantRepository
	QRService      service.StampQRService
	WalletService  service.WalletPassService
	Config         *config.Config
}

// NewLoyaltyService creates a new loyalty service instance
func NewLoyaltyService(params LoyaltyServiceParams) usecase.LoyaltyUsecase {
	return &loyaltyService{
		loyaltyRepo:    params.LoyaltyRepo,
		restaurantRepo: params.RestaurantRepo,
		qrService:      params.QRService,
		walletService:  params.WalletService,
		config:         params.Config,
	}
}

// CreateCard opens a new stamp card for a client at a restaurant.
func (s *loyaltyService) CreateCard(ctx context.Context, clientID, restaurantID uuid.UUID) (*entity.LoyaltyCard, error) {
	if _, err := s.restaurantRepo.FindRestaurantByID(ctx, restaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	card := &entity.LoyaltyCard{
		ID:              uuid.New(),
		ClientID:        clientID,
		RestaurantID:    restaurantID,
		StampsCollected: 0,
		StampsRequired:  s.config.Loyalty.DefaultStampsRequired,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := s.loyaltyRepo.CreateCard(ctx, card); err != nil {
		if errors.Is(err, repository.ErrDuplicateLoyaltyCard) {
			return nil, domainerrors.ErrLoyaltyCardAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create loyalty card")
	}

	return card, nil
}

// GetCard retrieves a card by ID.
func (s *loyaltyService) GetCard(ctx context.Context, cardID uuid.UUID) (*entity.LoyaltyCard, error) {
	card, err := s.loyaltyRepo.FindCardByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrLoyaltyCardNotFound) {
			return nil, domainerrors.ErrLoyaltyCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find loyalty card")
	}

	return card, nil
}

// AddStamp adds one stamp to a card. Accumulation past the reward threshold
// is intentionally not capped.
func (s *loyaltyService) AddStamp(ctx context.Context, cardID uuid.UUID) (*entity.LoyaltyCard, error) {
	card, err := s.loyaltyRepo.AddStamp(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrLoyaltyCardNotFound) {
			return nil, domainerrors.ErrLoyaltyCardNotFound
		}

		return nil, errors.Wrap(err, "failed to add stamp")
	}

	return card, nil
}

// CollectStamp adds one stamp identified by scanned QR payload data.
func (s *loyaltyService) CollectStamp(ctx context.Context, qrData string) (*entity.LoyaltyCard, error) {
	cardID, err := s.qrService.ParseStampQR(qrData)
	if err != nil {
		return nil, ErrInvalidStampQR
	}

	return s.AddStamp(ctx, cardID)
}

// RedeemReward consumes one reward's worth of stamps.
func (s *loyaltyService) RedeemReward(ctx context.Context, cardID uuid.UUID) (*entity.LoyaltyCard, error) {
	card, err := s.loyaltyRepo.RedeemReward(ctx, cardID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrLoyaltyCardNotFound):
			return nil, domainerrors.ErrLoyaltyCardNotFound
		case errors.Is(err, repository.ErrRewardNotReady):
			return nil, domainerrors.ErrRewardNotReady
		default:
			return nil, errors.Wrap(err, "failed to redeem reward")
		}
	}

	return card, nil
}

// StampQR renders the PNG QR code a till displays for stamp collection.
func (s *loyaltyService) StampQR(ctx context.Context, cardID uuid.UUID) ([]byte, error) {
	if _, err := s.GetCard(ctx, cardID); err != nil {
		return nil, err
	}

	qrCode, err := s.qrService.GenerateStampQR(cardID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate stamp QR")
	}

	return qrCode, nil
}

// WalletPass builds the unsigned Apple Wallet pass document for a card.
func (s *loyaltyService) WalletPass(ctx context.Context, cardID uuid.UUID) (*service.WalletPass, error) {
	card, err := s.GetCard(ctx, cardID)
	if err != nil {
		return nil, err
	}

	restaurant, err := s.restaurantRepo.FindRestaurantByID(ctx, card.RestaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	pass, err := s.walletService.BuildPass(card, restaurant)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build wallet pass")
	}

	return pass, nil
}
