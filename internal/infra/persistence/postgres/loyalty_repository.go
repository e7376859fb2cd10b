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

// loyaltyRepository implements the repository.LoyaltyRepository interface.
type loyaltyRepository struct {
	db *gorm.DB
}

// NewLoyaltyRepository is the constructor for loyaltyRepository.
func NewLoyaltyRepository(db *gorm.DB) repository.LoyaltyRepository {
	return &loyaltyRepository{
		db: db,
	}
}

// CreateCard persists a new loyalty card.
func (repo *loyaltyRepository) CreateCard(ctx context.Context, card *entity.LoyaltyCard) error {
	cardM := fromLoyaltyCardDomain(card)

	if err := repo.db.WithContext(ctx).Create(cardM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLoyaltyCard
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required loyalty card information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create loyalty card")
	}

	// Update the entity with generated values
	card.ID = cardM.ID
	card.CreatedAt = cardM.CreatedAt
	card.UpdatedAt = cardM.UpdatedAt

	return nil
}

// FindCardByID retrieves a loyalty card by its unique ID.
func (repo *loyaltyRepository) FindCardByID(ctx context.Context, id uuid.UUID) (*entity.LoyaltyCard, error) {
	var cardM model.LoyaltyCardModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoyaltyCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find loyalty card by ID")
	}

	return toLoyaltyCardDomain(&cardM), nil
}

// FindCardByClientAndRestaurant retrieves the client's card at one restaurant.
func (repo *loyaltyRepository) FindCardByClientAndRestaurant(ctx context.Context, clientID, restaurantID uuid.UUID) (*entity.LoyaltyCard, error) {
	var cardM model.LoyaltyCardModel

	if err := repo.db.WithContext(ctx).
		Where("client_id = ? AND restaurant_id = ?", clientID, restaurantID).
		First(&cardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoyaltyCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find loyalty card by client and restaurant")
	}

	return toLoyaltyCardDomain(&cardM), nil
}

// FindCardsByClientAndRestaurants retrieves every card the client holds at any
// of the candidate restaurants. An empty result is not an error.
func (repo *loyaltyRepository) FindCardsByClientAndRestaurants(ctx context.Context, clientID uuid.UUID, restaurantIDs []uuid.UUID) ([]*entity.LoyaltyCard, error) {
	if len(restaurantIDs) == 0 {
		return nil, nil
	}

	var cardModels []*model.LoyaltyCardModel

	if err := repo.db.WithContext(ctx).
		Where("client_id = ? AND restaurant_id IN ?", clientID, restaurantIDs).
		Find(&cardModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find loyalty cards by client and restaurants")
	}

	cards := make([]*entity.LoyaltyCard, 0, len(cardModels))
	for _, cardM := range cardModels {
		cards = append(cards, toLoyaltyCardDomain(cardM))
	}

	return cards, nil
}

// AddStamp increments the stamp count of a card by one and returns the updated
// card. The increment runs in SQL so concurrent scans never lose a stamp.
func (repo *loyaltyRepository) AddStamp(ctx context.Context, cardID uuid.UUID) (*entity.LoyaltyCard, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyCardModel{}).
		Where("id = ?", cardID).
		UpdateColumn("stamps_collected", gorm.Expr("stamps_collected + 1"))

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to add stamp")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrLoyaltyCardNotFound
	}

	return repo.FindCardByID(ctx, cardID)
}

// RedeemReward subtracts one reward's worth of stamps from a card and
// increments its redeemed counter. The threshold check rides in the WHERE
// clause so a concurrent redeem can never push the count negative.
func (repo *loyaltyRepository) RedeemReward(ctx context.Context, cardID uuid.UUID) (*entity.LoyaltyCard, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyCardModel{}).
		Where("id = ? AND stamps_collected >= stamps_required", cardID).
		UpdateColumns(map[string]interface{}{
			"stamps_collected": gorm.Expr("stamps_collected - stamps_required"),
			"rewards_redeemed": gorm.Expr("rewards_redeemed + 1"),
		})

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to redeem reward")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing card from one below the threshold.
		if _, err := repo.FindCardByID(ctx, cardID); err != nil {
			return nil, err
		}

		return nil, repository.ErrRewardNotReady
	}

	return repo.FindCardByID(ctx, cardID)
}

// --- Mapper Functions ---

// toLoyaltyCardDomain converts a GORM LoyaltyCardModel to a domain LoyaltyCard entity.
func toLoyaltyCardDomain(data *model.LoyaltyCardModel) *entity.LoyaltyCard {
	if data == nil {
		return nil
	}

	return &entity.LoyaltyCard{
		ID:              data.ID,
		ClientID:        data.ClientID,
		RestaurantID:    data.RestaurantID,
		StampsCollected: data.StampsCollected,
		StampsRequired:  data.StampsRequired,
		RewardsRedeemed: data.RewardsRedeemed,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromLoyaltyCardDomain converts a domain LoyaltyCard entity to a GORM LoyaltyCardModel.
func fromLoyaltyCardDomain(data *entity.LoyaltyCard) *model.LoyaltyCardModel {
	if data == nil {
		return nil
	}

	return &model.LoyaltyCardModel{
		ID:              data.ID,
		ClientID:        data.ClientID,
		RestaurantID:    data.RestaurantID,
		StampsCollected: data.StampsCollected,
		StampsRequired:  data.StampsRequired,
		RewardsRedeemed: data.RewardsRedeemed,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
