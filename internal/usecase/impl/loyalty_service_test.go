package impl

import (
	"context"
	"testing"

	"stampcard/config"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
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

func createTestLoyaltyService(t *testing.T) (
	usecase.LoyaltyUsecase,
	*mockRepo.MockLoyaltyRepository,
	*mockRepo.MockRestaurantRepository,
	*mockSvc.MockStampQRService,
	*mockSvc.MockWalletPassService,
) {
	loyaltyRepo := mockRepo.NewMockLoyaltyRepository(t)
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	qrSvc := mockSvc.NewMockStampQRService(t)
	walletSvc := mockSvc.NewMockWalletPassService(t)

	svc := NewLoyaltyService(LoyaltyServiceParams{
		LoyaltyRepo:    loyaltyRepo,
		RestaurantRepo: restaurantRepo,
		QRService:      qrSvc,
		WalletService:  walletSvc,
		Config: &config.Config{
			Loyalty: &config.LoyaltyConfig{DefaultStampsRequired: 10},
		},
	})

	return svc, loyaltyRepo, restaurantRepo, qrSvc, walletSvc
}

func TestLoyaltyService_CreateCard(t *testing.T) {
	svc, loyaltyRepo, restaurantRepo, _, _ := createTestLoyaltyService(t)

	ctx := context.Background()
	clientID := uuid.New()
	restaurantID := uuid.New()

	restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(&entity.RestaurantLocation{ID: restaurantID}, nil)

	loyaltyRepo.EXPECT().
		CreateCard(ctx, mock.MatchedBy(func(card *entity.LoyaltyCard) bool {
			return card.ClientID == clientID &&
				card.RestaurantID == restaurantID &&
				card.StampsCollected == 0 &&
				card.StampsRequired == 10
		})).
		Return(nil)

	card, err := svc.CreateCard(ctx, clientID, restaurantID)

	require.NoError(t, err)
	assert.Equal(t, clientID, card.ClientID)
	assert.Equal(t, 10, card.StampsRequired)
}

func TestLoyaltyService_CreateCard_RestaurantNotFound(t *testing.T) {
	svc, _, restaurantRepo, _, _ := createTestLoyaltyService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(nil, repository.ErrRestaurantNotFound)

	card, err := svc.CreateCard(ctx, uuid.New(), restaurantID)

	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
	assert.Nil(t, card)
}

func TestLoyaltyService_CreateCard_Duplicate(t *testing.T) {
	svc, loyaltyRepo, restaurantRepo, _, _ := createTestLoyaltyService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(&entity.RestaurantLocation{ID: restaurantID}, nil)

	loyaltyRepo.EXPECT().
		CreateCard(ctx, mock.Anything).
		Return(repository.ErrDuplicateLoyaltyCard)

	card, err := svc.CreateCard(ctx, uuid.New(), restaurantID)

	assert.ErrorIs(t, err, domainerrors.ErrLoyaltyCardAlreadyExists)
	assert.Nil(t, card)
}

func TestLoyaltyService_GetCard_NotFound(t *testing.T) {
	svc, loyaltyRepo, _, _, _ := createTestLoyaltyService(t)

	ctx := context.Background()
	cardID := uuid.New()

	loyaltyRepo.EXPECT().
		FindCardByID(ctx, cardID).
		Return(nil, repository.ErrLoyaltyCardNotFound)

	card, err := svc.GetCard(ctx, cardID)

	assert.ErrorIs(t, err, domainerrors.ErrLoyaltyCardNotFound)
	assert.Nil(t, card)
}

func TestLoyaltyService_AddStamp(t *testing.T) {
	svc, loyaltyRepo, _, _, _ := createTestLoyaltyService(t)

	ctx := context.Background()
	cardID := uuid.New()

	loyaltyRepo.EXPECT().
		AddStamp(ctx, cardID).
		Return(&entity.LoyaltyCard{ID: cardID, StampsCollected: 6, StampsRequired: 10}, nil)

	card, err := svc.AddStamp(ctx, cardID)

	require.NoError(t, err)
	assert.Equal(t, 6, card.StampsCollected)
}

func TestLoyaltyService_CollectStamp(t *testing.T) {
	svc, loyaltyRepo, _, qrSvc, _ := createTestLoyaltyService(t)

	ctx := context.Background()
	cardID := uuid.New()

	qrSvc.EXPECT().ParseStampQR("stamp:" + cardID.String()).Return(cardID, nil)
	loyaltyRepo.EXPECT().
		AddStamp(ctx, cardID).
		Return(&entity.LoyaltyCard{ID: cardID, StampsCollected: 1, StampsRequired: 10}, nil)

	card, err := svc.CollectStamp(ctx, "stamp:"+cardID.String())

	require.NoError(t, err)
	assert.Equal(t, 1, card.StampsCollected)
}

func TestLoyaltyService_CollectStamp_InvalidQR(t *testing.T) {
	svc, _, _, qrSvc, _ := createTestLoyaltyService(t)

	qrSvc.EXPECT().ParseStampQR("garbage").Return(uuid.Nil, errors.New("bad payload"))

	card, err := svc.CollectStamp(context.Background(), "garbage")

	assert.ErrorIs(t, err, ErrInvalidStampQR)
	assert.Nil(t, card)
}

func TestLoyaltyService_RedeemReward(t *testing.T) {
	svc, loyaltyRepo, _, _, _ := createTestLoyaltyService(t)

	ctx := context.Background()
	cardID := uuid.New()

	loyaltyRepo.EXPECT().
		RedeemReward(ctx, cardID).
		Return(&entity.LoyaltyCard{ID: cardID, StampsCollected: 1, StampsRequired: 10, RewardsRedeemed: 1}, nil)

	card, err := svc.RedeemReward(ctx, cardID)

	require.NoError(t, err)
	assert.Equal(t, 1, card.RewardsRedeemed)
}

func TestLoyaltyService_RedeemReward_NotReady(t *testing.T) {
	svc, loyaltyRepo, _, _, _ := createTestLoyaltyService(t)

	ctx := context.Background()
	cardID := uuid.New()

	loyaltyRepo.EXPECT().
		RedeemReward(ctx, cardID).
		Return(nil, repository.ErrRewardNotReady)

	card, err := svc.RedeemReward(ctx, cardID)

	assert.ErrorIs(t, err, domainerrors.ErrRewardNotReady)
	assert.Nil(t, card)
}

func TestLoyaltyService_StampQR(t *testing.T) {
	svc, loyaltyRepo, _, qrSvc, _ := createTestLoyaltyService(t)

	ctx := context.Background()
	cardID := uuid.New()

	loyaltyRepo.EXPECT().
		FindCardByID(ctx, cardID).
		Return(&entity.LoyaltyCard{ID: cardID}, nil)
	qrSvc.EXPECT().GenerateStampQR(cardID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := svc.StampQR(ctx, cardID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestLoyaltyService_WalletPass(t *testing.T) {
	svc, loyaltyRepo, restaurantRepo, _, walletSvc := createTestLoyaltyService(t)

	ctx := context.Background()
	cardID := uuid.New()
	restaurantID := uuid.New()

	card := &entity.LoyaltyCard{ID: cardID, RestaurantID: restaurantID, StampsCollected: 4, StampsRequired: 10}
	restaurant := &entity.RestaurantLocation{ID: restaurantID, Name: "Corner Cafe"}

	loyaltyRepo.EXPECT().FindCardByID(ctx, cardID).Return(card, nil)
	restaurantRepo.EXPECT().FindRestaurantByID(ctx, restaurantID).Return(restaurant, nil)
	walletSvc.EXPECT().
		BuildPass(card, restaurant).
		Return(&service.WalletPass{SerialNumber: cardID.String(), Description: "Corner Cafe stamp card"}, nil)

	pass, err := svc.WalletPass(ctx, cardID)

	require.NoError(t, err)
	assert.Equal(t, cardID.String(), pass.SerialNumber)
}
