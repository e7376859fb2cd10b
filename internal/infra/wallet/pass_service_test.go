package wallet

import (
	"testing"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPassService_RequiresPassTypeID(t *testing.T) {
	_, err := NewPassService("", "Stampcard")
	assert.Error(t, err)
}

func TestPassService_BuildPass(t *testing.T) {
	svc, err := NewPassService("pass.com.stampcard.loyalty", "Stampcard")
	require.NoError(t, err)

	card := &entity.LoyaltyCard{
		ID:              uuid.New(),
		StampsCollected: 4,
		StampsRequired:  10,
		RewardsRedeemed: 1,
	}
	restaurant := &entity.RestaurantLocation{
		ID:   uuid.New(),
		Name: "Corner Cafe",
	}

	pass, err := svc.BuildPass(card, restaurant)
	require.NoError(t, err)

	assert.Equal(t, 1, pass.FormatVersion)
	assert.Equal(t, "pass.com.stampcard.loyalty", pass.PassTypeID)
	assert.Equal(t, card.ID.String(), pass.SerialNumber)
	assert.Equal(t, "Corner Cafe stamp card", pass.Description)
	require.Len(t, pass.StoreCard.PrimaryFields, 1)
	assert.Equal(t, "4 of 10", pass.StoreCard.PrimaryFields[0].Value)
	assert.Equal(t, card.ID.String(), pass.Barcode.Message)
}

func TestPassService_BuildPass_NilInputs(t *testing.T) {
	svc, err := NewPassService("pass.com.stampcard.loyalty", "Stampcard")
	require.NoError(t, err)

	_, err = svc.BuildPass(nil, nil)
	assert.Error(t, err)
}
