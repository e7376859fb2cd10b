// Package wallet builds unsigned Apple Wallet pass documents for loyalty cards.
package wallet

import (
	"fmt"

	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/service"

	"github.com/pkg/errors"
)

type passService struct {
	passTypeID       string
	organizationName string
}

// NewPassService creates a new wallet pass builder instance
func NewPassService(passTypeID, organizationName string) (service.WalletPassService, error) {
	if passTypeID == "" {
		return nil, errors.New("wallet pass type identifier must be provided")
	}

	return &passService{
		passTypeID:       passTypeID,
		organizationName: organizationName,
	}, nil
}

// BuildPass assembles the unsigned pass document for a card at a restaurant.
// The barcode carries the card ID so a till scan resolves straight to the card.
func (s *passService) BuildPass(card *entity.LoyaltyCard, restaurant *entity.RestaurantLocation) (*service.WalletPass, error) {
	if card == nil || restaurant == nil {
		return nil, errors.New("card and restaurant are required")
	}

	return &service.WalletPass{
		FormatVersion:    1,
		PassTypeID:       s.passTypeID,
		SerialNumber:     card.ID.String(),
		OrganizationName: s.organizationName,
		Description:      fmt.Sprintf("%s stamp card", restaurant.Name),
		StoreCard: service.WalletStoreCard{
			PrimaryFields: []service.WalletPassField{
				{
					Key:   "stamps",
					Label: "STAMPS",
					Value: fmt.Sprintf("%d of %d", card.StampsCollected, card.StampsRequired),
				},
			},
			SecondaryFields: []service.WalletPassField{
				{
					Key:   "restaurant",
					Label: "RESTAURANT",
					Value: restaurant.Name,
				},
				{
					Key:   "rewards",
					Label: "REWARDS EARNED",
					Value: fmt.Sprintf("%d", card.RewardsRedeemed),
				},
			},
		},
		Barcode: service.WalletPassBarcode{
			Format:          "PKBarcodeFormatQR",
			Message:         card.ID.String(),
			MessageEncoding: "iso-8859-1",
		},
	}, nil
}
