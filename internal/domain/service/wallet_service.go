package service

import (
	"stampcard/internal/domain/entity"
)

// WalletPass is an unsigned Apple Wallet pass payload for a loyalty card.
// This is deliberately a plain JSON document: no ZIP packaging and no
// cryptographic signing happen server-side.
type WalletPass struct {
	FormatVersion    int               `json:"formatVersion"`
	PassTypeID       string            `json:"passTypeIdentifier"`
	SerialNumber     string            `json:"serialNumber"`
	OrganizationName string            `json:"organizationName"`
	Description      string            `json:"description"`
	StoreCard        WalletStoreCard   `json:"storeCard"`
	Barcode          WalletPassBarcode `json:"barcode"`
}

// WalletStoreCard carries the loyalty fields shown on the pass face.
type WalletStoreCard struct {
	PrimaryFields   []WalletPassField `json:"primaryFields"`
	SecondaryFields []WalletPassField `json:"secondaryFields"`
}

// WalletPassField is one key/label/value triple on the pass.
type WalletPassField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// WalletPassBarcode is the scannable barcode block of the pass.
type WalletPassBarcode struct {
	Format          string `json:"format"`
	Message         string `json:"message"`
	MessageEncoding string `json:"messageEncoding"`
}

// WalletPassService defines the interface for building wallet passes.
type WalletPassService interface {
	// BuildPass assembles the unsigned pass document for a card at a restaurant.
	BuildPass(card *entity.LoyaltyCard, restaurant *entity.RestaurantLocation) (*WalletPass, error)
}
