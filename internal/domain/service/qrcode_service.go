package service

import "github.com/google/uuid"

// StampQRService defines the interface for stamp-collection QR codes.
// A restaurant till displays the code; the client app scans it to collect a
// stamp on the matching card.
type StampQRService interface {
	// GenerateStampQR renders a PNG QR code that encodes the card ID.
	GenerateStampQR(cardID uuid.UUID) ([]byte, error)

	// ParseStampQR decodes scanned QR payload data back into a card ID.
	ParseStampQR(qrData string) (uuid.UUID, error)
}
